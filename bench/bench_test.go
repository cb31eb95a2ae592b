package bench

import (
	"strings"
	"testing"

	"github.com/lexigon/wordlesolver/config"
	"github.com/lexigon/wordlesolver/feedback"
	"github.com/lexigon/wordlesolver/solver"
	"github.com/lexigon/wordlesolver/words"
)

func newTestGuesser(answers, guesses []string) *solver.Solver {
	repo := words.NewRepository()
	repo.LoadFromMemory(answers, guesses)
	return solver.New(repo, config.NewStore())
}

// fixedGuesser always returns the same word, used to exercise the
// harness's own bookkeeping independent of the real solver.
type fixedGuesser struct {
	word string
}

func (f fixedGuesser) BestGuess(history feedback.GuessHistory) (string, bool) {
	return f.word, true
}

func TestSimulateGameSolves(t *testing.T) {
	g := newTestGuesser(
		[]string{"CRANE", "SLATE", "CRATE"},
		[]string{"CRANE", "SLATE", "CRATE", "TARES"},
	)

	result := SimulateGame(g, "CRANE")
	if !result.Solved {
		t.Fatalf("expected CRANE to be solved, got %+v", result)
	}
	if result.TargetWord != "CRANE" {
		t.Errorf("TargetWord = %s, want CRANE", result.TargetWord)
	}
	if result.GuessCount > maxGuesses {
		t.Errorf("GuessCount = %d, exceeds maxGuesses %d", result.GuessCount, maxGuesses)
	}
	if result.Guesses[len(result.Guesses)-1] != "CRANE" {
		t.Errorf("final guess = %s, want CRANE", result.Guesses[len(result.Guesses)-1])
	}
}

func TestSimulateGameNeverSolvingStopsAtMaxGuesses(t *testing.T) {
	g := fixedGuesser{word: "WRONG"}
	result := SimulateGame(g, "RIGHT")

	if result.Solved {
		t.Fatal("expected unsolved game")
	}
	if result.GuessCount != maxGuesses {
		t.Errorf("GuessCount = %d, want %d", result.GuessCount, maxGuesses)
	}
}

func TestRunOnWordsAggregatesStats(t *testing.T) {
	g := newTestGuesser(
		[]string{"CRANE", "SLATE"},
		[]string{"CRANE", "SLATE", "TARES"},
	)

	stats := RunOnWords(g, []string{"CRANE", "SLATE"})
	if stats.TotalGames != 2 {
		t.Fatalf("TotalGames = %d, want 2", stats.TotalGames)
	}
	if stats.SolvedGames == 0 {
		t.Errorf("expected at least one solved game, got %+v", stats)
	}
	if stats.SuccessRate < 0 || stats.SuccessRate > 1 {
		t.Errorf("SuccessRate = %v, out of [0,1]", stats.SuccessRate)
	}
}

func TestRunOnWordsEmptyProducesZeroStats(t *testing.T) {
	g := fixedGuesser{word: "CRANE"}
	stats := RunOnWords(g, nil)
	if stats.TotalGames != 0 {
		t.Errorf("TotalGames = %d, want 0", stats.TotalGames)
	}
}

func TestSampleWordsDeterministic(t *testing.T) {
	answers := []string{"AAAAA", "BBBBB", "CCCCC", "DDDDD", "EEEEE", "FFFFF"}

	first := sampleWords(answers, 3)
	second := sampleWords(answers, 3)

	if len(first) != 3 {
		t.Fatalf("sampleWords returned %d words, want 3", len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("sampleWords is not deterministic: %v vs %v", first, second)
		}
	}
}

func TestSampleWordsCapsAtLexiconSize(t *testing.T) {
	answers := []string{"AAAAA", "BBBBB"}
	got := sampleWords(answers, 100)
	if len(got) != len(answers) {
		t.Errorf("sampleWords(_, 100) = %v, want all %d answers", got, len(answers))
	}
}

func TestCompareWithHumans(t *testing.T) {
	ai := Stats{AverageGuesses: 3.5, SuccessRate: 0.95}
	cmp := CompareWithHumans(ai)

	if !cmp.BetterAtGuesses {
		t.Error("expected BetterAtGuesses=true for 3.5 < 4.1")
	}
	if !cmp.BetterAtSuccess {
		t.Error("expected BetterAtSuccess=true for 0.95 > 0.89")
	}
}

func TestReportWriteToProducesReadableOutput(t *testing.T) {
	g := newTestGuesser(
		[]string{"CRANE", "SLATE"},
		[]string{"CRANE", "SLATE", "TARES"},
	)
	report := NewReport(g, []string{"CRANE", "SLATE"}, 2)

	var sb strings.Builder
	report.WriteTo(&sb)

	out := sb.String()
	if !strings.Contains(out, "Success rate") {
		t.Errorf("report output missing 'Success rate': %s", out)
	}
	if !strings.Contains(out, "human baseline") {
		t.Errorf("report output missing human baseline comparison: %s", out)
	}
}
