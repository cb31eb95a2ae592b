package bench

import (
	"fmt"
	"io"
	"time"
)

// HumanBenchmarks holds published human performance baselines,
// transcribed verbatim from
// original_source/benchmark_runner.rs::HumanBenchmarks::new.
var HumanBenchmarks = Stats{
	TotalGames:     0,
	AverageGuesses: 4.1,
	SuccessRate:    0.89,
	GuessDistribution: map[int]int{
		1: 0, 2: 0, 3: 0, 4: 0, 5: 0, 6: 0,
	},
	SolveRateByGuess: map[int]float64{
		1: 0.01,
		2: 0.05,
		3: 0.20,
		4: 0.35,
		5: 0.20,
		6: 0.08,
	},
}

// Comparison is the delta between an AI run and HumanBenchmarks,
// grounded on benchmark_runner.rs::PerformanceComparison.
type Comparison struct {
	GuessImprovement          float64
	GuessImprovementPercent   float64
	SuccessImprovement        float64
	SuccessImprovementPercent float64
	BetterAtGuesses           bool
	BetterAtSuccess           bool
}

// CompareWithHumans computes how ai compares against HumanBenchmarks.
func CompareWithHumans(ai Stats) Comparison {
	guessImprovement := HumanBenchmarks.AverageGuesses - ai.AverageGuesses
	successImprovement := ai.SuccessRate - HumanBenchmarks.SuccessRate

	return Comparison{
		GuessImprovement:          guessImprovement,
		GuessImprovementPercent:   (guessImprovement / HumanBenchmarks.AverageGuesses) * 100,
		SuccessImprovement:        successImprovement,
		SuccessImprovementPercent: (successImprovement / HumanBenchmarks.SuccessRate) * 100,
		BetterAtGuesses:           guessImprovement > 0,
		BetterAtSuccess:           successImprovement > 0,
	}
}

// Report bundles a run's stats, the human baseline, and the
// comparison between them, grounded on
// benchmark_runner.rs::BenchmarkReport.
type Report struct {
	Stats      Stats
	Human      Stats
	Comparison Comparison
	Duration   time.Duration
	SampleSize int
}

// NewReport runs guesser over n sampled answers and assembles the
// full comparison report.
func NewReport(guesser Guesser, answers []string, n int) Report {
	start := time.Now()
	stats := Run(guesser, answers, n)
	return Report{
		Stats:      stats,
		Human:      HumanBenchmarks,
		Comparison: CompareWithHumans(stats),
		Duration:   time.Since(start),
		SampleSize: n,
	}
}

// WriteTo prints a human-readable report to w, grounded on the
// println-based report in benchmark_runner.rs's comprehensive/random
// benchmark methods.
func (r Report) WriteTo(w io.Writer) {
	fmt.Fprintf(w, "Wordle solver benchmark (%d games, %s)\n", r.SampleSize, r.Duration)
	fmt.Fprintf(w, "  Success rate:    %.1f%%\n", r.Stats.SuccessRate*100)
	fmt.Fprintf(w, "  Average guesses: %.2f\n", r.Stats.AverageGuesses)
	fmt.Fprintln(w, "  Guess distribution:")
	for _, count := range sortedGuessCounts(r.Stats.GuessDistribution) {
		n := r.Stats.GuessDistribution[count]
		fmt.Fprintf(w, "    %d guesses: %d games\n", count, n)
	}
	fmt.Fprintln(w, "  vs. human baseline (avg 4.1 guesses, 89% success):")
	fmt.Fprintf(w, "    guesses:  %+.2f (%+.1f%%)\n", r.Comparison.GuessImprovement, r.Comparison.GuessImprovementPercent)
	fmt.Fprintf(w, "    success:  %+.1f%% (%+.1f%%)\n", r.Comparison.SuccessImprovement*100, r.Comparison.SuccessImprovementPercent)
}
