// Package words loads, normalizes, and holds the answer and guess
// lexicons (spec.md §4.6), and caches the optimal first guess.
package words

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/lexigon/wordlesolver/feedback"
)

// OptimalFirstGuessProbeOrder is tried, in order, against the loaded
// guess lexicon to seed the cached optimal first guess (spec.md §4.5,
// §6). The first entry present in Guesses wins; if none are present
// the repository falls back to the lexically first guess word.
var OptimalFirstGuessProbeOrder = []string{"TARES", "SLATE", "CRANE", "CRATE", "SLANT"}

// LoadResult is the flat result type for a lexicon load: a
// human-readable failure reason on error, empty on success. Grounded
// on spec.md §7 item 1's "single flat result type carrying a string
// reason".
type LoadResult struct {
	Reason string
}

// OK reports whether the load succeeded.
func (r LoadResult) OK() bool { return r.Reason == "" }

func fail(format string, args ...any) LoadResult {
	return LoadResult{Reason: fmt.Sprintf(format, args...)}
}

// answersFile is the JSON shape expected on disk: {"answer_words": [...]}.
type answersFile struct {
	AnswerWords []string `json:"answer_words"`
}

// Repository holds the two lexicons and the cached optimal first
// guess behind a sync.RWMutex, copying out slice headers under a
// brief read lock before any CPU-bound work — immutable backing
// arrays mean the copy is cheap and the lock is never held across a
// filter or scoring pass. Grounded on data/wordlists.go's
// WordlistMaps / sync.Once / sync.RWMutex pattern.
type Repository struct {
	mu                sync.RWMutex
	answers           []string
	guesses           []string
	answersSet        map[string]struct{}
	guessesSet        map[string]struct{}
	optimalFirstGuess string
	loaded            bool

	filterCache *FilterCache
}

// defaultFilterCacheSize bounds the LRU filter-result cache (spec.md
// SPEC_FULL.md §4.12): large enough to cover one interactive game's
// worth of successive histories without unbounded growth.
const defaultFilterCacheSize = 2048

// NewRepository returns an empty, valid Repository. It remains
// unusable (every accessor returns empty results) until a successful
// LoadFromFiles or LoadFromMemory call.
func NewRepository() *Repository {
	cache, err := NewFilterCache(defaultFilterCacheSize)
	if err != nil {
		// Only possible if defaultFilterCacheSize <= 0, which it never is.
		panic(err)
	}
	return &Repository{filterCache: cache}
}

// LoadFromFiles reads answers from a JSON file (answersPath) and
// guesses from a newline-delimited text file (guessesPath), per
// spec.md §6's file formats.
func (r *Repository) LoadFromFiles(answersPath, guessesPath string) LoadResult {
	answersRaw, err := os.ReadFile(answersPath)
	if err != nil {
		return fail("reading answers file %s: %v", answersPath, err)
	}
	var parsed answersFile
	if err := json.Unmarshal(answersRaw, &parsed); err != nil {
		return fail("parsing answers JSON %s: %v", answersPath, err)
	}

	guessesRaw, err := os.ReadFile(guessesPath)
	if err != nil {
		return fail("reading guesses file %s: %v", guessesPath, err)
	}
	guessLines := strings.Split(string(guessesRaw), "\n")

	return r.LoadFromMemory(parsed.AnswerWords, guessLines)
}

// LoadFromMemory accepts already-in-memory word lists (for hosts that
// bundle the lexicons themselves rather than reading files), and
// normalizes, filters, and stores them. Recomputes the cached optimal
// first guess.
func (r *Repository) LoadFromMemory(answers, guesses []string) LoadResult {
	normAnswers := normalizeWords(answers)
	normGuesses := normalizeWords(guesses)

	if len(normAnswers) == 0 {
		return fail("no valid five-letter answer words after normalization")
	}
	if len(normGuesses) == 0 {
		return fail("no valid five-letter guess words after normalization")
	}

	guessSet := make(map[string]struct{}, len(normGuesses))
	for _, w := range normGuesses {
		guessSet[w] = struct{}{}
	}
	// Invariant: Answers ⊆ Guesses.
	for _, w := range normAnswers {
		if _, ok := guessSet[w]; !ok {
			normGuesses = append(normGuesses, w)
			guessSet[w] = struct{}{}
		}
	}
	sort.Strings(normAnswers)
	sort.Strings(normGuesses)

	answerSet := make(map[string]struct{}, len(normAnswers))
	for _, w := range normAnswers {
		answerSet[w] = struct{}{}
	}

	first := computeOptimalFirstGuess(guessSet, normGuesses)

	r.mu.Lock()
	r.answers = normAnswers
	r.guesses = normGuesses
	r.answersSet = answerSet
	r.guessesSet = guessSet
	r.optimalFirstGuess = first
	r.loaded = true
	r.mu.Unlock()

	// A load happens-before any subsequent Filter that must see the
	// new words (spec.md §5); a stale cached filter result computed
	// against the old guess list would violate that.
	r.filterCache.Clear()

	return LoadResult{}
}

// normalizeWords trims, uppercases, and keeps only five-letter
// alphabetic entries, per spec.md §4.6.
func normalizeWords(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if len(w) != 5 {
			continue
		}
		if !isAlpha(w) {
			continue
		}
		out = append(out, w)
	}
	return out
}

func isAlpha(w string) bool {
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return false
		}
	}
	return true
}

// computeOptimalFirstGuess tries the normative probe order first,
// falling back to the lexically first guess word (spec.md §4.5).
func computeOptimalFirstGuess(guessSet map[string]struct{}, sortedGuesses []string) string {
	for _, probe := range OptimalFirstGuessProbeOrder {
		if _, ok := guessSet[probe]; ok {
			return probe
		}
	}
	if len(sortedGuesses) > 0 {
		return sortedGuesses[0]
	}
	return ""
}

// AnswerWords returns the loaded answer lexicon.
func (r *Repository) AnswerWords() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.answers
}

// GuessWords returns the loaded guess lexicon.
func (r *Repository) GuessWords() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.guesses
}

// OptimalFirstGuess returns the cached first guess and whether the
// repository has completed a successful load.
func (r *Repository) OptimalFirstGuess() (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.optimalFirstGuess, r.loaded
}

// IsValidWord reports whether word, uppercased, is in the guess
// lexicon.
func (r *Repository) IsValidWord(word string) bool {
	word = strings.ToUpper(strings.TrimSpace(word))
	if len(word) != 5 || !isAlpha(word) {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.guessesSet[word]
	return ok
}

// Loaded reports whether a successful load has ever completed.
func (r *Repository) Loaded() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loaded
}

// PossibleWords returns the subset of the guess lexicon consistent
// with history (spec.md §6's possible_words), served through the
// repository's LRU filter cache. An empty history returns the answer
// lexicon, per spec.md §6.
func (r *Repository) PossibleWords(history feedback.GuessHistory) []string {
	if len(history) == 0 {
		return r.AnswerWords()
	}
	return r.filterCache.Filter(r.GuessWords(), history)
}

// PossibleWordCount returns len(PossibleWords(history)) without
// handing back the backing slice, for callers (spec.md §6's
// possible_word_count) that only need the count. It shares
// PossibleWords' cache, so repeated calls with the same history cost
// one filter pass regardless of which of the two accessors is used
// first.
func (r *Repository) PossibleWordCount(history feedback.GuessHistory) int {
	return len(r.PossibleWords(history))
}
