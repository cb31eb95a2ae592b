// Package solver implements the candidate selector (spec.md §4.5):
// given a guess history, choose the next word expected to minimize
// remaining guesses.
package solver

import (
	"github.com/lexigon/wordlesolver/config"
	"github.com/lexigon/wordlesolver/entropy"
	"github.com/lexigon/wordlesolver/feedback"
	"github.com/lexigon/wordlesolver/words"
)

// hardCandidateCap is the legacy, unconditional safety bound on the
// number of candidates scored per call (spec.md §8 property 9, §9
// open question 1: both the legacy cap and the configurable
// candidate_cap apply simultaneously).
const hardCandidateCap = 100

// Solver ties together a word repository and a configuration store to
// implement best_guess. It holds no other state: repository and
// config are both safe for concurrent use, and Solver itself performs
// no locking of its own.
type Solver struct {
	repo   *words.Repository
	config *config.Store
}

// New returns a Solver backed by repo and cfg.
func New(repo *words.Repository, cfg *config.Store) *Solver {
	return &Solver{repo: repo, config: cfg}
}

// BestGuess implements spec.md §4.5. Returns (word, true) on success,
// ("", false) when the history admits no consistent word.
func (s *Solver) BestGuess(history feedback.GuessHistory) (string, bool) {
	cfg := s.config.Snapshot()

	if len(history) == 0 {
		if first, loaded := s.repo.OptimalFirstGuess(); loaded && first != "" {
			return first, true
		}
	}

	remaining := s.repo.PossibleWords(history)
	if len(remaining) == 0 {
		return "", false
	}
	if len(remaining) <= 2 {
		// Deterministic tie-break: remaining is always lexically
		// sorted (spec.md §9 open question 2), so "first" is
		// reproducible across runs.
		return remaining[0], true
	}

	pool := assemblePool(remaining, cfg)

	return scorePool(pool, remaining, cfg), true
}

// assemblePool builds the candidate pool: remaining words ("prime
// suspects") plus a curated strategic set, deduplicated and truncated
// to cfg.CandidateCap (spec.md §4.5 step 2).
func assemblePool(remaining []string, cfg config.SolverConfig) []string {
	strategic := ExtendedStrategicWords
	if cfg.IncludeKillerWords {
		strategic = KillerWords
	}

	seen := make(map[string]struct{}, len(remaining)+len(strategic))
	pool := make([]string, 0, len(remaining)+len(strategic))
	for _, w := range remaining {
		if _, ok := seen[w]; !ok {
			seen[w] = struct{}{}
			pool = append(pool, w)
		}
	}
	for _, w := range strategic {
		if _, ok := seen[w]; !ok {
			seen[w] = struct{}{}
			pool = append(pool, w)
		}
	}

	if cfg.CandidateCap > 0 && len(pool) > cfg.CandidateCap {
		pool = pool[:cfg.CandidateCap]
	}
	return pool
}

// scorePool evaluates each candidate in pool and returns the winner
// (spec.md §4.5 steps 3-5).
func scorePool(pool, remaining []string, cfg config.SolverConfig) string {
	remainingSet := make(map[string]struct{}, len(remaining))
	for _, w := range remaining {
		remainingSet[w] = struct{}{}
	}

	statWeight := cfg.StatisticalWeight()

	var best string
	bestScore := -1.0
	evaluated := 0

	for _, candidate := range pool {
		if evaluated >= hardCandidateCap {
			break
		}
		evaluated++

		e := entropy.Entropy(candidate, remaining)

		var score float64
		score = config.EntropyWeight*e + bonusFor(candidate, remainingSet)
		if !cfg.EntropyOnlyScoring {
			score += statWeight * entropy.StatisticalScore(candidate, remaining)
		}

		if score > bestScore {
			bestScore = score
			best = candidate
		}

		if cfg.EarlyTerminationEnabled && e >= cfg.EarlyTerminationThreshold {
			// The current candidate becomes the answer outright: a
			// high enough information gain wins the turn regardless
			// of any narrow score edge a prior candidate held.
			return candidate
		}
	}

	return best
}

// bonusFor returns the prime-suspect bonus: 0.1 if candidate is
// itself a member of remaining, else 0 (spec.md §4.5 step 3).
func bonusFor(candidate string, remainingSet map[string]struct{}) float64 {
	if _, ok := remainingSet[candidate]; ok {
		return 0.1
	}
	return 0
}
