// Package constraints implements the conjunctive filter that reduces
// a word universe to the subset still consistent with an accumulated
// guess history (spec.md §4.3).
package constraints

import "github.com/lexigon/wordlesolver/feedback"

// Matches reports whether candidate is consistent with a single
// GuessRecord.
//
// Per spec.md §4.3: derive per-letter minimum counts from
// Green/Yellow positions, per-letter caps from Gray positions (the
// letter's Green/Yellow count in the same guess, or zero when it has
// none), banned positions from Yellow, and fixed positions from
// Green. A naive "gray letter must not appear anywhere" rule is
// wrong whenever the guess repeats a letter that the target only
// has once — the cap derivation exists precisely to handle that.
func Matches(candidate string, record feedback.GuessRecord) bool {
	guess := record.Word
	pattern := record.Pattern

	minReq := make(map[byte]int, 5)
	hasGray := make(map[byte]bool, 5)

	for i := 0; i < 5; i++ {
		letter := guess[i]
		switch pattern[i] {
		case feedback.Green, feedback.Yellow:
			minReq[letter]++
		case feedback.Gray:
			hasGray[letter] = true
		}
	}

	for i := 0; i < 5; i++ {
		if pattern[i] == feedback.Green && candidate[i] != guess[i] {
			return false
		}
		if pattern[i] == feedback.Yellow && candidate[i] == guess[i] {
			return false
		}
	}

	counts := make(map[byte]int, 5)
	for i := 0; i < 5; i++ {
		counts[candidate[i]]++
	}

	for letter, need := range minReq {
		if counts[letter] < need {
			return false
		}
	}

	for letter := range hasGray {
		limit := minReq[letter] // 0 if the letter never appeared Green/Yellow
		if counts[letter] > limit {
			return false
		}
	}

	return true
}

// MatchesAll reports whether candidate is consistent with every
// record in history. This is a pure conjunction: order and
// duplicates in history never change the result (spec.md §8
// property 4).
func MatchesAll(candidate string, history feedback.GuessHistory) bool {
	for _, record := range history {
		if !Matches(candidate, record) {
			return false
		}
	}
	return true
}

// Filter returns every word in universe consistent with history,
// preserving universe's order. Filtering is idempotent: re-filtering
// an already-filtered list against the same history changes nothing
// (spec.md §8 property 5).
func Filter(universe []string, history feedback.GuessHistory) []string {
	if len(history) == 0 {
		return universe
	}
	result := make([]string, 0, len(universe))
	for _, word := range universe {
		if MatchesAll(word, history) {
			result = append(result, word)
		}
	}
	return result
}
