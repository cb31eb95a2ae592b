package feedback

import (
	"fmt"
	"strings"
)

// Simulate computes the Pattern that results from guessing guess
// against target. Both must be exactly five letters; callers that
// need validation should check that before calling (Simulate itself
// assumes fixed-width 5-letter inputs, matching Pattern/Word's fixed
// size elsewhere in this module).
//
// The algorithm is two-pass with consumption: Greens are resolved
// first and consume their target position so a later Yellow pass
// can't reuse it, then Yellows consume the first unclaimed matching
// occurrence left in the target. This is what makes repeated letters
// behave correctly (spec.md §4.2).
func Simulate(guess, target string) Pattern {
	var pattern Pattern
	var buf [5]byte
	copy(buf[:], target)

	const consumed = 0

	for i := 0; i < 5; i++ {
		if guess[i] == buf[i] {
			pattern[i] = Green
			buf[i] = consumed
		}
	}

	for i := 0; i < 5; i++ {
		if pattern[i] == Green {
			continue
		}
		for j := 0; j < 5; j++ {
			if buf[j] == guess[i] {
				pattern[i] = Yellow
				buf[j] = consumed
				break
			}
		}
	}

	return pattern
}

// SimulatePattern is the validated external-interface entry point for
// simulate_pattern (spec.md §6): it rejects malformed input instead of
// indexing out of range, then returns the compact token-string result
// of Simulate. Internal callers that already hold known-good 5-letter
// words (entropy.Entropy, bench.SimulateGame) call Simulate directly
// and skip the validation cost.
func SimulatePattern(guess, target string) (string, error) {
	if err := validateWord(guess); err != nil {
		return "", fmt.Errorf("guess: %w", err)
	}
	if err := validateWord(target); err != nil {
		return "", fmt.Errorf("target: %w", err)
	}
	return Simulate(guess, target).String(), nil
}

// validateWord reports an error unless w is exactly five alphabetic
// characters, per spec.md §7's "reject, don't panic" rule.
func validateWord(w string) error {
	if len(w) != 5 {
		return fmt.Errorf("word %q must be exactly 5 letters, got %d", w, len(w))
	}
	if strings.IndexFunc(w, func(r rune) bool {
		return !(r >= 'A' && r <= 'Z') && !(r >= 'a' && r <= 'z')
	}) != -1 {
		return fmt.Errorf("word %q must contain only letters", w)
	}
	return nil
}
