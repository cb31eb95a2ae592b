// Package entropy scores a candidate guess by the Shannon entropy of
// the pattern distribution it induces over a remaining-word set, plus
// a secondary statistical fallback signal (spec.md §4.4).
package entropy

import (
	"math"

	"github.com/lexigon/wordlesolver/feedback"
)

// Entropy returns the expected information gain, in bits, of guessing
// candidate against a uniform prior over remaining. Partitions
// remaining by the pattern candidate would produce against each
// member and computes -Σ p_k·log2(p_k) over the resulting classes.
//
// |remaining| <= 1 returns 0: there is nothing left to distinguish
// (spec.md §4.4, §8 property 7).
func Entropy(candidate string, remaining []string) float64 {
	if len(remaining) <= 1 {
		return 0
	}

	classes := make(map[feedback.Pattern]int, len(remaining))
	for _, target := range remaining {
		classes[feedback.Simulate(candidate, target)]++
	}

	total := float64(len(remaining))
	var h float64
	for _, count := range classes {
		p := float64(count) / total
		h -= p * math.Log2(p)
	}
	return h
}

// StatisticalScore is a 60/40 blend of letter-frequency and
// position-probability signals, used only when the caller mixes it
// into a combined score (config.SolverConfig.StatisticalWeight > 0).
// It is a fallback/blend signal, not a substitute for entropy: it
// ignores the pattern structure entirely and just asks "how common
// are this candidate's letters, in general and at this position,
// among words still in play".
func StatisticalScore(candidate string, remaining []string) float64 {
	if len(remaining) == 0 {
		return 0
	}

	letterFreq := letterFrequency(remaining)
	positionFreq := positionProbability(remaining)

	var freqScore, posScore float64
	for i := 0; i < 5; i++ {
		letter := candidate[i]
		freqScore += letterFreq[letter]
		posScore += positionFreq[i][letter]
	}
	freqScore /= 5
	posScore /= 5

	return freqScore*0.6 + posScore*0.4
}

// letterFrequency returns, per letter, the fraction of words
// containing that letter at least once (not raw occurrence count).
func letterFrequency(words []string) map[byte]float64 {
	counts := make(map[byte]int)
	for _, w := range words {
		seen := [26]bool{}
		for i := 0; i < len(w); i++ {
			idx := w[i] - 'A'
			if idx < 26 && !seen[idx] {
				seen[idx] = true
				counts[w[i]]++
			}
		}
	}
	freq := make(map[byte]float64, len(counts))
	total := float64(len(words))
	for letter, count := range counts {
		freq[letter] = float64(count) / total
	}
	return freq
}

// positionProbability returns, per position and letter, the fraction
// of words with that letter at that position.
func positionProbability(words []string) [5]map[byte]float64 {
	var counts [5]map[byte]int
	for i := range counts {
		counts[i] = make(map[byte]int)
	}
	for _, w := range words {
		for i := 0; i < 5 && i < len(w); i++ {
			counts[i][w[i]]++
		}
	}
	var probs [5]map[byte]float64
	total := float64(len(words))
	for i := range counts {
		probs[i] = make(map[byte]float64, len(counts[i]))
		for letter, count := range counts[i] {
			probs[i][letter] = float64(count) / total
		}
	}
	return probs
}
