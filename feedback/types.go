// Package feedback holds the colored per-position markers a guess
// receives against a hidden target, and the (guess, pattern) pairs
// that accumulate into a game's history.
package feedback

import "strings"

// Marker is the three-way feedback color for a single letter
// position.
type Marker int

const (
	// Gray means the letter is not present at that position, once
	// any Green/Yellow matches for that letter have been accounted
	// for.
	Gray Marker = iota
	// Yellow means the letter is present in the target at a
	// different position.
	Yellow
	// Green means the letter is correct and in the correct
	// position.
	Green
)

// String renders a Marker as its compact single-character token.
func (m Marker) String() string {
	switch m {
	case Green:
		return "G"
	case Yellow:
		return "Y"
	default:
		return "X"
	}
}

// decodeMarker maps a token to a Marker. Unknown tokens decode to
// Gray, per spec: decoding is lenient.
func decodeMarker(token string) Marker {
	switch strings.ToUpper(strings.TrimSpace(token)) {
	case "G", "GREEN":
		return Green
	case "Y", "YELLOW":
		return Yellow
	case "X", "GRAY", "GREY":
		return Gray
	default:
		return Gray
	}
}

// Pattern is the ordered 5-marker feedback produced by simulating a
// guess against a target.
type Pattern [5]Marker

// String renders a Pattern as its compact 5-character token string,
// e.g. "GGXYX".
func (p Pattern) String() string {
	var b strings.Builder
	b.Grow(5)
	for _, m := range p {
		b.WriteString(m.String())
	}
	return b.String()
}

// DecodePattern decodes exactly five tokens into a Pattern. It
// returns false if tokens does not have exactly five elements;
// individual unknown tokens decode leniently to Gray rather than
// failing (spec.md §4.1/§7).
func DecodePattern(tokens []string) (Pattern, bool) {
	if len(tokens) != 5 {
		return Pattern{}, false
	}
	var p Pattern
	for i, tok := range tokens {
		p[i] = decodeMarker(tok)
	}
	return p, true
}

// GuessRecord pairs a guessed word with the Pattern it produced (or
// would produce) when evaluated against a target.
type GuessRecord struct {
	Word    string
	Pattern Pattern
}

// GuessHistory is an ordered sequence of GuessRecords. Order is kept
// for display only: the filtering semantics in package constraints
// treat a history as the unordered conjunction of its records.
type GuessHistory []GuessRecord
