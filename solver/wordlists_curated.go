package solver

// Curated word data. These lists are normative, not derived: they are
// reproduced verbatim from the reference solver's strategic word
// tables rather than computed, per spec.md §6/§9 ("curated word lists
// are normative data, not code").

// KillerWords is the short curated list used when
// config.SolverConfig.IncludeKillerWords is true. Every entry is a
// high-information opener or known strategic elimination word, kept
// in the pool even when it cannot itself be the answer.
var KillerWords = []string{
	"SLATE", "CRANE", "TRACE", "SLANT", "CRATE", "CARTE", "LEAST", "STARE",
	"TARES", "RAISE", "ARISE", "SOARE", "ADIEU", "AUDIO", "ROATE",
	"OUIJA", "AUREI", "OURIE", "PSYCH", "GLYPH", "VOMIT", "JUMBO", "ZEBRA",
}

// ExtendedStrategicWords is the larger curated list used when
// IncludeKillerWords is false: KillerWords plus additional tiers of
// strategic words. Ordering affects tie-breaking in the candidate
// pool and, when the pool is truncated to CandidateCap or scoring
// stops at the 100-candidate bound, which of these words are scored.
var ExtendedStrategicWords = append(append([]string{}, KillerWords...),
	// Consonant-heavy second-guess narrowers.
	"ROUND", "MONEY", "TRUNK", "PLUMB", "FJORD", "CHUNK", "BRISK", "FLING", "GIRTH",
	// Common-cluster eliminators.
	"CLOUD", "CHORE", "NIGHT", "SHYLY", "FUZZY", "WHINY", "GIPSY", "WALTZ", "QUICK",
	// Underused-letter probes.
	"NYMPH", "CRYPT", "JIFFY", "FUNKY", "DIZZY", "BUDGE", "CHAMP", "FROWN", "GRASP",
	// Endgame narrowers.
	"THORN", "PRIDE", "CLOMP", "SKIMP", "WHISK", "BLITZ", "CRISP", "FLOCK", "DRAFT",
)
