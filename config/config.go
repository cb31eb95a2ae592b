// Package config holds the process-wide SolverConfig that gates
// solver.BestGuess's candidate pool and scoring (spec.md §4.7, §6).
package config

import "sync"

// SolverConfig mirrors spec.md §6's field table exactly.
type SolverConfig struct {
	ReferenceMode             bool
	IncludeKillerWords        bool
	CandidateCap              int
	EarlyTerminationEnabled   bool
	EarlyTerminationThreshold float64
	EntropyOnlyScoring        bool
}

// Default returns the spec.md §6 default configuration.
func Default() SolverConfig {
	return SolverConfig{
		ReferenceMode:             false,
		IncludeKillerWords:        false,
		CandidateCap:              200,
		EarlyTerminationEnabled:   true,
		EarlyTerminationThreshold: 5.0,
		EntropyOnlyScoring:        false,
	}
}

// EntropyWeight and StatisticalWeightValue are the fixed scoring weights
// from spec.md §4.5 step 3. They are not user-configurable fields;
// EntropyOnlyScoring forces StatisticalWeight to 0 at read time.
const (
	EntropyWeight          = 1.0
	StatisticalWeightValue = 0.0
)

// StatisticalWeight returns the effective statistical-score weight
// for cfg: 0 whenever EntropyOnlyScoring is set, the fixed default
// otherwise.
func (cfg SolverConfig) StatisticalWeight() float64 {
	if cfg.EntropyOnlyScoring {
		return 0
	}
	return StatisticalWeightValue
}

// Option mutates a SolverConfig; used with Store.Set.
type Option func(*SolverConfig)

func WithReferenceMode(v bool) Option         { return func(c *SolverConfig) { c.ReferenceMode = v } }
func WithIncludeKillerWords(v bool) Option    { return func(c *SolverConfig) { c.IncludeKillerWords = v } }
func WithCandidateCap(v int) Option           { return func(c *SolverConfig) { c.CandidateCap = v } }
func WithEntropyOnlyScoring(v bool) Option    { return func(c *SolverConfig) { c.EntropyOnlyScoring = v } }

func WithEarlyTerminationEnabled(v bool) Option {
	return func(c *SolverConfig) { c.EarlyTerminationEnabled = v }
}

func WithEarlyTerminationThreshold(v float64) Option {
	return func(c *SolverConfig) { c.EarlyTerminationThreshold = v }
}

// Store is the process-wide, mutex-guarded SolverConfig container.
// Callers must Snapshot once per invocation and use that snapshot
// throughout, rather than re-reading the store mid-call (spec.md §5).
type Store struct {
	mu  sync.RWMutex
	cfg SolverConfig
}

// NewStore returns a Store seeded with Default().
func NewStore() *Store {
	return &Store{cfg: Default()}
}

// Snapshot returns a copy of the current configuration.
func (s *Store) Snapshot() SolverConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Set applies opts to the stored configuration under a write lock.
func (s *Store) Set(opts ...Option) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, opt := range opts {
		opt(&s.cfg)
	}
}
