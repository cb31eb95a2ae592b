package config

import "testing"

func TestDefaultMatchesSpec(t *testing.T) {
	cfg := Default()
	if cfg.ReferenceMode != false {
		t.Errorf("ReferenceMode default = %v, want false", cfg.ReferenceMode)
	}
	if cfg.IncludeKillerWords != false {
		t.Errorf("IncludeKillerWords default = %v, want false", cfg.IncludeKillerWords)
	}
	if cfg.CandidateCap != 200 {
		t.Errorf("CandidateCap default = %v, want 200", cfg.CandidateCap)
	}
	if cfg.EarlyTerminationEnabled != true {
		t.Errorf("EarlyTerminationEnabled default = %v, want true", cfg.EarlyTerminationEnabled)
	}
	if cfg.EarlyTerminationThreshold != 5.0 {
		t.Errorf("EarlyTerminationThreshold default = %v, want 5.0", cfg.EarlyTerminationThreshold)
	}
	if cfg.EntropyOnlyScoring != false {
		t.Errorf("EntropyOnlyScoring default = %v, want false", cfg.EntropyOnlyScoring)
	}
}

func TestStatisticalWeightRespectsEntropyOnlyScoring(t *testing.T) {
	cfg := Default()
	if w := cfg.StatisticalWeight(); w != StatisticalWeightValue {
		t.Errorf("StatisticalWeight() = %v, want %v", w, StatisticalWeightValue)
	}

	cfg.EntropyOnlyScoring = true
	if w := cfg.StatisticalWeight(); w != 0 {
		t.Errorf("StatisticalWeight() with EntropyOnlyScoring = %v, want 0", w)
	}
}

func TestStoreSnapshotIsolatedFromSet(t *testing.T) {
	store := NewStore()
	snap := store.Snapshot()

	store.Set(WithCandidateCap(50))

	if snap.CandidateCap != 200 {
		t.Errorf("earlier snapshot mutated: CandidateCap = %v, want 200", snap.CandidateCap)
	}
	if got := store.Snapshot().CandidateCap; got != 50 {
		t.Errorf("Store.Set did not apply: CandidateCap = %v, want 50", got)
	}
}

func TestStoreSetAppliesMultipleOptions(t *testing.T) {
	store := NewStore()
	store.Set(
		WithIncludeKillerWords(true),
		WithEarlyTerminationEnabled(false),
		WithEarlyTerminationThreshold(3.5),
		WithEntropyOnlyScoring(true),
		WithReferenceMode(true),
	)

	got := store.Snapshot()
	want := SolverConfig{
		ReferenceMode:             true,
		IncludeKillerWords:        true,
		CandidateCap:              200,
		EarlyTerminationEnabled:   false,
		EarlyTerminationThreshold: 3.5,
		EntropyOnlyScoring:        true,
	}
	if got != want {
		t.Errorf("Snapshot() = %+v, want %+v", got, want)
	}
}
