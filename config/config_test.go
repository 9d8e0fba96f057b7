package config

import "testing"

func TestLoadConfigUsesEnvSeed(t *testing.T) {
	t.Setenv("BLOKUS_SEED", "42")
	cfg := LoadConfig()
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
}

func TestLoadConfigFallsBackWhenUnset(t *testing.T) {
	t.Setenv("BLOKUS_SEED", "")
	cfg := LoadConfig()
	if cfg.Seed == 0 {
		t.Errorf("Seed fallback should be time-derived, got 0")
	}
}

func TestLoadConfigFallsBackOnGarbage(t *testing.T) {
	t.Setenv("BLOKUS_SEED", "not-a-number")
	cfg := LoadConfig()
	if cfg.Seed == 0 {
		t.Errorf("Seed fallback should be time-derived, got 0")
	}
}
