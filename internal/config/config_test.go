package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.ScorerTimeout != 10*time.Second {
		t.Errorf("ScorerTimeout = %v, want 10s", cfg.ScorerTimeout)
	}
	if cfg.StorageBackend != "memory" {
		t.Errorf("StorageBackend = %q, want memory", cfg.StorageBackend)
	}
	if cfg.ModelVersion != "v1" {
		t.Errorf("ModelVersion = %q, want v1", cfg.ModelVersion)
	}
	if cfg.UseLLMClassifier {
		t.Error("UseLLMClassifier should default to false")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BEACON_PORT", "9999")
	t.Setenv("BEACON_SCORER_URL", "http://scorer:5000")
	t.Setenv("BEACON_SCORER_TIMEOUT", "2s")
	t.Setenv("BEACON_USE_LLM_CLASSIFIER", "true")

	cfg := Load()

	if cfg.Port != "9999" {
		t.Errorf("Port = %q, want 9999", cfg.Port)
	}
	if cfg.ScorerBaseURL != "http://scorer:5000" {
		t.Errorf("ScorerBaseURL = %q", cfg.ScorerBaseURL)
	}
	if cfg.ScorerTimeout != 2*time.Second {
		t.Errorf("ScorerTimeout = %v, want 2s", cfg.ScorerTimeout)
	}
	if !cfg.UseLLMClassifier {
		t.Error("UseLLMClassifier should be true")
	}
}

func TestInvalidDurationFallsBack(t *testing.T) {
	t.Setenv("BEACON_SCORER_TIMEOUT", "not-a-duration")

	cfg := Load()
	if cfg.ScorerTimeout != 10*time.Second {
		t.Errorf("ScorerTimeout = %v, want the 10s default", cfg.ScorerTimeout)
	}
}
