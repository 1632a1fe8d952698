package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultGranularity(t *testing.T) {
	cfg := Default()
	if cfg.Granularity != DefaultGranularity {
		t.Errorf("Granularity = %d, want %d", cfg.Granularity, DefaultGranularity)
	}
	if cfg.NavDir != "nav" || cfg.ResultsDir != "results" || cfg.CachesDir != "data/caches" {
		t.Errorf("unexpected default layout: %+v", cfg)
	}
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("granularity: 50\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Granularity != 50 {
		t.Errorf("Granularity = %d, want 50", cfg.Granularity)
	}
	if cfg.NavDir != "nav" {
		t.Errorf("NavDir = %q, want default %q", cfg.NavDir, "nav")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err == nil {
		t.Error("expected an error loading a missing config file")
	}
}
