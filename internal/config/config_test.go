package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Motif != "simple" || cfg.Rule != "logic" {
		t.Errorf("got motif %q rule %q, want simple/logic", cfg.Motif, cfg.Rule)
	}
	if cfg.Steps != DefaultSteps || cfg.Dt != DefaultDt {
		t.Errorf("got steps %d dt %f, want %d/%f", cfg.Steps, cfg.Dt, DefaultSteps, DefaultDt)
	}
	if cfg.Pulse.On >= cfg.Pulse.Off || cfg.Pulse.Off > cfg.Steps {
		t.Errorf("default pulse [%d,%d) does not fit %d steps",
			cfg.Pulse.On, cfg.Pulse.Off, cfg.Steps)
	}
	if cfg.Params.Beta != DefaultBeta || cfg.Params.Alpha != DefaultAlpha {
		t.Errorf("got beta %f alpha %f, want defaults", cfg.Params.Beta, cfg.Params.Alpha)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Motif = "iffl"
	cfg.Steps = 500
	cfg.Seed = 42
	cfg.NoiseSigma = 0.2
	cfg.Params.Beta2 = 0.25

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Motif != "iffl" || loaded.Steps != 500 || loaded.Seed != 42 {
		t.Errorf("got %+v, want saved values back", loaded)
	}
	if loaded.NoiseSigma != 0.2 || loaded.Params.Beta2 != 0.25 {
		t.Errorf("got sigma %f beta2 %f, want 0.2/0.25",
			loaded.NoiseSigma, loaded.Params.Beta2)
	}
}

func TestLoadPartialFile(t *testing.T) {
	// Fields missing from the file keep their defaults.
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("motif: cascade\nsteps: 50\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Motif != "cascade" || cfg.Steps != 50 {
		t.Errorf("got motif %q steps %d, want cascade/50", cfg.Motif, cfg.Steps)
	}
	if cfg.Dt != DefaultDt || cfg.Params.K != DefaultK {
		t.Errorf("got dt %f k %f, want defaults kept", cfg.Dt, cfg.Params.K)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("steps: [not a number"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestPresetsWellFormed(t *testing.T) {
	for motif, presets := range Presets {
		for name, cfg := range presets {
			if cfg.Motif != motif {
				t.Errorf("%s/%s declares motif %q", motif, name, cfg.Motif)
			}
			if cfg.Steps <= 0 || cfg.Dt <= 0 {
				t.Errorf("%s/%s has steps %d dt %f", motif, name, cfg.Steps, cfg.Dt)
			}
			if cfg.Pulse.On < 0 || cfg.Pulse.On >= cfg.Pulse.Off || cfg.Pulse.Off > cfg.Steps {
				t.Errorf("%s/%s pulse [%d,%d) does not fit %d steps",
					motif, name, cfg.Pulse.On, cfg.Pulse.Off, cfg.Steps)
			}
		}
	}
}

func TestGetPreset(t *testing.T) {
	if cfg := GetPreset("simple", "noisy"); cfg == nil {
		t.Fatal("simple/noisy preset missing")
	} else if cfg.NoiseSigma != 0.2 || cfg.Seed != 42 {
		t.Errorf("got sigma %f seed %d, want 0.2/42", cfg.NoiseSigma, cfg.Seed)
	}

	if cfg := GetPreset("simple", "bogus"); cfg != nil {
		t.Error("expected nil for unknown preset")
	}
	if cfg := GetPreset("bogus", "step"); cfg != nil {
		t.Error("expected nil for unknown motif")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets("simple")
	if len(names) != 4 {
		t.Errorf("got %d presets for simple, want 4", len(names))
	}
	if names := ListPresets("bogus"); names != nil {
		t.Errorf("got %v for unknown motif, want nil", names)
	}
}
