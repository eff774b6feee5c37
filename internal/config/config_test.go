// Package config - Configuration tests
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Addr != ":8501" {
		t.Errorf("default addr = %s, want :8501", cfg.Server.Addr)
	}
	if cfg.Pricing.BoundsMode != "clamp" {
		t.Errorf("default bounds mode = %s, want clamp", cfg.Pricing.BoundsMode)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"server": {"addr": ":9000"}, "output": {"default_format": "json"}}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("addr = %s, want :9000", cfg.Server.Addr)
	}
	if cfg.Output.DefaultFormat != "json" {
		t.Errorf("format = %s, want json", cfg.Output.DefaultFormat)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("CABINET_ADDR", ":7777")
	t.Setenv("CABINET_BOUNDS_MODE", "strict")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Addr != ":7777" {
		t.Errorf("addr = %s, want env override :7777", cfg.Server.Addr)
	}
	if cfg.Pricing.BoundsMode != "strict" {
		t.Errorf("bounds mode = %s, want env override strict", cfg.Pricing.BoundsMode)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := Default()
	cfg.Server.Addr = ":1234"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Server.Addr != ":1234" {
		t.Errorf("round-tripped addr = %s, want :1234", loaded.Server.Addr)
	}
}
