package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseConfig(t *testing.T) {
	td := t.TempDir()
	cfg := DefaultConfig()
	cfg.DataPath = td
	if err := cfg.WriteConfig(); err != nil {
		t.Fatal(err)
	}
	if err := cfg.ParseFile(); err != nil {
		t.Errorf("ParseFile() => %v, want nil error", err)
	}
}

func TestParseEnvOverride(t *testing.T) {
	td := t.TempDir()
	t.Setenv("HACKDECK_NAME", "Test Hackdeck")
	t.Setenv("HACKDECK_HTTP_LISTEN_ADDR", ":9090")
	t.Setenv("HACKDECK_JOBS_LIFECYCLE_SWEEP", "@every 30s")
	cfg := DefaultConfig()
	cfg.DataPath = td
	if err := cfg.ParseEnv(); err != nil {
		t.Fatal(err)
	}
	if cfg.Name != "Test Hackdeck" {
		t.Errorf("cfg.Name => %q, want %q", cfg.Name, "Test Hackdeck")
	}
	if cfg.HTTP.ListenAddr != ":9090" {
		t.Errorf("cfg.HTTP.ListenAddr => %q, want %q", cfg.HTTP.ListenAddr, ":9090")
	}
	if cfg.Jobs.LifecycleSweep != "@every 30s" {
		t.Errorf("cfg.Jobs.LifecycleSweep => %q, want %q", cfg.Jobs.LifecycleSweep, "@every 30s")
	}
}

func TestValidateMissingDriver(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DB.Driver = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() => nil, want error")
	}
}

func TestWriteConfigCreatesFile(t *testing.T) {
	td := t.TempDir()
	cfg := DefaultConfig()
	cfg.DataPath = td
	if err := cfg.WriteConfig(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(td, "config.yaml")); err != nil {
		t.Errorf("config file not written: %v", err)
	}
}
