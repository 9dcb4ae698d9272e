package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}

	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("Redis.Addr = %q, want %q", cfg.Redis.Addr, "localhost:6379")
	}
	if cfg.Formation.TeamSize != 4 {
		t.Errorf("Formation.TeamSize = %d, want 4", cfg.Formation.TeamSize)
	}
	if cfg.Formation.DefaultRole != "Developer" {
		t.Errorf("Formation.DefaultRole = %q, want %q", cfg.Formation.DefaultRole, "Developer")
	}
	if cfg.Dispatch.BatchSize != 3 {
		t.Errorf("Dispatch.BatchSize = %d, want 3", cfg.Dispatch.BatchSize)
	}
	if cfg.Certificate.Width != 1200 || cfg.Certificate.Height != 850 {
		t.Errorf("Certificate = %dx%d, want 1200x850", cfg.Certificate.Width, cfg.Certificate.Height)
	}
}

func TestDurationHelpers(t *testing.T) {
	d := DispatchConfig{InterBatchDelayMs: 2000, UnitTimeoutSeconds: 30}

	if got := d.InterBatchDelay(); got != 2*time.Second {
		t.Errorf("InterBatchDelay() = %v, want 2s", got)
	}
	if got := d.UnitTimeout(); got != 30*time.Second {
		t.Errorf("UnitTimeout() = %v, want 30s", got)
	}
}

func TestLoadUsesDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	SetDefaults()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Default()
	if cfg.Redis.Addr != want.Redis.Addr {
		t.Errorf("Redis.Addr = %q, want %q", cfg.Redis.Addr, want.Redis.Addr)
	}
	if cfg.Dispatch.InterBatchDelayMs != want.Dispatch.InterBatchDelayMs {
		t.Errorf("Dispatch.InterBatchDelayMs = %d, want %d", cfg.Dispatch.InterBatchDelayMs, want.Dispatch.InterBatchDelayMs)
	}
	if cfg.SMTP.Port != want.SMTP.Port {
		t.Errorf("SMTP.Port = %d, want %d", cfg.SMTP.Port, want.SMTP.Port)
	}
}

func TestLoadOverride(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	SetDefaults()
	viper.Set("dispatch.batch_size", 5)
	viper.Set("formation.team_size", 6)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Dispatch.BatchSize != 5 {
		t.Errorf("Dispatch.BatchSize = %d, want 5", cfg.Dispatch.BatchSize)
	}
	if cfg.Formation.TeamSize != 6 {
		t.Errorf("Formation.TeamSize = %d, want 6", cfg.Formation.TeamSize)
	}
}
