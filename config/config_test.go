package config

import (
	"flag"
	"io"
	"strings"
	"testing"
	"time"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("pokedex-typer", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.APIBaseURL != "https://pokeapi.co/api/v2" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.BaseCount != 3 || cfg.StartLevel != 1 {
		t.Errorf("BaseCount/StartLevel = %d/%d, want 3/1", cfg.BaseCount, cfg.StartLevel)
	}
	if cfg.CaptureDelay != 250*time.Millisecond || cfg.MaxFrameDelta != 50*time.Millisecond {
		t.Errorf("CaptureDelay/MaxFrameDelta = %v/%v", cfg.CaptureDelay, cfg.MaxFrameDelta)
	}
	if cfg.CacheTTL != 24*time.Hour || cfg.CacheSize != 100 {
		t.Errorf("Cache = %v/%d", cfg.CacheTTL, cfg.CacheSize)
	}
	if cfg.TickInterval() != time.Second/60 {
		t.Errorf("TickInterval = %v", cfg.TickInterval())
	}
}

func TestLoadEnvThenFlags(t *testing.T) {
	t.Setenv("POKEDEX_START_LEVEL", "4")
	t.Setenv("POKEDEX_SEED", "99")
	t.Setenv("POKEDEX_BASE_SPEED", "7.5")

	cfg, err := Load(newFlagSet(), []string{"-level", "6", "-mute"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.StartLevel != 6 {
		t.Errorf("Flag should override env level, got %d", cfg.StartLevel)
	}
	if cfg.Seed != 99 || cfg.BaseSpeed != 7.5 {
		t.Errorf("Env values lost: seed=%d speed=%g", cfg.Seed, cfg.BaseSpeed)
	}
	if !cfg.Mute {
		t.Error("Expected -mute to set Mute")
	}
}

func TestLoadEnvError(t *testing.T) {
	t.Setenv("POKEDEX_TICK_RATE", "fast")

	_, err := Load(newFlagSet(), nil)
	if err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env error, got %v", err)
	}
}

func TestLoadUnknownFlag(t *testing.T) {
	if _, err := Load(newFlagSet(), []string{"-bogus"}); err == nil {
		t.Fatal("expected flag error")
	}
}

func TestValidate(t *testing.T) {
	base, err := Load(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero base count", func(c *Config) { c.BaseCount = 0 }, "base count"},
		{"negative speed", func(c *Config) { c.BaseSpeed = -1 }, "base speed"},
		{"zero radius", func(c *Config) { c.HeroRadius = 0 }, "hero radius"},
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }, "tick rate"},
		{"level zero", func(c *Config) { c.StartLevel = 0 }, "start level"},
		{"loud", func(c *Config) { c.Volume = 2 }, "volume"},
		{"no api", func(c *Config) { c.APIBaseURL = "" }, "api base url"},
		{"negative slope", func(c *Config) { c.SpeedPerLevel = -0.1 }, "speed per level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}

	if err := base.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestResolveSeed(t *testing.T) {
	fixed := Config{Seed: 42}
	if s, err := fixed.ResolveSeed(); err != nil || s != 42 {
		t.Errorf("ResolveSeed = %d, %v; want 42", s, err)
	}

	a, errA := Config{}.ResolveSeed()
	b, errB := Config{}.ResolveSeed()
	if errA != nil || errB != nil {
		t.Fatalf("seed errors: %v %v", errA, errB)
	}
	if a == b {
		t.Error("Two random seeds should differ")
	}
}
