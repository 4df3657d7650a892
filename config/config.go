// Package config loads game settings from POKEDEX_* environment variables and command-line flags.
package config

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every tunable of the game
type Config struct {
	APIBaseURL       string        `env:"POKEDEX_API_URL" envDefault:"https://pokeapi.co/api/v2"`
	RequestTimeout   time.Duration `env:"POKEDEX_REQUEST_TIMEOUT" envDefault:"10s"`
	CacheTTL         time.Duration `env:"POKEDEX_CACHE_TTL" envDefault:"24h"`
	CacheSize        int           `env:"POKEDEX_CACHE_SIZE" envDefault:"100"`
	ListMaxOffset    int           `env:"POKEDEX_LIST_MAX_OFFSET" envDefault:"1200"`
	FetchConcurrency int           `env:"POKEDEX_FETCH_CONCURRENCY" envDefault:"8"`

	BaseCount     int           `env:"POKEDEX_BASE_COUNT" envDefault:"3"`
	BaseSpeed     float64       `env:"POKEDEX_BASE_SPEED" envDefault:"3"`
	SpeedPerLevel float64       `env:"POKEDEX_SPEED_PER_LEVEL" envDefault:"0.5"`
	HeroRadius    float64       `env:"POKEDEX_HERO_RADIUS" envDefault:"2"`
	EnemyRadius   float64       `env:"POKEDEX_ENEMY_RADIUS" envDefault:"2"`
	MaxFrameDelta time.Duration `env:"POKEDEX_MAX_FRAME_DELTA" envDefault:"50ms"`
	TickRate      int           `env:"POKEDEX_TICK_RATE" envDefault:"60"`
	CaptureDelay  time.Duration `env:"POKEDEX_CAPTURE_DELAY" envDefault:"250ms"`
	StartLevel    int           `env:"POKEDEX_START_LEVEL" envDefault:"1"`
	Seed          int64         `env:"POKEDEX_SEED" envDefault:"0"`
	Debug         bool          `env:"POKEDEX_DEBUG" envDefault:"false"`
	Mute          bool          `env:"POKEDEX_MUTE" envDefault:"false"`
	Volume        float64       `env:"POKEDEX_VOLUME" envDefault:"0.6"`
}

// ParseEnv loads configuration from environment variables
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the environment, then lets flags in args override it, then validates
func Load(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.IntVar(&cfg.StartLevel, "level", cfg.StartLevel, "Level to start at")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed for spawns and sampling (0 = random)")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Write logs/pokedex-typer.log and show the metrics line")
	fs.BoolVar(&cfg.Mute, "mute", cfg.Mute, "Disable sound effects")
	fs.StringVar(&cfg.APIBaseURL, "api", cfg.APIBaseURL, "PokeAPI base URL")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// TickInterval returns the frame period derived from TickRate
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// Validate rejects settings the game cannot run with
func (c Config) Validate() error {
	var errs []error
	positiveInt := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}
	positiveFloat := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %g", name, v))
		}
	}
	positiveDuration := func(name string, v time.Duration) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	if c.APIBaseURL == "" {
		errs = append(errs, errors.New("api base url is empty"))
	}
	positiveDuration("request timeout", c.RequestTimeout)
	positiveDuration("cache ttl", c.CacheTTL)
	positiveInt("cache size", c.CacheSize)
	positiveInt("list max offset", c.ListMaxOffset)
	positiveInt("fetch concurrency", c.FetchConcurrency)
	positiveInt("base count", c.BaseCount)
	positiveFloat("base speed", c.BaseSpeed)
	positiveFloat("hero radius", c.HeroRadius)
	positiveFloat("enemy radius", c.EnemyRadius)
	positiveDuration("max frame delta", c.MaxFrameDelta)
	positiveInt("tick rate", c.TickRate)
	positiveInt("start level", c.StartLevel)
	if c.SpeedPerLevel < 0 {
		errs = append(errs, fmt.Errorf("speed per level must not be negative, got %g", c.SpeedPerLevel))
	}
	if c.CaptureDelay < 0 {
		errs = append(errs, fmt.Errorf("capture delay must not be negative, got %v", c.CaptureDelay))
	}
	if c.Volume < 0 || c.Volume > 1 {
		errs = append(errs, fmt.Errorf("volume must be within [0, 1], got %g", c.Volume))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// NewSeed generates a random seed using crypto/rand
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// ResolveSeed returns Seed, or a fresh random seed when Seed is 0
func (c Config) ResolveSeed() (int64, error) {
	if c.Seed != 0 {
		return c.Seed, nil
	}
	return NewSeed()
}
