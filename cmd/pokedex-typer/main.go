// Command pokedex-typer is a terminal typing game: Pokémon close in on you from
// the board edges and you catch them by typing their names.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/g4stlyx/pokedex/audio"
	"github.com/g4stlyx/pokedex/config"
	"github.com/g4stlyx/pokedex/core"
	"github.com/g4stlyx/pokedex/director"
	"github.com/g4stlyx/pokedex/engine"
	"github.com/g4stlyx/pokedex/pokeapi"
	"github.com/g4stlyx/pokedex/render"
	"github.com/g4stlyx/pokedex/status"
	"github.com/g4stlyx/pokedex/systems"
)

func main() {
	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "pokedex-typer: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "pokedex-typer: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	seed, err := cfg.ResolveSeed()
	if err != nil {
		return err
	}
	log.Printf("seed %d", seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	// Crashes on any goroutine restore the terminal first
	core.RegisterTerminal(screen)
	defer core.RegisterTerminal(nil)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	reg := status.NewRegistry()
	surfaceOpts := []render.TerminalOption{render.WithClock(engine.NewMonotonicTimeProvider())}
	if cfg.Debug {
		surfaceOpts = append(surfaceOpts, render.WithMetrics(reg))
	}
	surface := render.NewTerminalSurface(screen, surfaceOpts...)

	client := pokeapi.NewClient(cfg.APIBaseURL,
		pokeapi.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}),
		pokeapi.WithCache(pokeapi.NewCache(cfg.CacheTTL, cfg.CacheSize)),
		pokeapi.WithRand(rand.New(rand.NewSource(seed))),
		pokeapi.WithMaxOffset(cfg.ListMaxOffset),
		pokeapi.WithConcurrency(cfg.FetchConcurrency),
	)

	audioCfg := audio.DefaultAudioConfig()
	audioCfg.Enabled = !cfg.Mute
	audioCfg.MasterVolume = cfg.Volume
	sound := audio.NewSoundManager(audioCfg)
	if err := sound.Initialize(); err != nil {
		// Non-fatal, the game runs silent
		log.Printf("audio initialization failed: %v", err)
	}
	defer sound.Cleanup()

	scheduler := engine.NewFrameScheduler(cfg.TickInterval())
	scheduler.Start()
	defer scheduler.Stop()

	queue := engine.NewPostQueue(16)
	defer queue.Close()

	session := engine.NewSession(surface.BoardSize(), cfg.HeroRadius)
	d := director.New(director.Config{
		BaseCount:    cfg.BaseCount,
		CaptureDelay: cfg.CaptureDelay,
		Motion: systems.MotionConfig{
			BaseSpeed:     cfg.BaseSpeed,
			SpeedPerLevel: cfg.SpeedPerLevel,
			EnemyRadius:   cfg.EnemyRadius,
			MaxFrameDelta: cfg.MaxFrameDelta,
		},
	}, session, client, surface, scheduler, queue.Post,
		director.WithSounder(sound),
		director.WithRand(rand.New(rand.NewSource(seed+1))),
		director.WithMetrics(reg),
	)

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	})
	defer close(quit)

	d.StartLevel(cfg.StartLevel)

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				d.Resize(surface.BoardSize())
			case *tcell.EventKey:
				if !handleKey(d, ev) {
					log.Printf("quit: %s", d)
					return nil
				}
			}

		case fn := <-queue.C():
			fn()

		case now := <-scheduler.Ticks():
			scheduler.Fire(now)
			surface.Draw(now)
		}
	}
}
