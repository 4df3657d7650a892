// Package director runs the level lifecycle: fetching creatures, spawning them,
// driving the frame loop and reacting to input, game over and level clear.
package director

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/g4stlyx/pokedex/core"
	"github.com/g4stlyx/pokedex/engine"
	"github.com/g4stlyx/pokedex/pokeapi"
	"github.com/g4stlyx/pokedex/render"
	"github.com/g4stlyx/pokedex/status"
	"github.com/g4stlyx/pokedex/systems"
)

// ErrNoCreatures is reported when both batches of a level yield nothing
var ErrNoCreatures = errors.New("no creatures obtained")

// Provider supplies random creature batches; failed lookups are dropped, not returned
type Provider interface {
	RandomBatch(ctx context.Context, count int) ([]pokeapi.Pokemon, error)
}

// Sounder plays the game's sound cues
type Sounder interface {
	PlayCapture()
	PlayGameOver()
	PlayLevelClear()
}

// Config holds the level director tuning
type Config struct {
	BaseCount    int
	CaptureDelay time.Duration
	Motion       systems.MotionConfig
}

// Director owns the session and is driven entirely from the game goroutine
// Fetches run in the background and hand their result back through post
type Director struct {
	cfg       Config
	session   *engine.Session
	provider  Provider
	surface   render.Surface
	scheduler engine.Scheduler
	motion    *systems.MotionSystem
	input     *systems.InputSystem

	post    func(func()) bool
	spawn   func(func())
	rng     *rand.Rand
	sounder Sounder

	tick        engine.TickHandle
	lastTick    time.Time
	overlay     render.Overlay
	nextEnabled bool
	cancelFetch context.CancelFunc

	// Cached metric pointers
	metrics      *status.Registry
	mFrames      *atomic.Int64
	mGeneration  *atomic.Int64
	mRequested   *atomic.Int64
	mObtained    *atomic.Int64
	mStale       *atomic.Int64
	mCatches     *atomic.Int64
	mPhase       *status.AtomicString
	mFrameMillis *status.AtomicFloat
}

// Option configures a Director
type Option func(*Director)

// WithSounder plays sound cues on capture, game over and level clear
func WithSounder(s Sounder) Option {
	return func(d *Director) { d.sounder = s }
}

// WithRand replaces the spawn position source
func WithRand(rng *rand.Rand) Option {
	return func(d *Director) { d.rng = rng }
}

// WithMetrics publishes counters to reg
func WithMetrics(reg *status.Registry) Option {
	return func(d *Director) { d.metrics = reg }
}

// WithSpawner replaces core.Go for launching fetches
func WithSpawner(spawn func(func())) Option {
	return func(d *Director) { d.spawn = spawn }
}

// New creates a director over session; post must run its argument on the game goroutine
func New(cfg Config, session *engine.Session, provider Provider, surface render.Surface, scheduler engine.Scheduler, post func(func()) bool, opts ...Option) *Director {
	d := &Director{
		cfg:       cfg,
		session:   session,
		provider:  provider,
		surface:   surface,
		scheduler: scheduler,
		motion:    systems.NewMotionSystem(cfg.Motion),
		input:     systems.NewInputSystem(),
		post:      post,
		spawn:     core.Go,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		metrics:   status.NewRegistry(),
	}
	for _, opt := range opts {
		opt(d)
	}

	d.mFrames = d.metrics.Ints.Get(status.KeyFrames)
	d.mGeneration = d.metrics.Ints.Get(status.KeyGeneration)
	d.mRequested = d.metrics.Ints.Get(status.KeyRequested)
	d.mObtained = d.metrics.Ints.Get(status.KeyObtained)
	d.mStale = d.metrics.Ints.Get(status.KeyStale)
	d.mCatches = d.metrics.Ints.Get(status.KeyCatches)
	d.mPhase = d.metrics.Strings.Get(status.KeyPhase)
	d.mFrameMillis = d.metrics.Floats.Get(status.KeyFrameMs)
	d.mPhase.Store(session.Phase.String())

	d.updateHUD()
	d.surface.SetInput("", false)
	return d
}

// Session returns the live session; callers must stay on the game goroutine
func (d *Director) Session() *engine.Session {
	return d.session
}

// Overlay returns the overlay currently shown
func (d *Director) Overlay() render.Overlay {
	return d.overlay
}

// Running reports whether the frame loop is scheduled
func (d *Director) Running() bool {
	return d.tick != 0
}

// StartLevel begins level n; n < 1 restarts the current level
// Any in-flight fetch is superseded and its result discarded
func (d *Director) StartLevel(n int) {
	if n < 1 {
		n = d.session.Level
	}

	d.abortFetch()
	d.stopLoop()

	s := d.session
	s.TransitionPhase(engine.PhaseLoading)
	s.Level = n
	s.CaughtCount = 0
	s.Entities = nil
	s.Input = ""
	s.InputEnabled = false
	s.Generation++
	d.setPhase()

	d.nextEnabled = false
	d.overlay = render.Overlay{}
	d.surface.ClearBoard(true)
	d.surface.SetInput("", false)
	d.updateHUD()

	required := engine.RequiredCount(n, d.cfg.BaseCount)
	gen := s.Generation
	d.mGeneration.Store(int64(gen))
	d.mRequested.Add(int64(required))
	log.Printf("director: level %d needs %d creatures (generation %d)", n, required, gen)

	ctx, cancel := context.WithCancel(context.Background())
	d.cancelFetch = cancel
	d.spawn(func() {
		mons, err := d.fetch(ctx, required)
		d.post(func() { d.applyBatch(gen, mons, err) })
	})
}

// Start restarts the current level
func (d *Director) Start() {
	d.StartLevel(0)
}

// Next advances to the following level; only allowed once the level is cleared or failed to load
func (d *Director) Next() bool {
	if !d.nextEnabled {
		return false
	}
	d.StartLevel(d.session.Level + 1)
	return true
}

// ResetGame returns to level 1, idle, with an empty board
func (d *Director) ResetGame() {
	d.abortFetch()
	d.stopLoop()
	d.session.Reset()
	d.setPhase()
	d.mGeneration.Store(int64(d.session.Generation))

	d.nextEnabled = false
	d.overlay = render.Overlay{}
	d.surface.ClearBoard(false)
	d.surface.SetInput("", false)
	d.updateHUD()
	log.Printf("director: reset")
}

// Act performs an overlay action; returns false if the action is not available now
func (d *Director) Act(a render.Action) bool {
	switch a {
	case render.ActionRetry:
		if !d.session.Phase.Terminal() && d.session.Phase != engine.PhaseIdle {
			return false
		}
		d.Start()
		return true
	case render.ActionNext:
		return d.Next()
	case render.ActionReset:
		d.ResetGame()
		return true
	default:
		return false
	}
}

// Primary performs the overlay's primary action, or starts the level when idle
func (d *Director) Primary() bool {
	if a, ok := d.overlay.Primary(); ok {
		return d.Act(a)
	}
	if d.session.Phase == engine.PhaseIdle {
		d.Start()
		return true
	}
	return false
}

// Resize re-centers the hero on a new board
func (d *Director) Resize(board engine.Size) {
	d.session.Board = board
	d.session.PlaceHero()
	if d.session.Phase == engine.PhaseRunning || (d.session.Phase.Terminal() && len(d.session.Entities) > 0) {
		d.surface.PlaceHero(d.session.Hero)
	}
}

// fetch resolves the creatures of a level; runs off the game goroutine
// A short first batch is topped up by a second one and the result truncated to required
func (d *Director) fetch(ctx context.Context, required int) ([]pokeapi.Pokemon, error) {
	mons, err1 := d.provider.RandomBatch(ctx, required)
	if len(mons) >= required {
		return mons[:required], nil
	}

	more, err2 := d.provider.RandomBatch(ctx, required)
	mons = append(mons, more...)
	mons = mons[:min(len(mons), required)]

	if len(mons) == 0 {
		return nil, errors.Join(ErrNoCreatures, err1, err2)
	}
	return mons, nil
}

// applyBatch seeds the level with a fetch result unless a newer level superseded it
func (d *Director) applyBatch(gen uint64, mons []pokeapi.Pokemon, err error) {
	s := d.session
	if gen != s.Generation || s.Phase != engine.PhaseLoading {
		d.mStale.Add(1)
		log.Printf("director: discarding stale batch (generation %d, current %d)", gen, s.Generation)
		return
	}
	d.abortFetch()

	if err != nil || len(mons) == 0 {
		if err == nil {
			err = ErrNoCreatures
		}
		log.Printf("director: level %d failed to load: %v", s.Level, err)
		s.TransitionPhase(engine.PhaseLoadFailed)
		d.setPhase()
		d.nextEnabled = true
		d.showOverlay(render.Overlay{
			Kind:    render.OverlayLoadFailed,
			Level:   s.Level,
			Actions: []render.Action{render.ActionRetry, render.ActionReset},
		})
		d.updateHUD()
		return
	}

	d.mObtained.Add(int64(len(mons)))
	log.Printf("director: level %d seeded with %d creatures", s.Level, len(mons))

	s.PlaceHero()
	d.surface.PlaceHero(s.Hero)
	for _, p := range mons {
		e := s.NewEntity(p.Name)
		e.SpriteURL = p.SpriteURL
		e.Pos = d.spawnPoint()
		s.Entities = append(s.Entities, e)
		d.surface.AddEntity(e)
	}

	s.Input = ""
	s.InputEnabled = true
	d.surface.SetInput("", true)
	s.TransitionPhase(engine.PhaseRunning)
	d.setPhase()
	d.updateHUD()
	d.startLoop()
}

// spawnPoint picks a uniform edge, then a uniform point along it
func (d *Director) spawnPoint() engine.Vec {
	b := d.session.Board
	switch d.rng.Intn(4) {
	case 0: // Top
		return engine.Vec{X: d.rng.Float64() * b.W, Y: 0}
	case 1: // Right
		return engine.Vec{X: b.W, Y: d.rng.Float64() * b.H}
	case 2: // Bottom
		return engine.Vec{X: d.rng.Float64() * b.W, Y: b.H}
	default: // Left
		return engine.Vec{X: 0, Y: d.rng.Float64() * b.H}
	}
}

func (d *Director) startLoop() {
	d.lastTick = time.Time{}
	d.tick = d.scheduler.ScheduleTick(d.onTick)
}

// stopLoop cancels the pending frame; safe to call any number of times
func (d *Director) stopLoop() {
	if d.tick != 0 {
		d.scheduler.Cancel(d.tick)
		d.tick = 0
	}
}

func (d *Director) abortFetch() {
	if d.cancelFetch != nil {
		d.cancelFetch()
		d.cancelFetch = nil
	}
}

// onTick runs one motion frame; the first frame of a level simulates zero time
func (d *Director) onTick(now time.Time) {
	d.tick = 0

	var dt time.Duration
	if !d.lastTick.IsZero() {
		dt = now.Sub(d.lastTick)
		d.mFrameMillis.Smooth(float64(dt)/float64(time.Millisecond), 0.1)
	}
	d.lastTick = now
	d.mFrames.Add(1)

	res := d.motion.Step(d.session, dt)
	for _, e := range res.Moved {
		d.surface.SetEntityPosition(e.ID, e.Pos)
	}

	switch res.Outcome {
	case systems.OutcomeContinue:
		d.tick = d.scheduler.ScheduleTick(d.onTick)
	case systems.OutcomeGameOver:
		d.gameOver(res.Collider)
	case systems.OutcomeLevelCleared:
		d.levelCleared()
	}
}

func (d *Director) gameOver(collider *engine.Entity) {
	d.stopLoop()
	s := d.session
	s.InputEnabled = false
	d.surface.SetInput(s.Input, false)
	d.setPhase()

	who := "?"
	if collider != nil {
		who = collider.DisplayName
	}
	log.Printf("director: game over at level %d, reached by %s", s.Level, who)

	d.showOverlay(render.Overlay{
		Kind:    render.OverlayGameOver,
		Level:   s.Level,
		Actions: []render.Action{render.ActionRetry, render.ActionReset},
	})
	d.updateHUD()
	if d.sounder != nil {
		d.sounder.PlayGameOver()
	}
}

func (d *Director) levelCleared() {
	d.stopLoop()
	s := d.session
	s.InputEnabled = false
	d.surface.SetInput(s.Input, false)
	d.setPhase()
	d.nextEnabled = true
	log.Printf("director: level %d cleared (%d caught)", s.Level, s.CaughtCount)

	d.showOverlay(render.Overlay{
		Kind:    render.OverlayLevelCleared,
		Level:   s.Level,
		Actions: []render.Action{render.ActionNext},
	})
	d.updateHUD()
	if d.sounder != nil {
		d.sounder.PlayLevelClear()
	}
}

func (d *Director) showOverlay(o render.Overlay) {
	d.overlay = o
	d.surface.ShowOverlay(o)
}

func (d *Director) updateHUD() {
	d.surface.UpdateHUD(render.HUD{
		Level:       d.session.Level,
		Caught:      d.session.CaughtCount,
		Remaining:   d.session.Remaining(),
		NextEnabled: d.nextEnabled,
	})
}

func (d *Director) setPhase() {
	d.mPhase.Store(d.session.Phase.String())
}

// String describes the director state for logs
func (d *Director) String() string {
	s := d.session
	return fmt.Sprintf("level=%d phase=%s caught=%d remaining=%d gen=%d", s.Level, s.Phase, s.CaughtCount, s.Remaining(), s.Generation)
}
