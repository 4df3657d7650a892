package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// TickHandle identifies a scheduled frame callback
// The zero handle is never issued and cancelling it is a no-op
type TickHandle uint64

// TickFunc receives the frame timestamp
type TickFunc func(now time.Time)

// Scheduler is the animation-frame facility
// ScheduleTick registers a one-shot callback for the next frame; Cancel is idempotent
type Scheduler interface {
	ScheduleTick(fn TickFunc) TickHandle
	Cancel(h TickHandle)
}

// FrameScheduler runs one-shot frame callbacks on a fixed tick
// Callbacks registered during a frame run on the following frame
// Fire must be called from the game goroutine; the ticker only paces it
type FrameScheduler struct {
	tickInterval time.Duration

	nextHandle TickHandle
	pending    map[TickHandle]TickFunc
	order      []TickHandle

	frameCount atomic.Uint64

	// Ticker control
	ticker  *time.Ticker
	mu      sync.Mutex
	running atomic.Bool
}

// NewFrameScheduler creates a scheduler pacing frames at tickInterval
func NewFrameScheduler(tickInterval time.Duration) *FrameScheduler {
	return &FrameScheduler{
		tickInterval: tickInterval,
		pending:      make(map[TickHandle]TickFunc),
	}
}

// ScheduleTick registers fn for the next frame
func (fs *FrameScheduler) ScheduleTick(fn TickFunc) TickHandle {
	fs.nextHandle++
	h := fs.nextHandle
	fs.pending[h] = fn
	fs.order = append(fs.order, h)
	return h
}

// Cancel removes a pending callback; unknown or fired handles are ignored
func (fs *FrameScheduler) Cancel(h TickHandle) {
	delete(fs.pending, h)
}

// Pending returns the number of callbacks waiting for the next frame
func (fs *FrameScheduler) Pending() int {
	return len(fs.pending)
}

// Fire runs every callback registered before this call, in registration order
func (fs *FrameScheduler) Fire(now time.Time) {
	fs.frameCount.Add(1)

	due := fs.order
	fs.order = nil
	for _, h := range due {
		fn, ok := fs.pending[h]
		if !ok {
			// Cancelled before firing
			continue
		}
		delete(fs.pending, h)
		fn(now)
	}
}

// FrameCount returns the number of frames fired
func (fs *FrameScheduler) FrameCount() uint64 {
	return fs.frameCount.Load()
}

// Start begins pacing; frames are delivered on Ticks
func (fs *FrameScheduler) Start() {
	if fs.running.CompareAndSwap(false, true) {
		fs.mu.Lock()
		fs.ticker = time.NewTicker(fs.tickInterval)
		fs.mu.Unlock()
	}
}

// Ticks returns the pacing channel, nil before Start
func (fs *FrameScheduler) Ticks() <-chan time.Time {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if fs.ticker == nil {
		return nil
	}
	return fs.ticker.C
}

// Stop halts pacing; a no-op unless started, so Start/Stop may repeat
func (fs *FrameScheduler) Stop() {
	if fs.running.CompareAndSwap(true, false) {
		fs.mu.Lock()
		fs.ticker.Stop()
		fs.mu.Unlock()
	}
}
