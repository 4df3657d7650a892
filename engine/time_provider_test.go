package engine

import (
	"sync"
	"testing"
	"time"
)

var (
	_ TimeProvider = (*MonotonicTimeProvider)(nil)
	_ TimeProvider = (*ManualClock)(nil)
)

func TestMonotonicTimeProviderMovesForward(t *testing.T) {
	p := NewMonotonicTimeProvider()
	a := p.Now()
	time.Sleep(2 * time.Millisecond)
	if b := p.Now(); !b.After(a) {
		t.Errorf("Second reading %v not after %v", b, a)
	}
}

func TestManualClockAdvance(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewManualClock(start)

	if !c.Now().Equal(start) {
		t.Fatalf("Now = %v, want start", c.Now())
	}
	for i := 1; i <= 3; i++ {
		got := c.Advance(16 * time.Millisecond)
		want := start.Add(time.Duration(i) * 16 * time.Millisecond)
		if !got.Equal(want) || !c.Now().Equal(want) {
			t.Errorf("Frame %d: Advance=%v Now=%v, want %v", i, got, c.Now(), want)
		}
	}
}

func TestManualClockConcurrentAdvance(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewManualClock(start)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				c.Advance(time.Millisecond)
				_ = c.Now()
			}
		}()
	}
	wg.Wait()

	if want := start.Add(200 * time.Millisecond); !c.Now().Equal(want) {
		t.Errorf("Now = %v, want %v", c.Now(), want)
	}
}
