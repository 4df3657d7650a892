package engine

import "sync"

// PostQueue hands work from background goroutines to the game goroutine
// Post: any goroutine. C/Drain: game goroutine only
type PostQueue struct {
	ch        chan func()
	done      chan struct{}
	closeOnce sync.Once
}

// NewPostQueue creates a queue buffering up to size callbacks
func NewPostQueue(size int) *PostQueue {
	return &PostQueue{
		ch:   make(chan func(), size),
		done: make(chan struct{}),
	}
}

// Post enqueues fn, blocking while the buffer is full
// Returns false if the queue was closed before fn could be enqueued
func (q *PostQueue) Post(fn func()) bool {
	select {
	case <-q.done:
		return false
	default:
	}

	select {
	case q.ch <- fn:
		return true
	case <-q.done:
		return false
	}
}

// C exposes the queue for select loops
func (q *PostQueue) C() <-chan func() {
	return q.ch
}

// Drain runs every queued callback without blocking and returns how many ran
func (q *PostQueue) Drain() int {
	n := 0
	for {
		select {
		case fn := <-q.ch:
			fn()
			n++
		default:
			return n
		}
	}
}

// Close unblocks pending and future Post calls
func (q *PostQueue) Close() {
	q.closeOnce.Do(func() { close(q.done) })
}
