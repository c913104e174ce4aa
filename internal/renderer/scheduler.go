package renderer

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"
)

// FrameID identifies a scheduled frame callback.
type FrameID uint64

// Scheduler runs a callback once, just before the host's next repaint.
type Scheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

// frameQueue holds callbacks waiting for the next frame.
type frameQueue struct {
	mu      sync.Mutex
	next    FrameID
	pending map[FrameID]func()
}

func (q *frameQueue) RequestFrame(fn func()) FrameID {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.pending == nil {
		q.pending = make(map[FrameID]func())
	}
	q.next++
	q.pending[q.next] = fn
	return q.next
}

func (q *frameQueue) CancelFrame(id FrameID) {
	q.mu.Lock()
	delete(q.pending, id)
	q.mu.Unlock()
}

// take removes and returns everything scheduled so far. Callbacks requested
// while these run land in the following frame.
func (q *frameQueue) take() []func() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return nil
	}
	fns := make([]func(), 0, len(q.pending))
	for _, id := range slices.Sorted(maps.Keys(q.pending)) {
		fns = append(fns, q.pending[id])
	}
	clear(q.pending)
	return fns
}

// Pending reports how many callbacks are waiting.
func (q *frameQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// ManualScheduler runs frames only when Step is called. The ebiten host
// steps it from Update.
type ManualScheduler struct {
	frameQueue
}

// Step runs every pending callback and returns how many ran.
func (m *ManualScheduler) Step() int {
	fns := m.take()
	for _, fn := range fns {
		fn()
	}
	return len(fns)
}

// TickerScheduler fires pending callbacks on a fixed-rate ticker until its
// context is cancelled or Close is called.
type TickerScheduler struct {
	frameQueue
	cancel context.CancelFunc
	done   chan struct{}
}

// NewTickerScheduler starts the ticker goroutine at fps frames per second.
func NewTickerScheduler(ctx context.Context, fps int) *TickerScheduler {
	if fps <= 0 {
		fps = 60
	}
	ctx, cancel := context.WithCancel(ctx)
	s := &TickerScheduler{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(time.Second / time.Duration(fps))
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				for _, fn := range s.take() {
					fn()
				}
			}
		}
	}()
	return s
}

// Close stops the ticker and waits for an in-flight frame to finish.
func (s *TickerScheduler) Close() {
	s.cancel()
	<-s.done
}
