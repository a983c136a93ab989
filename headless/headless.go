// Package headless implements a scripted, in-memory event loop. Tests and
// tools use it in place of a native toolkit: events are queued in batches
// with Push and handed to the executor in the same order.
package headless

import (
	"context"
	"errors"

	"github.com/obhq/wae"
)

// ErrDrained is returned by NextBatch when no batch is queued. A real
// toolkit would block; a script that runs out of events can't make progress.
var ErrDrained = errors.New("headless: no more events")

// ErrExited is returned once Exit was called.
var ErrExited = errors.New("headless: loop exited")

// Loop is a headless wae.EventLoop. It is not safe for concurrent use, which
// matches how the executor drives it.
type Loop struct {
	batches [][]wae.Event
	windows []*Window
	nextID  wae.WindowID
	exited  bool
	pulled  int
}

// New returns an empty Loop.
func New() *Loop {
	return &Loop{nextID: 1}
}

// Push queues evs as one batch. Empty calls are ignored.
func (l *Loop) Push(evs ...wae.Event) {
	if len(evs) == 0 {
		return
	}
	l.batches = append(l.batches, evs)
}

// NextBatch pops the oldest queued batch.
func (l *Loop) NextBatch(ctx context.Context) ([]wae.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if l.exited {
		return nil, ErrExited
	}
	if len(l.batches) == 0 {
		return nil, ErrDrained
	}
	b := l.batches[0]
	l.batches = l.batches[1:]
	l.pulled++
	return b, nil
}

// CreateWindow allocates the next window id, starting at 1.
func (l *Loop) CreateWindow(attrs wae.WindowAttributes) (wae.NativeWindow, error) {
	if l.exited {
		return nil, ErrExited
	}
	w := &Window{loop: l, id: l.nextID, Attrs: attrs}
	l.nextID++
	l.windows = append(l.windows, w)
	return w, nil
}

// Exit marks the loop as exited and closes its windows.
func (l *Loop) Exit() {
	l.exited = true
	for _, w := range l.windows {
		w.closed = true
	}
}

// Exited reports whether Exit was called.
func (l *Loop) Exited() bool {
	return l.exited
}

// Pending returns the number of queued batches.
func (l *Loop) Pending() int {
	return len(l.batches)
}

// Pulled returns the number of batches handed out by NextBatch.
func (l *Loop) Pulled() int {
	return l.pulled
}

// Windows returns the windows created so far.
func (l *Loop) Windows() []*Window {
	return l.windows
}

// Window is a headless window.
type Window struct {
	loop   *Loop
	id     wae.WindowID
	closed bool
	Attrs  wae.WindowAttributes
}

func (w *Window) ID() wae.WindowID {
	return w.id
}

// RequestRedraw queues a RedrawRequestedEvent batch for the window.
func (w *Window) RequestRedraw() {
	if w.closed {
		return
	}
	w.loop.Push(wae.RedrawRequestedEvent{Window: w.id})
}

func (w *Window) Close() {
	w.closed = true
}

// Closed reports whether the window was closed.
func (w *Window) Closed() bool {
	return w.closed
}
