// Package giobackend drives native windows through Gio.
//
// Gio needs the main goroutine, so the executor runs on another one:
//
//	loop := giobackend.New()
//	go func() {
//		err := wae.New(loop).Run(root)
//		...
//		os.Exit(0)
//	}()
//	giobackend.Main()
package giobackend

import (
	"context"
	"errors"
	"sync"

	"gioui.org/app"
	"gioui.org/io/system"

	"github.com/obhq/wae"
)

// DefaultMaxBatch is the largest batch NextBatch returns by default.
const DefaultMaxBatch = 64

// ErrClosed is returned by the loop after Exit.
var ErrClosed = errors.New("giobackend: loop closed")

// Loop is a wae.EventLoop backed by Gio windows. Every window pumps its Gio
// event channel on its own goroutine; translated events are fanned into a
// single channel in arrival order.
type Loop struct {
	// MaxBatch caps the number of events returned by one NextBatch call.
	MaxBatch int

	events chan wae.Event
	done   chan struct{}
	once   sync.Once

	mu      sync.Mutex
	nextID  wae.WindowID
	windows map[wae.WindowID]*Window
}

// New returns a Loop with no windows.
func New() *Loop {
	return &Loop{
		MaxBatch: DefaultMaxBatch,
		events:   make(chan wae.Event, 256),
		done:     make(chan struct{}),
		nextID:   1,
		windows:  map[wae.WindowID]*Window{},
	}
}

// Main hands the calling goroutine, which must be the main one, to Gio.
// It never returns.
func Main() {
	app.Main()
}

// NextBatch blocks for one event then drains whatever else is already queued,
// up to MaxBatch events.
func (l *Loop) NextBatch(ctx context.Context) ([]wae.Event, error) {
	max := l.MaxBatch
	if max <= 0 {
		max = DefaultMaxBatch
	}

	var batch []wae.Event
	select {
	case ev := <-l.events:
		batch = append(batch, ev)
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-l.done:
		return nil, ErrClosed
	}

	for len(batch) < max {
		select {
		case ev := <-l.events:
			batch = append(batch, ev)
		default:
			return batch, nil
		}
	}
	return batch, nil
}

// CreateWindow opens a Gio window and starts pumping its events.
func (l *Loop) CreateWindow(attrs wae.WindowAttributes) (wae.NativeWindow, error) {
	select {
	case <-l.done:
		return nil, ErrClosed
	default:
	}

	l.mu.Lock()
	id := l.nextID
	l.nextID++
	w := newWindow(l, id, attrs)
	l.windows[id] = w
	l.mu.Unlock()

	go w.run()
	return w, nil
}

// Exit closes every window and stops NextBatch.
func (l *Loop) Exit() {
	l.once.Do(func() {
		close(l.done)

		l.mu.Lock()
		defer l.mu.Unlock()
		for _, w := range l.windows {
			w.win.Perform(system.ActionClose)
		}
	})
}

// emit queues ev unless the loop is closed.
func (l *Loop) emit(ev wae.Event) {
	select {
	case l.events <- ev:
	case <-l.done:
	}
}

func (l *Loop) forget(id wae.WindowID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.windows, id)
}
