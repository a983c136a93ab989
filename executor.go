package wae

import (
	"errors"
	"fmt"
	"io"
	"log"
)

// Executor owns an EventLoop and drives a single root computation, resuming
// it in lock-step with the events dispatched to the registered windows.
//
// An Executor is not safe for concurrent use: apart from Run itself, its
// methods must be called from window handlers or from the root computation.
type Executor struct {
	loop    EventLoop
	reg     Registry
	logger  *log.Logger
	debug   bool
	running bool
}

// Option configures an Executor.
type Option func(*Executor)

// WithLogger sets the logger the executor reports to. By default nothing is logged.
func WithLogger(l *log.Logger) Option {
	return func(e *Executor) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithDebug logs every dispatched and dropped event.
func WithDebug(debug bool) Option {
	return func(e *Executor) {
		e.debug = debug
	}
}

// New returns an Executor pumping loop.
func New(loop EventLoop, opts ...Option) *Executor {
	e := &Executor{
		loop:   loop,
		logger: log.New(io.Discard, "", 0),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Run runs root until it returns or a window handler fails, pumping the event
// loop in between. It blocks the calling goroutine.
//
// Events of a batch are dispatched in order. The first handler error stops
// the loop at once, no further event is dispatched, and that error is
// returned as is. Otherwise the root result is returned once it completes.
// Either way the loop is told to exit and the root's context is cancelled; a
// root suspended in Wait is released and Run returns once it has exited.
func (e *Executor) Run(root RootFunc) error {
	if root == nil {
		return errors.New("wae: nil root computation")
	}
	if e.running {
		return ErrRunning
	}
	e.running = true
	defer func() { e.running = false }()

	t := newTask(e, root)
	defer t.release()

	if t.poll() {
		e.loop.Exit()
		return t.err
	}

	for {
		batch, err := e.loop.NextBatch(t.ctx)
		if err != nil {
			e.loop.Exit()
			return fmt.Errorf("wae: event loop: %w", err)
		}

		for _, ev := range batch {
			if err := e.dispatch(ev); err != nil {
				e.logger.Printf("handler failed on %T: %v", ev, err)
				e.loop.Exit()
				return err
			}
		}

		if t.poll() {
			e.loop.Exit()
			return t.err
		}
	}
}

func (e *Executor) dispatch(ev Event) error {
	called, err := Dispatch(&e.reg, ev)
	if e.debug {
		if called {
			e.logger.Printf("dispatched %T %+v", ev, ev)
		} else {
			e.logger.Printf("dropped %T %+v", ev, ev)
		}
	}
	return err
}

// CreateWindow opens a native window through the event loop. The window is
// not registered.
func (e *Executor) CreateWindow(attrs WindowAttributes) (NativeWindow, error) {
	return e.loop.CreateWindow(attrs)
}

// Register binds h to its window id so it receives the window's events.
func (e *Executor) Register(h WindowHandler) error {
	return e.reg.Register(h)
}

// Unregister removes the handler bound to id. Windows are never unregistered
// implicitly, not even after a close request.
func (e *Executor) Unregister(id WindowID) {
	e.reg.Unregister(id)
}

// Lookup returns the handler bound to id.
func (e *Executor) Lookup(id WindowID) (WindowHandler, bool) {
	return e.reg.Lookup(id)
}

// Windows returns the ids of the registered windows.
func (e *Executor) Windows() []WindowID {
	return e.reg.IDs()
}
