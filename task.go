package wae

import (
	"context"
	"fmt"
)

// RootFunc is the computation driven by Executor.Run. It suspends by waiting
// on a Signal with the ctx it was given.
type RootFunc func(ctx context.Context) error

// task runs the root computation on its own goroutine, handing control back
// and forth with the executor so only one of them runs at any time.
type task struct {
	exec   *Executor
	root   RootFunc
	ctx    context.Context
	cancel context.CancelFunc

	resume chan struct{} // executor -> root
	yield  chan struct{} // root -> executor
	done   chan struct{} // closed once the root goroutine exits

	// owned by whichever side currently holds control
	started  bool
	running  bool // the root holds control
	woken    bool
	parked   bool
	finished bool
	err      error
}

type taskKey struct{}

func newTask(exec *Executor, root RootFunc) *task {
	t := &task{
		exec:   exec,
		root:   root,
		resume: make(chan struct{}),
		yield:  make(chan struct{}),
		done:   make(chan struct{}),
		woken:  true,
	}
	t.ctx, t.cancel = context.WithCancel(context.WithValue(context.Background(), taskKey{}, t))
	return t
}

func taskFromContext(ctx context.Context) *task {
	if ctx == nil {
		return nil
	}
	t, _ := ctx.Value(taskKey{}).(*task)
	return t
}

// poll lets the root run until it suspends or returns, if it was woken.
// Reports whether the root has finished.
func (t *task) poll() bool {
	if t.finished {
		return true
	}
	if !t.woken {
		return false
	}
	t.woken = false
	if !t.started {
		t.started = true
		go t.main()
	}
	t.running = true
	t.resume <- struct{}{}
	<-t.yield
	t.running = false
	return t.finished
}

func (t *task) wake() {
	t.woken = true
}

// park hands control back to the executor and blocks until resumed.
// Fails with ErrNotRoot when the executor holds control, that is when called
// from a handler.
func (t *task) park() error {
	if err := t.ctx.Err(); err != nil {
		return err
	}
	if !t.running {
		return ErrNotRoot
	}
	t.parked = true
	t.yield <- struct{}{}
	<-t.resume
	t.parked = false
	return t.ctx.Err()
}

// release cancels the root context, unblocks a parked root so it can observe
// the cancellation and waits for the root goroutine to exit. Every further
// Wait of the root fails at once, so it can only block on something outside
// the executor.
func (t *task) release() {
	t.cancel()
	if !t.started {
		return
	}
	if t.parked && !t.finished {
		t.running = true
		t.resume <- struct{}{}
	}
	<-t.done
	t.running = false
}

func (t *task) main() {
	defer close(t.done)
	<-t.resume
	err := t.call()

	select {
	case <-t.ctx.Done():
		// released: the result is dropped
	default:
		t.err = err
		t.finished = true
		t.yield <- struct{}{}
	}
}

func (t *task) call() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("wae: root computation panicked: %v", r)
		}
	}()
	return t.root(t.ctx)
}
