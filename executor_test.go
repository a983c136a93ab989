package wae_test

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/obhq/wae"
	"github.com/obhq/wae/headless"
)

// myWindow mirrors a typical application window: a native window plus a
// signal raised on close request.
type myWindow struct {
	wae.NopHandler
	win            wae.NativeWindow
	closeRequested wae.Signal[struct{}]

	resizeErr error
	closes    int
	redraws   int
	resizes   int
}

func (w *myWindow) ID() wae.WindowID { return w.win.ID() }

func (w *myWindow) OnCloseRequested() error {
	w.closes++
	_ = w.closeRequested.Set(struct{}{})
	return nil
}

func (w *myWindow) OnResized(wae.PhysicalSize[uint32]) error {
	w.resizes++
	return w.resizeErr
}

func (w *myWindow) OnRedrawRequested() error {
	w.redraws++
	return nil
}

func TestExecutor_ShouldCompleteOnCloseRequest(t *testing.T) {
	loop := headless.New()
	exec := wae.New(loop)

	var (
		win     *myWindow
		resumed int
	)
	err := exec.Run(func(ctx context.Context) error {
		nw, err := wae.CreateWindow(ctx, wae.DefaultWindowAttributes())
		if err != nil {
			return err
		}
		win = &myWindow{win: nw}
		if err := wae.RegisterWindow(ctx, win); err != nil {
			return err
		}
		loop.Push(wae.CloseRequestedEvent{Window: nw.ID()})

		if _, err := win.closeRequested.Wait(ctx); err != nil {
			return err
		}
		resumed++
		return nil
	})
	if err != nil {
		t.Fatalf("Run() returned %v", err)
	}
	if win.closes != 1 {
		t.Errorf("Expected exactly one close request dispatch, got %d", win.closes)
	}
	if resumed != 1 {
		t.Errorf("Expected exactly one resumption, got %d", resumed)
	}
	if loop.Pulled() != 1 {
		t.Errorf("Expected a single batch to be pumped, got %d", loop.Pulled())
	}
	if !loop.Exited() {
		t.Error("The event loop should be told to exit")
	}
}

func TestExecutor_ShouldFailFastOnHandlerError(t *testing.T) {
	loop := headless.New()
	exec := wae.New(loop)
	errResize := errors.New("resize failed")

	var win *myWindow
	err := exec.Run(func(ctx context.Context) error {
		nw, err := wae.CreateWindow(ctx, wae.DefaultWindowAttributes())
		if err != nil {
			return err
		}
		win = &myWindow{win: nw, resizeErr: errResize}
		if err := wae.RegisterWindow(ctx, win); err != nil {
			return err
		}
		loop.Push(
			wae.ResizedEvent{Window: nw.ID(), Size: wae.Size[uint32](10, 10)},
			wae.RedrawRequestedEvent{Window: nw.ID()},
		)
		loop.Push(wae.CloseRequestedEvent{Window: nw.ID()})

		_, err = win.closeRequested.Wait(ctx)
		return err
	})
	if err != errResize {
		t.Fatalf("Run() expected to return %v, got %v", errResize, err)
	}
	if win.resizes != 1 {
		t.Errorf("Expected one resize dispatch, got %d", win.resizes)
	}
	if win.redraws != 0 || win.closes != 0 {
		t.Errorf("No event should be dispatched after the failure, got %d redraws and %d closes", win.redraws, win.closes)
	}
	if loop.Pending() != 1 {
		t.Errorf("The next batch should not be pumped, %d pending", loop.Pending())
	}
	if !loop.Exited() {
		t.Error("The event loop should be told to exit")
	}
}

func TestExecutor_ShouldSkipUnregisteredWindows(t *testing.T) {
	loop := headless.New()
	exec := wae.New(loop)

	err := exec.Run(func(ctx context.Context) error {
		nw, err := wae.CreateWindow(ctx, wae.DefaultWindowAttributes())
		if err != nil {
			return err
		}
		win := &myWindow{win: nw}
		if err := wae.RegisterWindow(ctx, win); err != nil {
			return err
		}
		loop.Push(
			wae.ResizedEvent{Window: 99},
			wae.ResumedEvent{},
			wae.CloseRequestedEvent{Window: nw.ID()},
		)
		_, err = win.closeRequested.Wait(ctx)
		return err
	})
	if err != nil {
		t.Fatalf("Run() returned %v", err)
	}
}

func TestExecutor_ShouldUnregisterExplicitly(t *testing.T) {
	loop := headless.New()
	exec := wae.New(loop)

	var first, second *myWindow
	err := exec.Run(func(ctx context.Context) error {
		for _, w := range []**myWindow{&first, &second} {
			nw, err := wae.CreateWindow(ctx, wae.DefaultWindowAttributes())
			if err != nil {
				return err
			}
			*w = &myWindow{win: nw}
			if err := wae.RegisterWindow(ctx, *w); err != nil {
				return err
			}
		}

		loop.Push(wae.CloseRequestedEvent{Window: first.ID()})
		if _, err := first.closeRequested.Wait(ctx); err != nil {
			return err
		}
		if _, ok := exec.Lookup(first.ID()); !ok {
			t.Error("A close request should not unregister the window")
		}
		if err := wae.UnregisterWindow(ctx, first.ID()); err != nil {
			return err
		}

		// Nobody listens to the first window anymore: these are dropped.
		first.win.RequestRedraw()
		loop.Push(wae.CloseRequestedEvent{Window: first.ID()})
		loop.Push(wae.CloseRequestedEvent{Window: second.ID()})

		_, err := second.closeRequested.Wait(ctx)
		return err
	})
	if err != nil {
		t.Fatalf("Run() returned %v", err)
	}
	if first.redraws != 0 || first.closes != 1 {
		t.Errorf("Events after unregistration should be dropped, got %d redraws and %d closes", first.redraws, first.closes)
	}
	if loop.Pulled() != 4 {
		t.Errorf("Expected 4 batches to be pumped, got %d", loop.Pulled())
	}
	if got := exec.Windows(); len(got) != 1 || got[0] != second.ID() {
		t.Errorf("Only the second window should remain registered, got %v", got)
	}
}

func TestExecutor_ShouldReturnRootResult(t *testing.T) {
	errRoot := errors.New("root failed")
	err := wae.New(headless.New()).Run(func(ctx context.Context) error {
		return errRoot
	})
	if err != errRoot {
		t.Errorf("Run() expected to return %v, got %v", errRoot, err)
	}
}

func TestExecutor_ShouldRecoverRootPanic(t *testing.T) {
	err := wae.New(headless.New()).Run(func(ctx context.Context) error {
		panic("oops")
	})
	if err == nil || !strings.Contains(err.Error(), "oops") {
		t.Errorf("Run() expected to report the panic, got %v", err)
	}
}

func TestExecutor_ShouldWrapLoopErrors(t *testing.T) {
	err := wae.New(headless.New()).Run(func(ctx context.Context) error {
		var s wae.Signal[struct{}]
		_, err := s.Wait(ctx)
		return err
	})
	if !errors.Is(err, headless.ErrDrained) {
		t.Errorf("Run() expected to wrap ErrDrained, got %v", err)
	}
}

func TestExecutor_ShouldRejectNestedRun(t *testing.T) {
	exec := wae.New(headless.New())
	var nested error
	err := exec.Run(func(ctx context.Context) error {
		nested = exec.Run(func(context.Context) error { return nil })
		return nil
	})
	if err != nil {
		t.Fatalf("Run() returned %v", err)
	}
	if !errors.Is(nested, wae.ErrRunning) {
		t.Errorf("A nested Run expected to fail with ErrRunning, got %v", nested)
	}
}

func TestExecutor_ShouldRejectDuplicateRegistration(t *testing.T) {
	loop := headless.New()
	exec := wae.New(loop)
	err := exec.Run(func(ctx context.Context) error {
		nw, err := wae.CreateWindow(ctx, wae.DefaultWindowAttributes())
		if err != nil {
			return err
		}
		first := &myWindow{win: nw}
		if err := wae.RegisterWindow(ctx, first); err != nil {
			return err
		}
		if err := wae.RegisterWindow(ctx, &myWindow{win: nw}); !errors.Is(err, wae.ErrDuplicateID) {
			t.Errorf("Expected ErrDuplicateID, got %v", err)
		}
		if h, _ := exec.Lookup(nw.ID()); h != wae.WindowHandler(first) {
			t.Error("The first registration should remain in effect")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Run() returned %v", err)
	}
}

func TestExecutor_ShouldLogInDebugMode(t *testing.T) {
	var buf bytes.Buffer
	loop := headless.New()
	exec := wae.New(loop, wae.WithLogger(log.New(&buf, "", 0)), wae.WithDebug(true))
	loop.Push(wae.RedrawRequestedEvent{Window: 5})

	err := exec.Run(func(ctx context.Context) error {
		var s wae.Signal[struct{}]
		_, err := s.Wait(ctx)
		return err
	})
	if !errors.Is(err, headless.ErrDrained) {
		t.Fatalf("Run() expected to drain the loop, got %v", err)
	}
	if !strings.Contains(buf.String(), "dropped wae.RedrawRequestedEvent") {
		t.Errorf("The dropped event should be logged, got %q", buf.String())
	}
}

func TestContextHelpers_ShouldRequireExecutor(t *testing.T) {
	ctx := context.Background()
	if _, ok := wae.FromContext(ctx); ok {
		t.Error("A plain context should not carry an executor")
	}
	if _, err := wae.CreateWindow(ctx, wae.DefaultWindowAttributes()); !errors.Is(err, wae.ErrNoExecutor) {
		t.Errorf("CreateWindow expected to fail with ErrNoExecutor, got %v", err)
	}
	if err := wae.RegisterWindow(ctx, &myWindow{}); !errors.Is(err, wae.ErrNoExecutor) {
		t.Errorf("RegisterWindow expected to fail with ErrNoExecutor, got %v", err)
	}
	if err := wae.UnregisterWindow(ctx, 1); !errors.Is(err, wae.ErrNoExecutor) {
		t.Errorf("UnregisterWindow expected to fail with ErrNoExecutor, got %v", err)
	}
}
