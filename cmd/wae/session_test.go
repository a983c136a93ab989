package main

import (
	"bytes"
	"context"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/obhq/wae"
	"github.com/obhq/wae/headless"
)

func TestSession_ShouldWaitForEveryWindow(t *testing.T) {
	loop := headless.New()
	exec := wae.New(loop)
	cfg := config{
		title:   "demo",
		size:    wae.Size[uint32](320, 240),
		windows: 2,
	}

	// Windows are closed in reverse order of creation.
	loop.Push(wae.CloseRequestedEvent{Window: 2})
	loop.Push(wae.CloseRequestedEvent{Window: 1})

	err := exec.Run(func(ctx context.Context) error {
		return session(ctx, cfg, log.New(io.Discard, "", 0))
	})
	if err != nil {
		t.Fatalf("session returned %v", err)
	}
	if ids := exec.Windows(); len(ids) != 0 {
		t.Errorf("All windows should be unregistered, got %v", ids)
	}

	wins := loop.Windows()
	if len(wins) != 2 {
		t.Fatalf("Expected 2 windows, got %d", len(wins))
	}
	for i, want := range []string{"demo #1", "demo #2"} {
		if got := wins[i].Attrs.Title; got != want {
			t.Errorf("Window title expected to be %q. Got %q", want, got)
		}
		if got := wins[i].Attrs.Size; got != cfg.size {
			t.Errorf("Window size expected to be %v. Got %v", cfg.size, got)
		}
	}
}

func TestSession_ShouldKeepSingleTitle(t *testing.T) {
	loop := headless.New()
	loop.Push(wae.CloseRequestedEvent{Window: 1})

	err := wae.New(loop).Run(func(ctx context.Context) error {
		return session(ctx, config{title: "solo", size: wae.Size[uint32](10, 10), windows: 1}, log.New(io.Discard, "", 0))
	})
	if err != nil {
		t.Fatalf("session returned %v", err)
	}
	if got := loop.Windows()[0].Attrs.Title; got != "solo" {
		t.Errorf("Window title expected to be %q. Got %q", "solo", got)
	}
}

func TestWindow_ShouldCloseOnEscape(t *testing.T) {
	loop := headless.New()
	nw, err := loop.CreateWindow(wae.DefaultWindowAttributes())
	if err != nil {
		t.Fatalf("could not create window: %v", err)
	}
	w := &window{native: nw, name: "test"}

	w.OnKeyboardInput(0, wae.KeyEvent{Logical: "a", State: wae.Pressed}, false)
	w.OnKeyboardInput(0, wae.KeyEvent{Logical: "Escape", State: wae.Released}, false)
	if loop.Windows()[0].Closed() {
		t.Fatal("Only an Escape press should close the window")
	}

	w.OnKeyboardInput(0, wae.KeyEvent{Logical: "Escape", State: wae.Pressed}, false)
	if !loop.Windows()[0].Closed() {
		t.Error("Escape should close the window")
	}
}

func TestWindow_ShouldLogDroppedFiles(t *testing.T) {
	var buf bytes.Buffer
	w := &window{name: "main", logger: log.New(&buf, "", 0)}
	if err := w.OnDroppedFile("/tmp/cat.png"); err != nil {
		t.Fatalf("OnDroppedFile returned %v", err)
	}
	if !strings.Contains(buf.String(), "main: dropped /tmp/cat.png") {
		t.Errorf("Unexpected log output %q", buf.String())
	}
}
