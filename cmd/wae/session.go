package main

import (
	"context"
	"fmt"
	"log"

	"github.com/obhq/wae"
	"github.com/obhq/wae/utils"
)

// window is the handler of one demo window. It signals the session when the
// window is asked to close and closes itself on Escape.
type window struct {
	wae.NopHandler

	native wae.NativeWindow
	name   string
	logger *log.Logger
	closed wae.Signal[struct{}]
	size   wae.PhysicalSize[uint32]
}

func (w *window) ID() wae.WindowID {
	return w.native.ID()
}

func (w *window) OnCloseRequested() error {
	// Repeated close requests before the session picks up the first one are
	// of no interest.
	_ = w.closed.Set(struct{}{})
	return nil
}

func (w *window) OnResized(size wae.PhysicalSize[uint32]) error {
	w.size = size
	return nil
}

func (w *window) OnKeyboardInput(_ wae.DeviceID, ev wae.KeyEvent, _ bool) error {
	if ev.State == wae.Pressed && ev.Logical == "Escape" {
		w.native.Close()
	}
	return nil
}

func (w *window) OnDroppedFile(path string) error {
	w.logger.Printf("%s: dropped %s", w.name, path)
	return nil
}

// session opens the configured windows and waits for each of them to be
// closed, unregistering them as it goes.
func session(ctx context.Context, cfg config, logger *log.Logger) error {
	wins := make([]*window, 0, cfg.windows)
	for i := 0; i < cfg.windows; i++ {
		attrs := wae.DefaultWindowAttributes()
		attrs.Title = cfg.title
		if cfg.windows > 1 {
			attrs.Title = fmt.Sprintf("%s #%d", cfg.title, i+1)
		}
		attrs.Size = cfg.size
		attrs.Resizable = cfg.resizable
		attrs.Background = cfg.background

		nw, err := wae.CreateWindow(ctx, attrs)
		if err != nil {
			return fmt.Errorf("unable to create window: %w", err)
		}
		w := &window{native: nw, name: attrs.Title, logger: logger}
		if err := wae.RegisterWindow(ctx, w); err != nil {
			return err
		}
		wins = append(wins, w)
	}

	if cfg.spinner != nil {
		cfg.spinner.Start()
	}

	for i, w := range wins {
		if _, err := w.closed.Wait(ctx); err != nil {
			return err
		}
		if err := wae.UnregisterWindow(ctx, w.ID()); err != nil {
			return err
		}
		if cfg.spinner != nil {
			left := len(wins) - i - 1
			cfg.spinner.SetMessage(fmt.Sprintf("%s %s",
				utils.DecorateText("⚡ WAE", utils.StatusMessage),
				utils.DecorateText(fmt.Sprintf("⇢ %d window(s) left...", left), utils.DefaultMessage),
			))
		}
	}
	return nil
}
