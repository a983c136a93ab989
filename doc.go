/*
Package wae is a small async executor tailored for windowing applications. It
runs a single root task on top of a native event loop and routes window events
to handlers registered by that task.

The root task talks to the executor through its context. It creates native
windows, registers a WindowHandler for each of them and suspends on a Signal
until a handler raises it. Only one logical thread runs at any time, so neither
the handlers nor the root task need any locking.

The package comes with two event loops: giobackend, which drives real windows,
and headless, which is fed by hand and is meant for tests.

Here is a simple example opening a window and waiting for it to be closed:

	package main

	import (
		"context"
		"log"
		"os"

		"github.com/obhq/wae"
		"github.com/obhq/wae/giobackend"
	)

	type window struct {
		wae.NopHandler
		native wae.NativeWindow
		closed wae.Signal[struct{}]
	}

	func (w *window) ID() wae.WindowID { return w.native.ID() }

	func (w *window) OnCloseRequested() error {
		_ = w.closed.Set(struct{}{})
		return nil
	}

	func main() {
		exec := wae.New(giobackend.New())
		go func() {
			err := exec.Run(func(ctx context.Context) error {
				nw, err := wae.CreateWindow(ctx, wae.DefaultWindowAttributes())
				if err != nil {
					return err
				}
				w := &window{native: nw}
				if err := wae.RegisterWindow(ctx, w); err != nil {
					return err
				}
				_, err = w.closed.Wait(ctx)
				return err
			})
			if err != nil {
				log.Fatal(err)
			}
			os.Exit(0)
		}()
		giobackend.Main()
	}
*/
package wae
