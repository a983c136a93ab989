package wae

import (
	"context"
	"image"
)

// EventLoop is the native toolkit an Executor pumps. Backends live in the
// giobackend and headless packages.
type EventLoop interface {
	// NextBatch blocks until at least one event is available and returns the
	// events in arrival order.
	NextBatch(ctx context.Context) ([]Event, error)

	// CreateWindow opens a native window.
	CreateWindow(attrs WindowAttributes) (NativeWindow, error)

	// Exit stops the native loop and closes its windows.
	Exit()
}

// NativeWindow is a window created by an EventLoop.
type NativeWindow interface {
	Window

	// RequestRedraw asks the toolkit to deliver a RedrawRequestedEvent.
	RequestRedraw()

	// Close destroys the native window.
	Close()
}

// WindowAttributes configures a window at creation.
type WindowAttributes struct {
	Title string
	// Size is the inner size. The zero size leaves the choice to the toolkit.
	Size PhysicalSize[uint32]
	// Position is nil to let the platform place the window.
	Position  *PhysicalPosition[int32]
	Resizable bool
	Decorated bool
	// Background is painted behind the window content, scaled to fit.
	Background image.Image
}

// DefaultWindowAttributes returns the attributes of a plain resizable,
// decorated window.
func DefaultWindowAttributes() WindowAttributes {
	return WindowAttributes{
		Title:     "wae window",
		Size:      Size[uint32](800, 600),
		Resizable: true,
		Decorated: true,
	}
}
