package giobackend

import (
	"image"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/io/system"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"github.com/disintegration/imaging"

	"github.com/obhq/wae"
)

const pointerTypes = pointer.Press | pointer.Release | pointer.Move | pointer.Drag |
	pointer.Enter | pointer.Leave | pointer.Scroll | pointer.Cancel

// Window is a Gio window pumped by a Loop.
type Window struct {
	id   wae.WindowID
	loop *Loop
	win  *app.Window

	// owned by the run goroutine
	tr  translator
	ops op.Ops
	bg  struct {
		src    image.Image
		fitted image.Image
		size   image.Point
	}
}

func newWindow(l *Loop, id wae.WindowID, attrs wae.WindowAttributes) *Window {
	w := &Window{
		id:   id,
		loop: l,
		win:  app.NewWindow(options(attrs)...),
		tr:   translator{id: id},
	}
	w.bg.src = attrs.Background
	return w
}

// options maps window attributes to Gio options. Gio sizes windows in Dp and
// can't place them, so Position is ignored.
func options(attrs wae.WindowAttributes) []app.Option {
	opts := []app.Option{
		app.Title(attrs.Title),
		app.Decorated(attrs.Decorated),
	}
	if !attrs.Size.Empty() {
		w, h := unit.Dp(attrs.Size.Width), unit.Dp(attrs.Size.Height)
		opts = append(opts, app.Size(w, h))
		if !attrs.Resizable {
			opts = append(opts, app.MinSize(w, h), app.MaxSize(w, h))
		}
	}
	return opts
}

func (w *Window) ID() wae.WindowID {
	return w.id
}

// RequestRedraw schedules a new frame, reported as a RedrawRequestedEvent.
func (w *Window) RequestRedraw() {
	w.win.Invalidate()
}

func (w *Window) Close() {
	w.win.Perform(system.ActionClose)
}

// run pumps the Gio events of the window until it is destroyed.
func (w *Window) run() {
	defer w.loop.forget(w.id)

	for e := range w.win.Events() {
		switch e := e.(type) {
		case system.FrameEvent:
			w.frame(e)
		case system.StageEvent:
			w.emit(w.tr.stageChange(e.Stage))
		case key.Event:
			w.emit(w.tr.key(e))
		case system.DestroyEvent:
			// Gio has no separate close request: the window is already gone.
			w.emit([]wae.Event{wae.CloseRequestedEvent{Window: w.id}})
			return
		}
	}
}

// frame reports the changes carried by e and the input queued since the last
// frame, then asks for a redraw and lays out the input area for the next one.
// Size requests made through the ScaleFactorChangedEvent writer are not
// applied: Gio picks the window size itself.
func (w *Window) frame(e system.FrameEvent) {
	w.emit(w.tr.frame(e.Size, e.Metric))

	for _, ev := range e.Queue.Events(w) {
		switch ev := ev.(type) {
		case pointer.Event:
			w.emit(w.tr.pointer(ev))
		case key.Event:
			w.emit(w.tr.key(ev))
		case key.EditEvent:
			w.emit(w.tr.edit(ev))
		}
	}
	w.emit([]wae.Event{wae.RedrawRequestedEvent{Window: w.id}})

	w.ops.Reset()
	w.paintBackground(e.Size)

	area := clip.Rect{Max: e.Size}.Push(&w.ops)
	pointer.InputOp{
		Tag:   w,
		Types: pointerTypes,
		ScrollBounds: image.Rectangle{
			Min: image.Pt(-1<<16, -1<<16),
			Max: image.Pt(1<<16, 1<<16),
		},
	}.Add(&w.ops)
	key.InputOp{Tag: w}.Add(&w.ops)
	key.FocusOp{Tag: w}.Add(&w.ops)
	area.Pop()

	e.Frame(&w.ops)
}

// paintBackground draws the background image centered and scaled to fit size.
// The scaled copy is cached until the size changes.
func (w *Window) paintBackground(size image.Point) {
	if w.bg.src == nil || size.X <= 0 || size.Y <= 0 {
		return
	}
	if w.bg.fitted == nil || w.bg.size != size {
		w.bg.fitted = imaging.Fit(w.bg.src, size.X, size.Y, imaging.Lanczos)
		w.bg.size = size
	}

	b := w.bg.fitted.Bounds()
	off := image.Pt((size.X-b.Dx())/2, (size.Y-b.Dy())/2)
	defer op.Offset(off).Push(&w.ops).Pop()

	paint.NewImageOp(w.bg.fitted).Add(&w.ops)
	paint.PaintOp{}.Add(&w.ops)
}

func (w *Window) emit(evs []wae.Event) {
	for _, ev := range evs {
		w.loop.emit(ev)
	}
}
