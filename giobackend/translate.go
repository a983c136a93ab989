package giobackend

import (
	"image"

	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/io/system"
	"gioui.org/unit"

	"github.com/obhq/wae"
	"github.com/obhq/wae/utils"
)

// Gio has no device ids; events are told apart by source.
const (
	mouseDevice wae.DeviceID = iota
	touchDevice
	keyboardDevice
)

// translator turns Gio events of one window into wae events. It keeps the
// state needed to report changes, which Gio delivers as snapshots.
type translator struct {
	id      wae.WindowID
	size    image.Point
	scale   float32
	mods    wae.Modifiers
	buttons pointer.Buttons
	stage   system.Stage
	staged  bool
}

// frame reports size and scale changes carried by a frame.
func (t *translator) frame(size image.Point, m unit.Metric) []wae.Event {
	var evs []wae.Event
	if size != t.size {
		t.size = size
		evs = append(evs, wae.ResizedEvent{Window: t.id, Size: physicalSize(size)})
	}
	if m.PxPerDp != t.scale {
		first := t.scale == 0
		t.scale = m.PxPerDp
		if !first {
			evs = append(evs, wae.ScaleFactorChangedEvent{
				Window:      t.id,
				ScaleFactor: float64(m.PxPerDp),
				SizeWriter:  wae.NewInnerSizeWriter(physicalSize(size)),
			})
		}
	}
	return evs
}

func (t *translator) stageChange(s system.Stage) []wae.Event {
	prev, known := t.stage, t.staged
	t.stage, t.staged = s, true
	if known && prev == s {
		return nil
	}

	var evs []wae.Event
	switch s {
	case system.StagePaused:
		evs = append(evs, wae.OccludedEvent{Window: t.id, Occluded: true})
	case system.StageInactive:
		if known && prev == system.StagePaused {
			evs = append(evs, wae.OccludedEvent{Window: t.id, Occluded: false})
		}
		evs = append(evs, wae.FocusedEvent{Window: t.id, Gained: false})
	case system.StageRunning:
		if known && prev == system.StagePaused {
			evs = append(evs, wae.OccludedEvent{Window: t.id, Occluded: false})
		}
		evs = append(evs, wae.FocusedEvent{Window: t.id, Gained: true})
	}
	return evs
}

func (t *translator) key(e key.Event) []wae.Event {
	evs := t.modifiers(e.Modifiers)
	state := wae.Released
	if e.State == key.Press {
		state = wae.Pressed
	}
	name := string(e.Name)
	ke := wae.KeyEvent{
		Logical: wae.Key(name),
		State:   state,
	}
	if len([]rune(name)) == 1 && !e.Modifiers.Contain(key.ModCtrl) {
		ke.Text = name
	}
	return append(evs, wae.KeyboardInputEvent{Window: t.id, Device: keyboardDevice, Key: ke})
}

func (t *translator) edit(e key.EditEvent) []wae.Event {
	if e.Text == "" {
		return nil
	}
	return []wae.Event{wae.ImeEvent{Window: t.id, Ime: wae.Ime{Kind: wae.ImeCommit, Text: e.Text}}}
}

func (t *translator) pointer(e pointer.Event) []wae.Event {
	evs := t.modifiers(e.Modifiers)
	pos := wae.Pos(float64(e.Position.X), float64(e.Position.Y))

	if e.Source == pointer.Touch {
		phase, ok := touchPhase(e.Type)
		if !ok {
			return evs
		}
		return append(evs, wae.TouchEvent{Window: t.id, Touch: wae.Touch{
			Device:   touchDevice,
			Phase:    phase,
			Location: pos,
			ID:       uint64(e.PointerID),
		}})
	}

	switch e.Type {
	case pointer.Enter:
		evs = append(evs, wae.CursorEnteredEvent{Window: t.id, Device: mouseDevice})
	case pointer.Leave:
		evs = append(evs, wae.CursorLeftEvent{Window: t.id, Device: mouseDevice})
	case pointer.Move, pointer.Drag:
		evs = append(evs, wae.CursorMovedEvent{Window: t.id, Device: mouseDevice, Position: pos})
	case pointer.Press:
		pressed := e.Buttons &^ t.buttons
		t.buttons |= pressed
		for _, b := range mouseButtons(pressed) {
			evs = append(evs, wae.MouseInputEvent{Window: t.id, Device: mouseDevice, State: wae.Pressed, Button: b})
		}
	case pointer.Release:
		// Gio reports either the buttons still held or the one released.
		released := t.buttons &^ e.Buttons
		if released == 0 {
			released = t.buttons & e.Buttons
		}
		t.buttons &^= released
		for _, b := range mouseButtons(released) {
			evs = append(evs, wae.MouseInputEvent{Window: t.id, Device: mouseDevice, State: wae.Released, Button: b})
		}
	case pointer.Scroll:
		evs = append(evs, wae.MouseWheelEvent{
			Window: t.id,
			Device: mouseDevice,
			Delta:  wae.PixelDelta(float64(-e.Scroll.X), float64(-e.Scroll.Y)),
			Phase:  wae.TouchMoved,
		})
	case pointer.Cancel:
		t.buttons = 0
	}
	return evs
}

func (t *translator) modifiers(m key.Modifiers) []wae.Event {
	mods := modifiers(m)
	if mods == t.mods {
		return nil
	}
	t.mods = mods
	return []wae.Event{wae.ModifiersChangedEvent{Window: t.id, Modifiers: mods}}
}

func modifiers(m key.Modifiers) wae.Modifiers {
	var mods wae.Modifiers
	if m.Contain(key.ModShift) {
		mods |= wae.ModShift
	}
	if m.Contain(key.ModCtrl) {
		mods |= wae.ModCtrl
	}
	if m.Contain(key.ModAlt) {
		mods |= wae.ModAlt
	}
	if m.Contain(key.ModSuper) || m.Contain(key.ModCommand) {
		mods |= wae.ModSuper
	}
	return mods
}

func mouseButtons(b pointer.Buttons) []wae.MouseButton {
	var bs []wae.MouseButton
	if b.Contain(pointer.ButtonPrimary) {
		bs = append(bs, wae.LeftButton)
	}
	if b.Contain(pointer.ButtonSecondary) {
		bs = append(bs, wae.RightButton)
	}
	if b.Contain(pointer.ButtonTertiary) {
		bs = append(bs, wae.MiddleButton)
	}
	return bs
}

func touchPhase(t pointer.Type) (wae.TouchPhase, bool) {
	switch t {
	case pointer.Press:
		return wae.TouchStarted, true
	case pointer.Move, pointer.Drag:
		return wae.TouchMoved, true
	case pointer.Release:
		return wae.TouchEnded, true
	case pointer.Cancel:
		return wae.TouchCancelled, true
	}
	return 0, false
}

func physicalSize(p image.Point) wae.PhysicalSize[uint32] {
	return wae.Size(uint32(utils.Max(p.X, 0)), uint32(utils.Max(p.Y, 0)))
}
