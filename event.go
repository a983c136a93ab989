package wae

// Event is the marker interface for everything an EventLoop delivers.
type Event interface {
	ImplementsEvent()
}

// WindowEvent is an Event addressed to a single window.
type WindowEvent interface {
	Event
	Target() WindowID
}

// ResumedEvent is sent when the application is resumed by the platform.
type ResumedEvent struct{}

// SuspendedEvent is sent when the application is suspended by the platform.
type SuspendedEvent struct{}

// MemoryWarningEvent is sent when the platform is low on memory.
type MemoryWarningEvent struct{}

// ActivationTokenDoneEvent reports the token of a completed activation request.
type ActivationTokenDoneEvent struct {
	Window WindowID
	Serial AsyncRequestSerial
	Token  ActivationToken
}

// ResizedEvent reports the new inner size of a window.
type ResizedEvent struct {
	Window WindowID
	Size   PhysicalSize[uint32]
}

// MovedEvent reports the new position of a window.
type MovedEvent struct {
	Window   WindowID
	Position PhysicalPosition[int32]
}

// CloseRequestedEvent is sent when the user asks to close a window.
type CloseRequestedEvent struct {
	Window WindowID
}

// DroppedFileEvent reports a file dropped onto a window.
type DroppedFileEvent struct {
	Window WindowID
	Path   string
}

// HoveredFileEvent reports a file dragged over a window.
type HoveredFileEvent struct {
	Window WindowID
	Path   string
}

// HoveredFileCancelledEvent is sent when a hovered file leaves the window
// without being dropped.
type HoveredFileCancelledEvent struct {
	Window WindowID
}

// FocusedEvent reports a window gaining or losing the keyboard focus.
type FocusedEvent struct {
	Window WindowID
	Gained bool
}

// KeyboardInputEvent reports a key press or release.
type KeyboardInputEvent struct {
	Window    WindowID
	Device    DeviceID
	Key       KeyEvent
	Synthetic bool
}

// ModifiersChangedEvent reports the new state of the modifier keys.
type ModifiersChangedEvent struct {
	Window    WindowID
	Modifiers Modifiers
}

// ImeEvent reports input method activity.
type ImeEvent struct {
	Window WindowID
	Ime    Ime
}

// CursorMovedEvent reports the cursor position within a window.
type CursorMovedEvent struct {
	Window   WindowID
	Device   DeviceID
	Position PhysicalPosition[float64]
}

// CursorEnteredEvent is sent when the cursor enters a window.
type CursorEnteredEvent struct {
	Window WindowID
	Device DeviceID
}

// CursorLeftEvent is sent when the cursor leaves a window.
type CursorLeftEvent struct {
	Window WindowID
	Device DeviceID
}

// MouseWheelEvent reports a scroll.
type MouseWheelEvent struct {
	Window WindowID
	Device DeviceID
	Delta  ScrollDelta
	Phase  TouchPhase
}

// MouseInputEvent reports a mouse button press or release.
type MouseInputEvent struct {
	Window WindowID
	Device DeviceID
	State  ElementState
	Button MouseButton
}

// PinchGestureEvent reports a touchpad pinch.
type PinchGestureEvent struct {
	Window WindowID
	Device DeviceID
	Delta  float64
	Phase  TouchPhase
}

// PanGestureEvent reports a multi-finger pan.
type PanGestureEvent struct {
	Window WindowID
	Device DeviceID
	Delta  PhysicalPosition[float32]
	Phase  TouchPhase
}

// DoubleTapGestureEvent reports a touchpad double tap.
type DoubleTapGestureEvent struct {
	Window WindowID
	Device DeviceID
}

// RotationGestureEvent reports a touchpad rotation, in degrees.
type RotationGestureEvent struct {
	Window WindowID
	Device DeviceID
	Delta  float32
	Phase  TouchPhase
}

// TouchpadPressureEvent reports a change of touchpad pressure.
type TouchpadPressureEvent struct {
	Window   WindowID
	Device   DeviceID
	Pressure float32
	Stage    int64
}

// AxisMotionEvent reports motion on a device axis.
type AxisMotionEvent struct {
	Window WindowID
	Device DeviceID
	Axis   AxisID
	Value  float64
}

// TouchEvent reports a touch screen contact.
type TouchEvent struct {
	Window WindowID
	Touch  Touch
}

// ScaleFactorChangedEvent carries a writer the handler may use to pick the
// new inner size of the window.
type ScaleFactorChangedEvent struct {
	Window      WindowID
	ScaleFactor float64
	SizeWriter  *InnerSizeWriter
}

// ThemeChangedEvent reports the new system theme.
type ThemeChangedEvent struct {
	Window WindowID
	Theme  Theme
}

// OccludedEvent reports whether a window is hidden from view.
type OccludedEvent struct {
	Window   WindowID
	Occluded bool
}

// RedrawRequestedEvent is sent when a window should redraw its content.
type RedrawRequestedEvent struct {
	Window WindowID
}

func (ResumedEvent) ImplementsEvent()              {}
func (SuspendedEvent) ImplementsEvent()            {}
func (MemoryWarningEvent) ImplementsEvent()        {}
func (ActivationTokenDoneEvent) ImplementsEvent()  {}
func (ResizedEvent) ImplementsEvent()              {}
func (MovedEvent) ImplementsEvent()                {}
func (CloseRequestedEvent) ImplementsEvent()       {}
func (DroppedFileEvent) ImplementsEvent()          {}
func (HoveredFileEvent) ImplementsEvent()          {}
func (HoveredFileCancelledEvent) ImplementsEvent() {}
func (FocusedEvent) ImplementsEvent()              {}
func (KeyboardInputEvent) ImplementsEvent()        {}
func (ModifiersChangedEvent) ImplementsEvent()     {}
func (ImeEvent) ImplementsEvent()                  {}
func (CursorMovedEvent) ImplementsEvent()          {}
func (CursorEnteredEvent) ImplementsEvent()        {}
func (CursorLeftEvent) ImplementsEvent()           {}
func (MouseWheelEvent) ImplementsEvent()           {}
func (MouseInputEvent) ImplementsEvent()           {}
func (PinchGestureEvent) ImplementsEvent()         {}
func (PanGestureEvent) ImplementsEvent()           {}
func (DoubleTapGestureEvent) ImplementsEvent()     {}
func (RotationGestureEvent) ImplementsEvent()      {}
func (TouchpadPressureEvent) ImplementsEvent()     {}
func (AxisMotionEvent) ImplementsEvent()           {}
func (TouchEvent) ImplementsEvent()                {}
func (ScaleFactorChangedEvent) ImplementsEvent()   {}
func (ThemeChangedEvent) ImplementsEvent()         {}
func (OccludedEvent) ImplementsEvent()             {}
func (RedrawRequestedEvent) ImplementsEvent()      {}

func (e ActivationTokenDoneEvent) Target() WindowID  { return e.Window }
func (e ResizedEvent) Target() WindowID              { return e.Window }
func (e MovedEvent) Target() WindowID                { return e.Window }
func (e CloseRequestedEvent) Target() WindowID       { return e.Window }
func (e DroppedFileEvent) Target() WindowID          { return e.Window }
func (e HoveredFileEvent) Target() WindowID          { return e.Window }
func (e HoveredFileCancelledEvent) Target() WindowID { return e.Window }
func (e FocusedEvent) Target() WindowID              { return e.Window }
func (e KeyboardInputEvent) Target() WindowID        { return e.Window }
func (e ModifiersChangedEvent) Target() WindowID     { return e.Window }
func (e ImeEvent) Target() WindowID                  { return e.Window }
func (e CursorMovedEvent) Target() WindowID          { return e.Window }
func (e CursorEnteredEvent) Target() WindowID        { return e.Window }
func (e CursorLeftEvent) Target() WindowID           { return e.Window }
func (e MouseWheelEvent) Target() WindowID           { return e.Window }
func (e MouseInputEvent) Target() WindowID           { return e.Window }
func (e PinchGestureEvent) Target() WindowID         { return e.Window }
func (e PanGestureEvent) Target() WindowID           { return e.Window }
func (e DoubleTapGestureEvent) Target() WindowID     { return e.Window }
func (e RotationGestureEvent) Target() WindowID      { return e.Window }
func (e TouchpadPressureEvent) Target() WindowID     { return e.Window }
func (e AxisMotionEvent) Target() WindowID           { return e.Window }
func (e TouchEvent) Target() WindowID                { return e.Window }
func (e ScaleFactorChangedEvent) Target() WindowID   { return e.Window }
func (e ThemeChangedEvent) Target() WindowID         { return e.Window }
func (e OccludedEvent) Target() WindowID             { return e.Window }
func (e RedrawRequestedEvent) Target() WindowID      { return e.Window }
