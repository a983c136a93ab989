package wae

// WindowID is the toolkit's identifier for a native window. It is unique and
// stable for the lifetime of the window.
type WindowID uint64

// Window is implemented by anything bound to a native window.
// ID must keep returning the same value while the window is registered.
type Window interface {
	ID() WindowID
}

// WindowHandler encapsulates a native window with its window-specific logic.
//
// The executor stops immediately if any method returns an error; that error
// becomes the result of Executor.Run. Embed NopHandler to only implement the
// methods you need.
type WindowHandler interface {
	Window

	OnActivationTokenDone(serial AsyncRequestSerial, token ActivationToken) error
	OnResized(size PhysicalSize[uint32]) error
	OnMoved(pos PhysicalPosition[int32]) error
	OnCloseRequested() error
	OnDroppedFile(path string) error
	OnHoveredFile(path string) error
	OnHoveredFileCancelled() error
	OnFocused(gained bool) error
	OnKeyboardInput(dev DeviceID, ev KeyEvent, synthetic bool) error
	OnModifiersChanged(m Modifiers) error
	OnIme(ev Ime) error
	OnCursorMoved(dev DeviceID, pos PhysicalPosition[float64]) error
	OnCursorEntered(dev DeviceID) error
	OnCursorLeft(dev DeviceID) error
	OnMouseWheel(dev DeviceID, delta ScrollDelta, phase TouchPhase) error
	OnMouseInput(dev DeviceID, state ElementState, btn MouseButton) error
	OnPinchGesture(dev DeviceID, delta float64, phase TouchPhase) error
	OnPanGesture(dev DeviceID, delta PhysicalPosition[float32], phase TouchPhase) error
	OnDoubleTapGesture(dev DeviceID) error
	OnRotationGesture(dev DeviceID, delta float32, phase TouchPhase) error
	OnTouchpadPressure(dev DeviceID, pressure float32, stage int64) error
	OnAxisMotion(dev DeviceID, axis AxisID, value float64) error
	OnTouch(t Touch) error
	OnScaleFactorChanged(scale float64, w *InnerSizeWriter) error
	OnThemeChanged(t Theme) error
	OnOccluded(occluded bool) error
	OnRedrawRequested() error
}

// NopHandler implements every WindowHandler event method as a no-op.
// It does not implement ID.
type NopHandler struct{}

func (NopHandler) OnActivationTokenDone(AsyncRequestSerial, ActivationToken) error { return nil }
func (NopHandler) OnResized(PhysicalSize[uint32]) error                            { return nil }
func (NopHandler) OnMoved(PhysicalPosition[int32]) error                           { return nil }
func (NopHandler) OnCloseRequested() error                                         { return nil }
func (NopHandler) OnDroppedFile(string) error                                      { return nil }
func (NopHandler) OnHoveredFile(string) error                                      { return nil }
func (NopHandler) OnHoveredFileCancelled() error                                   { return nil }
func (NopHandler) OnFocused(bool) error                                            { return nil }
func (NopHandler) OnKeyboardInput(DeviceID, KeyEvent, bool) error                  { return nil }
func (NopHandler) OnModifiersChanged(Modifiers) error                              { return nil }
func (NopHandler) OnIme(Ime) error                                                 { return nil }
func (NopHandler) OnCursorMoved(DeviceID, PhysicalPosition[float64]) error         { return nil }
func (NopHandler) OnCursorEntered(DeviceID) error                                  { return nil }
func (NopHandler) OnCursorLeft(DeviceID) error                                     { return nil }
func (NopHandler) OnMouseWheel(DeviceID, ScrollDelta, TouchPhase) error            { return nil }
func (NopHandler) OnMouseInput(DeviceID, ElementState, MouseButton) error          { return nil }
func (NopHandler) OnPinchGesture(DeviceID, float64, TouchPhase) error              { return nil }
func (NopHandler) OnPanGesture(DeviceID, PhysicalPosition[float32], TouchPhase) error {
	return nil
}
func (NopHandler) OnDoubleTapGesture(DeviceID) error                     { return nil }
func (NopHandler) OnRotationGesture(DeviceID, float32, TouchPhase) error { return nil }
func (NopHandler) OnTouchpadPressure(DeviceID, float32, int64) error     { return nil }
func (NopHandler) OnAxisMotion(DeviceID, AxisID, float64) error          { return nil }
func (NopHandler) OnTouch(Touch) error                                   { return nil }
func (NopHandler) OnScaleFactorChanged(float64, *InnerSizeWriter) error  { return nil }
func (NopHandler) OnThemeChanged(Theme) error                            { return nil }
func (NopHandler) OnOccluded(bool) error                                 { return nil }
func (NopHandler) OnRedrawRequested() error                              { return nil }
