package wae

// Dispatch routes ev to the handler registered for its target window.
//
// It reports whether a handler method was called. Events which are not
// window-scoped, events for windows missing from reg and event types it does
// not know are dropped without error: unregistration races are expected
// while windows are closing.
func Dispatch(reg *Registry, ev Event) (bool, error) {
	we, ok := ev.(WindowEvent)
	if !ok {
		return false, nil
	}
	h, ok := reg.Lookup(we.Target())
	if !ok {
		return false, nil
	}

	switch e := we.(type) {
	case ActivationTokenDoneEvent:
		return true, h.OnActivationTokenDone(e.Serial, e.Token)
	case ResizedEvent:
		return true, h.OnResized(e.Size)
	case MovedEvent:
		return true, h.OnMoved(e.Position)
	case CloseRequestedEvent:
		return true, h.OnCloseRequested()
	case DroppedFileEvent:
		return true, h.OnDroppedFile(e.Path)
	case HoveredFileEvent:
		return true, h.OnHoveredFile(e.Path)
	case HoveredFileCancelledEvent:
		return true, h.OnHoveredFileCancelled()
	case FocusedEvent:
		return true, h.OnFocused(e.Gained)
	case KeyboardInputEvent:
		return true, h.OnKeyboardInput(e.Device, e.Key, e.Synthetic)
	case ModifiersChangedEvent:
		return true, h.OnModifiersChanged(e.Modifiers)
	case ImeEvent:
		return true, h.OnIme(e.Ime)
	case CursorMovedEvent:
		return true, h.OnCursorMoved(e.Device, e.Position)
	case CursorEnteredEvent:
		return true, h.OnCursorEntered(e.Device)
	case CursorLeftEvent:
		return true, h.OnCursorLeft(e.Device)
	case MouseWheelEvent:
		return true, h.OnMouseWheel(e.Device, e.Delta, e.Phase)
	case MouseInputEvent:
		return true, h.OnMouseInput(e.Device, e.State, e.Button)
	case PinchGestureEvent:
		return true, h.OnPinchGesture(e.Device, e.Delta, e.Phase)
	case PanGestureEvent:
		return true, h.OnPanGesture(e.Device, e.Delta, e.Phase)
	case DoubleTapGestureEvent:
		return true, h.OnDoubleTapGesture(e.Device)
	case RotationGestureEvent:
		return true, h.OnRotationGesture(e.Device, e.Delta, e.Phase)
	case TouchpadPressureEvent:
		return true, h.OnTouchpadPressure(e.Device, e.Pressure, e.Stage)
	case AxisMotionEvent:
		return true, h.OnAxisMotion(e.Device, e.Axis, e.Value)
	case TouchEvent:
		return true, h.OnTouch(e.Touch)
	case ScaleFactorChangedEvent:
		return true, h.OnScaleFactorChanged(e.ScaleFactor, e.SizeWriter)
	case ThemeChangedEvent:
		return true, h.OnThemeChanged(e.Theme)
	case OccludedEvent:
		return true, h.OnOccluded(e.Occluded)
	case RedrawRequestedEvent:
		return true, h.OnRedrawRequested()
	}
	return false, nil
}
