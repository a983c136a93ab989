package wae

import "fmt"

// DeviceID identifies an input device. The zero value is used by backends
// which can't tell devices apart.
type DeviceID uint64

// AxisID identifies an analog axis on a device.
type AxisID uint32

// ElementState describes whether a key or button is pressed or released.
type ElementState uint8

const (
	Pressed ElementState = iota
	Released
)

func (s ElementState) String() string {
	switch s {
	case Pressed:
		return "Pressed"
	case Released:
		return "Released"
	default:
		return fmt.Sprintf("ElementState(%d)", uint8(s))
	}
}

// MouseButton is a mouse button. Buttons past Forward are reported as
// OtherButton plus the native button number.
type MouseButton uint16

const (
	LeftButton MouseButton = iota
	RightButton
	MiddleButton
	BackButton
	ForwardButton
	OtherButton
)

func (b MouseButton) String() string {
	switch b {
	case LeftButton:
		return "Left"
	case RightButton:
		return "Right"
	case MiddleButton:
		return "Middle"
	case BackButton:
		return "Back"
	case ForwardButton:
		return "Forward"
	default:
		return fmt.Sprintf("Other(%d)", uint16(b-OtherButton))
	}
}

// TouchPhase is the phase of a touch or gesture.
type TouchPhase uint8

const (
	TouchStarted TouchPhase = iota
	TouchMoved
	TouchEnded
	TouchCancelled
)

func (p TouchPhase) String() string {
	switch p {
	case TouchStarted:
		return "Started"
	case TouchMoved:
		return "Moved"
	case TouchEnded:
		return "Ended"
	case TouchCancelled:
		return "Cancelled"
	default:
		return fmt.Sprintf("TouchPhase(%d)", uint8(p))
	}
}

// ScrollDelta is the amount scrolled by a mouse wheel or touchpad.
// Lines is set for wheels reporting in lines, Pixels for pixel-precise devices.
type ScrollDelta struct {
	Lines  *[2]float32
	Pixels *PhysicalPosition[float64]
}

// LineDelta returns a ScrollDelta measured in lines.
func LineDelta(x, y float32) ScrollDelta {
	return ScrollDelta{Lines: &[2]float32{x, y}}
}

// PixelDelta returns a ScrollDelta measured in physical pixels.
func PixelDelta(x, y float64) ScrollDelta {
	return ScrollDelta{Pixels: &PhysicalPosition[float64]{X: x, Y: y}}
}

// Modifiers is the set of modifier keys held down.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

// Contain reports whether m contains all of m2.
func (m Modifiers) Contain(m2 Modifiers) bool {
	return m&m2 == m2
}

func (m Modifiers) String() string {
	var s string
	add := func(n string) {
		if s != "" {
			s += "|"
		}
		s += n
	}
	if m.Contain(ModShift) {
		add("Shift")
	}
	if m.Contain(ModCtrl) {
		add("Ctrl")
	}
	if m.Contain(ModAlt) {
		add("Alt")
	}
	if m.Contain(ModSuper) {
		add("Super")
	}
	return s
}

// KeyLocation tells apart keys which appear more than once on a keyboard.
type KeyLocation uint8

const (
	LocationStandard KeyLocation = iota
	LocationLeft
	LocationRight
	LocationNumpad
)

// Key is a logical key. Named keys use their gio/W3C name ("Escape",
// "ArrowLeft", "Enter"); character keys hold the character.
type Key string

// KeyEvent describes a keyboard key press or release.
type KeyEvent struct {
	// PhysicalKey is the backend scancode, zero when unknown.
	PhysicalKey uint32
	Logical     Key
	Text        string
	Location    KeyLocation
	State       ElementState
	Repeat      bool
}

// ImeKind is the kind of an input-method event.
type ImeKind uint8

const (
	ImeEnabled ImeKind = iota
	ImePreedit
	ImeCommit
	ImeDisabled
)

// Ime is an input-method event. Cursor is the byte range of the cursor in
// Text for ImePreedit, nil when hidden.
type Ime struct {
	Kind   ImeKind
	Text   string
	Cursor *[2]int
}

// Force is the pressure of a touch. Calibrated is false when the device only
// reports a normalized value.
type Force struct {
	Calibrated bool
	Value      float64
	Max        float64
	Altitude   *float64
}

// Normalized returns the force in the range [0, 1].
func (f Force) Normalized() float64 {
	if !f.Calibrated || f.Max == 0 {
		return f.Value
	}
	return f.Value / f.Max
}

// Touch is a touch-screen event.
type Touch struct {
	Device   DeviceID
	Phase    TouchPhase
	Location PhysicalPosition[float64]
	Force    *Force
	// ID is unique for the duration of one finger's contact.
	ID uint64
}

// Theme is the window color theme.
type Theme uint8

const (
	ThemeLight Theme = iota
	ThemeDark
)

func (t Theme) String() string {
	if t == ThemeDark {
		return "Dark"
	}
	return "Light"
}

// AsyncRequestSerial identifies an asynchronous request made to the toolkit,
// such as an activation token request.
type AsyncRequestSerial uint64

// ActivationToken is a token handed out by the platform to activate a window.
type ActivationToken string

// InnerSizeWriter lets a scale-factor handler request a new inner size for
// the window. The backend applies it after the handler returns.
type InnerSizeWriter struct {
	requested *PhysicalSize[uint32]
}

// NewInnerSizeWriter returns a writer initialized with the size the
// toolkit suggests for the new scale factor.
func NewInnerSizeWriter(suggested PhysicalSize[uint32]) *InnerSizeWriter {
	return &InnerSizeWriter{requested: &suggested}
}

// RequestInnerSize asks the toolkit to resize the window to s.
func (w *InnerSizeWriter) RequestInnerSize(s PhysicalSize[uint32]) error {
	if w == nil {
		return ErrSizeWriterGone
	}
	if s.Empty() {
		return fmt.Errorf("wae: invalid inner size %v", s)
	}
	w.requested = &s
	return nil
}

// Requested returns the size last requested, if any.
func (w *InnerSizeWriter) Requested() (PhysicalSize[uint32], bool) {
	if w == nil || w.requested == nil {
		return PhysicalSize[uint32]{}, false
	}
	return *w.requested, true
}
