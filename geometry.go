package wae

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Pixel is the set of numeric types a physical coordinate can be expressed in.
type Pixel interface {
	constraints.Integer | constraints.Float
}

// PhysicalSize is a size in physical pixels.
type PhysicalSize[P Pixel] struct {
	Width, Height P
}

// PhysicalPosition is a position in physical pixels, relative to the
// top-left corner of the window or screen.
type PhysicalPosition[P Pixel] struct {
	X, Y P
}

// Size is a shorthand for PhysicalSize{Width: w, Height: h}.
func Size[P Pixel](w, h P) PhysicalSize[P] {
	return PhysicalSize[P]{Width: w, Height: h}
}

// Pos is a shorthand for PhysicalPosition{X: x, Y: y}.
func Pos[P Pixel](x, y P) PhysicalPosition[P] {
	return PhysicalPosition[P]{X: x, Y: y}
}

// Empty reports whether s has no area.
func (s PhysicalSize[P]) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

func (s PhysicalSize[P]) String() string {
	return fmt.Sprintf("%vx%v", s.Width, s.Height)
}

func (p PhysicalPosition[P]) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

// Logical converts a physical size into logical units for the given scale factor.
func (s PhysicalSize[P]) Logical(scale float64) (float64, float64) {
	if scale <= 0 {
		scale = 1
	}
	return float64(s.Width) / scale, float64(s.Height) / scale
}
