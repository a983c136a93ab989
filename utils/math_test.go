package utils

import "testing"

func TestMath_ShouldPickMinAndMax(t *testing.T) {
	if got := Min(3, 7); got != 3 {
		t.Errorf("Min(3, 7) expected to be 3. Got %v", got)
	}
	if got := Min(7, 3); got != 3 {
		t.Errorf("Min(7, 3) expected to be 3. Got %v", got)
	}
	if got := Max(2.5, -1.0); got != 2.5 {
		t.Errorf("Max(2.5, -1) expected to be 2.5. Got %v", got)
	}
	if got := Abs(-4); got != 4 {
		t.Errorf("Abs(-4) expected to be 4. Got %v", got)
	}
}

func TestMath_ShouldClamp(t *testing.T) {
	if got := Clamp(0, 1, 16); got != 1 {
		t.Errorf("Clamp(0, 1, 16) expected to be 1. Got %v", got)
	}
	if got := Clamp(40, 1, 16); got != 16 {
		t.Errorf("Clamp(40, 1, 16) expected to be 16. Got %v", got)
	}
	if got := Clamp(5, 1, 16); got != 5 {
		t.Errorf("Clamp(5, 1, 16) expected to be 5. Got %v", got)
	}
}
