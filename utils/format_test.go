package utils

import (
	"testing"
	"time"
)

func TestFormat_ShouldDecorateText(t *testing.T) {
	defer EnableColors(true)

	EnableColors(true)
	if got, want := DecorateText("ok", SuccessMessage), SuccessColor+"ok"+DefaultColor; got != want {
		t.Errorf("DecorateText expected %q, got %q", want, got)
	}

	EnableColors(false)
	if got := DecorateText("ok", ErrorMessage); got != "ok" {
		t.Errorf("DecorateText without colors expected plain text, got %q", got)
	}
}

func TestFormat_ShouldFormatTime(t *testing.T) {
	for d, want := range map[time.Duration]string{
		1500 * time.Millisecond:       "1.50s",
		2*time.Minute + 3*time.Second: "2m 3.00s",
		time.Hour + 2*time.Minute:     "1h 2m 0.00s",
		26*time.Hour + 30*time.Second: "1d 2h 0m 30.00s",
	} {
		if got := FormatTime(d); got != want {
			t.Errorf("FormatTime(%v) expected %q, got %q", d, want, got)
		}
	}
}
