package utils

import (
	"fmt"
	"math"
	"time"
)

// MessageType selects the color a message is decorated with.
type MessageType int

// The message types used across the command line tools.
const (
	DefaultMessage MessageType = iota
	SuccessMessage
	ErrorMessage
	StatusMessage
)

// ANSI colors used across the command line tools.
const (
	DefaultColor = "\x1b[0m"
	StatusColor  = "\x1b[36m"
	SuccessColor = "\x1b[32m"
	ErrorColor   = "\x1b[31m"
)

var colors = true

// EnableColors turns message decoration on or off, e.g. when the output is
// not a terminal.
func EnableColors(on bool) {
	colors = on
}

// DecorateText wraps s in the color of its message type.
func DecorateText(s string, msgType MessageType) string {
	if !colors {
		return s
	}
	switch msgType {
	case DefaultMessage:
		s = DefaultColor + s
	case StatusMessage:
		s = StatusColor + s
	case SuccessMessage:
		s = SuccessColor + s
	case ErrorMessage:
		s = ErrorColor + s
	default:
		return s
	}
	return s + DefaultColor
}

// FormatTime formats a duration in a human readable way.
func FormatTime(d time.Duration) string {
	if d.Seconds() < 60.0 {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	secs := math.Mod(d.Seconds(), 60)
	if d.Minutes() < 60.0 {
		return fmt.Sprintf("%dm %.2fs", int64(d.Minutes()), secs)
	}
	mins := math.Mod(d.Minutes(), 60)
	if d.Hours() < 24.0 {
		return fmt.Sprintf("%dh %dm %.2fs", int64(d.Hours()), int64(mins), secs)
	}
	hours := math.Mod(d.Hours(), 24)
	return fmt.Sprintf("%dd %dh %dm %.2fs",
		int64(d.Hours()/24), int64(hours), int64(mins), secs)
}
