package utils

import (
	"fmt"
	"math"
	"time"
)

// MessageType selects the color of a console message.
type MessageType int

// The message types used across the tool.
const (
	DefaultMessage MessageType = iota
	SuccessMessage
	ErrorMessage
	StatusMessage
)

// ANSI colors of the message types.
const (
	DefaultColor = "\x1b[0m"
	StatusColor  = "\x1b[36m"
	SuccessColor = "\x1b[32m"
	ErrorColor   = "\x1b[31m"
)

// AppName prefixes every status line printed by the tool.
const AppName = "✂ PCARVE"

var messageColors = map[MessageType]string{
	DefaultMessage: DefaultColor,
	SuccessMessage: SuccessColor,
	ErrorMessage:   ErrorColor,
	StatusMessage:  StatusColor,
}

// DecorateText colors s according to the message type and resets the
// color afterwards. Unknown message types leave s untouched.
func DecorateText(s string, msgType MessageType) string {
	color, ok := messageColors[msgType]
	if !ok {
		return s
	}
	return color + s + DefaultColor
}

// StatusLine returns msg prefixed with the tool name.
func StatusLine(msg string) string {
	return DecorateText(AppName, StatusMessage) + " " + DecorateText(msg, DefaultMessage)
}

// FailureLine returns a status line for msg ending with an error mark.
func FailureLine(msg string) string {
	return StatusLine(msg) + " " + DecorateText("✘", ErrorMessage)
}

// SuccessLine returns a status line highlighting msg as a success.
func SuccessLine(msg string) string {
	return StatusLine("⇢") + " " + DecorateText(msg+" ✔", SuccessMessage)
}

// FormatTime renders a duration as seconds, prefixed by the whole
// minutes, hours and days it spans.
func FormatTime(d time.Duration) string {
	secs := math.Mod(d.Seconds(), 60)
	mins := int64(d.Minutes())
	hours := int64(d.Hours())

	switch {
	case d < time.Minute:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d < time.Hour:
		return fmt.Sprintf("%dm %.2fs", mins, secs)
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh %dm %.2fs", hours, mins%60, secs)
	}
	return fmt.Sprintf("%dd %dh %dm %.2fs", hours/24, hours%24, mins%60, secs)
}
