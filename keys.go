package keypress

import (
	"strconv"
	"strings"
)

// Key is the logical name of a pressed key, like "up", "f5" or "a"
type Key string

// Key names
const (
	KeyNone      Key = ""
	KeyUndefined Key = "undefined"

	KeyReturn    Key = "return"
	KeyEnter     Key = "enter"
	KeyTab       Key = "tab"
	KeyBackspace Key = "backspace"
	KeyEscape    Key = "escape"
	KeySpace     Key = "space"

	KeyUp       Key = "up"
	KeyDown     Key = "down"
	KeyLeft     Key = "left"
	KeyRight    Key = "right"
	KeyClear    Key = "clear"
	KeyHome     Key = "home"
	KeyEnd      Key = "end"
	KeyInsert   Key = "insert"
	KeyDelete   Key = "delete"
	KeyPageUp   Key = "pageup"
	KeyPageDown Key = "pagedown"

	// Function keys
	KeyF1  Key = "f1"
	KeyF2  Key = "f2"
	KeyF3  Key = "f3"
	KeyF4  Key = "f4"
	KeyF5  Key = "f5"
	KeyF6  Key = "f6"
	KeyF7  Key = "f7"
	KeyF8  Key = "f8"
	KeyF9  Key = "f9"
	KeyF10 Key = "f10"
	KeyF11 Key = "f11"
	KeyF12 Key = "f12"
)

// NoKeyCode is the KeyCode of an event whose sequence is longer than one character
const NoKeyCode = -1

// KeyEvent is a single decoded key press
type KeyEvent struct {
	Key      Key    // Logical key, KeyNone if it could not be determined
	Code     string // Escape sequence code like "[A", only set for CSI and SS3 sequences
	KeyCode  int    // Character value for one-character sequences, otherwise NoKeyCode
	Sequence string // The raw text this event was decoded from
	Unicode  string // Sequence as \uXXXX escapes
	Ctrl     bool
	Meta     bool
	Shift    bool
}

// HasKeyCode reports whether the event was decoded from a single character
func (e KeyEvent) HasKeyCode() bool {
	return e.KeyCode != NoKeyCode
}

// String returns a short form of the event, like "C-up" or "M-S-a".
// Events without a key are shown as the quoted sequence.
func (e KeyEvent) String() string {
	var sb strings.Builder
	if e.Ctrl {
		sb.WriteString("C-")
	}
	if e.Meta {
		sb.WriteString("M-")
	}
	if e.Shift {
		sb.WriteString("S-")
	}
	if e.Key == KeyNone {
		sb.WriteString(strconv.Quote(e.Sequence))
	} else {
		sb.WriteString(string(e.Key))
	}
	return sb.String()
}
