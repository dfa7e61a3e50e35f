// Package keypress decodes raw terminal input into key press events
package keypress

import (
	"errors"
	"io"
)

// ErrNotATerminal is returned when reading key presses from something that is not a TTY
var ErrNotATerminal = errors.New("keypress can only be read from a TTY")

// Terminal is a byte source that can be switched in and out of raw mode
type Terminal interface {
	io.Reader
	io.Closer

	// IsTerminal reports whether the source is an interactive terminal device
	IsTerminal() bool

	// MakeRaw switches to raw mode. With cbreak, signal keys like ctrl-c
	// are still handled by the operating system.
	MakeRaw(cbreak bool) error

	// Restore leaves raw mode. It does nothing when not in raw mode.
	Restore() error
}
