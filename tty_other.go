//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package keypress

import (
	"errors"
	"fmt"
)

// TTY is only available on Unix-like systems, use Stdin instead
type TTY struct {
	File
}

// OpenTTY is not supported on this platform
func OpenTTY() (*TTY, error) {
	return OpenTTYPath("")
}

// OpenTTYPath is not supported on this platform
func OpenTTYPath(path string) (*TTY, error) {
	return nil, fmt.Errorf("%w: %q: %w", ErrNotATerminal, path, errors.ErrUnsupported)
}

// Path returns an empty string on this platform
func (tty *TTY) Path() string {
	return ""
}
