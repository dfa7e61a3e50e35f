//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package keypress

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/pkg/term"
	"github.com/xyproto/env/v2"
	"golang.org/x/sys/unix"
)

// TTY is a Terminal backed by a terminal device, like /dev/tty.
// Reads and mode switches go through pkg/term, while the original settings
// are saved and put back through a second descriptor, since Term.Restore
// flushes pending input.
type TTY struct {
	mut    sync.Mutex
	t      *term.Term
	ctl    *os.File
	path   string
	saved  *rawState
	closed bool
}

// OpenTTY opens the terminal device of the current session
func OpenTTY() (*TTY, error) {
	return OpenTTYPath(ttyPath())
}

// OpenTTYPath opens the given terminal device.
// The device is left in its current mode until MakeRaw is called.
func OpenTTYPath(path string) (*TTY, error) {
	t, err := term.Open(path)
	if errors.Is(err, unix.ENOTTY) {
		return nil, fmt.Errorf("%w: %s", ErrNotATerminal, path)
	}
	if err != nil {
		return nil, err
	}
	ctl, err := os.OpenFile(path, os.O_RDWR|unix.O_NOCTTY, 0)
	if err != nil {
		t.Close()
		return nil, err
	}
	return &TTY{t: t, ctl: ctl, path: path}, nil
}

// ttyPath returns the path of the terminal device to read from
func ttyPath() string {
	// Check for tmux pane TTY
	if tmuxTTY := env.Str("TMUX_PANE_TTY"); tmuxTTY != "" {
		return tmuxTTY
	}

	// Check for SSH TTY
	if sshTTY := env.Str("SSH_TTY"); sshTTY != "" {
		return sshTTY
	}

	// Default to /dev/tty
	defaultTTY := "/dev/tty"
	if _, err := os.Stat(defaultTTY); err == nil {
		return defaultTTY
	}

	// Fallback to stdin if /dev/tty unavailable
	return "/dev/stdin"
}

// Path returns the device path
func (tty *TTY) Path() string {
	return tty.path
}

// Read reads raw bytes from the device
func (tty *TTY) Read(b []byte) (int, error) {
	return tty.t.Read(b)
}

// IsTerminal is true until the TTY is closed, since opening it already
// required a terminal device
func (tty *TTY) IsTerminal() bool {
	tty.mut.Lock()
	defer tty.mut.Unlock()
	return !tty.closed
}

// MakeRaw switches the terminal to raw mode, or to cbreak mode if cbreak is true.
// Calling MakeRaw while already in raw mode does nothing.
func (tty *TTY) MakeRaw(cbreak bool) error {
	tty.mut.Lock()
	defer tty.mut.Unlock()
	if tty.closed {
		return os.ErrClosed
	}
	if tty.saved != nil {
		return nil
	}
	saved, err := unix.IoctlGetTermios(int(tty.ctl.Fd()), ioctlReadTermios)
	if err != nil {
		return err
	}
	if cbreak {
		err = tty.t.SetCbreak()
	} else {
		err = term.RawMode(tty.t)
	}
	if err != nil {
		return err
	}
	tty.saved = saved
	return nil
}

// Restore the terminal to its original state, keeping any pending input
func (tty *TTY) Restore() error {
	tty.mut.Lock()
	defer tty.mut.Unlock()
	return tty.restore()
}

func (tty *TTY) restore() error {
	if tty.saved == nil || tty.closed {
		return nil
	}
	err := restoreState(int(tty.ctl.Fd()), tty.saved)
	tty.saved = nil
	return err
}

// Close will restore and close the terminal
func (tty *TTY) Close() error {
	tty.mut.Lock()
	defer tty.mut.Unlock()
	if tty.closed {
		return nil
	}
	restoreErr := tty.restore()
	tty.closed = true
	ctlErr := tty.ctl.Close()
	if err := tty.t.Close(); err != nil {
		return err
	}
	if ctlErr != nil {
		return ctlErr
	}
	return restoreErr
}
