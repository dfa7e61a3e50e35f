package keypress

import (
	"os"
	"sync"

	"golang.org/x/term"
)

// File is a Terminal backed by an open file, usually os.Stdin
type File struct {
	mut    sync.Mutex
	f      *os.File
	saved  *rawState
	closed bool
}

// NewFile wraps f so that it can be used as a Terminal
func NewFile(f *os.File) *File {
	return &File{f: f}
}

// Stdin returns a Terminal that reads from os.Stdin
func Stdin() *File {
	return NewFile(os.Stdin)
}

// Fd returns the file descriptor of the underlying file
func (f *File) Fd() uintptr {
	return f.f.Fd()
}

// Read reads raw bytes from the file
func (f *File) Read(b []byte) (int, error) {
	return f.f.Read(b)
}

// IsTerminal reports whether the file is a terminal
func (f *File) IsTerminal() bool {
	return term.IsTerminal(int(f.f.Fd()))
}

// MakeRaw puts the terminal in raw mode, or in cbreak mode if cbreak is true.
// Calling MakeRaw while already in raw mode does nothing.
func (f *File) MakeRaw(cbreak bool) error {
	f.mut.Lock()
	defer f.mut.Unlock()
	if f.closed {
		return os.ErrClosed
	}
	if f.saved != nil {
		return nil
	}
	state, err := makeRaw(int(f.f.Fd()), cbreak)
	if err != nil {
		return err
	}
	f.saved = state
	return nil
}

// Restore returns the terminal to the state it had before MakeRaw
func (f *File) Restore() error {
	f.mut.Lock()
	defer f.mut.Unlock()
	return f.restore()
}

func (f *File) restore() error {
	if f.saved == nil || f.closed {
		return nil
	}
	err := restoreState(int(f.f.Fd()), f.saved)
	f.saved = nil
	return err
}

// Close restores the terminal and closes the file
func (f *File) Close() error {
	f.mut.Lock()
	defer f.mut.Unlock()
	if f.closed {
		return nil
	}
	restoreErr := f.restore()
	f.closed = true
	if err := f.f.Close(); err != nil {
		return err
	}
	return restoreErr
}
