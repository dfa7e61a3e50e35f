package keypress

import (
	"errors"
	"iter"
	"sync"
)

// ErrClosed is returned by Watcher.Next once the watcher has been closed
var ErrClosed = errors.New("keypress watcher closed")

// Watcher reads key presses from a Terminal until it is closed
type Watcher struct {
	t            Terminal
	bufferLength int
	done         chan struct{}
	closeOnce    sync.Once
	closeErr     error
}

type readResult struct {
	buf []byte
	err error
}

// Watch starts watching t for key presses. A bufferLength of 0 or less
// selects DefaultBufferLength. ErrNotATerminal is returned if t is not a terminal.
func Watch(t Terminal, bufferLength int) (*Watcher, error) {
	if !t.IsTerminal() {
		return nil, ErrNotATerminal
	}
	if bufferLength <= 0 {
		bufferLength = DefaultBufferLength
	}
	return &Watcher{
		t:            t,
		bufferLength: bufferLength,
		done:         make(chan struct{}),
	}, nil
}

// Next waits for the next read and returns the first key event decoded from it.
// Other events from the same read, like the rest of a paste, are dropped.
// After Close, Next returns ErrClosed. Read errors, io.EOF included, are returned as is.
func (w *Watcher) Next() (KeyEvent, error) {
	if w.closed() {
		return KeyEvent{KeyCode: NoKeyCode}, ErrClosed
	}

	// The read may outlive this call if the watcher is closed, so it gets
	// its own buffer
	resultCh := make(chan readResult, 1)
	go func() {
		buf := make([]byte, w.bufferLength)
		n, err := readCycle(w.t, buf, false)
		resultCh <- readResult{buf: buf[:n], err: err}
	}()

	select {
	case <-w.done:
		return KeyEvent{KeyCode: NoKeyCode}, ErrClosed
	case res := <-resultCh:
		if w.closed() {
			return KeyEvent{KeyCode: NoKeyCode}, ErrClosed
		}
		if res.err != nil {
			return KeyEvent{KeyCode: NoKeyCode}, res.err
		}
		return Decode(res.buf)[0], nil
	}
}

// All returns the watched key events as a sequence that ends when the
// watcher is closed. A read error is yielded once and also ends it.
func (w *Watcher) All() iter.Seq2[KeyEvent, error] {
	return func(yield func(KeyEvent, error) bool) {
		for {
			event, err := w.Next()
			if errors.Is(err, ErrClosed) {
				return
			}
			if !yield(event, err) || err != nil {
				return
			}
		}
	}
}

// Close stops the watcher, unblocking a pending Next, and closes the Terminal
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		close(w.done)
		w.closeErr = w.t.Close()
	})
	return w.closeErr
}

func (w *Watcher) closed() bool {
	select {
	case <-w.done:
		return true
	default:
		return false
	}
}
