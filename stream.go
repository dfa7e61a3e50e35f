package keypress

import (
	"context"
	"fmt"
	"iter"

	"github.com/xyproto/env/v2"
)

// DefaultBufferLength is the number of bytes read per cycle. It is large
// enough to receive pasted text in one go.
const DefaultBufferLength = 1024

// Options configures ReadKeypress and ReadKeypressSync
type Options struct {
	// BufferLength is the maximum number of bytes read at a time (default: 1024)
	BufferLength int

	// Cbreak lets the operating system keep handling signal keys like ctrl-c
	Cbreak bool

	// DebugFn is called with debug messages (optional)
	DebugFn func(string)
}

// Result is a key event or the read error that ended the stream
type Result struct {
	Event KeyEvent
	Err   error
}

// DefaultOptions returns the options used when none are given
func DefaultOptions() Options {
	return Options{BufferLength: DefaultBufferLength}
}

// OptionsFromEnv returns the default options, overridden by
// KEYPRESS_BUFFER_LENGTH and KEYPRESS_CBREAK when set
func OptionsFromEnv() Options {
	opts := DefaultOptions()
	opts.BufferLength = env.Int("KEYPRESS_BUFFER_LENGTH", DefaultBufferLength)
	opts.Cbreak = env.Bool("KEYPRESS_CBREAK")
	return opts
}

func (o Options) withDefaults() Options {
	if o.BufferLength <= 0 {
		o.BufferLength = DefaultBufferLength
	}
	return o
}

func (o Options) debug(format string, args ...any) {
	if o.DebugFn != nil {
		o.DebugFn(fmt.Sprintf(format, args...))
	}
}

// readCycle reads once from t while in raw mode. Raw mode is left on every path.
func readCycle(t Terminal, buf []byte, cbreak bool) (n int, err error) {
	if err := t.MakeRaw(cbreak); err != nil {
		return 0, err
	}
	defer func() {
		if restoreErr := t.Restore(); restoreErr != nil && err == nil {
			err = restoreErr
		}
	}()
	return t.Read(buf)
}

// ReadKeypress reads and decodes key presses from t in a goroutine.
// The channel is closed when ctx is done, or after the Result carrying the
// first read error. ErrNotATerminal is returned if t is not a terminal.
// Reading starts right away, and a read that is pending when ctx is done
// keeps waiting, so it may still consume the next key press. Close t to end it.
func ReadKeypress(ctx context.Context, t Terminal, opts Options) (<-chan Result, error) {
	if !t.IsTerminal() {
		return nil, ErrNotATerminal
	}
	opts = opts.withDefaults()

	results := make(chan Result)
	send := func(r Result) bool {
		select {
		case results <- r:
			return true
		case <-ctx.Done():
			return false
		}
	}

	go func() {
		defer close(results)
		buf := make([]byte, opts.BufferLength)
		for ctx.Err() == nil {
			n, err := readCycle(t, buf, opts.Cbreak)
			if err != nil {
				opts.debug("read failed: %v", err)
				send(Result{Event: KeyEvent{KeyCode: NoKeyCode}, Err: err})
				return
			}
			opts.debug("read %d bytes: %q", n, buf[:n])
			for _, event := range decodeRead(buf[:n]) {
				if !send(Result{Event: event}) {
					return
				}
			}
		}
	}()

	return results, nil
}

// ReadKeypressSync returns a sequence of key presses read from t on the
// calling goroutine. A read error is yielded once and ends the sequence.
// ErrNotATerminal is returned if t is not a terminal.
func ReadKeypressSync(t Terminal, opts Options) (iter.Seq2[KeyEvent, error], error) {
	if !t.IsTerminal() {
		return nil, ErrNotATerminal
	}
	opts = opts.withDefaults()

	return func(yield func(KeyEvent, error) bool) {
		buf := make([]byte, opts.BufferLength)
		for {
			n, err := readCycle(t, buf, opts.Cbreak)
			if err != nil {
				opts.debug("read failed: %v", err)
				yield(KeyEvent{KeyCode: NoKeyCode}, err)
				return
			}
			opts.debug("read %d bytes: %q", n, buf[:n])
			for _, event := range decodeRead(buf[:n]) {
				if !yield(event, nil) {
					return
				}
			}
		}
	}, nil
}

// decodeRead decodes the bytes of one read, nothing for an empty read
func decodeRead(b []byte) []KeyEvent {
	if len(b) == 0 {
		return nil
	}
	return Decode(b)
}
