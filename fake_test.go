package keypress

import (
	"os"
	"sync"
)

// fakeTerminal serves canned reads and records raw mode changes.
// When the canned reads run out, Read returns readErr, or blocks until
// Close if readErr is nil.
type fakeTerminal struct {
	mut           sync.Mutex
	reads         [][]byte
	readErr       error
	notTTY        bool
	raw           bool
	cbreak        bool
	rawCalls      int
	restoreCalls  int
	readCalls     int
	rawDuringRead []bool
	closed        bool
	closeCh       chan struct{}
}

func newFakeTerminal(readErr error, reads ...string) *fakeTerminal {
	f := &fakeTerminal{readErr: readErr, closeCh: make(chan struct{})}
	for _, r := range reads {
		f.reads = append(f.reads, []byte(r))
	}
	return f
}

func (f *fakeTerminal) Read(b []byte) (int, error) {
	f.mut.Lock()
	f.readCalls++
	f.rawDuringRead = append(f.rawDuringRead, f.raw)
	if len(f.reads) > 0 {
		n := copy(b, f.reads[0])
		f.reads = f.reads[1:]
		f.mut.Unlock()
		return n, nil
	}
	if f.readErr != nil {
		err := f.readErr
		f.mut.Unlock()
		return 0, err
	}
	f.mut.Unlock()
	<-f.closeCh
	return 0, os.ErrClosed
}

func (f *fakeTerminal) Close() error {
	f.mut.Lock()
	defer f.mut.Unlock()
	if !f.closed {
		f.closed = true
		f.raw = false
		close(f.closeCh)
	}
	return nil
}

func (f *fakeTerminal) IsTerminal() bool {
	return !f.notTTY
}

func (f *fakeTerminal) MakeRaw(cbreak bool) error {
	f.mut.Lock()
	defer f.mut.Unlock()
	if f.closed {
		return os.ErrClosed
	}
	f.rawCalls++
	f.raw = true
	f.cbreak = cbreak
	return nil
}

func (f *fakeTerminal) Restore() error {
	f.mut.Lock()
	defer f.mut.Unlock()
	f.restoreCalls++
	f.raw = false
	return nil
}

func (f *fakeTerminal) isRaw() bool {
	f.mut.Lock()
	defer f.mut.Unlock()
	return f.raw
}
