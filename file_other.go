//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package keypress

import "golang.org/x/term"

type rawState = term.State

// makeRaw uses full raw mode, cbreak is not available on this platform
func makeRaw(fd int, _ bool) (*rawState, error) {
	return term.MakeRaw(fd)
}

func restoreState(fd int, state *rawState) error {
	return term.Restore(fd, state)
}
