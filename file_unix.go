//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package keypress

import "golang.org/x/sys/unix"

type rawState = unix.Termios

// makeRaw sets up the given terminal for reading single key presses and
// returns the previous settings
func makeRaw(fd int, cbreak bool) (*rawState, error) {
	termios, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, err
	}
	orig := *termios

	raw := *termios
	// Input modes
	raw.Iflag &^= (unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP | unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON)

	// Output modes
	raw.Oflag &^= unix.OPOST

	// Control modes
	raw.Cflag &^= (unix.CSIZE | unix.PARENB)
	raw.Cflag |= unix.CS8

	// Local modes, cbreak keeps signal generation
	raw.Lflag &^= (unix.ECHO | unix.ECHONL | unix.ICANON | unix.IEXTEN)
	if !cbreak {
		raw.Lflag &^= unix.ISIG
	}

	// Blocking read
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &raw); err != nil {
		return nil, err
	}
	return &orig, nil
}

func restoreState(fd int, state *rawState) error {
	return unix.IoctlSetTermios(fd, ioctlWriteTermios, state)
}
