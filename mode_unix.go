//go:build !windows

package getch

import (
	"os"

	"golang.org/x/sys/unix"
)

// termMode snapshots the termios state of the controlling terminal.
type termMode struct {
	termios unix.Termios
}

type unixController struct {
	fd int
}

func newController() modeController {
	return &unixController{fd: int(os.Stdin.Fd())}
}

func (c *unixController) capture() (termMode, error) {
	t, err := unix.IoctlGetTermios(c.fd, ioctlReadTermios)
	if err != nil {
		return termMode{}, err
	}
	return termMode{termios: *t}, nil
}

func (c *unixController) applyRaw(m termMode) error {
	raw := m.termios
	// Deliver bytes as they arrive, keep Ctrl-C and friends as plain
	// bytes instead of signals, and stop the terminal echoing input.
	raw.Lflag &^= unix.ICANON | unix.ISIG | unix.ECHO
	return unix.IoctlSetTermios(c.fd, ioctlWriteTermios, &raw)
}

func (c *unixController) restore(m termMode) error {
	t := m.termios
	return unix.IoctlSetTermios(c.fd, ioctlWriteTermios, &t)
}

func (c *unixController) setEcho(on bool) error {
	t, err := unix.IoctlGetTermios(c.fd, ioctlReadTermios)
	if err != nil {
		return err
	}
	if on {
		t.Lflag |= unix.ECHO
	} else {
		t.Lflag &^= unix.ECHO
	}
	return unix.IoctlSetTermios(c.fd, ioctlWriteTermios, t)
}
