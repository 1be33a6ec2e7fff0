//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package getch

import "golang.org/x/sys/unix"

// TIOCSETAW drains pending output before changing the mode, matching
// tcsetattr with TCSADRAIN.
const (
	ioctlReadTermios  = unix.TIOCGETA
	ioctlWriteTermios = unix.TIOCSETAW
)
