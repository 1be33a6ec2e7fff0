//go:build linux

package getch

import "golang.org/x/sys/unix"

// TCSETSW drains pending output before changing the mode, matching
// tcsetattr with TCSADRAIN.
const (
	ioctlReadTermios  = unix.TCGETS
	ioctlWriteTermios = unix.TCSETSW
)
