//go:build windows

package getch

import (
	"os"

	"golang.org/x/sys/windows"
)

// termMode snapshots the console input mode flags.
type termMode struct {
	mode uint32
}

type windowsController struct {
	handle windows.Handle
}

func newController() modeController {
	return &windowsController{handle: windows.Handle(os.Stdin.Fd())}
}

func (c *windowsController) capture() (termMode, error) {
	var mode uint32
	if err := windows.GetConsoleMode(c.handle, &mode); err != nil {
		return termMode{}, err
	}
	return termMode{mode: mode}, nil
}

func (c *windowsController) applyRaw(m termMode) error {
	raw := m.mode
	raw &^= windows.ENABLE_LINE_INPUT | windows.ENABLE_ECHO_INPUT | windows.ENABLE_PROCESSED_INPUT
	// Have the console translate keys into VT escape sequences so the
	// decoder sees the same byte stream as on Unix.
	raw |= windows.ENABLE_VIRTUAL_TERMINAL_INPUT
	return windows.SetConsoleMode(c.handle, raw)
}

func (c *windowsController) restore(m termMode) error {
	return windows.SetConsoleMode(c.handle, m.mode)
}

func (c *windowsController) setEcho(on bool) error {
	var mode uint32
	if err := windows.GetConsoleMode(c.handle, &mode); err != nil {
		return err
	}
	if on {
		mode |= windows.ENABLE_ECHO_INPUT
	} else {
		mode &^= windows.ENABLE_ECHO_INPUT
	}
	return windows.SetConsoleMode(c.handle, mode)
}
