package getch

// EnableEcho turns local echo back on for the attached terminal. It is a
// one-shot operation independent of any session.
func EnableEcho() error {
	if err := newController().setEcho(true); err != nil {
		return &ModeError{Op: "enable echo", Err: err}
	}
	return nil
}

// DisableEcho turns local echo off for the attached terminal without
// changing anything else about the input mode.
func DisableEcho() error {
	if err := newController().setEcho(false); err != nil {
		return &ModeError{Op: "disable echo", Err: err}
	}
	return nil
}
