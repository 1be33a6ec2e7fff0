package getch

import "errors"

// ErrNotTerminal is reported when standard input is not attached to a
// terminal. Raw-mode programs need a real terminal; the failure is not
// retried.
var ErrNotTerminal = errors.New("stdin is not a terminal")

// modeController is the platform capability for terminal input modes.
// The rest of the package only threads the opaque snapshot through
// capture, applyRaw, and restore, and never touches platform attribute
// structures directly. One implementation exists per platform.
type modeController interface {
	// capture snapshots the current input mode.
	capture() (termMode, error)
	// applyRaw switches the terminal to raw input: no line buffering, no
	// signal generation on interrupt characters, no local echo.
	applyRaw(termMode) error
	// restore writes a previously captured snapshot back.
	restore(termMode) error
	// setEcho toggles local echo on its own, independent of any session.
	setEcho(on bool) error
}

// ModeError reports a failure to query or change the terminal mode. It is
// raised at session acquisition and at restore time.
type ModeError struct {
	Op  string
	Err error
}

func (e *ModeError) Error() string {
	return "failed to " + e.Op + ": " + e.Err.Error()
}

func (e *ModeError) Unwrap() error { return e.Err }
