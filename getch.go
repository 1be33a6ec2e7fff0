// Package getch reads one logical keystroke at a time from standard
// input without waiting for a line terminator. It puts the terminal in
// raw input mode (no line buffering, no signal generation, no echo),
// translates raw bytes into semantic Key events, and guarantees the
// prior mode is restored when the session is closed. Multi-byte UTF-8
// characters and VT100/xterm CSI and SS3 escape sequences are decoded;
// anything unrecognized is preserved byte for byte in an Other key.
package getch

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Getch is a raw-mode input session. At most one session may be active
// per terminal at a time, and calls to ReadKey must be sequential: the
// single-slot leftover buffer has exactly one owner.
type Getch struct {
	in   io.Reader
	ctrl modeController
	orig termMode

	// One byte read ahead of the current key during a burst read,
	// belonging to the next ReadKey call.
	leftover    byte
	hasLeftover bool

	restored bool
}

// New captures the current terminal mode, switches standard input to raw
// mode, and returns the session. The caller must Close it to restore the
// captured mode. New fails with a *ModeError when stdin is not a
// terminal or the mode cannot be changed.
func New() (*Getch, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, &ModeError{Op: "capture terminal mode", Err: ErrNotTerminal}
	}
	return newSession(os.Stdin, newController())
}

func newSession(in io.Reader, ctrl modeController) (*Getch, error) {
	orig, err := ctrl.capture()
	if err != nil {
		return nil, &ModeError{Op: "capture terminal mode", Err: err}
	}
	if err := ctrl.applyRaw(orig); err != nil {
		return nil, &ModeError{Op: "apply raw mode", Err: err}
	}
	return &Getch{in: in, ctrl: ctrl, orig: orig}, nil
}

// ReadKey blocks until one logical keystroke is available and returns
// it. A zero-byte read (closed input) returns the EOF key; the NUL byte
// maps to the same kind, so callers that need to tell the two apart must
// track stream state themselves. Read errors are returned verbatim; a
// key abandoned mid-sequence by an error loses its partial bytes.
func (g *Getch) ReadKey() (Key, error) {
	live := readerSource{r: g.in}

	if g.hasLeftover {
		g.hasLeftover = false
		return decodeKey(g.leftover, live)
	}

	// A burst read of up to two bytes catches terminals that deliver a
	// whole escape sequence at once while still letting sequences
	// straddle calls.
	var buf [2]byte
	n, err := g.in.Read(buf[:])
	if n == 0 {
		if err != nil && err != io.EOF {
			return Key{}, err
		}
		return EOF, nil
	}

	if n == 1 {
		if buf[0] == 0x1b {
			// No continuation arrived with the escape byte; report a
			// lone Esc rather than blocking for bytes that may never
			// come.
			return Esc, nil
		}
		return decodeKey(buf[0], live)
	}

	burst := &burstSource{next: buf[1], hasNext: true, live: live}
	key, err := decodeKey(buf[0], burst)
	if burst.hasNext {
		g.leftover = buf[1]
		g.hasLeftover = true
	}
	return key, err
}

// Close restores the terminal mode captured when the session was
// created. Restoration happens exactly once and does not depend on any
// read having succeeded; calling Close again is a no-op.
func (g *Getch) Close() error {
	if g.restored {
		return nil
	}
	g.restored = true
	if err := g.ctrl.restore(g.orig); err != nil {
		return &ModeError{Op: "restore terminal mode", Err: err}
	}
	return nil
}
