package getch

import (
	"bytes"
	"fmt"
)

// Kind discriminates the variants of a Key.
type Kind uint8

const (
	// KindEOF marks end of input: a zero-byte read from the input source
	// or a NUL byte.
	KindEOF Kind = iota
	KindBackspace
	KindDelete
	KindEsc
	KindUp
	KindDown
	KindRight
	KindLeft
	KindEnd
	KindHome
	KindBackTab
	KindInsert
	KindPageUp
	KindPageDown
	// KindF is a function key; Key.N holds the number.
	KindF
	// KindChar is an unmodified printable character in Key.Rune.
	KindChar
	// KindAlt is an Esc-prefixed character in Key.Rune.
	KindAlt
	// KindCtrl is a control-modified letter or digit in Key.Rune.
	KindCtrl
	// KindOther carries the exact bytes of an unrecognized sequence in
	// Key.Seq so that no input is ever silently dropped.
	KindOther
)

// Key is one decoded input event.
type Key struct {
	Kind Kind
	Rune rune   // Char, Alt, Ctrl
	N    int    // F
	Seq  []byte // Other
}

// Keys with no payload.
var (
	EOF       = Key{Kind: KindEOF}
	Backspace = Key{Kind: KindBackspace}
	Delete    = Key{Kind: KindDelete}
	Esc       = Key{Kind: KindEsc}
	Up        = Key{Kind: KindUp}
	Down      = Key{Kind: KindDown}
	Right     = Key{Kind: KindRight}
	Left      = Key{Kind: KindLeft}
	End       = Key{Kind: KindEnd}
	Home      = Key{Kind: KindHome}
	BackTab   = Key{Kind: KindBackTab}
	Insert    = Key{Kind: KindInsert}
	PageUp    = Key{Kind: KindPageUp}
	PageDown  = Key{Kind: KindPageDown}
)

// Char returns the key for an unmodified printable character.
func Char(r rune) Key { return Key{Kind: KindChar, Rune: r} }

// Alt returns the key for an Esc-prefixed character.
func Alt(r rune) Key { return Key{Kind: KindAlt, Rune: r} }

// Ctrl returns the key for a control-modified letter or digit.
func Ctrl(r rune) Key { return Key{Kind: KindCtrl, Rune: r} }

// F returns the function key n (1 through 24).
func F(n int) Key { return Key{Kind: KindF, N: n} }

// Other returns the escape-hatch key holding an unclassifiable byte
// sequence.
func Other(seq []byte) Key { return Key{Kind: KindOther, Seq: seq} }

// Equal reports whether two keys are the same event, comparing Other
// payloads byte for byte.
func (k Key) Equal(o Key) bool {
	return k.Kind == o.Kind && k.Rune == o.Rune && k.N == o.N && bytes.Equal(k.Seq, o.Seq)
}

func (k Key) String() string {
	switch k.Kind {
	case KindEOF:
		return "EOF"
	case KindBackspace:
		return "Backspace"
	case KindDelete:
		return "Delete"
	case KindEsc:
		return "Esc"
	case KindUp:
		return "Up"
	case KindDown:
		return "Down"
	case KindRight:
		return "Right"
	case KindLeft:
		return "Left"
	case KindEnd:
		return "End"
	case KindHome:
		return "Home"
	case KindBackTab:
		return "BackTab"
	case KindInsert:
		return "Insert"
	case KindPageUp:
		return "PageUp"
	case KindPageDown:
		return "PageDown"
	case KindF:
		return fmt.Sprintf("F%d", k.N)
	case KindChar:
		return fmt.Sprintf("Char(%q)", k.Rune)
	case KindAlt:
		return fmt.Sprintf("Alt(%q)", k.Rune)
	case KindCtrl:
		return fmt.Sprintf("Ctrl(%q)", k.Rune)
	case KindOther:
		return fmt.Sprintf("Other(% x)", k.Seq)
	}
	return fmt.Sprintf("Key(kind=%d)", k.Kind)
}
