package getch

import (
	"bytes"
	"strconv"
	"unicode/utf8"
)

// CSI final bytes are in this range; everything before the final byte is
// parameter data.
const (
	csiFinalLo = 64
	csiFinalHi = 126
)

// decodeKey classifies lead and pulls however many continuation bytes the
// sequence needs from src. Unrecognized sequences come back as Other
// holding every byte consumed; only a genuine read error aborts the key.
func decodeKey(lead byte, src byteSource) (Key, error) {
	switch {
	case lead == 0x1b:
		return decodeEscape(src)
	case lead == '\n' || lead == '\r':
		// Carriage return is the canonical newline key.
		return Char('\r'), nil
	case lead == '\t':
		return Char('\t'), nil
	case lead == 0x08:
		return Backspace, nil
	case lead == 0x7f:
		return Delete, nil
	case lead >= 0x01 && lead <= 0x1a:
		return Ctrl(rune('a' + lead - 0x01)), nil
	case lead >= 0x1c && lead <= 0x1f:
		// The four control codes above Ctrl-Z map onto Ctrl-4..Ctrl-7.
		return Ctrl(rune('4' + lead - 0x1c)), nil
	case lead == 0x00:
		return EOF, nil
	default:
		r, raw, err := decodeRune(lead, src)
		if err != nil {
			return Key{}, err
		}
		if raw != nil {
			return Other(raw), nil
		}
		return Char(r), nil
	}
}

// decodeEscape handles everything after a consumed 0x1b.
func decodeEscape(src byteSource) (Key, error) {
	b, ok, err := src.readByte()
	if err != nil {
		return Key{}, err
	}
	if !ok {
		return Esc, nil
	}

	switch b {
	case '[':
		return decodeCSI(src)
	case 'O':
		// SS3 function-key form.
		fin, ok, err := src.readByte()
		if err != nil {
			return Key{}, err
		}
		if !ok {
			return Other([]byte{0x1b, 'O'}), nil
		}
		if fin >= 'P' && fin <= 'S' {
			return F(int(fin-'P') + 1), nil
		}
		return Other([]byte{0x1b, 'O', fin}), nil
	default:
		r, raw, err := decodeRune(b, src)
		if err != nil {
			return Key{}, err
		}
		if raw != nil {
			return Other(append([]byte{0x1b}, raw...)), nil
		}
		return Alt(r), nil
	}
}

// decodeCSI handles everything after a consumed "Esc [".
func decodeCSI(src byteSource) (Key, error) {
	b, ok, err := src.readByte()
	if err != nil {
		return Key{}, err
	}
	if !ok {
		return Other([]byte{0x1b, '['}), nil
	}

	switch {
	case b == 'A':
		return Up, nil
	case b == 'B':
		return Down, nil
	case b == 'C':
		return Right, nil
	case b == 'D':
		return Left, nil
	case b == 'F':
		return End, nil
	case b == 'H':
		return Home, nil
	case b == 'Z':
		return BackTab, nil
	case b == '[':
		// Legacy Linux-console encoding of F1-F5.
		fin, ok, err := src.readByte()
		if err != nil {
			return Key{}, err
		}
		if !ok {
			return Other([]byte{0x1b, '[', '['}), nil
		}
		if fin >= 'A' && fin <= 'E' {
			return F(int(fin-'A') + 1), nil
		}
		return Other([]byte{0x1b, '[', '[', fin}), nil
	case b >= '0' && b <= '9':
		params := []byte{b}
		for {
			c, ok, err := src.readByte()
			if err != nil {
				return Key{}, err
			}
			if !ok {
				return Other(append([]byte{0x1b, '['}, params...)), nil
			}
			if c >= csiFinalLo && c <= csiFinalHi {
				return numberedCSI(params, c), nil
			}
			params = append(params, c)
		}
	default:
		return Other([]byte{0x1b, '[', b}), nil
	}
}

// numberedCSI resolves a digit-led CSI sequence once its final byte has
// arrived. Semicolon-separated parameter lists (modified keys) are not
// decoded and fall back to Other with the full sequence intact.
func numberedCSI(params []byte, final byte) Key {
	seq := make([]byte, 0, len(params)+3)
	seq = append(seq, 0x1b, '[')
	seq = append(seq, params...)
	seq = append(seq, final)

	if final != '~' || bytes.IndexByte(params, ';') >= 0 {
		return Other(seq)
	}

	n, err := strconv.Atoi(string(params))
	if err != nil {
		return Other(seq)
	}

	switch n {
	case 1, 7:
		return Home
	case 2:
		return Insert
	case 3:
		return Delete
	case 4, 8:
		return End
	case 5:
		return PageUp
	case 6:
		return PageDown
	}
	switch {
	case n >= 11 && n <= 15:
		return F(n - 10)
	case n >= 17 && n <= 21:
		return F(n - 11)
	case n >= 23 && n <= 24:
		return F(n - 12)
	}
	return Other(seq)
}

// decodeRune decodes lead as ASCII or as the start of a multi-byte UTF-8
// character, pulling continuation bytes until the buffer is valid. On
// success raw is nil. If the buffer reaches utf8.UTFMax without becoming
// valid, or the source ends first, raw holds the bytes collected so far.
func decodeRune(lead byte, src byteSource) (r rune, raw []byte, err error) {
	if lead < utf8.RuneSelf {
		return rune(lead), nil, nil
	}

	buf := make([]byte, 1, utf8.UTFMax)
	buf[0] = lead
	for {
		c, ok, err := src.readByte()
		if err != nil {
			return 0, nil, err
		}
		if !ok {
			return 0, buf, nil
		}
		buf = append(buf, c)
		if utf8.Valid(buf) {
			r, _ := utf8.DecodeRune(buf)
			return r, nil, nil
		}
		if len(buf) >= utf8.UTFMax {
			return 0, buf, nil
		}
	}
}
