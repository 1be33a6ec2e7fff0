package getch

import "io"

// byteSource pulls one byte at a time from the input stream. A pull may
// block until the terminal delivers the next byte. ok is false once the
// stream has ended.
type byteSource interface {
	readByte() (b byte, ok bool, err error)
}

// readerSource adapts an io.Reader to single-byte pulls.
type readerSource struct {
	r io.Reader
}

func (s readerSource) readByte() (byte, bool, error) {
	var buf [1]byte
	n, err := s.r.Read(buf[:])
	if n > 0 {
		return buf[0], true, nil
	}
	if err != nil && err != io.EOF {
		return 0, false, err
	}
	return 0, false, nil
}

// burstSource replays the second byte of a two-byte burst read before
// falling through to live pulls. If the decoder never consumes the
// pending byte, hasNext stays set and the session keeps the byte as the
// leftover for the next call.
type burstSource struct {
	next    byte
	hasNext bool
	live    byteSource
}

func (s *burstSource) readByte() (byte, bool, error) {
	if s.hasNext {
		s.hasNext = false
		return s.next, true, nil
	}
	return s.live.readByte()
}
