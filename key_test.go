package getch

import "testing"

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{Up, "Up"},
		{BackTab, "BackTab"},
		{EOF, "EOF"},
		{F(5), "F5"},
		{F(12), "F12"},
		{Char('q'), `Char('q')`},
		{Char('é'), `Char('é')`},
		{Alt('x'), `Alt('x')`},
		{Ctrl('c'), `Ctrl('c')`},
		{Other([]byte{0x1b, 0x5b}), "Other(1b 5b)"},
	}

	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestKeyEqual(t *testing.T) {
	if !Other([]byte{0x1b, 'O'}).Equal(Other([]byte{0x1b, 'O'})) {
		t.Error("identical Other payloads compare unequal")
	}
	if Other([]byte{0x1b}).Equal(Other([]byte{0x1b, 'O'})) {
		t.Error("different Other payloads compare equal")
	}
	if Char('a').Equal(Alt('a')) {
		t.Error("Char and Alt with the same rune compare equal")
	}
	if F(1).Equal(F(2)) {
		t.Error("different function keys compare equal")
	}
}
