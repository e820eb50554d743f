// Package termio reads single keypresses from a terminal, decoding the
// escape sequences arrow and paging keys arrive as.
package termio

import (
	"io"
	"os"

	"golang.org/x/term"
)

type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyEnter
	KeyQuit
)

// ReadKey blocks until one logical keypress is available on stdin.
// The terminal is switched to raw mode for the duration of the read and
// restored afterward, on error paths included.
func ReadKey() (Key, error) {
	fd := int(os.Stdin.Fd())
	old, err := term.MakeRaw(fd)
	if err != nil {
		return KeyOther, err
	}
	defer term.Restore(fd, old)

	return DecodeKey(os.Stdin)
}

// DecodeKey reads one keypress worth of bytes from r and classifies it.
// An ESC byte is followed by two more; the pgup/pgdn sequences carry a
// fourth byte ('~'). Sequences this decoder does not recognize come back
// as KeyOther, not an error.
func DecodeKey(r io.Reader) (Key, error) {
	b, err := readByte(r)
	if err != nil {
		return KeyOther, err
	}

	switch b {
	case 0x1b:
		// fall through to escape sequence handling below
	case '\r', '\n':
		return KeyEnter, nil
	case 'q', 0x03:
		return KeyQuit, nil
	default:
		return KeyOther, nil
	}

	var seq [2]byte
	if _, err := io.ReadFull(r, seq[:]); err != nil {
		return KeyOther, err
	}
	if seq[0] != '[' {
		return KeyOther, nil
	}

	switch seq[1] {
	case 'A':
		return KeyUp, nil
	case 'B':
		return KeyDown, nil
	case '5', '6':
		// CSI 5~ / CSI 6~
		tail, err := readByte(r)
		if err != nil {
			return KeyOther, err
		}
		if tail != '~' {
			return KeyOther, nil
		}
		if seq[1] == '5' {
			return KeyPageUp, nil
		}
		return KeyPageDown, nil
	}

	return KeyOther, nil
}

func readByte(r io.Reader) (byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}
