package inlinestr

import (
	"unicode/utf8"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidUTF8 is returned (or raised, by New and Append) when input
	// text is not well-formed UTF-8.
	ErrInvalidUTF8 = errors.New("inlinestr: invalid UTF-8")

	// ErrCorrupt is raised by a checked view when stored bytes are not valid
	// UTF-8. It always means an earlier write broke the invariant and is
	// never returned as a value.
	ErrCorrupt = errors.New("inlinestr: corrupt inline buffer")
)

// checkUTF8 reports the offset of the first invalid sequence in b.
func checkUTF8(b []byte) error {
	if utf8.Valid(b) {
		return nil
	}
	off := 0
	for off < len(b) {
		r, size := utf8.DecodeRune(b[off:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		off += size
	}
	return errors.Wrapf(ErrInvalidUTF8, "byte offset %d of %d", off, len(b))
}

func checkUTF8String(s string) error {
	if utf8.ValidString(s) {
		return nil
	}
	off := 0
	for off < len(s) {
		r, size := utf8.DecodeRuneInString(s[off:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		off += size
	}
	return errors.Wrapf(ErrInvalidUTF8, "byte offset %d of %d", off, len(s))
}
