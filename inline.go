package inlinestr

import (
	"unicode/utf8"
	"unsafe"

	"github.com/pkg/errors"
)

// Inline is a fixed-capacity text buffer stored entirely inside its value.
//
// Only b[:n] is meaningful; bytes past n are never read through a view.
// Bytes below n are written once and never changed afterwards, so a view
// taken earlier stays valid across later appends.
type Inline struct {
	n uint8
	b [Capacity]byte
}

// newInline copies text into a fresh buffer. The caller must ensure
// len(text) <= Capacity.
func newInline[T Text](text T) Inline {
	var in Inline
	in.n = uint8(copy(in.b[:len(text)], text))
	return in
}

// View returns a copy of the stored text.
//
// It panics with ErrCorrupt if the stored bytes are not valid UTF-8, which can
// only happen after a bug in this package.
func (in *Inline) View() string {
	b := in.b[:in.n]
	if !utf8.Valid(b) {
		panic(errors.Wrapf(ErrCorrupt, "%d bytes", in.n))
	}
	return string(b)
}

// UnsafeView returns the stored text without validating or copying it.
//
// The result aliases the buffer: it is valid only while in is alive and not
// overwritten as a whole. Appends do not invalidate it.
func (in *Inline) UnsafeView() string {
	if in.n == 0 {
		return ""
	}
	return unsafe.String(&in.b[0], int(in.n))
}

// Len returns the number of bytes in use.
func (in *Inline) Len() int { return int(in.n) }

// Cap returns the inline capacity.
func (in *Inline) Cap() int { return Capacity }

// tryAppend copies suffix after the current content if it fits.
func (in *Inline) tryAppend(suffix []byte) bool {
	n := int(in.n)
	if len(suffix) > Capacity-n {
		return false
	}
	in.n = uint8(n + copy(in.b[n:n+len(suffix)], suffix))
	return true
}

func (in *Inline) bytes() []byte { return in.b[:in.n] }
