package inlinestr

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"unicode/utf8"
	"unsafe"

	"github.com/pkg/errors"
)

// Text is any value that can be read as UTF-8 text.
type Text interface {
	~string | ~[]byte
}

// Variant identifies where a String keeps its bytes.
type Variant uint8

const (
	// VariantInline stores up to Capacity bytes inside the value.
	VariantInline Variant = iota
	// VariantOwned stores the bytes in a heap buffer owned by the value.
	VariantOwned
)

func (v Variant) String() string {
	switch v {
	case VariantInline:
		return "Inline"
	case VariantOwned:
		return "Owned"
	default:
		return fmt.Sprintf("Variant(%d)", uint8(v))
	}
}

// String is a UTF-8 string stored inline when short and on the heap otherwise.
// The zero value is an empty Inline string.
//
// An Owned String keeps its own length in the inline bytes, so copies made by
// assignment can share one heap buffer while each sees only its own prefix.
type String struct {
	heap   *heapBuf
	tag    Variant
	inline Inline
}

// heapBuf is the storage behind Owned values. len(b) is the longest content
// any value sharing the buffer has written. Bytes below it never change, so
// only a value whose length equals len(b) may append in place; any other
// sharer copies its prefix into a new buffer first.
type heapBuf struct {
	b []byte
}

// New returns a String holding a copy of text. Text that fits in Capacity
// bytes is stored inline.
//
// New always copies, even from a []byte the caller no longer needs; use
// Adopt to hand over a buffer instead. It panics with ErrInvalidUTF8 if text
// is not valid UTF-8.
func New[T Text](text T) String {
	s, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return s
}

// Parse is like New but returns an error wrapping ErrInvalidUTF8 instead of
// panicking.
func Parse[T Text](text T) (String, error) {
	var s String
	if len(text) <= Capacity {
		s.inline = newInline(text)
		if err := checkUTF8(s.inline.bytes()); err != nil {
			return String{}, err
		}
		return s, nil
	}
	heap := make([]byte, len(text))
	copy(heap, text)
	if err := checkUTF8(heap); err != nil {
		return String{}, err
	}
	s.setOwned(&heapBuf{b: heap}, len(heap))
	return s, nil
}

// Adopt returns a String that takes ownership of buf. Content longer than
// Capacity is kept in buf without copying; shorter content is copied inline.
// The caller must not use buf after a successful call.
func Adopt(buf []byte) (String, error) {
	if err := checkUTF8(buf); err != nil {
		return String{}, err
	}
	if len(buf) <= Capacity {
		return String{inline: newInline(buf)}, nil
	}
	var s String
	s.setOwned(&heapBuf{b: buf}, len(buf))
	return s, nil
}

// Variant reports the active representation.
func (s *String) Variant() Variant { return s.tag }

// IsInline reports whether the content is stored inside the value.
func (s *String) IsInline() bool { return s.tag == VariantInline }

// Len returns the length of the content in bytes.
func (s *String) Len() int {
	switch s.tag {
	case VariantInline:
		return s.inline.Len()
	case VariantOwned:
		return s.ownedLen()
	default:
		panic(badVariant(s.tag))
	}
}

// View returns the content as a Go string. Both variants are validated on
// every call and panic with ErrCorrupt if the stored bytes are not valid
// UTF-8; see Inline.View.
func (s *String) View() string {
	switch s.tag {
	case VariantInline:
		return s.inline.View()
	case VariantOwned:
		b := s.owned()
		if !utf8.Valid(b) {
			panic(errors.Wrapf(ErrCorrupt, "owned, %d bytes", len(b)))
		}
		return string(b)
	default:
		panic(badVariant(s.tag))
	}
}

// UnsafeView returns the content without validating or copying it. The
// result aliases the storage of s. For the Owned variant it stays valid for
// good; for the Inline variant it stays valid across appends that do not
// promote s, and only while s is alive and not overwritten.
func (s *String) UnsafeView() string {
	switch s.tag {
	case VariantInline:
		return s.inline.UnsafeView()
	case VariantOwned:
		b := s.owned()
		if len(b) == 0 {
			return ""
		}
		return unsafe.String(&b[0], len(b))
	default:
		panic(badVariant(s.tag))
	}
}

// Append adds suffix to the end of s, promoting s to the Owned variant when
// the result no longer fits inline. It panics with ErrInvalidUTF8 if suffix
// is not valid UTF-8.
func (s *String) Append(suffix string) {
	if err := s.TryAppend(suffix); err != nil {
		panic(err)
	}
}

// AppendBytes is like Append for a byte slice. suffix is copied.
func (s *String) AppendBytes(suffix []byte) {
	if err := checkUTF8(suffix); err != nil {
		panic(err)
	}
	s.appendValid(suffix)
}

// TryAppend is like Append but returns an error wrapping ErrInvalidUTF8 and
// leaves s unchanged when suffix is not valid UTF-8.
func (s *String) TryAppend(suffix string) error {
	if err := checkUTF8String(suffix); err != nil {
		return err
	}
	if len(suffix) == 0 {
		return nil
	}
	s.appendValid(unsafe.Slice(unsafe.StringData(suffix), len(suffix)))
	return nil
}

// appendValid expects validated input and does not retain it.
func (s *String) appendValid(suffix []byte) {
	if len(suffix) == 0 {
		return
	}
	switch s.tag {
	case VariantInline:
		if s.inline.tryAppend(suffix) {
			return
		}
		s.promote(suffix)
	case VariantOwned:
		n := s.ownedLen()
		if n == len(s.heap.b) {
			s.heap.b = append(s.heap.b, suffix...)
			s.setOwnedLen(n + len(suffix))
			return
		}
		// A copy of s has written past n; leave its bytes alone.
		s.setOwned(&heapBuf{b: concat(s.owned(), suffix)}, n+len(suffix))
	default:
		panic(badVariant(s.tag))
	}
}

// promote moves the inline content plus suffix into a new heap buffer. The
// buffer is complete before the tag changes.
func (s *String) promote(suffix []byte) {
	heap := concat(s.inline.bytes(), suffix)
	s.setOwned(&heapBuf{b: heap}, len(heap))
}

func (s *String) setOwned(h *heapBuf, n int) {
	s.heap = h
	s.setOwnedLen(n)
	s.tag = VariantOwned
}

func (s *String) ownedLen() int {
	return int(binary.LittleEndian.Uint64(s.inline.b[:ownedLenSize]))
}

func (s *String) setOwnedLen(n int) {
	binary.LittleEndian.PutUint64(s.inline.b[:ownedLenSize], uint64(n))
	s.inline.n = 0
}

// owned returns the content of an Owned value.
func (s *String) owned() []byte {
	return s.heap.b[:s.ownedLen():s.ownedLen()]
}

func concat(head, tail []byte) []byte {
	b := make([]byte, 0, len(head)+len(tail))
	b = append(b, head...)
	return append(b, tail...)
}

// Clone returns a copy of s that shares no storage with it.
func (s *String) Clone() String {
	switch s.tag {
	case VariantInline:
		return String{inline: s.inline}
	case VariantOwned:
		var c String
		c.setOwned(&heapBuf{b: bytes.Clone(s.owned())}, s.ownedLen())
		return c
	default:
		panic(badVariant(s.tag))
	}
}

// Equal reports whether s and other hold the same text, whatever their
// variants.
func (s *String) Equal(other *String) bool {
	return bytes.Equal(s.raw(), other.raw())
}

// Compare orders s and other by content like strings.Compare.
func (s *String) Compare(other *String) int {
	return bytes.Compare(s.raw(), other.raw())
}

// raw returns the active bytes for read-only use within this package.
func (s *String) raw() []byte {
	switch s.tag {
	case VariantInline:
		return s.inline.bytes()
	case VariantOwned:
		return s.owned()
	default:
		panic(badVariant(s.tag))
	}
}

func badVariant(v Variant) string {
	return fmt.Sprintf("inlinestr: unknown variant %d", uint8(v))
}
