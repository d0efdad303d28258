package inlinestr

import (
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Read-only helpers. They work on the stored bytes directly, so none of them
// copies the content.

// Contains reports whether substr is within s.
func (s *String) Contains(substr string) bool {
	return strings.Contains(s.UnsafeView(), substr)
}

// ContainsRune reports whether r is within s.
func (s *String) ContainsRune(r rune) bool {
	return strings.ContainsRune(s.UnsafeView(), r)
}

// Index returns the byte index of the first instance of substr in s, or -1.
func (s *String) Index(substr string) int {
	return strings.Index(s.UnsafeView(), substr)
}

// HasPrefix reports whether s begins with prefix.
func (s *String) HasPrefix(prefix string) bool {
	return strings.HasPrefix(s.UnsafeView(), prefix)
}

// HasSuffix reports whether s ends with suffix.
func (s *String) HasSuffix(suffix string) bool {
	return strings.HasSuffix(s.UnsafeView(), suffix)
}

// StartsWithRune reports whether the first character of s is r.
func (s *String) StartsWithRune(r rune) bool {
	first, size := utf8.DecodeRuneInString(s.UnsafeView())
	return size > 0 && first == r
}

// EndsWithRune reports whether the last character of s is r.
func (s *String) EndsWithRune(r rune) bool {
	last, size := utf8.DecodeLastRuneInString(s.UnsafeView())
	return size > 0 && last == r
}

// RuneCount returns the length of s in characters.
func (s *String) RuneCount() int {
	return utf8.RuneCountInString(s.UnsafeView())
}

// Runes yields each character of s with its byte offset. s must not be
// appended to while iterating.
func (s *String) Runes() iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		for i, r := range s.UnsafeView() {
			if !yield(i, r) {
				return
			}
		}
	}
}

// Graphemes returns the number of user-perceived characters in s.
func (s *String) Graphemes() int {
	return uniseg.GraphemeClusterCount(s.UnsafeView())
}

// Width returns the number of terminal cells s occupies.
func (s *String) Width() int {
	return runewidth.StringWidth(s.UnsafeView())
}
