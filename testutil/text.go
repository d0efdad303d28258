// Package testutil provides text fixtures and helpers shared by the tests.
package testutil

import (
	"math/rand/v2"
	"strings"
	"unicode/utf8"
)

const (
	// Hello is a short ASCII fixture that always fits inline.
	Hello = "Hello Rust! "

	// LongCJK is a multi-byte fixture longer than any inline capacity.
	LongCJK = "这是一个超过了三十个字节的很长很长的字符串"
)

// Rune pools by encoded width.
var pools = [...][]rune{
	{'a', 'z', 'Q', '0', ' ', '!'},
	{'é', 'ß', 'ж', 'Ω', 'ñ'},
	{'这', '字', '€', 'あ', '한'},
	{'😀', '🚀', '𝄞', '🦀'},
}

// Text returns deterministic valid UTF-8 of exactly n bytes mixing one- to
// four-byte characters.
func Text(n int, seed uint64) string {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	var sb strings.Builder
	sb.Grow(n)
	for sb.Len() < n {
		width := 1 + rng.IntN(min(4, n-sb.Len()))
		pool := pools[width-1]
		sb.WriteRune(pool[rng.IntN(len(pool))])
	}
	return sb.String()
}

// Split cuts text into pieces of at most size bytes without splitting a
// character.
func Split(text string, size int) []string {
	var parts []string
	for len(text) > 0 {
		end := min(size, len(text))
		for end < len(text) && !utf8.RuneStart(text[end]) {
			end--
		}
		if end == 0 {
			_, end = utf8.DecodeRuneInString(text)
		}
		parts = append(parts, text[:end])
		text = text[end:]
	}
	return parts
}
