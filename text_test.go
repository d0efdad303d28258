package inlinestr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/comalice/inlinestr"
	"github.com/comalice/inlinestr/testutil"
)

func TestTextQueries(t *testing.T) {
	for _, b := range testutil.Builders() {
		t.Run(b.Name, func(t *testing.T) {
			short := b.Build(t, "Hello Rust")
			long := b.Build(t, testutil.LongCJK)

			assert.True(t, short.HasSuffix("Rust"))
			assert.True(t, short.HasPrefix("Hell"))
			assert.True(t, short.Contains("o R"))
			assert.True(t, short.ContainsRune('R'))
			assert.Equal(t, 6, short.Index("Rust"))
			assert.Equal(t, -1, short.Index("Go"))
			assert.Equal(t, 10, short.RuneCount())

			assert.True(t, long.StartsWithRune('这'))
			assert.True(t, long.EndsWithRune('串'))
			assert.False(t, long.StartsWithRune('串'))
			assert.True(t, long.Contains("三十个字节"))
			assert.Equal(t, 63, long.Len())
			assert.Equal(t, 21, long.RuneCount())
		})
	}
}

func TestTextQueriesEmpty(t *testing.T) {
	var s inlinestr.String

	assert.False(t, s.StartsWithRune('a'))
	assert.False(t, s.EndsWithRune('a'))
	assert.True(t, s.HasPrefix(""))
	assert.Equal(t, 0, s.RuneCount())
	assert.Equal(t, 0, s.Graphemes())
	assert.Equal(t, 0, s.Width())
}

func TestRunes(t *testing.T) {
	s := inlinestr.New("aé这😀")

	var offsets []int
	var runes []rune
	for i, r := range s.Runes() {
		offsets = append(offsets, i)
		runes = append(runes, r)
	}

	assert.Equal(t, []int{0, 1, 3, 6}, offsets)
	assert.Equal(t, []rune{'a', 'é', '这', '😀'}, runes)
}

func TestRunesStopsEarly(t *testing.T) {
	s := inlinestr.New(testutil.LongCJK)

	n := 0
	for range s.Runes() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestGraphemesAndWidth(t *testing.T) {
	tests := []struct {
		text      string
		graphemes int
		width     int
	}{
		{"Hello", 5, 5},
		{"这是", 2, 4},
		{"é", 1, 1},
		{"e\u0301", 1, 1},
	}
	for _, tt := range tests {
		s := inlinestr.New(tt.text)
		assert.Equal(t, tt.graphemes, s.Graphemes(), "graphemes of %q", tt.text)
		assert.Equal(t, tt.width, s.Width(), "width of %q", tt.text)
	}
}

func TestGraphemesDifferFromRunes(t *testing.T) {
	flags := inlinestr.New("🇩🇪🇫🇷")
	accent := inlinestr.New("e\u0301")

	assert.Equal(t, 4, flags.RuneCount())
	assert.Equal(t, 2, flags.Graphemes())
	assert.Equal(t, 2, accent.RuneCount())
	assert.Equal(t, 1, accent.Graphemes())
}
