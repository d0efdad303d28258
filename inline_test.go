package inlinestr

import (
	"errors"
	"strings"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInline(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"ascii", "Hello"},
		{"multibyte", "这是一个"},
		{"full", strings.Repeat("x", Capacity)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := newInline(tt.text)
			assert.Equal(t, len(tt.text), in.Len())
			assert.Equal(t, Capacity, in.Cap())
			assert.Equal(t, tt.text, in.View())
			assert.Equal(t, tt.text, in.UnsafeView())
			for i := in.Len(); i < Capacity; i++ {
				if in.b[i] != 0 {
					t.Fatalf("byte %d past length is %#x, want zero", i, in.b[i])
				}
			}
		})
	}
}

func TestNewInlineOverCapacityPanics(t *testing.T) {
	assert.Panics(t, func() {
		newInline(strings.Repeat("x", Capacity+1))
	})
}

func TestInlineViewCorruptPanics(t *testing.T) {
	in := newInline("ok")
	in.b[in.n] = 0xff
	in.n++

	defer func() {
		r := recover()
		require.NotNil(t, r, "View did not panic on corrupt buffer")
		err, ok := r.(error)
		require.True(t, ok, "panic value %T is not an error", r)
		assert.True(t, errors.Is(err, ErrCorrupt), "got %v", err)
	}()
	in.View()
}

func TestInlineViewIgnoresBytesPastLength(t *testing.T) {
	in := newInline("abc")
	in.b[5] = 0xff // garbage past n must not be read

	assert.Equal(t, "abc", in.View())
}

func TestInlineTryAppend(t *testing.T) {
	in := newInline("ab")

	require.True(t, in.tryAppend([]byte("cd")))
	assert.Equal(t, "abcd", in.View())

	rest := strings.Repeat("y", Capacity-in.Len())
	require.True(t, in.tryAppend([]byte(rest)))
	assert.Equal(t, Capacity, in.Len())

	assert.False(t, in.tryAppend([]byte("z")))
	assert.Equal(t, "abcd"+rest, in.View(), "failed append changed content")
}

func TestInlineUnsafeViewSurvivesAppend(t *testing.T) {
	in := newInline("head")
	v := in.UnsafeView()

	require.True(t, in.tryAppend([]byte("-tail")))

	assert.Equal(t, "head", v)
	assert.Equal(t, "head-tail", in.UnsafeView())
	assert.Equal(t, unsafe.StringData(v), unsafe.StringData(in.UnsafeView()))
}

func TestInlineUnsafeViewEmpty(t *testing.T) {
	var in Inline
	assert.Equal(t, "", in.UnsafeView())
}

func TestOwnedViewCorruptPanics(t *testing.T) {
	s := New(strings.Repeat("o", Capacity+1))
	s.heap.b[Capacity] = 0xc3

	defer func() {
		r := recover()
		require.NotNil(t, r, "View did not panic on corrupt buffer")
		err, ok := r.(error)
		require.True(t, ok, "panic value %T is not an error", r)
		assert.True(t, errors.Is(err, ErrCorrupt), "got %v", err)
	}()
	s.View()
}

func TestOwnedLengthIsPerValue(t *testing.T) {
	s := New(strings.Repeat("o", Capacity+1))
	c := s
	s.Append("p")

	assert.Same(t, s.heap, c.heap, "in-place append moved the buffer")
	assert.Equal(t, Capacity+2, s.Len())
	assert.Equal(t, Capacity+1, c.Len())

	c.Append("q")
	assert.NotSame(t, s.heap, c.heap, "stale copy wrote into the shared buffer")
	assert.Equal(t, strings.Repeat("o", Capacity+1)+"p", s.View())
	assert.Equal(t, strings.Repeat("o", Capacity+1)+"q", c.View())
}
