package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/comalice/inlinestr"
)

// Builder produces a String holding a given text by one particular route.
// The same property test can run over every builder to check that the route
// a value took does not change what it holds.
type Builder struct {
	Name  string
	Build func(t testing.TB, text string) inlinestr.String
}

// Builders returns every construction route.
func Builders() []Builder {
	return []Builder{
		{Name: "New", Build: buildNew},
		{Name: "NewBytes", Build: buildNewBytes},
		{Name: "Adopt", Build: buildAdopt},
		{Name: "AppendByRune", Build: buildAppendByRune},
		{Name: "Clone", Build: buildClone},
	}
}

func buildNew(t testing.TB, text string) inlinestr.String {
	return inlinestr.New(text)
}

func buildNewBytes(t testing.TB, text string) inlinestr.String {
	return inlinestr.New([]byte(text))
}

func buildAdopt(t testing.TB, text string) inlinestr.String {
	s, err := inlinestr.Adopt([]byte(text))
	require.NoError(t, err)
	return s
}

func buildAppendByRune(t testing.TB, text string) inlinestr.String {
	var s inlinestr.String
	for _, r := range text {
		s.Append(string(r))
	}
	return s
}

func buildClone(t testing.TB, text string) inlinestr.String {
	orig := inlinestr.New(text)
	return orig.Clone()
}

// RequireString checks content and representation of s against want.
func RequireString(t testing.TB, s *inlinestr.String, want string) {
	t.Helper()
	require.Equal(t, want, s.View())
	require.Equal(t, len(want), s.Len())
	require.Equal(t, ExpectedVariant(len(want)), s.Variant(), "variant for %d bytes", len(want))
}

// ExpectedVariant is the variant New picks for n bytes.
func ExpectedVariant(n int) inlinestr.Variant {
	if n <= inlinestr.Capacity {
		return inlinestr.VariantInline
	}
	return inlinestr.VariantOwned
}
