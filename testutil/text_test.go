package testutil

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTextExactLength(t *testing.T) {
	for n := 0; n < 200; n++ {
		s := Text(n, uint64(n))
		if len(s) != n {
			t.Fatalf("Text(%d) has %d bytes", n, len(s))
		}
		if !utf8.ValidString(s) {
			t.Fatalf("Text(%d) is not valid UTF-8: %q", n, s)
		}
	}
}

func TestTextDeterministic(t *testing.T) {
	if Text(64, 7) != Text(64, 7) {
		t.Error("same seed produced different text")
	}
	if Text(64, 7) == Text(64, 8) {
		t.Error("different seeds produced the same text")
	}
}

func TestSplit(t *testing.T) {
	text := Text(100, 3)
	parts := Split(text, 5)

	if got := strings.Join(parts, ""); got != text {
		t.Fatalf("joined parts differ from input")
	}
	for i, p := range parts {
		if len(p) == 0 || len(p) > 5 {
			t.Errorf("part %d has %d bytes", i, len(p))
		}
		if !utf8.ValidString(p) {
			t.Errorf("part %d splits a character: %q", i, p)
		}
	}
}

func TestLongCJKExceedsAnyCapacity(t *testing.T) {
	if len(LongCJK) <= 50 {
		t.Errorf("LongCJK is only %d bytes", len(LongCJK))
	}
	if len(Hello) != 12 {
		t.Errorf("Hello is %d bytes, want 12", len(Hello))
	}
}
