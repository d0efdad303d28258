package inlinestr

import (
	"fmt"
	"io"
)

// String returns the content. It implements fmt.Stringer.
func (s String) String() string { return s.View() }

// GoString returns the content, so debug output matches String.
func (s String) GoString() string { return s.View() }

// Format implements fmt.Formatter by formatting the content as a plain Go
// string with the same verb and flags. %#v prints GoString.
func (s String) Format(state fmt.State, verb rune) {
	if verb == 'v' && state.Flag('#') {
		io.WriteString(state, s.GoString())
		return
	}
	fmt.Fprintf(state, fmt.FormatString(state, verb), s.View())
}
