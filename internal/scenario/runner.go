package scenario

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/comalice/inlinestr"
)

// ErrExpectation is returned by Run when the final value does not match the
// scenario's Expect block.
var ErrExpectation = errors.New("expectation failed")

// Op names recorded in a Step.
const (
	OpNew    = "new"
	OpAppend = "append"
)

// Step records the value's representation after one operation.
type Step struct {
	Op       string
	Arg      string
	Variant  inlinestr.Variant
	Len      int
	Promoted bool // this step moved the value from Inline to Owned
}

// Result is the outcome of a scenario run.
type Result struct {
	Name     string
	Final    inlinestr.String
	Steps    []Step
	Promoted bool
}

// Run executes sc and checks its expectations. The returned Result is
// populated as far as the run got, even when an error is returned.
func Run(sc Scenario) (Result, error) {
	res := Result{Name: sc.Name}

	s, err := inlinestr.Parse(sc.Init)
	if err != nil {
		return res, errors.Wrapf(err, "scenario %q: init", sc.Name)
	}
	res.Final = s
	res.Steps = append(res.Steps, Step{Op: OpNew, Arg: sc.Init, Variant: s.Variant(), Len: s.Len()})

	for i, suffix := range sc.Appends {
		before := res.Final.Variant()
		if err := res.Final.TryAppend(suffix); err != nil {
			return res, errors.Wrapf(err, "scenario %q: append %d", sc.Name, i)
		}
		step := Step{
			Op:      OpAppend,
			Arg:     suffix,
			Variant: res.Final.Variant(),
			Len:     res.Final.Len(),
		}
		if before == inlinestr.VariantInline && step.Variant == inlinestr.VariantOwned {
			step.Promoted = true
			res.Promoted = true
		}
		res.Steps = append(res.Steps, step)
	}

	if err := check(sc.Expect, &res); err != nil {
		return res, errors.Wrapf(err, "scenario %q", sc.Name)
	}
	return res, nil
}

func check(exp Expect, res *Result) error {
	s := &res.Final
	var failures []string
	fail := func(format string, args ...any) {
		failures = append(failures, fmt.Sprintf(format, args...))
	}

	if exp.Text != nil && s.View() != *exp.Text {
		fail("text: got %q want %q", s.View(), *exp.Text)
	}
	if exp.Variant != "" && !strings.EqualFold(s.Variant().String(), exp.Variant) {
		fail("variant: got %s want %s", s.Variant(), exp.Variant)
	}
	if exp.Len != nil && s.Len() != *exp.Len {
		fail("len: got %d want %d", s.Len(), *exp.Len)
	}
	if exp.Runes != 0 && s.RuneCount() != exp.Runes {
		fail("runes: got %d want %d", s.RuneCount(), exp.Runes)
	}
	if exp.HasPrefix != "" && !s.HasPrefix(exp.HasPrefix) {
		fail("prefix %q not found", exp.HasPrefix)
	}
	if exp.HasSuffix != "" && !s.HasSuffix(exp.HasSuffix) {
		fail("suffix %q not found", exp.HasSuffix)
	}
	if exp.Promoted != nil && res.Promoted != *exp.Promoted {
		fail("promoted: got %t want %t", res.Promoted, *exp.Promoted)
	}

	if len(failures) > 0 {
		return errors.Wrap(ErrExpectation, strings.Join(failures, "; "))
	}
	return nil
}

// RunAll runs every scenario and returns the results in order along with the
// first error seen.
func RunAll(scs []Scenario) ([]Result, error) {
	results := make([]Result, 0, len(scs))
	var first error
	for _, sc := range scs {
		res, err := Run(sc)
		results = append(results, res)
		if err != nil && first == nil {
			first = err
		}
	}
	return results, first
}
