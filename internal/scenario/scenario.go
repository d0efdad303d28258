// Package scenario loads and runs scripted String workloads: an initial text,
// a sequence of appends and the expected outcome.
package scenario

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Scenario is one scripted workload.
type Scenario struct {
	Name    string   `yaml:"name"`
	Init    string   `yaml:"init"`
	Appends []string `yaml:"appends,omitempty"`
	Expect  Expect   `yaml:"expect,omitempty"`
}

// Expect lists the checks applied after the last append. Zero fields are not
// checked; Text, Len and Promoted are pointers so that "", 0 and false can be
// expected.
type Expect struct {
	Text      *string `yaml:"text,omitempty"`
	Variant   string  `yaml:"variant,omitempty"`
	Len       *int    `yaml:"len,omitempty"`
	Runes     int     `yaml:"runes,omitempty"`
	HasPrefix string  `yaml:"hasPrefix,omitempty"`
	HasSuffix string  `yaml:"hasSuffix,omitempty"`
	Promoted  *bool   `yaml:"promoted,omitempty"`
}

type file struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Load reads scenarios from a YAML file.
func Load(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrapf(os.ErrNotExist, "scenario file %q", path)
		}
		return nil, errors.Wrapf(err, "read %s", path)
	}
	scs, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return scs, nil
}

// Decode parses a scenario document. Unknown fields, unnamed scenarios and
// duplicate names are rejected.
func Decode(r io.Reader) ([]Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("yaml unmarshal: empty document")
		}
		return nil, errors.Wrap(err, "yaml unmarshal")
	}

	seen := make(map[string]struct{}, len(f.Scenarios))
	for i, sc := range f.Scenarios {
		if sc.Name == "" {
			return nil, errors.Errorf("scenario %d: missing name", i)
		}
		if _, dup := seen[sc.Name]; dup {
			return nil, errors.Errorf("scenario %q: duplicate name", sc.Name)
		}
		seen[sc.Name] = struct{}{}
	}
	return f.Scenarios, nil
}
