// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/comalice/inlinestr/internal/scenario"
	"github.com/comalice/inlinestr/testutil"
)

// GenTexts creates n distinct texts of exactly size bytes.
func GenTexts(n, size int) []string {
	if n < 1 {
		n = 1
	}
	texts := make([]string, n)
	for i := range texts {
		texts[i] = testutil.Text(size, uint64(i))
	}
	return texts
}

// GenAppendScenario creates a scenario that starts empty and appends
// numAppends pieces of pieceSize bytes.
func GenAppendScenario(numAppends, pieceSize int) scenario.Scenario {
	if numAppends < 1 {
		numAppends = 1
	}
	sc := scenario.Scenario{
		Name:    fmt.Sprintf("append_%dx%d", numAppends, pieceSize),
		Appends: make([]string, numAppends),
	}
	for i := range sc.Appends {
		sc.Appends[i] = strings.Repeat(string(rune('a'+i%26)), pieceSize)
	}
	n := numAppends * pieceSize
	sc.Expect.Len = &n
	return sc
}

// GenScenarioYAML generates a scenario document with n append scenarios.
func GenScenarioYAML(n, numAppends, pieceSize int) []byte {
	doc := struct {
		Scenarios []scenario.Scenario `yaml:"scenarios"`
	}{}
	for i := 0; i < n; i++ {
		sc := GenAppendScenario(numAppends, pieceSize)
		sc.Name = fmt.Sprintf("%s_%d", sc.Name, i)
		doc.Scenarios = append(doc.Scenarios, sc)
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		panic(err)
	}
	return data
}
