package testparser

import (
	"strings"
	"testing"
)

// FuzzParsers checks that both parsers hold their count invariants on
// arbitrary input.
// Run: go test -fuzz=FuzzParsers -fuzztime=30s ./internal/testparser
func FuzzParsers(f *testing.F) {
	seeds := []string{
		"=== RUN   TestFoo\n--- PASS: TestFoo (0.00s)\nPASS\nok\texample.com/pkg\t0.012s",
		"=== RUN   TestFoo\n    foo_test.go:15: expected 42, got 0\n--- FAIL: TestFoo (0.01s)\nFAIL",
		"    --- FAIL: TestFoo/sub (0.00s)",
		`{"Action":"fail","Test":"TestFoo"}`,
		`{"Action":"output","Test":"TestFoo","Output":"    x.go:1: boom\n"}`,
		"",
		"--- FAIL: (0.00s)",
		"=== RUN   " + strings.Repeat("x", 1000),
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	parsers := []Parser{&GoParser{}, &JSONParser{}}
	f.Fuzz(func(t *testing.T, input string) {
		for _, parser := range parsers {
			result := parser.Parse(input)

			if result.Parsed {
				if sum := result.Passed + result.Failed + result.Skipped; result.Total != sum {
					t.Errorf("%s: total=%d, sum=%d", parser.Name(), result.Total, sum)
				}
			} else if result.Total != 0 || len(result.FailedTests) != 0 {
				t.Errorf("%s: unparsed result has counts: %+v", parser.Name(), result)
			}
			if len(result.FailedTests) != result.Failed {
				t.Errorf("%s: %d failed tests for %d failures", parser.Name(), len(result.FailedTests), result.Failed)
			}

			for _, name := range FailedNames(result) {
				if name == "" || strings.Contains(name, ";") {
					t.Errorf("%s: unusable failed name %q", parser.Name(), name)
				}
			}
		}
	})
}
