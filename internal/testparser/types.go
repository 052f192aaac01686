// Package testparser reads test runner output and reports which tests
// failed, so they can be selected again with a title expression.
package testparser

// FailedTest holds information about a single failed test.
type FailedTest struct {
	Name   string `json:"name"`             // e.g. "TestCart/adds_items"
	Reason string `json:"reason,omitempty"` // first failure message, if any
}

// TestCounts holds parsed test result counts.
type TestCounts struct {
	Passed      int
	Failed      int
	Skipped     int
	Total       int
	Parsed      bool // true if at least one test result was found
	FailedTests []FailedTest
}

// Add aggregates other into tc. Parsed is sticky: the aggregate is parsed
// when any of its parts is.
func (tc *TestCounts) Add(other *TestCounts) {
	if other == nil {
		return
	}
	tc.Passed += other.Passed
	tc.Failed += other.Failed
	tc.Skipped += other.Skipped
	tc.Total += other.Total
	tc.FailedTests = append(tc.FailedTests, other.FailedTests...)
	if other.Parsed {
		tc.Parsed = true
	}
}

// Parser extracts test counts from runner output.
type Parser interface {
	Parse(output string) TestCounts
	Name() string
}
