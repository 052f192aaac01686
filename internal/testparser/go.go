package testparser

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	goResultLine = regexp.MustCompile(`^\s*---\s+(PASS|FAIL|SKIP):\s+(\S+)`)
	goRunLine    = regexp.MustCompile(`^=== (?:RUN|CONT|PAUSE|NAME)\s+(\S+)`)
	goErrorLine  = regexp.MustCompile(`^\s+\S+\.go:\d+:\s*(.*)$`)
)

// maxReasonLen keeps failure reasons to one terminal line.
const maxReasonLen = 80

// GoParser parses plain go test -v output:
//
//	=== RUN   TestFoo
//	    foo_test.go:15: expected 42, got 0
//	--- FAIL: TestFoo (0.01s)
type GoParser struct{}

// Name returns the parser name.
func (p *GoParser) Name() string {
	return "go"
}

// Parse extracts test counts and failed tests in the order they finished.
// A failure reason is the first "file.go:N:" line printed by the test.
func (p *GoParser) Parse(output string) TestCounts {
	counts := TestCounts{}
	reasons := make(map[string]string)
	current := ""

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")

		if m := goRunLine.FindStringSubmatch(line); m != nil {
			current = m[1]
			continue
		}

		if m := goResultLine.FindStringSubmatch(line); m != nil {
			switch m[1] {
			case "PASS":
				counts.Passed++
			case "SKIP":
				counts.Skipped++
			case "FAIL":
				counts.Failed++
				counts.FailedTests = append(counts.FailedTests, FailedTest{
					Name:   m[2],
					Reason: reasons[m[2]],
				})
			}
			current = ""
			continue
		}

		if current == "" {
			continue
		}
		if m := goErrorLine.FindStringSubmatch(line); m != nil {
			if _, seen := reasons[current]; !seen {
				reasons[current] = truncateReason(m[1])
			}
		}
	}

	if counts.Passed > 0 || counts.Failed > 0 || counts.Skipped > 0 {
		counts.Parsed = true
		counts.Total = counts.Passed + counts.Failed + counts.Skipped
	}
	return counts
}

func truncateReason(reason string) string {
	reason = strings.TrimSpace(reason)
	if len(reason) > maxReasonLen {
		cut := maxReasonLen - 3
		for cut > 0 && !utf8.RuneStart(reason[cut]) {
			cut--
		}
		reason = reason[:cut] + "..."
	}
	return reason
}
