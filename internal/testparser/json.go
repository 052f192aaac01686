package testparser

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"
)

// TestEvent is one line of go test -json output.
type TestEvent struct {
	Time    string  `json:"Time"`
	Action  string  `json:"Action"`
	Package string  `json:"Package"`
	Test    string  `json:"Test"`
	Elapsed float64 `json:"Elapsed"`
	Output  string  `json:"Output"`
}

// JSONParser parses go test -json output.
type JSONParser struct{}

// Name returns the parser name.
func (p *JSONParser) Name() string {
	return "json"
}

// Parse extracts test counts from go test -json output.
func (p *JSONParser) Parse(output string) TestCounts {
	return p.ParseJSON(strings.NewReader(output))
}

// ParseJSON reads go test -json events from r. Lines that are not JSON
// events are ignored, as are package-level events.
func (p *JSONParser) ParseJSON(r io.Reader) TestCounts {
	counts := TestCounts{}
	output := make(map[string][]string)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "{") {
			continue
		}

		var event TestEvent
		if err := json.Unmarshal([]byte(line), &event); err != nil {
			continue
		}
		if event.Test == "" {
			continue
		}

		switch event.Action {
		case "output":
			if event.Output != "" {
				output[event.Test] = append(output[event.Test], event.Output)
			}
		case "pass":
			counts.Passed++
			delete(output, event.Test)
		case "skip":
			counts.Skipped++
			delete(output, event.Test)
		case "fail":
			counts.Failed++
			counts.FailedTests = append(counts.FailedTests, FailedTest{
				Name:   event.Test,
				Reason: failureReason(output[event.Test]),
			})
			delete(output, event.Test)
		}
	}

	if counts.Passed > 0 || counts.Failed > 0 || counts.Skipped > 0 {
		counts.Parsed = true
		counts.Total = counts.Passed + counts.Failed + counts.Skipped
	}
	return counts
}

// failureReason picks the first "file.go:N:" message from a test's output,
// falling back to its first line of output that is not a status line.
func failureReason(lines []string) string {
	fallback := ""
	for _, line := range lines {
		if m := goErrorLine.FindStringSubmatch(strings.TrimRight(line, "\r\n")); m != nil {
			return truncateReason(m[1])
		}
		trimmed := strings.TrimSpace(line)
		if fallback == "" && trimmed != "" && !isStatusLine(trimmed) {
			fallback = trimmed
		}
	}
	return truncateReason(fallback)
}

func isStatusLine(line string) bool {
	return strings.HasPrefix(line, "=== ") ||
		strings.HasPrefix(line, "--- PASS") ||
		strings.HasPrefix(line, "--- FAIL") ||
		strings.HasPrefix(line, "--- SKIP")
}
