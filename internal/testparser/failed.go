package testparser

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// FailedNames returns the names of failed tests that can be used as title
// clauses. A parent test that failed only because of its subtests is
// dropped in favour of the subtests. Names are de-duplicated and keep the
// order in which the tests failed.
func FailedNames(counts TestCounts) []string {
	var names []string
	seen := make(map[string]struct{})

	for _, ft := range counts.FailedTests {
		name := strings.TrimSpace(ft.Name)
		if name == "" {
			continue
		}
		if strings.Contains(name, ";") {
			log.Warn().Str("test", name).Msg("cannot select a test whose name contains ';'")
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		if hasFailedSubtest(counts.FailedTests, name) {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

func hasFailedSubtest(failed []FailedTest, parent string) bool {
	prefix := parent + "/"
	for _, ft := range failed {
		if strings.HasPrefix(ft.Name, prefix) {
			return true
		}
	}
	return false
}

// TitleExpression joins names into a title expression selecting exactly
// those tests.
func TitleExpression(names []string) string {
	return strings.Join(names, ";")
}
