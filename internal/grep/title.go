package grep

import "strings"

// ParseTitleClause parses a single title pattern. A leading "-" inverts the
// clause. It returns false for empty input and for a clause that would
// match the empty string.
func ParseTitleClause(s string) (TitleClause, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return TitleClause{}, false
	}

	if rest, ok := strings.CutPrefix(s, "-"); ok {
		if rest == "" {
			return TitleClause{}, false
		}
		return TitleClause{Title: rest, Invert: true}, true
	}

	return TitleClause{Title: s}, true
}

// ParseTitleExpression splits s on ";" and parses every part as a title
// clause. Empty parts are dropped.
func ParseTitleExpression(s string) TitleExpression {
	if s == "" {
		return nil
	}

	var expr TitleExpression
	for _, part := range strings.Split(s, ";") {
		if clause, ok := ParseTitleClause(part); ok {
			expr = append(expr, clause)
		}
	}
	return expr
}
