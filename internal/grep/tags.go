package grep

import (
	"sort"
	"strings"
)

// TagPrefix is prepended to tag names when prefixing is forced.
const TagPrefix = "@"

// isOrSeparator reports whether r separates OR groups.
func isOrSeparator(r rune) bool {
	return r == ' ' || r == ','
}

// ParseTagExpression parses a tag expression such as "@smoke+@fast -@slow".
//
// Spaces and commas separate OR groups, "+" separates the AND terms of a
// group and a leading "-" negates a term. A term written with a double dash
// ("--@flaky") is removed from its group and negated in every group instead;
// when the expression has no other groups those terms form the only group.
//
// When forcePrefix is set every tag name that does not start with "@" gets
// one. Empty input, or input made only of separators, yields an empty
// expression.
func ParseTagExpression(s string, forcePrefix bool) TagExpression {
	if s == "" {
		return nil
	}

	var (
		expr        TagExpression
		explicitNot TagGroup
	)

	for _, token := range strings.FieldsFunc(s, isOrSeparator) {
		var group TagGroup
		for _, raw := range strings.Split(token, "+") {
			term, global, ok := parseTagTerm(raw, forcePrefix)
			if !ok {
				continue
			}
			if global {
				explicitNot = append(explicitNot, term)
				continue
			}
			group = append(group, term)
		}
		if len(group) > 0 {
			expr = append(expr, group)
		}
	}

	if len(explicitNot) == 0 {
		return expr
	}
	if len(expr) == 0 {
		return TagExpression{explicitNot}
	}

	for i, group := range expr {
		merged := make(TagGroup, 0, len(group)+len(explicitNot))
		merged = append(merged, group...)
		merged = append(merged, explicitNot...)
		expr[i] = merged
	}
	return expr
}

// parseTagTerm parses one AND term. global is set for "--" terms that apply
// to every group. ok is false when nothing remains after stripping markers.
func parseTagTerm(raw string, forcePrefix bool) (term TagTerm, global, ok bool) {
	switch {
	case strings.HasPrefix(raw, "--"):
		term = TagTerm{Tag: raw[2:], Invert: true}
		global = true
	case strings.HasPrefix(raw, "-"):
		term = TagTerm{Tag: raw[1:], Invert: true}
	default:
		term = TagTerm{Tag: raw}
	}

	if term.Tag == "" {
		return TagTerm{}, false, false
	}
	if forcePrefix && !strings.HasPrefix(term.Tag, TagPrefix) {
		term.Tag = TagPrefix + term.Tag
	}
	return term, global, true
}

// ParseTagList parses a list of tag expressions as if they were written as
// one comma-separated expression.
func ParseTagList(tags []string, forcePrefix bool) TagExpression {
	return ParseTagExpression(strings.Join(tags, ","), forcePrefix)
}

// MentionedTags returns the sorted, de-duplicated tag names referenced by a
// tag expression, without negation markers. It is meant for diagnostics such
// as warning about tags that no test declares.
func MentionedTags(s string) []string {
	if s == "" {
		return nil
	}

	spaced := strings.NewReplacer("+", " ", ",", " ").Replace(s)

	seen := make(map[string]struct{})
	var tags []string
	for _, part := range strings.Split(spaced, " ") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		tag := strings.TrimPrefix(part, "-")
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	sort.Strings(tags)
	return tags
}
