package grep

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrMalformedQuery is returned by Query.Validate for queries that could not
// have been produced by the parsers.
var ErrMalformedQuery = errors.New("malformed selection query")

// BuildQuery parses the title and tag filters of one selection request.
func BuildQuery(title, tags string, forcePrefix bool) Query {
	return Query{
		Title: ParseTitleExpression(title),
		Tags:  ParseTagExpression(tags, forcePrefix),
	}
}

// Validate checks the structural invariants the parsers guarantee. It only
// fails for hand-built queries, which indicates a bug in the caller.
func (q Query) Validate() error {
	for i, clause := range q.Title {
		if clause.Title == "" {
			return fmt.Errorf("%w: title clause %d is empty", ErrMalformedQuery, i)
		}
	}
	for i, group := range q.Tags {
		if len(group) == 0 {
			return fmt.Errorf("%w: tag group %d has no terms", ErrMalformedQuery, i)
		}
		for j, term := range group {
			if term.Tag == "" {
				return fmt.Errorf("%w: tag group %d term %d is empty", ErrMalformedQuery, i, j)
			}
		}
	}
	return nil
}

// ShouldRun decides whether a test runs.
//
// tags are the effective tags of the test (enclosing groups first, then its
// own) and required are its accumulated required tags. When untaggedOnly is
// set the test runs if and only if it has no effective tags. Otherwise the
// title, the tag expression and the required-tags gate must all pass; the
// tag expression is matched against tags and required together.
func ShouldRun(q Query, title string, tags []string, untaggedOnly bool, required []string) bool {
	if untaggedOnly {
		return len(tags) == 0
	}

	combined := make([]string, 0, len(tags)+len(required))
	combined = append(combined, tags...)
	combined = append(combined, required...)

	return TitleMatches(q.Title, title) &&
		TagsMatch(q.Tags, combined) &&
		RequiredTagsMatch(q.Tags, required)
}

// TitleMatches reports whether title satisfies the title expression. An
// empty title or an empty expression always matches.
func TitleMatches(expr TitleExpression, title string) bool {
	if title == "" || len(expr) == 0 {
		return true
	}

	matchedPositive := false
	hasPositive := false
	for _, clause := range expr {
		found := strings.Contains(title, clause.Title)
		if clause.Invert {
			if found {
				return false
			}
			continue
		}
		hasPositive = true
		if found {
			matchedPositive = true
		}
	}

	return !hasPositive || matchedPositive
}

// TagsMatch reports whether the tag set satisfies at least one group of the
// expression. An empty expression always matches.
func TagsMatch(expr TagExpression, tags []string) bool {
	if len(expr) == 0 {
		return true
	}

	for _, group := range expr {
		if groupMatches(group, tags) {
			return true
		}
	}
	return false
}

func groupMatches(group TagGroup, tags []string) bool {
	for _, term := range group {
		if slices.Contains(tags, term.Tag) == term.Invert {
			return false
		}
	}
	return true
}

// RequiredTagsMatch reports whether every required tag is named as a
// non-inverted term somewhere in the expression. Tests without required
// tags always pass.
func RequiredTagsMatch(expr TagExpression, required []string) bool {
	for _, tag := range required {
		if !mentionsPositive(expr, tag) {
			return false
		}
	}
	return true
}

func mentionsPositive(expr TagExpression, tag string) bool {
	for _, group := range expr {
		for _, term := range group {
			if !term.Invert && term.Tag == tag {
				return true
			}
		}
	}
	return false
}
