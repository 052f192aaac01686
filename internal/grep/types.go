// Package grep parses test selection expressions and decides whether a test
// should run.
//
// A selection is made of two independent parts:
//
//   - a title expression: semicolon-separated substrings, each optionally
//     prefixed with "-" to exclude titles containing it
//     ("hello w; -slow")
//   - a tag expression: space or comma separated OR groups, each made of
//     "+"-joined AND terms, each optionally prefixed with "-" to negate it
//     ("@smoke+@fast @regression,-@flaky"). A token prefixed with "--" is
//     negated in every OR group ("@smoke @fast --@flaky").
//
// Everything in this package is pure and safe for concurrent use.
package grep

import (
	"strings"
)

// TitleClause is a single substring pattern of a title expression.
type TitleClause struct {
	Title  string `json:"title"`
	Invert bool   `json:"invert"`
}

// String returns the clause as it would be written by the user.
func (c TitleClause) String() string {
	if c.Invert {
		return "-" + c.Title
	}
	return c.Title
}

// TitleExpression is a list of title clauses.
//
// A title satisfies the expression when it contains none of the inverted
// clauses and, if there are non-inverted clauses, at least one of them.
type TitleExpression []TitleClause

// String returns the canonical form of the expression.
func (e TitleExpression) String() string {
	parts := make([]string, len(e))
	for i, c := range e {
		parts[i] = c.String()
	}
	return strings.Join(parts, ";")
}

// TagTerm is a single tag reference inside an AND group.
type TagTerm struct {
	Tag    string `json:"tag"`
	Invert bool   `json:"invert"`
}

// String returns the term as it would be written by the user.
func (t TagTerm) String() string {
	if t.Invert {
		return "-" + t.Tag
	}
	return t.Tag
}

// TagGroup is a list of terms that must all be satisfied.
type TagGroup []TagTerm

// String returns the group with its terms joined by "+".
func (g TagGroup) String() string {
	parts := make([]string, len(g))
	for i, t := range g {
		parts[i] = t.String()
	}
	return strings.Join(parts, "+")
}

// TagExpression is a list of alternative groups. An empty expression
// places no constraint on tags.
type TagExpression []TagGroup

// String returns the canonical form of the expression, groups separated by
// a single space.
func (e TagExpression) String() string {
	parts := make([]string, len(e))
	for i, g := range e {
		parts[i] = g.String()
	}
	return strings.Join(parts, " ")
}

// Query is the parsed form of one selection request.
type Query struct {
	Title TitleExpression `json:"title"`
	Tags  TagExpression   `json:"tags"`
}

// IsEmpty reports whether the query selects every test.
func (q Query) IsEmpty() bool {
	return len(q.Title) == 0 && len(q.Tags) == 0
}
