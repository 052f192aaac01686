package corpus

import (
	"sort"

	"github.com/AndreyAkinshin/testgrep/internal/suite"
)

// Walk calls fn for every test of the manifest in declaration order. The
// tests of a group are visited before its nested groups.
func (m *Manifest) Walk(fn func(Entry)) {
	var stack suite.Stack
	stack.Push(suite.Frame{Tags: m.Tags, RequiredTags: m.RequiredTags})
	defer stack.Pop()

	walkLevel(&stack, m.Path, m.Tests, m.Groups, fn)
}

func walkLevel(stack *suite.Stack, path string, tests []Case, groups []Group, fn func(Entry)) {
	for _, tc := range tests {
		fn(Entry{
			Manifest:     path,
			Title:        stack.Title(tc.Name),
			Name:         tc.Name,
			Tags:         stack.EffectiveTags(tc.Tags),
			RequiredTags: stack.RequiredTags(tc.RequiredTags),
			Pending:      tc.Pending,
		})
	}

	for _, g := range groups {
		stack.Push(suite.Frame{Name: g.Name, Tags: g.Tags, RequiredTags: g.RequiredTags})
		walkLevel(stack, path, g.Tests, g.Groups, fn)
		stack.Pop()
	}
}

// Entries returns all tests of the manifest in walk order.
func (m *Manifest) Entries() []Entry {
	var entries []Entry
	m.Walk(func(e Entry) {
		entries = append(entries, e)
	})
	return entries
}

// FoundTags returns every tag and required tag declared anywhere in the
// manifests, sorted and de-duplicated.
func FoundTags(manifests []*Manifest) []string {
	seen := make(map[string]struct{})
	for _, m := range manifests {
		m.Walk(func(e Entry) {
			for _, tag := range e.Tags {
				seen[tag] = struct{}{}
			}
			for _, tag := range e.RequiredTags {
				seen[tag] = struct{}{}
			}
		})
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
