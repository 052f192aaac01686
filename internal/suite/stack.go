// Package suite tracks the enclosing groups of a test while a corpus is
// walked, so every test can see the names and tags of the groups it is
// declared in.
package suite

import "strings"

// Frame is one open group.
type Frame struct {
	Name         string
	Tags         []string
	RequiredTags []string
}

// Stack is the ordered list of open groups, outermost first.
//
// Groups must be closed in the reverse order they were opened. A Stack is
// not safe for concurrent use; every walk owns its own.
type Stack struct {
	frames []Frame
}

// Push opens a group.
func (s *Stack) Push(f Frame) {
	s.frames = append(s.frames, f)
}

// Pop closes the innermost group. It returns false when no group is open.
func (s *Stack) Pop() (Frame, bool) {
	if len(s.frames) == 0 {
		return Frame{}, false
	}
	last := s.frames[len(s.frames)-1]
	s.frames[len(s.frames)-1] = Frame{}
	s.frames = s.frames[:len(s.frames)-1]
	return last, true
}

// Depth returns the number of open groups.
func (s *Stack) Depth() int {
	return len(s.frames)
}

// Title returns the full title of a test named name: the names of all open
// groups followed by name, joined by single spaces. Unnamed groups are
// skipped.
func (s *Stack) Title(name string) string {
	parts := make([]string, 0, len(s.frames)+1)
	for _, f := range s.frames {
		if f.Name != "" {
			parts = append(parts, f.Name)
		}
	}
	if name != "" {
		parts = append(parts, name)
	}
	return strings.Join(parts, " ")
}

// EffectiveTags returns the tags of all open groups, outermost first,
// followed by own. Duplicates are kept and empty tags are dropped.
func (s *Stack) EffectiveTags(own []string) []string {
	return s.collect(own, func(f Frame) []string { return f.Tags })
}

// RequiredTags accumulates required tags the same way EffectiveTags
// accumulates tags.
func (s *Stack) RequiredTags(own []string) []string {
	return s.collect(own, func(f Frame) []string { return f.RequiredTags })
}

func (s *Stack) collect(own []string, field func(Frame) []string) []string {
	var tags []string
	for _, f := range s.frames {
		tags = appendNonEmpty(tags, field(f))
	}
	return appendNonEmpty(tags, own)
}

func appendNonEmpty(dst, src []string) []string {
	for _, tag := range src {
		if tag != "" {
			dst = append(dst, tag)
		}
	}
	return dst
}
