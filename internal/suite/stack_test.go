package suite

import (
	"reflect"
	"testing"
)

func TestStack_PushPop(t *testing.T) {
	t.Parallel()

	var s Stack
	if _, ok := s.Pop(); ok {
		t.Fatal("Pop() on empty stack should report false")
	}

	s.Push(Frame{Name: "outer"})
	s.Push(Frame{Name: "inner"})
	if got := s.Depth(); got != 2 {
		t.Fatalf("Depth() = %d, want 2", got)
	}

	f, ok := s.Pop()
	if !ok || f.Name != "inner" {
		t.Errorf("Pop() = %+v, %v; want inner, true", f, ok)
	}
	f, ok = s.Pop()
	if !ok || f.Name != "outer" {
		t.Errorf("Pop() = %+v, %v; want outer, true", f, ok)
	}
	if got := s.Depth(); got != 0 {
		t.Errorf("Depth() = %d, want 0", got)
	}
}

func TestStack_Title(t *testing.T) {
	t.Parallel()

	var s Stack
	if got := s.Title("alone"); got != "alone" {
		t.Errorf("Title() = %q, want %q", got, "alone")
	}

	s.Push(Frame{Name: "checkout"})
	s.Push(Frame{})
	s.Push(Frame{Name: "cart"})
	if got, want := s.Title("adds items"), "checkout cart adds items"; got != want {
		t.Errorf("Title() = %q, want %q", got, want)
	}
}

func TestStack_EffectiveTags(t *testing.T) {
	t.Parallel()

	var s Stack
	s.Push(Frame{Name: "a", Tags: []string{"@outer", "@shared"}, RequiredTags: []string{"@nightly"}})
	s.Push(Frame{Name: "b", Tags: []string{"@shared", ""}})

	tests := []struct {
		name string
		got  []string
		want []string
	}{
		{
			name: "effective keeps order and duplicates",
			got:  s.EffectiveTags([]string{"@own"}),
			want: []string{"@outer", "@shared", "@shared", "@own"},
		},
		{
			name: "required",
			got:  s.RequiredTags([]string{"@slow"}),
			want: []string{"@nightly", "@slow"},
		},
	}
	for _, tt := range tests {
		if !reflect.DeepEqual(tt.got, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestStack_TagsInvisibleAfterPop(t *testing.T) {
	t.Parallel()

	var s Stack
	s.Push(Frame{Name: "tagged", Tags: []string{"@a"}, RequiredTags: []string{"@r"}})
	if got := s.EffectiveTags(nil); !reflect.DeepEqual(got, []string{"@a"}) {
		t.Fatalf("EffectiveTags() = %v, want [@a]", got)
	}
	s.Pop()

	if got := s.EffectiveTags(nil); len(got) != 0 {
		t.Errorf("EffectiveTags() after Pop = %v, want empty", got)
	}
	if got := s.RequiredTags(nil); len(got) != 0 {
		t.Errorf("RequiredTags() after Pop = %v, want empty", got)
	}
	if got := s.Title("t"); got != "t" {
		t.Errorf("Title() after Pop = %q, want %q", got, "t")
	}
}
