package grep

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseTitleClause(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		want   TitleClause
		wantOK bool
	}{
		{"positive", "hello w", TitleClause{Title: "hello w"}, true},
		{"trims", "   hello w  ", TitleClause{Title: "hello w"}, true},
		{"inverted", "-hello w", TitleClause{Title: "hello w", Invert: true}, true},
		{"trims inverted", "  -hello w  ", TitleClause{Title: "hello w", Invert: true}, true},
		{"inner space kept after dash", "- hello", TitleClause{Title: " hello", Invert: true}, true},
		{"empty", "", TitleClause{}, false},
		{"whitespace", "   ", TitleClause{}, false},
		{"lone dash", " - ", TitleClause{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseTitleClause(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseTitleClause(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ParseTitleClause(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTitleExpression(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  TitleExpression
	}{
		{"empty", "", nil},
		{"single", "hello w", TitleExpression{{Title: "hello w"}}},
		{
			name:  "list with inversion",
			input: "hello; one; -two",
			want: TitleExpression{
				{Title: "hello"},
				{Title: "one"},
				{Title: "two", Invert: true},
			},
		},
		{
			name:  "outer whitespace",
			input: "  hello w; work 2  ",
			want: TitleExpression{
				{Title: "hello w"},
				{Title: "work 2"},
			},
		},
		{
			name:  "empty parts dropped",
			input: ";hello;; ;-;",
			want:  TitleExpression{{Title: "hello"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ParseTitleExpression(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseTitleExpression(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestTitleExpression_StringIsStable(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"hello w", "-name;-hey;number", "- spaced; x "} {
		first := ParseTitleExpression(input)
		second := ParseTitleExpression(first.String())
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("re-parsing %q changed the expression (-first +second):\n%s", input, diff)
		}
	}
}
