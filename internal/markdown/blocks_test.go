package markdown

import (
	"reflect"
	"testing"
)

func TestSegment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name: "paragraphs and list",
			input: `
This is **bolded** paragraph

This is another paragraph with _italic_ text and ` + "`code`" + ` here
This is the same paragraph on a new line

- This is a list
- with items
`,
			want: []string{
				"This is **bolded** paragraph",
				"This is another paragraph with _italic_ text and `code` here\nThis is the same paragraph on a new line",
				"- This is a list\n- with items",
			},
		},
		{
			name:  "blank line runs collapse",
			input: "\n\nA\n\n\n\nB\n\n",
			want:  []string{"A", "B"},
		},
		{
			name:  "surrounding newlines stripped",
			input: "\n\n\n\n\nThis is a single paragraph with loads of newlines\n\n\n\n\n\n\n",
			want:  []string{"This is a single paragraph with loads of newlines"},
		},
		{
			name:  "whitespace only",
			input: "  \n\n \t ",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Segment(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Segment() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		block string
		want  BlockKind
	}{
		{"h1", "# Title", Heading},
		{"h3", "### This is a heading", Heading},
		{"h6", "###### Deep", Heading},
		{"seven hashes", "####### Too deep", Paragraph},
		{"no space after hashes", "#hashtag", Paragraph},
		{"marker without content", "# ", Paragraph},
		{
			"code",
			"```\nThis is a code block.\nEverything in here should be inside the code block.\nIncluding this\nAnd this\n```",
			CodeBlock,
		},
		{"unclosed code", "```\nno end", Paragraph},
		{"bare fence", "```", Paragraph},
		{"quote with indentation", "> Hear me now,\n  > Quote me later.\n    > Like for real, dawg", Quote},
		{"quote broken by a line", "> one\ntwo", Paragraph},
		{"quoted heading stays a heading", "# > not a quote", Heading},
		{
			"unordered list",
			" - This is an unordered list\n - I need to do this\n - And this\n - And this too",
			UnorderedList,
		},
		{"dash without space", "-nope\n- yes", Paragraph},
		{
			"ordered list with arbitrary numbers",
			" 5. This is an ordered list\n  8. I need to do this first\n  1. And this next\n  4. And this last",
			OrderedList,
		},
		{"ordered list missing space", "1.one\n2. two", Paragraph},
		{"paragraph", "just words", Paragraph},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Classify(tt.block); got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.block, got, tt.want)
			}
		})
	}
}

func TestHeadingLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		block string
		want  int
	}{
		{"# one", 1},
		{"## two", 2},
		{"###### six", 6},
		{"####### seven", 0},
		{"plain", 0},
	}

	for _, tt := range tests {
		if got := HeadingLevel(tt.block); got != tt.want {
			t.Errorf("HeadingLevel(%q) = %d, want %d", tt.block, got, tt.want)
		}
	}
}
