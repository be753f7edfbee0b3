package md2site

import "github.com/alnah/go-md2site/internal/markdown"

// MarkdownToHTML converts a document with the basic engine and returns
// the HTML fragment wrapped in a single <div>. Output is deterministic
// and never escaped.
func MarkdownToHTML(md string) (string, error) {
	return markdown.ToHTML(md)
}

// ExtractTitle returns the text of the first line that starts with "# "
// after leading whitespace, trimmed. ok is false when there is none.
func ExtractTitle(md string) (title string, ok bool) {
	return markdown.ExtractTitle(md)
}
