// Package markdown converts a restricted Markdown dialect to HTML.
//
// A document is split into blank-line separated blocks. Each block is
// classified (heading, code, quote, unordered list, ordered list or
// paragraph) and rendered into an htmlnode tree; inline text inside a
// block is tokenized into bold, italic, code, image, link and plain
// fragments. The rendered blocks are wrapped in a single root div.
//
// Supported syntax:
//
//	**bold**  _italic_  `code`  ![alt](src)  [text](href)
//	# Heading ... ###### Heading
//	```            > quote       - item       1. item
//	code
//	```
//
// Delimiters cannot nest and cannot be escaped. Conversion holds no
// shared state and is safe for concurrent use.
package markdown

import (
	"fmt"
	"strings"

	"github.com/alnah/go-md2site/internal/htmlnode"
)

// RootTag wraps every rendered document.
const RootTag = "div"

// Options tunes rendering. The zero value renders the plain dialect.
type Options struct {
	// HeadingIDs adds an id attribute derived from the heading text.
	HeadingIDs bool
}

// Option configures Options.
type Option func(*Options)

// WithHeadingIDs enables id attributes on headings.
func WithHeadingIDs(enabled bool) Option {
	return func(o *Options) {
		o.HeadingIDs = enabled
	}
}

func newOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ToHTMLDocument renders a document into a div holding one subtree per
// block, in source order.
func ToHTMLDocument(md string, opts ...Option) (htmlnode.Node, error) {
	o := newOptions(opts)

	blocks := Segment(md)
	children := make([]htmlnode.Node, 0, len(blocks))
	for i, block := range blocks {
		kind := Classify(block)
		node, err := RenderBlock(kind, block, o)
		if err != nil {
			return htmlnode.Node{}, fmt.Errorf("block %d (%s): %w", i+1, kind, err)
		}
		children = append(children, node)
	}
	return htmlnode.NewParent(RootTag, children)
}

// ToHTML renders a document and serializes it.
func ToHTML(md string, opts ...Option) (string, error) {
	doc, err := ToHTMLDocument(md, opts...)
	if err != nil {
		return "", err
	}
	return doc.HTML()
}

// ExtractTitle returns the text of the first level-1 heading.
func ExtractTitle(md string) (string, bool) {
	for _, block := range Segment(md) {
		if Classify(block) != Heading || HeadingLevel(block) != 1 {
			continue
		}
		return strings.TrimSpace(block[len("# "):]), true
	}
	return "", false
}
