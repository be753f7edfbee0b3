package markdown

import (
	"fmt"
	"strings"

	"github.com/alnah/go-md2site/internal/htmlnode"
	"github.com/shurcooL/sanitized_anchor_name"
)

// RenderBlock turns a classified block into its element subtree.
func RenderBlock(kind BlockKind, block string, opts Options) (htmlnode.Node, error) {
	switch kind {
	case Heading:
		return renderHeading(block, opts)
	case CodeBlock:
		return renderCode(block)
	case Quote:
		return renderQuote(block)
	case UnorderedList:
		return renderList("ul", block, func(line string) string {
			return strings.TrimPrefix(line, unorderedItemMarker)
		})
	case OrderedList:
		return renderList("ol", block, func(line string) string {
			return orderedItemPattern.ReplaceAllString(line, "")
		})
	case Paragraph:
		return renderInline("p", strings.ReplaceAll(block, "\n", " "))
	default:
		return htmlnode.Node{}, fmt.Errorf("unknown block kind %s", kind)
	}
}

// renderInline tokenizes text and wraps its leaves in tag.
func renderInline(tag, text string, attrs ...htmlnode.Attr) (htmlnode.Node, error) {
	children, err := inlineNodes(text)
	if err != nil {
		return htmlnode.Node{}, err
	}
	return htmlnode.NewParent(tag, children, attrs...)
}

func inlineNodes(text string) ([]htmlnode.Node, error) {
	fragments, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	return fragmentsToNodes(fragments)
}

func renderHeading(block string, opts Options) (htmlnode.Node, error) {
	level := HeadingLevel(block)
	if level == 0 || level > MaxHeadingLevel {
		return htmlnode.Node{}, fmt.Errorf("not a heading: %q", block)
	}
	text := strings.TrimSpace(block[level+1:])
	tag := fmt.Sprintf("h%d", level)

	if !opts.HeadingIDs {
		return renderInline(tag, text)
	}

	children, err := inlineNodes(text)
	if err != nil {
		return htmlnode.Node{}, err
	}
	id := sanitized_anchor_name.Create(plainText(children))
	return htmlnode.NewParent(tag, children, htmlnode.Attr{Key: "id", Value: id})
}

// plainText concatenates the values of leaf nodes.
func plainText(nodes []htmlnode.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		b.WriteString(n.Value())
	}
	return b.String()
}

// renderCode keeps the body between the fences verbatim. The opening
// fence line, info string included, is dropped.
func renderCode(block string) (htmlnode.Node, error) {
	body := strings.TrimSuffix(block, CodeFence)
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		body = body[nl+1:]
	} else {
		body = strings.TrimPrefix(body, CodeFence)
	}
	code := Fragment{Text: body, Kind: Code}
	leaf, err := code.ToNode()
	if err != nil {
		return htmlnode.Node{}, err
	}
	return htmlnode.NewParent("pre", []htmlnode.Node{leaf})
}

func renderQuote(block string) (htmlnode.Node, error) {
	lines := strings.Split(block, "\n")
	stripped := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimPrefix(strings.TrimSpace(line), ">")
		stripped = append(stripped, strings.TrimSpace(line))
	}
	return renderInline("blockquote", strings.Join(stripped, " "))
}

func renderList(tag, block string, stripMarker func(string) string) (htmlnode.Node, error) {
	lines := strings.Split(block, "\n")
	items := make([]htmlnode.Node, 0, len(lines))
	for _, line := range lines {
		item, err := renderInline("li", stripMarker(strings.TrimLeft(line, " \t")))
		if err != nil {
			return htmlnode.Node{}, err
		}
		items = append(items, item)
	}
	return htmlnode.NewParent(tag, items)
}
