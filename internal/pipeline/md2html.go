package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/alnah/go-md2site/internal/markdown"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// HTMLConverter abstracts Markdown to HTML conversion. Implementations
// return a fragment wrapped in a single root <div>.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// BasicConverter renders the built-in Markdown dialect.
type BasicConverter struct {
	headingIDs bool
}

// NewBasicConverter creates a BasicConverter. headingIDs adds id
// attributes to headings.
func NewBasicConverter(headingIDs bool) *BasicConverter {
	return &BasicConverter{headingIDs: headingIDs}
}

// ToHTML converts content with the built-in dialect. Conversion is
// synchronous; the context is only checked before starting.
func (c *BasicConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	out, err := markdown.ToHTML(content, markdown.WithHeadingIDs(c.headingIDs))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHTMLConversion, err)
	}
	return out, nil
}

// GoldmarkConverter converts CommonMark (with GFM extensions) using
// goldmark. Fenced code is highlighted with chroma CSS classes.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter.
func NewGoldmarkConverter(headingIDs bool) *GoldmarkConverter {
	var parserOpts []parser.Option
	if headingIDs {
		parserOpts = append(parserOpts, parser.WithAutoHeadingID())
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(parserOpts...),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML converts content and wraps the result in a root <div>.
// Goldmark doesn't take a context, so conversion runs in a goroutine and
// the call returns early on cancellation.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		buf.WriteString("<" + markdown.RootTag + ">")
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		buf.WriteString("</" + markdown.RootTag + ">")
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
