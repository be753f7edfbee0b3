package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// Precompiled regex patterns.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)
)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// PagePreprocessor prepares raw page content for block splitting.
type PagePreprocessor struct{}

// PreprocessMarkdown strips a leading byte order mark and normalizes line
// endings. Lines are otherwise left as written; block boundaries are
// decided by the segmenter alone.
func (p *PagePreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = strings.TrimPrefix(content, "\ufeff")
	return normalizeLineEndings(content)
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
