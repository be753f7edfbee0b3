package markdown

import (
	"fmt"
	"regexp"
	"strings"
)

// BlockKind classifies a block of Markdown.
type BlockKind uint8

// Block kinds. Paragraph is the zero value and the fallback.
const (
	Paragraph BlockKind = iota
	Heading
	CodeBlock
	Quote
	UnorderedList
	OrderedList
)

var blockKindNames = [...]string{
	Paragraph:     "paragraph",
	Heading:       "heading",
	CodeBlock:     "code",
	Quote:         "quote",
	UnorderedList: "unordered_list",
	OrderedList:   "ordered_list",
}

func (k BlockKind) String() string {
	if int(k) < len(blockKindNames) {
		return blockKindNames[k]
	}
	return fmt.Sprintf("BlockKind(%d)", uint8(k))
}

// CodeFence opens and closes a code block.
const CodeFence = "```"

// MaxHeadingLevel is the deepest heading, h6.
const MaxHeadingLevel = 6

// Precompiled block patterns.
var (
	blockSeparator     = regexp.MustCompile(`\n{2,}`)
	headingPattern     = regexp.MustCompile(`^(#{1,6}) [ \t]*\S`)
	orderedItemPattern = regexp.MustCompile(`^\d+\. `)
)

const unorderedItemMarker = "- "

// Segment splits a document into trimmed, non-empty blocks separated by
// blank lines.
func Segment(doc string) []string {
	pieces := blockSeparator.Split(doc, -1)
	blocks := make([]string, 0, len(pieces))
	for _, p := range pieces {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		blocks = append(blocks, p)
	}
	return blocks
}

// Classify returns the kind of a block. Predicates are checked in a
// fixed order and the first match wins.
func Classify(block string) BlockKind {
	switch {
	case isHeading(block):
		return Heading
	case isCodeBlock(block):
		return CodeBlock
	case everyLine(block, isQuoteLine):
		return Quote
	case everyLine(block, isUnorderedItem):
		return UnorderedList
	case everyLine(block, isOrderedItem):
		return OrderedList
	default:
		return Paragraph
	}
}

// HeadingLevel returns the number of leading "#" of a heading block, or
// 0 when block is not a heading.
func HeadingLevel(block string) int {
	m := headingPattern.FindStringSubmatch(block)
	if m == nil {
		return 0
	}
	return len(m[1])
}

func isHeading(block string) bool {
	return headingPattern.MatchString(block)
}

func isCodeBlock(block string) bool {
	return len(block) >= 2*len(CodeFence) &&
		strings.HasPrefix(block, CodeFence) &&
		strings.HasSuffix(block, CodeFence)
}

func isQuoteLine(line string) bool {
	return strings.HasPrefix(line, ">")
}

func isUnorderedItem(line string) bool {
	return strings.HasPrefix(line, unorderedItemMarker)
}

func isOrderedItem(line string) bool {
	return orderedItemPattern.MatchString(line)
}

// everyLine reports whether every line of block, left-trimmed, satisfies
// pred.
func everyLine(block string, pred func(string) bool) bool {
	for _, line := range strings.Split(block, "\n") {
		if !pred(strings.TrimLeft(line, " \t")) {
			return false
		}
	}
	return true
}
