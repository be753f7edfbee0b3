package markdown

import (
	"regexp"
	"strings"
)

// Inline delimiters, in tokenization order.
const (
	BoldDelimiter   = "**"
	ItalicDelimiter = "_"
	CodeDelimiter   = "`"
)

// Precompiled inline span patterns. Labels cannot contain brackets and
// targets cannot contain parentheses; anything else stays plain text.
var (
	imagePattern = regexp.MustCompile(`!\[([^\[\]]*)\]\(([^\(\)]*)\)`)
	linkPattern  = regexp.MustCompile(`\[([^\[\]]*)\]\(([^\(\)]*)\)`)
)

// Span is an image or link found in a text: its label and target.
type Span struct {
	Label  string
	Target string
}

// spanMatch is a Span plus its byte range in the source text.
type spanMatch struct {
	Span
	start, end int
}

// Tokenize splits text into inline fragments. Bold is split before
// italic so that "**" is never torn apart by "_", and images are
// extracted before links because link syntax is a substring of image
// syntax. Empty fragments are dropped once, after every pass has run.
func Tokenize(text string) ([]Fragment, error) {
	fragments := []Fragment{{Text: text, Kind: Plain}}

	var err error
	for _, pass := range []struct {
		delimiter string
		kind      FragmentKind
	}{
		{BoldDelimiter, Bold},
		{ItalicDelimiter, Italic},
		{CodeDelimiter, Code},
	} {
		fragments, err = SplitDelimiter(fragments, pass.delimiter, pass.kind)
		if err != nil {
			return nil, err
		}
	}
	fragments = SplitImages(fragments)
	fragments = SplitLinks(fragments)

	return dropEmpty(fragments), nil
}

// SplitDelimiter re-splits every non-empty plain fragment on delimiter.
// Even segments stay plain and odd segments take kind. A fragment with
// an odd number of delimiters yields a *DelimiterError.
func SplitDelimiter(fragments []Fragment, delimiter string, kind FragmentKind) ([]Fragment, error) {
	out := make([]Fragment, 0, len(fragments))
	for _, f := range fragments {
		if f.Kind != Plain || f.Text == "" || delimiter == "" || !strings.Contains(f.Text, delimiter) {
			out = append(out, f)
			continue
		}
		parts := strings.Split(f.Text, delimiter)
		if len(parts)%2 == 0 {
			return nil, &DelimiterError{Delimiter: delimiter, Source: f}
		}
		for i, part := range parts {
			if i%2 == 0 {
				out = append(out, Fragment{Text: part, Kind: Plain})
			} else {
				out = append(out, Fragment{Text: part, Kind: kind})
			}
		}
	}
	return out, nil
}

// SplitImages extracts ![alt](src) spans from plain fragments.
func SplitImages(fragments []Fragment) []Fragment {
	return splitSpans(fragments, Image, findImages)
}

// SplitLinks extracts [text](href) spans from plain fragments. Spans
// preceded by "!" are left alone.
func SplitLinks(fragments []Fragment) []Fragment {
	return splitSpans(fragments, Link, findLinks)
}

func splitSpans(fragments []Fragment, kind FragmentKind, find func(string) []spanMatch) []Fragment {
	out := make([]Fragment, 0, len(fragments))
	for _, f := range fragments {
		if f.Kind != Plain || f.Text == "" {
			out = append(out, f)
			continue
		}
		matches := find(f.Text)
		if len(matches) == 0 {
			out = append(out, f)
			continue
		}
		last := 0
		for _, m := range matches {
			out = append(out,
				Fragment{Text: f.Text[last:m.start], Kind: Plain},
				Fragment{Text: m.Label, Kind: kind, Target: m.Target},
			)
			last = m.end
		}
		out = append(out, Fragment{Text: f.Text[last:], Kind: Plain})
	}
	return out
}

// ExtractImages returns the images of text in source order.
func ExtractImages(text string) []Span {
	return spans(findImages(text))
}

// ExtractLinks returns the links of text in source order, excluding
// image syntax.
func ExtractLinks(text string) []Span {
	return spans(findLinks(text))
}

func spans(matches []spanMatch) []Span {
	out := make([]Span, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Span)
	}
	return out
}

func findImages(text string) []spanMatch {
	var out []spanMatch
	for _, loc := range imagePattern.FindAllStringSubmatchIndex(text, -1) {
		out = append(out, spanMatch{
			Span:  Span{Label: text[loc[2]:loc[3]], Target: text[loc[4]:loc[5]]},
			start: loc[0],
			end:   loc[1],
		})
	}
	return out
}

// findLinks scans left to right. A candidate preceded by "!" is rejected
// and the scan resumes one byte after its opening bracket.
func findLinks(text string) []spanMatch {
	var out []spanMatch
	offset := 0
	for offset < len(text) {
		loc := linkPattern.FindStringSubmatchIndex(text[offset:])
		if loc == nil {
			break
		}
		start, end := offset+loc[0], offset+loc[1]
		if start > 0 && text[start-1] == '!' {
			offset = start + 1
			continue
		}
		out = append(out, spanMatch{
			Span: Span{
				Label:  text[offset+loc[2] : offset+loc[3]],
				Target: text[offset+loc[4] : offset+loc[5]],
			},
			start: start,
			end:   end,
		})
		offset = end
	}
	return out
}

// dropEmpty removes fragments without text. Images are kept: their text
// is only the alt attribute.
func dropEmpty(fragments []Fragment) []Fragment {
	out := fragments[:0]
	for _, f := range fragments {
		if f.Text == "" && f.Kind != Image {
			continue
		}
		out = append(out, f)
	}
	return out
}
