package pipeline

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RewriteBasePath prefixes root-relative URLs with basePath so a site can
// be served from a sub-directory. An empty or "/" base path returns the
// HTML unchanged.
//
// Rewrites:
//   - a[href], link[href]
//   - img[src], script[src], source[src], iframe[src]
//
// Leaves alone relative paths, anchors, protocol-relative URLs ("//host")
// and absolute URLs. Only rewritten tags are re-serialized; every other
// byte of the input is copied through as written.
func RewriteBasePath(content, basePath string) (string, error) {
	prefix := strings.TrimSuffix(basePath, "/")
	if prefix == "" {
		return content, nil
	}

	z := html.NewTokenizer(strings.NewReader(content))
	var out strings.Builder
	out.Grow(len(content))

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if errors.Is(z.Err(), io.EOF) {
				return out.String(), nil
			}
			return "", z.Err()
		}

		// Token() lowercases the tag name in the tokenizer buffer, so
		// copy the raw bytes first.
		raw := append([]byte(nil), z.Raw()...)
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			out.Write(raw)
			continue
		}

		tok := z.Token()
		if !rewriteToken(&tok, prefix) {
			out.Write(raw)
			continue
		}
		writeTag(&out, tok, tt == html.SelfClosingTagToken)
	}
}

// urlAttr returns the URL attribute rewritten for an element.
func urlAttr(a atom.Atom) string {
	switch a {
	case atom.A, atom.Link:
		return "href"
	case atom.Img, atom.Script, atom.Source, atom.Iframe:
		return "src"
	}
	return ""
}

func rewriteToken(tok *html.Token, prefix string) bool {
	key := urlAttr(tok.DataAtom)
	if key == "" {
		return false
	}
	changed := false
	for i, attr := range tok.Attr {
		if attr.Namespace != "" || attr.Key != key || !isRootRelative(attr.Val) {
			continue
		}
		tok.Attr[i].Val = prefix + attr.Val
		changed = true
	}
	return changed
}

// isRootRelative returns true for "/path" but not for "//host/path".
func isRootRelative(path string) bool {
	return strings.HasPrefix(path, "/") && !strings.HasPrefix(path, "//")
}

// writeTag serializes a start tag. Attribute values are written as they
// were decoded, with only double quotes escaped.
func writeTag(out *strings.Builder, tok html.Token, selfClosing bool) {
	out.WriteByte('<')
	out.WriteString(tok.Data)
	for _, attr := range tok.Attr {
		out.WriteByte(' ')
		if attr.Namespace != "" {
			out.WriteString(attr.Namespace)
			out.WriteByte(':')
		}
		out.WriteString(attr.Key)
		out.WriteString(`="`)
		out.WriteString(strings.ReplaceAll(attr.Val, `"`, "&quot;"))
		out.WriteByte('"')
	}
	if selfClosing {
		out.WriteString("/>")
		return
	}
	out.WriteByte('>')
}
