// Package htmlnode is the output tree of the Markdown converter.
//
// A Node is either a leaf (optional tag, value, attributes) or a parent
// (tag, ordered children, attributes). Nodes are built only through the
// constructors in this package, which enforce the shape invariants, and
// are never mutated afterwards.
package htmlnode

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for node construction and serialization.
var (
	ErrMalformedNode   = errors.New("malformed node")
	ErrMissingTag      = fmt.Errorf("%w: parent node must have a tag", ErrMalformedNode)
	ErrMissingChildren = fmt.Errorf("%w: parent node must have children", ErrMalformedNode)
)

type kind uint8

const (
	kindInvalid kind = iota
	kindLeaf
	kindParent
)

// Attr is a single HTML attribute.
type Attr struct {
	Key   string
	Value string
}

// Attrs is an ordered attribute list with unique keys.
type Attrs []Attr

// Node is a leaf or a parent element. The zero value is invalid.
type Node struct {
	kind     kind
	tag      string
	value    string
	children []Node
	attrs    Attrs
}

// NewLeaf builds a leaf node. An empty tag yields a raw text node.
func NewLeaf(tag, value string, attrs ...Attr) Node {
	return Node{
		kind:  kindLeaf,
		tag:   tag,
		value: value,
		attrs: newAttrs(attrs),
	}
}

// NewText builds an untagged leaf that serializes as its value.
func NewText(value string) Node {
	return NewLeaf("", value)
}

// NewParent builds a parent node. The children slice must be non-nil;
// an empty slice yields an empty element pair. Zero-value children are
// rejected.
func NewParent(tag string, children []Node, attrs ...Attr) (Node, error) {
	if tag == "" {
		return Node{}, ErrMissingTag
	}
	if children == nil {
		return Node{}, fmt.Errorf("%w: <%s>", ErrMissingChildren, tag)
	}
	for i, child := range children {
		if child.kind == kindInvalid {
			return Node{}, fmt.Errorf("%w: <%s> child %d was not built by a constructor", ErrMalformedNode, tag, i)
		}
	}
	owned := make([]Node, len(children))
	copy(owned, children)
	return Node{
		kind:     kindParent,
		tag:      tag,
		children: owned,
		attrs:    newAttrs(attrs),
	}, nil
}

// newAttrs copies attrs, collapsing duplicate keys onto the first
// occurrence while keeping the last value.
func newAttrs(attrs []Attr) Attrs {
	if len(attrs) == 0 {
		return nil
	}
	out := make(Attrs, 0, len(attrs))
	for _, a := range attrs {
		out = out.With(a.Key, a.Value)
	}
	return out
}

// With returns a copy of a with key set to value. An existing key keeps
// its position.
func (a Attrs) With(key, value string) Attrs {
	out := make(Attrs, len(a), len(a)+1)
	copy(out, a)
	for i := range out {
		if out[i].Key == key {
			out[i].Value = value
			return out
		}
	}
	return append(out, Attr{Key: key, Value: value})
}

// Get returns the value stored under key.
func (a Attrs) Get(key string) (string, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// HTML renders the attributes as ` key="value"` pairs in insertion order.
func (a Attrs) HTML() string {
	if len(a) == 0 {
		return ""
	}
	var b strings.Builder
	for _, attr := range a {
		b.WriteByte(' ')
		b.WriteString(attr.Key)
		b.WriteString(`="`)
		b.WriteString(attr.Value)
		b.WriteByte('"')
	}
	return b.String()
}

// IsLeaf reports whether n is a leaf node.
func (n Node) IsLeaf() bool { return n.kind == kindLeaf }

// IsParent reports whether n is a parent node.
func (n Node) IsParent() bool { return n.kind == kindParent }

// Tag returns the element name, empty for raw text leaves.
func (n Node) Tag() string { return n.tag }

// Value returns the leaf value, empty for parents.
func (n Node) Value() string { return n.value }

// Attrs returns a copy of the node attributes.
func (n Node) Attrs() Attrs {
	if len(n.attrs) == 0 {
		return nil
	}
	out := make(Attrs, len(n.attrs))
	copy(out, n.attrs)
	return out
}

// Children returns a copy of the child list, nil for leaves.
func (n Node) Children() []Node {
	if n.kind != kindParent {
		return nil
	}
	out := make([]Node, len(n.children))
	copy(out, n.children)
	return out
}

// HTML serializes the node.
func (n Node) HTML() (string, error) {
	var b strings.Builder
	if err := n.write(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (n Node) write(b *strings.Builder) error {
	switch n.kind {
	case kindLeaf:
		if n.tag == "" {
			b.WriteString(n.value)
			return nil
		}
		writeOpen(b, n.tag, n.attrs)
		b.WriteString(n.value)
		writeClose(b, n.tag)
		return nil
	case kindParent:
		writeOpen(b, n.tag, n.attrs)
		for i, child := range n.children {
			if err := child.write(b); err != nil {
				return fmt.Errorf("<%s> child %d: %w", n.tag, i, err)
			}
		}
		writeClose(b, n.tag)
		return nil
	default:
		return fmt.Errorf("%w: node was not built by a constructor", ErrMalformedNode)
	}
}

func writeOpen(b *strings.Builder, tag string, attrs Attrs) {
	b.WriteByte('<')
	b.WriteString(tag)
	b.WriteString(attrs.HTML())
	b.WriteByte('>')
}

func writeClose(b *strings.Builder, tag string) {
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
}

// String returns a debugging representation.
func (n Node) String() string {
	switch n.kind {
	case kindLeaf:
		return fmt.Sprintf("LeafNode(%s, %s, %v)", n.tag, n.value, n.attrs.pairs())
	case kindParent:
		return fmt.Sprintf("ParentNode(%s, children: %d, %v)", n.tag, len(n.children), n.attrs.pairs())
	default:
		return "InvalidNode"
	}
}

func (a Attrs) pairs() map[string]string {
	if len(a) == 0 {
		return nil
	}
	m := make(map[string]string, len(a))
	for _, attr := range a {
		m[attr.Key] = attr.Value
	}
	return m
}
