package markdown

import (
	"fmt"

	"github.com/alnah/go-md2site/internal/htmlnode"
)

// FragmentKind is the inline style of a Fragment.
type FragmentKind uint8

// Inline fragment kinds.
const (
	Plain FragmentKind = iota
	Bold
	Italic
	Code
	Link
	Image
)

var fragmentKindNames = [...]string{
	Plain:  "text",
	Bold:   "bold",
	Italic: "italic",
	Code:   "code",
	Link:   "link",
	Image:  "image",
}

func (k FragmentKind) String() string {
	if int(k) < len(fragmentKindNames) {
		return fragmentKindNames[k]
	}
	return fmt.Sprintf("FragmentKind(%d)", uint8(k))
}

// Fragment is a typed piece of inline text. Target holds the URL of
// Link and Image fragments.
type Fragment struct {
	Text   string
	Kind   FragmentKind
	Target string
}

// String matches the form used in delimiter error messages.
func (f Fragment) String() string {
	target := "None"
	if f.Target != "" {
		target = f.Target
	}
	return fmt.Sprintf("TextNode(%s, %s, %s)", f.Text, f.Kind, target)
}

// ToNode maps the fragment onto a leaf node.
func (f Fragment) ToNode() (htmlnode.Node, error) {
	switch f.Kind {
	case Plain:
		return htmlnode.NewText(f.Text), nil
	case Bold:
		return htmlnode.NewLeaf("b", f.Text), nil
	case Italic:
		return htmlnode.NewLeaf("i", f.Text), nil
	case Code:
		return htmlnode.NewLeaf("code", f.Text), nil
	case Link:
		return htmlnode.NewLeaf("a", f.Text, htmlnode.Attr{Key: "href", Value: f.Target}), nil
	case Image:
		return htmlnode.NewLeaf("img", "",
			htmlnode.Attr{Key: "src", Value: f.Target},
			htmlnode.Attr{Key: "alt", Value: f.Text},
		), nil
	default:
		return htmlnode.Node{}, fmt.Errorf("%w: %s", ErrUnsupportedFragmentKind, f.Kind)
	}
}

// fragmentsToNodes maps every fragment to its leaf node.
func fragmentsToNodes(fragments []Fragment) ([]htmlnode.Node, error) {
	nodes := make([]htmlnode.Node, 0, len(fragments))
	for _, f := range fragments {
		n, err := f.ToNode()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}
