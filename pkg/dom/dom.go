// Package dom defines the document tree produced by the markup parser:
// a Node interface with two variants, Element and Text.
package dom

// NodeType identifies the variant of a document tree node.
type NodeType int

const (
	ElementNode NodeType = iota
	TextNode
)

// Node is a single unit of the parsed document tree.
type Node interface {
	Type() NodeType
	ChildNodes() []Node
}

// Text is a literal run of characters between markup delimiters.
// The parser never produces a Content containing '<'.
type Text struct {
	Content string `json:"content"`
}

func (Text) Type() NodeType { return TextNode }

func (Text) ChildNodes() []Node { return nil }

// Element is a named tag with attributes and an ordered list of children.
type Element struct {
	Tag        string            `json:"tag"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Children   []Node            `json:"children,omitempty"`
}

func (Element) Type() NodeType { return ElementNode }

func (e Element) ChildNodes() []Node { return e.Children }

// Attr looks up an attribute by name.
func (e Element) Attr(name string) (string, bool) {
	v, ok := e.Attributes[name]
	return v, ok
}

// ID returns the element's id attribute, or "" when absent. It is
// recomputed from Attributes on each call rather than stored, so it
// can never go stale.
func (e Element) ID() string { return e.Attributes["id"] }

// ClassName returns the element's class attribute, or "" when absent.
func (e Element) ClassName() string { return e.Attributes["class"] }
