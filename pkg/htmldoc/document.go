// Package htmldoc builds an owned, immutable tree of nodes from raw HTML.
// Parsing is delegated to golang.org/x/net/html, which implements the HTML
// parsing algorithm (tokenization, error recovery, tree construction); this
// package converts its result into a tree where every node exclusively owns
// its children.
package htmldoc

// NodeType identifies the kind of a parsed node.
type NodeType uint8

const (
	UnknownNode NodeType = iota
	DocumentNode
	DoctypeNode
	ElementNode
	TextNode
	CommentNode
)

func (t NodeType) String() string {
	switch t {
	case DocumentNode:
		return "Document"
	case DoctypeNode:
		return "Doctype"
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	case CommentNode:
		return "Comment"
	}
	return "Other"
}

// Attribute is a single name/value pair on an element. Elements keep their
// attributes in authored order; repeated names are passed through as-is.
type Attribute struct {
	Name  string
	Value string
}

// Node is one entry in the parsed document tree. Data holds the tag name for
// elements, the doctype name for doctype nodes, and the content for text and
// comment nodes. Children are in document order.
type Node struct {
	Type     NodeType
	Data     string
	Attr     []Attribute
	Children []*Node
}

// HasAttr reports whether the node carries an attribute with exactly the
// given name. Names are not normalized; any occurrence counts.
func (n *Node) HasAttr(name string) bool {
	for _, a := range n.Attr {
		if a.Name == name {
			return true
		}
	}
	return false
}

// AttrValue returns the value of the first attribute with exactly the given
// name, and whether one was present.
func (n *Node) AttrValue(name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Document is a fully materialized parse tree rooted at a DocumentNode.
type Document struct {
	Path string // source file path; empty when parsed from a reader
	Root *Node
}
