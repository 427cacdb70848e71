package htmldoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// ErrNotUTF8 is returned by ReadFile when the file content does not decode
// as UTF-8.
var ErrNotUTF8 = errors.New("content is not valid UTF-8")

// ReadFile reads the HTML file at path and verifies it is valid UTF-8.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotUTF8)
	}
	return data, nil
}

// Parse parses HTML from r into an owned node tree. The parser recovers from
// malformed markup the way browsers do, so an error here means reading from
// r failed, not that the markup was rejected.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &Document{Root: convert(root)}, nil
}

// Load reads and parses the HTML document at path.
func Load(path string) (*Document, error) {
	data, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	doc.Path = path
	return doc, nil
}

// convert maps an x/net/html node and its subtree onto the owned tree,
// preserving child order and attribute order. Node kinds outside the closed
// set become UnknownNode but keep their children.
func convert(n *html.Node) *Node {
	node := &Node{Data: n.Data}

	switch n.Type {
	case html.DocumentNode:
		node.Type = DocumentNode
	case html.DoctypeNode:
		node.Type = DoctypeNode
	case html.ElementNode:
		node.Type = ElementNode
	case html.TextNode:
		node.Type = TextNode
	case html.CommentNode:
		node.Type = CommentNode
	default:
		node.Type = UnknownNode
	}

	for _, a := range n.Attr {
		node.Attr = append(node.Attr, Attribute{Name: a.Key, Value: a.Val})
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		node.Children = append(node.Children, convert(c))
	}
	return node
}
