// Command htmltree prints the parsed node tree of an HTML document: every
// node in pre-order, one line per node, with the node kind as a bold label.
// Useful for seeing exactly what the validator will walk.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/zabirtech/cli-html-validator/pkg/htmldoc"
)

var bold = color.New(color.Bold)

func main() {
	args := os.Args[1:]

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: htmltree <file.html> [--no-color]")
		os.Exit(2)
	}

	htmlPath := args[0]
	for _, arg := range args[1:] {
		if arg == "--no-color" {
			color.NoColor = true
		}
	}

	doc, err := htmldoc.Load(htmlPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: %v\n", err)
		os.Exit(2)
	}

	color.New(color.FgCyan).Println("Parsed HTML document:")
	printNode(doc.Root, 0)
}

func printNode(n *htmldoc.Node, depth int) {
	indent := strings.Repeat("  ", depth)

	switch n.Type {
	case htmldoc.DocumentNode:
		fmt.Printf("%s%s\n", indent, bold.Sprint("Document"))
	case htmldoc.DoctypeNode:
		fmt.Printf("%s%s: %s\n", indent, bold.Sprint("Doctype"), n.Data)
	case htmldoc.ElementNode:
		fmt.Printf("%s%s: <%s%s>\n", indent, bold.Sprint("Element"), n.Data, formatAttrs(n.Attr))
	case htmldoc.TextNode:
		// Whitespace-only text runs are noise between elements; skip them.
		if text := strings.TrimSpace(n.Data); text != "" {
			fmt.Printf("%s%s: %q\n", indent, bold.Sprint("Text"), text)
		}
	case htmldoc.CommentNode:
		fmt.Printf("%s%s: <!--%s-->\n", indent, bold.Sprint("Comment"), n.Data)
	default:
		fmt.Printf("%s%s\n", indent, bold.Sprint("Other node type"))
	}

	for _, c := range n.Children {
		printNode(c, depth+1)
	}
}

func formatAttrs(attrs []htmldoc.Attribute) string {
	var sb strings.Builder
	for _, a := range attrs {
		fmt.Fprintf(&sb, " %s=%q", a.Name, a.Value)
	}
	return sb.String()
}
