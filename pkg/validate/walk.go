package validate

import (
	"github.com/zabirtech/cli-html-validator/pkg/htmldoc"
	"github.com/zabirtech/cli-html-validator/pkg/report"
)

// walkNode visits every node exactly once in pre-order: the node's own checks
// run first, then its children are visited left to right in stored order.
// Node kinds outside the dispatch table carry no checks but their children
// are still visited.
func walkNode(n *htmldoc.Node, ctx *docContext, r *report.Report) {
	switch n.Type {
	case htmldoc.DoctypeNode:
		checkDoctype(n, ctx, r)
	case htmldoc.ElementNode:
		ctx.observeElement(n.Data)
		checkSingletonElement(n, ctx, r)
		checkRequiredAttributes(n, r)
		checkVoidElement(n, r)
	case htmldoc.DocumentNode, htmldoc.TextNode, htmldoc.CommentNode:
		// The document node is a pure container; text and comments are not
		// validation subjects.
	}

	for _, c := range n.Children {
		walkNode(c, ctx, r)
	}
}
