package validate

import (
	"fmt"

	"github.com/zabirtech/cli-html-validator/pkg/htmldoc"
	"github.com/zabirtech/cli-html-validator/pkg/report"
)

// singletonTags are element types that may occur at most once per document.
var singletonTags = map[string]bool{
	"title": true,
	"base":  true,
}

// voidTags are elements defined to never contain children.
var voidTags = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// checkSingletonElement flags repeat occurrences of elements that must be
// unique within a document. Every occurrence past the first is reported, so
// a third <title> errors again.
func checkSingletonElement(n *htmldoc.Node, ctx *docContext, r *report.Report) {
	// ELT-001: at most one <title> / <base> per document
	if !singletonTags[n.Data] {
		return
	}
	if ctx.singletonSeen[n.Data] {
		r.Add(report.Error, "ELT-001",
			fmt.Sprintf("Multiple <%s> elements found. There should only be one <%s> element.", n.Data, n.Data))
	}
	ctx.singletonSeen[n.Data] = true
}

// checkVoidElement flags void elements that carry children: one message per
// element, however many children it has.
func checkVoidElement(n *htmldoc.Node, r *report.Report) {
	// ELT-002: void elements must not have children
	if voidTags[n.Data] && len(n.Children) > 0 {
		r.Add(report.Error, "ELT-002",
			fmt.Sprintf("Void element <%s> should not have children.", n.Data))
	}
}
