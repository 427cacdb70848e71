package validate

import (
	"fmt"

	"github.com/zabirtech/cli-html-validator/pkg/htmldoc"
	"github.com/zabirtech/cli-html-validator/pkg/report"
)

// checkDoctype validates a doctype declaration. The name must be exactly
// "html" (the comparison is case-sensitive; the provider exposes the name as
// authored after tokenization). A conforming doctype marks the context so the
// structure check passes; a non-conforming one is reported with the name that
// was found and does not count as a doctype for the structure check.
func checkDoctype(n *htmldoc.Node, ctx *docContext, r *report.Report) {
	// DOC-001: doctype name must be exactly "html"
	if n.Data == "html" {
		ctx.hasDoctype = true
		return
	}
	r.Add(report.Error, "DOC-001",
		fmt.Sprintf("Invalid doctype: %s. Expected <!DOCTYPE html>.", n.Data))
}
