package validate

import (
	"fmt"

	"github.com/zabirtech/cli-html-validator/pkg/htmldoc"
	"github.com/zabirtech/cli-html-validator/pkg/report"
)

// requiredAttr names an attribute an element type must carry, with the check
// ID reported when it is absent.
type requiredAttr struct {
	name    string
	checkID string
}

// requiredAttrs maps element names to attributes they must carry. Each
// missing attribute is reported independently, in table order.
var requiredAttrs = map[string][]requiredAttr{
	"img": {
		{name: "src", checkID: "ATT-001"},
		{name: "alt", checkID: "ATT-002"},
	},
	"a": {
		{name: "href", checkID: "ATT-003"},
	},
}

// checkRequiredAttributes verifies the per-element required attributes.
// Lookups use the exact attribute name with no normalization; a repeated
// name satisfies presence via either occurrence.
func checkRequiredAttributes(n *htmldoc.Node, r *report.Report) {
	// ATT-001/ATT-002: <img> needs src and alt; ATT-003: <a> needs href
	for _, req := range requiredAttrs[n.Data] {
		if !n.HasAttr(req.name) {
			r.Add(report.Error, req.checkID,
				fmt.Sprintf("<%s> tag is missing '%s' attribute.", n.Data, req.name))
		}
	}
}
