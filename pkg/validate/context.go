package validate

import "github.com/zabirtech/cli-html-validator/pkg/report"

// docContext accumulates document-level state across one traversal. A fresh
// context is built per validation run and discarded when the run returns.
type docContext struct {
	hasDoctype bool
	hasHTML    bool
	hasHead    bool
	hasBody    bool

	// singletonSeen records singleton-set element names that have already
	// appeared, so every later occurrence can be flagged.
	singletonSeen map[string]bool
}

func newDocContext() *docContext {
	return &docContext{singletonSeen: make(map[string]bool)}
}

// observeElement records the presence of required top-level elements.
func (c *docContext) observeElement(tag string) {
	switch tag {
	case "html":
		c.hasHTML = true
	case "head":
		c.hasHead = true
	case "body":
		c.hasBody = true
	}
}

// checkStructure runs once after the traversal and reports each required
// piece of document structure that never appeared. The order is fixed
// regardless of what the source document contained: doctype, html, head,
// body.
func checkStructure(c *docContext, r *report.Report) {
	// DOC-002: document must declare <!DOCTYPE html>
	if !c.hasDoctype {
		r.Add(report.Error, "DOC-002", "Missing <!DOCTYPE html> declaration.")
	}
	// DOC-003: document must contain an <html> element
	if !c.hasHTML {
		r.Add(report.Error, "DOC-003", "Missing <html> element.")
	}
	// DOC-004: document must contain a <head> element
	if !c.hasHead {
		r.Add(report.Error, "DOC-004", "Missing <head> element.")
	}
	// DOC-005: document must contain a <body> element
	if !c.hasBody {
		r.Add(report.Error, "DOC-005", "Missing <body> element.")
	}
}
