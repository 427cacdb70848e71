// Package validate implements the structural validation engine: a pre-order
// walk over the parsed document tree that dispatches per-kind checks while
// accumulating document-level context, followed by a structure check over
// that context once the walk completes.
package validate

import (
	"bytes"
	"errors"
	"io"

	"github.com/zabirtech/cli-html-validator/pkg/htmldoc"
	"github.com/zabirtech/cli-html-validator/pkg/report"
)

// Validate runs all validation checks on the HTML file at path and returns a
// report. File access, text decoding, and parse failures are fatal: each
// produces exactly one FATAL message and the traversal is not attempted.
func Validate(path string) (*report.Report, error) {
	r := report.NewReport()

	data, err := htmldoc.ReadFile(path)
	if err != nil {
		// FIL-001 / ENC-001: the file must be readable and decode as UTF-8
		if errors.Is(err, htmldoc.ErrNotUTF8) {
			r.AddWithLocation(report.Fatal, "ENC-001", "File content is not valid UTF-8.", path)
		} else {
			r.AddWithLocation(report.Fatal, "FIL-001", "Unable to read HTML file: "+err.Error(), path)
		}
		return r, nil
	}

	doc, err := htmldoc.Parse(bytes.NewReader(data))
	if err != nil {
		// HTM-001: the document must parse into a tree
		r.AddWithLocation(report.Fatal, "HTM-001", "Unable to parse HTML document: "+err.Error(), path)
		return r, nil
	}
	doc.Path = path

	runChecks(doc, r)
	return r, nil
}

// ValidateReader parses HTML from rd and validates it. A parse failure is
// fatal, as in Validate.
func ValidateReader(rd io.Reader) (*report.Report, error) {
	r := report.NewReport()

	doc, err := htmldoc.Parse(rd)
	if err != nil {
		r.Add(report.Fatal, "HTM-001", "Unable to parse HTML document: "+err.Error())
		return r, nil
	}

	runChecks(doc, r)
	return r, nil
}

// ValidateDocument validates an already-parsed document and returns the
// ordered findings. The tree is only read. The context and report live for
// exactly one call, so concurrent calls over distinct (or shared, immutable)
// documents are safe.
func ValidateDocument(doc *htmldoc.Document) *report.Report {
	r := report.NewReport()
	runChecks(doc, r)
	return r
}

// runChecks performs one full validation pass: the traversal from the root,
// then the document-structure check over the final context. Findings never
// abort the walk; every node is visited even when earlier nodes failed.
func runChecks(doc *htmldoc.Document, r *report.Report) {
	ctx := newDocContext()
	walkNode(doc.Root, ctx, r)
	checkStructure(ctx, r)
}
