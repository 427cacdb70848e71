// Package doctor implements a repair mode ("doctor") that applies safe,
// mechanical fixes for common validation errors.
//
// The approach:
//  1. Read the page and run the standard validator to identify problems
//  2. Re-parse the page into a mutable tree
//  3. Apply fixes (safe, deterministic, content-preserving)
//  4. Write the repaired page
//  5. Re-validate the output to confirm fixes worked
//
// Fixes:
//   - DOC-001: invalid doctype — replaces it with <!DOCTYPE html>
//   - DOC-002: missing doctype — inserts <!DOCTYPE html>
//   - DOC-003/004/005: missing html/head/body — supplied by construction,
//     since the parser materializes the skeleton and rendering emits it
//   - ELT-001: duplicate singleton elements — removes every occurrence
//     after the first
//   - ATT-002: img without alt — adds an empty alt attribute
//
// Not fixed: ATT-001 and ATT-003 need a real src or href value, which a
// mechanical fix cannot invent. Those findings survive into the after
// report.
package doctor

import (
	"bytes"
	"fmt"

	"golang.org/x/net/html"

	"github.com/zabirtech/cli-html-validator/pkg/htmldoc"
	"github.com/zabirtech/cli-html-validator/pkg/report"
	"github.com/zabirtech/cli-html-validator/pkg/validate"
)

// Result holds the outcome of a doctor run.
type Result struct {
	Fixes        []Fix
	BeforeReport *report.Report
	AfterReport  *report.Report
}

// Repair reads an HTML page, applies fixes, and writes the repaired version.
// If outputPath is empty, it writes to inputPath with a ".fixed.html" suffix.
// When the page is already valid, or nothing is fixable, no output is
// written and AfterReport aliases BeforeReport.
func Repair(inputPath, outputPath string) (*Result, error) {
	if outputPath == "" {
		outputPath = inputPath + ".fixed.html"
	}

	// Step 1: Read and validate original
	data, err := htmldoc.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("reading page: %w", err)
	}

	beforeReport, err := validate.ValidateReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("validating: %w", err)
	}

	// If already valid with no warnings, nothing to do
	if beforeReport.IsValid() && beforeReport.WarningCount() == 0 {
		return &Result{
			BeforeReport: beforeReport,
			AfterReport:  beforeReport,
		}, nil
	}

	// Step 2: Parse into a mutable tree
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}

	// Step 3: Apply fixes
	var allFixes []Fix

	allFixes = append(allFixes, fixDoctype(doc)...)
	allFixes = append(allFixes, fixDuplicateSingletons(doc)...)
	allFixes = append(allFixes, fixMissingAlt(doc)...)

	if len(allFixes) == 0 {
		return &Result{
			BeforeReport: beforeReport,
			AfterReport:  beforeReport,
		}, nil
	}

	// Step 4: Write the repaired page
	if err := writePage(outputPath, doc); err != nil {
		return nil, fmt.Errorf("writing repaired page: %w", err)
	}

	// Step 5: Re-validate to confirm
	afterReport, err := validate.Validate(outputPath)
	if err != nil {
		return nil, fmt.Errorf("validating repaired page: %w", err)
	}

	return &Result{
		Fixes:        allFixes,
		BeforeReport: beforeReport,
		AfterReport:  afterReport,
	}, nil
}

// Note on DOC-003/004/005:
// These are "fixed by construction" — the parser always materializes the
// html, head, and body elements while building the tree, and writePage
// renders that skeleton back out. So any page that passes through doctor
// mode gets these fixed automatically, even though we don't emit explicit
// Fix entries for them.
