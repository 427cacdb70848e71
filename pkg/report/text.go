package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// WriteText writes human-readable validation output to w.
func (r *Report) WriteText(w io.Writer) {
	for _, m := range r.Messages {
		fmt.Fprintln(w, m.String())
	}
	if r.IsValid() {
		fmt.Fprintln(w, "No validation errors found.")
	} else {
		fmt.Fprintf(w, "Validation finished. Errors: %d, Warnings: %d, Fatal: %d\n",
			r.ErrorCount(), r.WarningCount(), r.FatalCount())
	}
}

// WriteColorText writes the report to w with terminal colors: a green
// all-clear line when the document is valid, otherwise a bold red header
// followed by every finding in red.
func (r *Report) WriteColorText(w io.Writer) {
	if r.IsValid() {
		color.New(color.FgGreen).Fprintln(w, "No validation errors found.")
		return
	}
	color.New(color.FgRed, color.Bold).Fprintln(w, "HTML validation failed with errors:")
	for _, m := range r.Messages {
		color.New(color.FgRed).Fprintln(w, m.String())
	}
}
