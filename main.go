package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/zabirtech/cli-html-validator/pkg/doctor"
	"github.com/zabirtech/cli-html-validator/pkg/report"
	"github.com/zabirtech/cli-html-validator/pkg/validate"
)

const version = "0.1.0"

func main() {
	args := os.Args[1:]

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: cli-html-validator <file.html> [--fix] [--json <output.json | ->] [--no-color] [--version]")
		os.Exit(2)
	}

	// Handle --version
	for _, arg := range args {
		if arg == "--version" {
			fmt.Printf("cli-html-validator %s\n", version)
			os.Exit(0)
		}
	}

	htmlPath := args[0]
	var jsonOutput string
	noColor := false
	fix := false

	for i := 1; i < len(args); i++ {
		switch {
		case args[i] == "--json" && i+1 < len(args):
			jsonOutput = args[i+1]
			i++
		case args[i] == "--no-color":
			noColor = true
		case args[i] == "--fix":
			fix = true
		}
	}
	if noColor {
		color.NoColor = true
	}

	// Text output goes to stdout, unless the JSON report is being piped
	// there — then the text moves to stderr so stdout stays machine-readable.
	textOut := os.Stdout
	if jsonOutput == "-" {
		textOut = os.Stderr
	}

	var r *report.Report
	if fix {
		res, err := doctor.Repair(htmlPath, "")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Fatal: %v\n", err)
			os.Exit(2)
		}
		green := color.New(color.FgGreen)
		for _, f := range res.Fixes {
			green.Fprintf(textOut, "Fixed %s: %s\n", f.CheckID, f.Description)
		}
		if len(res.Fixes) > 0 {
			fmt.Fprintf(textOut, "Repaired page written to %s\n", htmlPath+".fixed.html")
		}
		r = res.AfterReport
	} else {
		var err error
		r, err = validate.Validate(htmlPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Fatal: %v\n", err)
			os.Exit(2)
		}
	}

	if noColor {
		r.WriteText(textOut)
	} else {
		r.WriteColorText(textOut)
	}

	if jsonOutput != "" {
		if err := writeJSON(r, jsonOutput); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing JSON: %v\n", err)
			os.Exit(2)
		}
	}

	// Exit codes: 0=valid, 1=validation errors, 2=fatal
	if r.FatalCount() > 0 {
		os.Exit(2)
	}
	if r.ErrorCount() > 0 {
		os.Exit(1)
	}
	os.Exit(0)
}

func writeJSON(r *report.Report, path string) error {
	if path == "-" {
		return r.WriteJSON(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return r.WriteJSON(f)
}
