// generate-test-pages.go creates HTML test files of various sizes for benchmarking.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func main() {
	dir := "benchmarks/corpus"
	os.MkdirAll(dir, 0755)

	sizes := []struct {
		name        string
		sections    int
		paraPerSec  int
	}{
		{"tiny-1sec", 1, 5},
		{"small-5sec", 5, 20},
		{"medium-20sec", 20, 50},
		{"large-50sec", 50, 100},
		{"xlarge-100sec", 100, 200},
	}

	for _, s := range sizes {
		path := filepath.Join(dir, s.name+".html")
		if err := generatePage(path, s.sections, s.paraPerSec); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating %s: %v\n", path, err)
			os.Exit(1)
		}
		fi, _ := os.Stat(path)
		fmt.Printf("Generated %s (%d KB)\n", path, fi.Size()/1024)
	}
}

func generatePage(path string, sections, parasPerSection int) error {
	loremParagraphs := []string{
		"Lorem ipsum dolor sit amet, consectetur adipiscing elit. Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua. Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo consequat.",
		"Duis aute irure dolor in reprehenderit in voluptate velit esse cillum dolore eu fugiat nulla pariatur. Excepteur sint occaecat cupidatat non proident, sunt in culpa qui officia deserunt mollit anim id est laborum.",
		"Curabitur pretium tincidunt lacus. Nulla gravida orci a odio. Nullam varius, turpis et commodo pharetra, est eros bibendum elit, nec luctus magna felis sollicitudin mauris. Integer in mauris eu nibh euismod gravida.",
		"Praesent blandit dolor. Sed non quam. In vel mi sit amet augue congue elementum. Morbi in ipsum sit amet pede facilisis laoreet. Donec lacus nunc, viverra nec, blandit vel, egestas et, augue.",
		"Vestibulum tincidunt malesuada tellus. Ut ultrices ultrices enim. Curabitur sit amet mauris. Morbi in dui quis est pulvinar ullamcorper. Nulla facilisi. Integer lacinia sollicitudin massa.",
	}

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	fmt.Fprintf(&sb, "  <title>Benchmark Page (%d sections)</title>\n", sections)
	sb.WriteString("</head>\n<body>\n")

	for i := 1; i <= sections; i++ {
		fmt.Fprintf(&sb, "  <h1>Section %d: The Journey Continues</h1>\n", i)
		fmt.Fprintf(&sb, "  <img src=\"figure%d.png\" alt=\"Figure %d\">\n", i, i)
		for j := 0; j < parasPerSection; j++ {
			p := loremParagraphs[j%len(loremParagraphs)]
			if j%3 == 0 {
				fmt.Fprintf(&sb, "  <p class=\"emphasis\">%s</p>\n", p)
			} else if j%5 == 0 {
				fmt.Fprintf(&sb, "  <p class=\"bold\">%s</p>\n", p)
			} else {
				fmt.Fprintf(&sb, "  <p>%s</p>\n", p)
			}
		}
		fmt.Fprintf(&sb, "  <p>Continue to <a href=\"section%d.html\">the next section</a>.</p>\n", i+1)
	}

	sb.WriteString("</body>\n</html>\n")

	return os.WriteFile(path, []byte(sb.String()), 0644)
}
