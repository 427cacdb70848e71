package doctor

import (
	"os"

	"golang.org/x/net/html"
)

// writePage renders the repaired tree to path. Rendering always emits the
// html, head, and body skeleton the parser materialized, so missing
// top-level elements are repaired by construction.
func writePage(path string, doc *html.Node) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := html.Render(f, doc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
