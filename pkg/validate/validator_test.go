package validate

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/zabirtech/cli-html-validator/pkg/htmldoc"
	"github.com/zabirtech/cli-html-validator/pkg/report"
)

// validateString runs the full parse+validate path over an in-memory document.
func validateString(t *testing.T, src string) *report.Report {
	t.Helper()
	r, err := ValidateReader(strings.NewReader(src))
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	return r
}

func checkIDs(r *report.Report) []string {
	ids := make([]string, 0, len(r.Messages))
	for _, m := range r.Messages {
		ids = append(ids, m.CheckID)
	}
	return ids
}

func assertIDs(t *testing.T, r *report.Report, want ...string) {
	t.Helper()
	got := checkIDs(r)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("check IDs: got %v, want %v", got, want)
		for _, m := range r.Messages {
			t.Logf("  %s", m)
		}
	}
}

// element builds an element node for hand-constructed trees.
func element(tag string, children ...*htmldoc.Node) *htmldoc.Node {
	return &htmldoc.Node{Type: htmldoc.ElementNode, Data: tag, Children: children}
}

// pageTree builds a minimal well-formed document tree around the given body
// children.
func pageTree(bodyChildren ...*htmldoc.Node) *htmldoc.Document {
	return &htmldoc.Document{
		Root: &htmldoc.Node{
			Type: htmldoc.DocumentNode,
			Children: []*htmldoc.Node{
				{Type: htmldoc.DoctypeNode, Data: "html"},
				element("html",
					element("head", element("title", &htmldoc.Node{Type: htmldoc.TextNode, Data: "t"})),
					element("body", bodyChildren...),
				),
			},
		},
	}
}

func TestValidDocument(t *testing.T) {
	r := validateString(t, `<!DOCTYPE html><html><head><title>T</title></head><body></body></html>`)
	if !r.IsValid() {
		t.Error("expected valid document")
		for _, m := range r.Messages {
			t.Logf("  %s", m)
		}
	}
	if len(r.Messages) != 0 {
		t.Errorf("expected empty report, got %d messages", len(r.Messages))
	}
}

func TestMissingDoctypeAndImgAttributes(t *testing.T) {
	// The img findings come first (traversal order), the structure finding
	// last; html/head/body are all present so only the doctype is missing.
	r := validateString(t, `<html><head></head><body><img></body></html>`)

	assertIDs(t, r, "ATT-001", "ATT-002", "DOC-002")

	wantTexts := []string{
		"<img> tag is missing 'src' attribute.",
		"<img> tag is missing 'alt' attribute.",
		"Missing <!DOCTYPE html> declaration.",
	}
	for i, want := range wantTexts {
		if r.Messages[i].Message != want {
			t.Errorf("message[%d]: got %q, want %q", i, r.Messages[i].Message, want)
		}
	}
}

func TestDuplicateTitleAndMissingHref(t *testing.T) {
	r := validateString(t, `<!DOCTYPE html><html><head><title>A</title><title>B</title></head><body><a>link</a></body></html>`)

	assertIDs(t, r, "ELT-001", "ATT-003")

	if want := "Multiple <title> elements found. There should only be one <title> element."; r.Messages[0].Message != want {
		t.Errorf("message[0]: got %q, want %q", r.Messages[0].Message, want)
	}
	if want := "<a> tag is missing 'href' attribute."; r.Messages[1].Message != want {
		t.Errorf("message[1]: got %q, want %q", r.Messages[1].Message, want)
	}
}

func TestVoidElementWithChildren(t *testing.T) {
	// The HTML parsing algorithm never attaches children to a void element
	// (a stray </br> becomes a second <br>), so the tree is built directly.
	doc := pageTree(
		element("br",
			element("span", &htmldoc.Node{Type: htmldoc.TextNode, Data: "x"}),
		),
	)

	r := ValidateDocument(doc)
	assertIDs(t, r, "ELT-002")
	if want := "Void element <br> should not have children."; r.Messages[0].Message != want {
		t.Errorf("message: got %q, want %q", r.Messages[0].Message, want)
	}
}

func TestVoidElementSingleMessagePerElement(t *testing.T) {
	doc := pageTree(
		element("hr",
			element("span"),
			element("span"),
			&htmldoc.Node{Type: htmldoc.TextNode, Data: "x"},
		),
	)

	r := ValidateDocument(doc)
	assertIDs(t, r, "ELT-002")
}

func TestInvalidDoctypeAlsoCountsAsMissing(t *testing.T) {
	// A doctype with the wrong name is reported, and the structure check
	// still reports the document as having no conforming doctype.
	r := validateString(t, `<!DOCTYPE foo><html><head><title>T</title></head><body></body></html>`)

	assertIDs(t, r, "DOC-001", "DOC-002")
	if want := "Invalid doctype: foo. Expected <!DOCTYPE html>."; r.Messages[0].Message != want {
		t.Errorf("message[0]: got %q, want %q", r.Messages[0].Message, want)
	}
}

func TestThirdSingletonOccurrenceErrorsAgain(t *testing.T) {
	r := validateString(t, `<!DOCTYPE html><html><head><title>A</title><title>B</title><title>C</title></head><body></body></html>`)

	assertIDs(t, r, "ELT-001", "ELT-001")
}

func TestStructuralMessagesFixedOrder(t *testing.T) {
	// A bare document root: nothing was seen, so all four structure messages
	// appear in the fixed order doctype, html, head, body.
	doc := &htmldoc.Document{Root: &htmldoc.Node{Type: htmldoc.DocumentNode}}

	r := ValidateDocument(doc)
	assertIDs(t, r, "DOC-002", "DOC-003", "DOC-004", "DOC-005")

	wantTexts := []string{
		"Missing <!DOCTYPE html> declaration.",
		"Missing <html> element.",
		"Missing <head> element.",
		"Missing <body> element.",
	}
	for i, want := range wantTexts {
		if r.Messages[i].Message != want {
			t.Errorf("message[%d]: got %q, want %q", i, r.Messages[i].Message, want)
		}
	}
}

func TestTraversalOrderObservable(t *testing.T) {
	// Findings appear in pre-order visiting sequence: both attributes of the
	// first img, then the anchor, then the second img.
	r := validateString(t, `<!DOCTYPE html><html><head><title>T</title></head><body><img><a>x</a><img></body></html>`)

	assertIDs(t, r, "ATT-001", "ATT-002", "ATT-003", "ATT-001", "ATT-002")
}

func TestUnknownKindsStillRecursed(t *testing.T) {
	// A kind outside the dispatch table carries no checks, but its children
	// must still be visited.
	doc := &htmldoc.Document{
		Root: &htmldoc.Node{
			Type: htmldoc.DocumentNode,
			Children: []*htmldoc.Node{
				{Type: htmldoc.UnknownNode, Children: []*htmldoc.Node{
					element("img"),
				}},
			},
		},
	}

	r := ValidateDocument(doc)
	assertIDs(t, r, "ATT-001", "ATT-002", "DOC-002", "DOC-003", "DOC-004", "DOC-005")
}

func TestIdempotence(t *testing.T) {
	doc, err := htmldoc.Parse(strings.NewReader(`<html><head><title>A</title><title>B</title></head><body><img><a>x</a></body></html>`))
	if err != nil {
		t.Fatal(err)
	}

	first := ValidateDocument(doc)
	second := ValidateDocument(doc)

	if !reflect.DeepEqual(first.Messages, second.Messages) {
		t.Errorf("reports differ between runs:\n  first:  %v\n  second: %v",
			first.Messages, second.Messages)
	}
}

func TestConcurrentRunsShareTree(t *testing.T) {
	doc, err := htmldoc.Parse(strings.NewReader(`<html><head><title>A</title><title>B</title></head><body><img></body></html>`))
	if err != nil {
		t.Fatal(err)
	}
	want := ValidateDocument(doc).Messages

	var wg sync.WaitGroup
	results := make([]*report.Report, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = ValidateDocument(doc)
		}(i)
	}
	wg.Wait()

	for i, r := range results {
		if !reflect.DeepEqual(r.Messages, want) {
			t.Errorf("run %d diverged: got %v, want %v", i, r.Messages, want)
		}
	}
}

func TestValidateMissingFile(t *testing.T) {
	r, err := Validate("testdata/does-not-exist.html")
	if err != nil {
		t.Fatal(err)
	}

	if r.FatalCount() != 1 || len(r.Messages) != 1 {
		t.Fatalf("expected exactly one fatal message, got %v", r.Messages)
	}
	if r.Messages[0].CheckID != "FIL-001" {
		t.Errorf("check ID: got %s, want FIL-001", r.Messages[0].CheckID)
	}
	if r.IsValid() {
		t.Error("fatal report must not be valid")
	}
}

func BenchmarkValidateDocument(b *testing.B) {
	var sb strings.Builder
	sb.WriteString(`<!DOCTYPE html><html><head><title>bench</title></head><body>`)
	for i := 0; i < 500; i++ {
		fmt.Fprintf(&sb, `<div><a href="/p/%d">p%d</a><img src="i%d.png" alt="i%d"><br></div>`, i, i, i, i)
	}
	sb.WriteString(`</body></html>`)

	doc, err := htmldoc.Parse(strings.NewReader(sb.String()))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if r := ValidateDocument(doc); !r.IsValid() {
			b.Fatalf("benchmark document unexpectedly invalid: %v", r.Messages)
		}
	}
}
