package doctor

import (
	"fmt"

	"golang.org/x/net/html"
)

// Fix represents a single applied fix.
type Fix struct {
	CheckID     string
	Description string
}

// singletonTags lists element names that must appear at most once.
// Mirrors the validator's singleton set.
var singletonTags = map[string]bool{
	"title": true,
	"base":  true,
}

// fixDoctype ensures the document starts with <!DOCTYPE html>.
// Fixes DOC-001 (wrong doctype in place) and DOC-002 (no doctype at all).
func fixDoctype(doc *html.Node) []Fix {
	for n := doc.FirstChild; n != nil; n = n.NextSibling {
		if n.Type != html.DoctypeNode {
			continue
		}
		if n.Data == "html" {
			return nil
		}
		old := n.Data
		n.Data = "html"
		n.Attr = nil
		return []Fix{{
			CheckID:     "DOC-001",
			Description: fmt.Sprintf("Replaced doctype '%s' with <!DOCTYPE html>", old),
		}}
	}

	doc.InsertBefore(&html.Node{
		Type: html.DoctypeNode,
		Data: "html",
	}, doc.FirstChild)
	return []Fix{{
		CheckID:     "DOC-002",
		Description: "Inserted missing <!DOCTYPE html> declaration",
	}}
}

// fixDuplicateSingletons removes every occurrence of a singleton element
// after the first, in traversal order. Fixes ELT-001.
func fixDuplicateSingletons(doc *html.Node) []Fix {
	seen := make(map[string]bool)
	var extras []*html.Node

	walkElements(doc, func(n *html.Node) {
		if !singletonTags[n.Data] {
			return
		}
		if seen[n.Data] {
			extras = append(extras, n)
			return
		}
		seen[n.Data] = true
	})

	var fixes []Fix
	for _, n := range extras {
		n.Parent.RemoveChild(n)
		fixes = append(fixes, Fix{
			CheckID:     "ELT-001",
			Description: fmt.Sprintf("Removed duplicate <%s> element", n.Data),
		})
	}
	return fixes
}

// fixMissingAlt adds an empty alt attribute to img elements that lack one.
// An empty alt marks the image as decorative, which is the only value a
// mechanical fix can supply. Fixes ATT-002.
func fixMissingAlt(doc *html.Node) []Fix {
	var fixes []Fix
	walkElements(doc, func(n *html.Node) {
		if n.Data != "img" {
			return
		}
		for _, a := range n.Attr {
			if a.Key == "alt" {
				return
			}
		}
		n.Attr = append(n.Attr, html.Attribute{Key: "alt"})
		fixes = append(fixes, Fix{
			CheckID:     "ATT-002",
			Description: "Added empty alt attribute to <img>",
		})
	})
	return fixes
}

// walkElements calls fn for every element node under n in pre-order.
func walkElements(n *html.Node, fn func(*html.Node)) {
	if n.Type == html.ElementNode {
		fn(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkElements(c, fn)
	}
}
