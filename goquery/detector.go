// Package goquery detects HTML markup in documentation comments.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/hulla/docugen"
)

// Ensure Detector implements docugen.HTMLDetector at compile time.
var _ docugen.HTMLDetector = (*Detector)(nil)

// inlineElements lists the elements that count as markup in a comment.
// Unknown elements are ignored so type arguments such as Array<string>
// are not mistaken for HTML.
var inlineElements = []string{
	"a", "b", "blockquote", "br", "code", "em", "h1", "h2", "h3", "h4",
	"i", "img", "kbd", "li", "ol", "p", "pre", "strong", "sub", "sup",
	"table", "ul",
}

// Detector identifies HTML markup in comment text.
type Detector struct {
	selector string
}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{selector: "body " + strings.Join(inlineElements, ", body ")}
}

// ContainsHTML reports whether text contains at least one known element.
func (d *Detector) ContainsHTML(text string) bool {
	if !strings.Contains(text, "<") {
		return false
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return false
	}

	return d.hasSelector(doc, d.selector)
}

// hasSelector checks if the document contains at least one element matching the selector.
func (d *Detector) hasSelector(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}
