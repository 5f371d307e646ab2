// Package markdown renders generated Markdown pages as HTML.
package markdown

import (
	"bytes"

	"github.com/hulla/docugen"
	"rsc.io/markdown"
)

// Ensure Renderer implements docugen.HTMLRenderer at compile time.
var _ docugen.HTMLRenderer = (*Renderer)(nil)

// Renderer converts Markdown to HTML using rsc.io/markdown.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderHTML parses md and prints it as HTML. Top-level headings get the
// same ids docugen.ExtractSections computes, so index links resolve.
func (r *Renderer) RenderHTML(md string) (string, error) {
	var p markdown.Parser
	doc := p.Parse(md)
	setHeadingIDs(doc, docugen.ExtractSections(md))

	var buf bytes.Buffer
	doc.PrintHTML(&buf)
	return buf.String(), nil
}

// setHeadingIDs assigns section anchors to top-level headings in order.
// Nothing is assigned if the counts disagree.
func setHeadingIDs(doc *markdown.Document, sections []docugen.Section) {
	var headings []*markdown.Heading
	for _, b := range doc.Blocks {
		if h, ok := b.(*markdown.Heading); ok {
			headings = append(headings, h)
		}
	}
	if len(headings) != len(sections) {
		return
	}
	for i, h := range headings {
		h.ID = sections[i].Anchor
	}
}
