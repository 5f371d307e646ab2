package docugen

// Converter converts an HTML fragment to Markdown.
type Converter interface {
	// Convert transforms HTML found in a comment into Markdown.
	Convert(html string) (string, error)
}

// HTMLDetector reports whether comment text carries HTML markup.
type HTMLDetector interface {
	ContainsHTML(text string) bool
}

// HTMLRenderer renders Markdown as HTML for the .html output format.
type HTMLRenderer interface {
	RenderHTML(markdown string) (string, error)
}
