// Package render turns documentation records into Markdown or HTML pages.
package render

import (
	"fmt"
	"strings"

	"github.com/hulla/docugen"
	"gopkg.in/yaml.v3"
)

// Ensure Renderer implements docugen.Renderer at compile time.
var _ docugen.Renderer = (*Renderer)(nil)

// IndexTitle is the title of the index page.
const IndexTitle = "Index"

// Renderer renders pages for one adapter and output format.
//
// Detector and Converter are optional; when both are set, descriptions and
// tag text carrying HTML are converted to Markdown. HTML is required for
// the .html format.
type Renderer struct {
	Adapter   docugen.Adapter
	Format    docugen.Format
	Meta      bool
	Detector  docugen.HTMLDetector
	Converter docugen.Converter
	HTML      docugen.HTMLRenderer
}

type frontmatter struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
}

// Render renders the records of sourcePath as one page.
func (r *Renderer) Render(sourcePath string, records []docugen.DocRecord) (*docugen.Page, error) {
	title := docugen.PageTitle(sourcePath)

	var body strings.Builder
	for _, record := range records {
		body.WriteString(formatDeclaration(record.Declaration))
		body.WriteString(r.formatDocs(record.Docs))
	}

	var description string
	if r.Meta {
		description = "Generated from " + sourcePath
	}

	return r.page(sourcePath, docugen.PagePath(sourcePath, r.Format), title, description, body.String())
}

// Index renders a page listing pages and the declarations on each of them.
func (r *Renderer) Index(pages []*docugen.Page) (*docugen.Page, error) {
	var body strings.Builder
	for _, page := range pages {
		link := r.pageLink(page.Path)
		fmt.Fprintf(&body, "- [%s](%s)\n", page.SourcePath, link)
		for _, section := range page.Sections {
			if section.Level != 2 {
				continue
			}
			fmt.Fprintf(&body, "  - [%s](%s#%s)\n", declarationName(section.Title), link, section.Anchor)
		}
	}

	return r.page("", "index"+string(r.Format), IndexTitle, "", body.String())
}

func (r *Renderer) page(sourcePath, path, title, description, body string) (*docugen.Page, error) {
	page := &docugen.Page{
		SourcePath: sourcePath,
		Path:       path,
		Title:      title,
		Sections:   docugen.ExtractSections(body),
	}

	if r.Format == docugen.FormatHTML {
		if r.HTML == nil {
			return nil, docugen.Errorf(docugen.EINVALID, "html renderer required for %s format", r.Format)
		}
		html, err := r.HTML.RenderHTML("# " + title + "\n" + body)
		if err != nil {
			return nil, fmt.Errorf("render html %s: %w", path, err)
		}
		page.Content = html
		return page, nil
	}

	if r.Adapter != docugen.AdapterStarlight {
		page.Content = body
		return page, nil
	}

	fm, err := yaml.Marshal(frontmatter{Title: title, Description: description})
	if err != nil {
		return nil, fmt.Errorf("marshal frontmatter: %w", err)
	}
	page.Content = "---\n" + string(fm) + "---\n" + body
	return page, nil
}

// formatDeclaration renders the heading of a record.
func formatDeclaration(decl docugen.Declaration) string {
	kind := decl.Kind
	if decl.Modifiers != "" {
		kind = decl.Modifiers + " " + kind
	}
	return fmt.Sprintf("\n## %s *(`%s`)*", decl.Name, kind)
}

func (r *Renderer) formatDocs(docs docugen.Docs) string {
	md := "\n"
	if docs.Description != "" {
		md = "\n" + blockquote(r.toMarkdown(docs.Description)) + "\n"
	}
	return md + r.formatTags(docs.Tags)
}

// toMarkdown converts text carrying HTML markup. Text that fails to
// convert is kept as is.
func (r *Renderer) toMarkdown(text string) string {
	if r.Detector == nil || r.Converter == nil || !r.Detector.ContainsHTML(text) {
		return text
	}
	md, err := r.Converter.Convert(text)
	if err != nil {
		return text
	}
	return md
}

// declarationName returns the name part of a declaration heading.
func declarationName(title string) string {
	name, _, _ := strings.Cut(title, " *(")
	return name
}

// pageLink returns the link to a page relative to the index. Starlight
// serves pages at lowercased slugs without extension.
func (r *Renderer) pageLink(path string) string {
	if r.Adapter == docugen.AdapterStarlight && r.Format == docugen.FormatMarkdown {
		return "./" + strings.ToLower(strings.TrimSuffix(path, string(r.Format))) + "/"
	}
	return "./" + path
}

func blockquote(text string) string {
	return "> " + strings.ReplaceAll(text, "\n", "\n> ")
}
