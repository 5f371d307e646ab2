package docugen

import "strings"

// Docs is the segmented content of a documentation block. Each tag is a
// raw tag line including its marker; continuation lines are appended to it
// with embedded line feeds.
type Docs struct {
	Description string   `json:"description" msgpack:"description"`
	Tags        []string `json:"tags" msgpack:"tags"`
}

// IsEmpty reports whether the docs have neither a description nor tags.
func (d Docs) IsEmpty() bool {
	return d.Description == "" && len(d.Tags) == 0
}

type docsSection int

const (
	sectionDescription docsSection = iota
	sectionTag
	sectionDropped
)

// DocsBuilder accumulates a description followed by tags. Once a tag has
// been opened the description is closed for appends.
type DocsBuilder struct {
	description strings.Builder
	tags        []string
	section     docsSection
}

// AppendDescription appends a line to the description.
func (b *DocsBuilder) AppendDescription(line string) {
	if b.description.Len() > 0 {
		b.description.WriteByte('\n')
	}
	b.description.WriteString(line)
}

// OpenTag starts a new tag entry.
func (b *DocsBuilder) OpenTag(line string) {
	b.tags = append(b.tags, line)
	b.section = sectionTag
}

// AppendToLastTag appends a continuation line to the most recent tag.
func (b *DocsBuilder) AppendToLastTag(line string) {
	if len(b.tags) == 0 {
		return
	}
	b.tags[len(b.tags)-1] += "\n" + line
}

// Docs returns the accumulated docs.
func (b *DocsBuilder) Docs() Docs {
	return Docs{Description: b.description.String(), Tags: b.tags}
}

// ParseDocs segments raw comment lines into a description and tags.
//
// Delimiters are stripped and blank lines dropped. Lines before the first
// tag form the description; a line starting with the tag marker opens a
// tag and following non-tag lines continue it. Tag lines that do not
// resolve against the registry are dropped and returned so the caller can
// report them; lines after one still continue the last resolved tag, or are
// dropped when no tag has been opened yet.
func ParseDocs(lines []string) (Docs, []string) {
	var b DocsBuilder
	var dropped []string

	for _, raw := range lines {
		line := StripDelimiters(raw)
		if line == "" {
			continue
		}

		if !strings.HasPrefix(line, TagMarker) {
			switch b.section {
			case sectionDescription:
				b.AppendDescription(line)
			case sectionTag:
				b.AppendToLastTag(line)
			}
			continue
		}

		if _, ok := LookupTag(line); !ok {
			dropped = append(dropped, line)
			// Continuation lines keep extending the last resolved tag.
			if len(b.tags) == 0 {
				b.section = sectionDropped
			}
			continue
		}
		b.OpenTag(line)
	}

	return b.Docs(), dropped
}

// StripDelimiters removes the first occurrence of the start delimiter, the
// end delimiter and the line marker from line, in that order, and trims it.
func StripDelimiters(line string) string {
	for _, marker := range []string{DocStart, DocEnd, DocLine} {
		line = strings.Replace(line, marker, "", 1)
	}
	return strings.TrimSpace(line)
}
