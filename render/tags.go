package render

import (
	"fmt"
	"strings"

	"github.com/hulla/docugen"
)

// admonition describes how a tag is rendered as a callout.
type admonition struct {
	kind  string
	title string
}

var admonitions = map[string]admonition{
	"@warning":    {"caution", "Warning ⚠️"},
	"@throws":     {"danger", "Throws ❌"},
	"@deprecated": {"danger", "Deprecated 📜"},
	"@beta":       {"tip", "Beta 🧪"},
	"@alpha":      {"tip", "Alpha 🧪"},
	"@remarks":    {"note", "Remarks 📝"},
}

// tagGroup collects the values of one marker in first-seen order.
type tagGroup struct {
	tag    docugen.Tag
	values []string
}

// groupTags groups tag lines by marker. The marker is removed from each
// value. Groups keep the order in which their marker first appeared.
func groupTags(lines []string) []*tagGroup {
	var groups []*tagGroup
	byMarker := make(map[string]*tagGroup)
	for _, line := range lines {
		tag, ok := docugen.LookupTag(line)
		if !ok {
			continue
		}
		g, ok := byMarker[tag.Marker]
		if !ok {
			g = &tagGroup{tag: tag}
			byMarker[tag.Marker] = g
			groups = append(groups, g)
		}
		g.values = append(g.values, strings.TrimSpace(strings.TrimPrefix(line, tag.Marker)))
	}
	return groups
}

func (r *Renderer) formatTags(lines []string) string {
	var md strings.Builder
	for _, g := range groupTags(lines) {
		values := make([]string, len(g.values))
		for i, v := range g.values {
			values[i] = r.toMarkdown(v)
		}
		text := strings.Join(values, "\n")

		switch g.tag.Marker {
		case "@param":
			md.WriteString("\n### Parameters 📎\n| Name | Type | Description |\n| ---- | ---- | ----- |\n")
			for _, v := range g.values {
				md.WriteString(formatParam(v))
			}
		case "@returns":
			fmt.Fprintf(&md, "\n### Returns 📤\n%s\n", blockquote(text))
		case "@example":
			fmt.Fprintf(&md, "\n### Example 📝\n%s\n", strings.Join(g.values, "\n"))
		case "@see":
			fmt.Fprintf(&md, "\n### See 👀\n%s\n", blockquote(text))
		default:
			if a, ok := admonitions[g.tag.Marker]; ok {
				md.WriteString(r.formatAdmonition(a, text))
				continue
			}
			if g.tag.Category == docugen.TagCategoryTwo {
				md.WriteString(formatModifier(g.tag, g.values))
				continue
			}
			fmt.Fprintf(&md, "\n### %s\n%s\n", tagTitle(g.tag), text)
		}
	}
	return md.String()
}

// formatAdmonition renders a Starlight aside, or a titled blockquote for
// adapters without asides.
func (r *Renderer) formatAdmonition(a admonition, text string) string {
	if r.Adapter == docugen.AdapterStarlight && r.Format == docugen.FormatMarkdown {
		return fmt.Sprintf("\n:::%s[%s]\n%s\n:::\n", a.kind, a.title, text)
	}
	if text == "" {
		return fmt.Sprintf("\n> **%s**\n", a.title)
	}
	return fmt.Sprintf("\n> **%s**\n%s\n", a.title, blockquote(text))
}

// formatModifier renders a modifier tag such as @sealed or @internal as a
// single badge line. Modifier tags rarely carry text; any text follows the
// badge.
func formatModifier(tag docugen.Tag, values []string) string {
	badge := "**" + tagTitle(tag) + "** `" + tag.Marker + "`"
	var text []string
	for _, v := range values {
		if v != "" {
			text = append(text, strings.ReplaceAll(v, "\n", " "))
		}
	}
	if len(text) == 0 {
		return "\n" + badge + "\n"
	}
	return "\n" + badge + " " + strings.Join(text, " ") + "\n"
}

// formatParam renders one parameter table row. Values look like
// "name {type} description" or "name - description"; a value starting
// with the type is accepted too. Missing types render as unknown.
func formatParam(value string) string {
	value = strings.ReplaceAll(value, "\n", " ")
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return "| | unknown | |\n"
	}

	name, rest := fields[0], strings.Join(fields[1:], " ")
	if strings.HasPrefix(name, "{") {
		typ, remainder, ok := cutType(value)
		if ok {
			name, rest, _ = strings.Cut(strings.TrimSpace(remainder), " ")
			return row(name, "`"+typ+"`", rest)
		}
	}

	if strings.HasPrefix(rest, "{") {
		if typ, remainder, ok := cutType(rest); ok {
			return row(name, "`"+typ+"`", remainder)
		}
	}
	return row(name, "unknown", rest)
}

// cutType splits s, which starts with "{", at the matching closing brace.
func cutType(s string) (typ, rest string, ok bool) {
	depth := 0
	for i, c := range s {
		switch c {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[1:i], s[i+1:], true
			}
		}
	}
	return "", s, false
}

func row(name, typ, description string) string {
	description = strings.TrimSpace(description)
	description = strings.TrimSpace(strings.TrimPrefix(description, "-"))
	description = strings.ReplaceAll(description, "|", `\|`)
	typ = strings.ReplaceAll(typ, "|", `\|`)
	return fmt.Sprintf("| %s | %s | %s |\n", name, typ, description)
}

// tagTitle capitalizes the tag name for a section heading.
func tagTitle(tag docugen.Tag) string {
	name := tag.Name()
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
