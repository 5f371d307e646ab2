package docugen

import "strings"

// Declaration describes the construct a documentation block annotates.
type Declaration struct {
	Kind      string `json:"kind" msgpack:"kind"`
	Name      string `json:"name" msgpack:"name"`
	Modifiers string `json:"modifiers" msgpack:"modifiers"`
}

// ParseDeclaration classifies a verbatim declaration line.
//
// The kind is the first entry of Keywords found anywhere in the line. The
// name is the text after it up to the first stop word, and the modifiers
// are the text before it with flavor words removed. When no keyword
// matches, ParseDeclaration reports false and extracts the name from the
// whole line.
func ParseDeclaration(line string) (Declaration, bool) {
	kind, found := FirstOccurrence(line, Keywords)

	idx := strings.Index(line, kind)
	name := TerminateOn(line[idx+len(kind):], StopWords)
	modifiers := CleanModifiers(strings.ReplaceAll(line[:idx], kind, ""))

	return Declaration{Kind: kind, Name: name, Modifiers: modifiers}, found
}

// FirstOccurrence returns the first of substrs, in slice order, contained in s.
func FirstOccurrence(s string, substrs []string) (string, bool) {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return sub, true
		}
	}
	return "", false
}

// TerminateOn trims s and cuts it at the leftmost occurrence of any of
// stops. On equal positions the earlier stop wins.
func TerminateOn(s string, stops []string) string {
	s = strings.TrimSpace(s)
	cut := -1
	for _, stop := range stops {
		if stop == "" {
			continue
		}
		if i := strings.Index(s, stop); i != -1 && (cut == -1 || i < cut) {
			cut = i
		}
	}
	if cut == -1 {
		return s
	}
	return strings.TrimSpace(s[:cut])
}

// CleanModifiers removes every flavor word from s and trims the result.
// Inner spacing is kept. Removal repeats until nothing changes, so
// CleanModifiers is idempotent.
func CleanModifiers(s string) string {
	for {
		prev := s
		for _, word := range FlavorText {
			s = strings.ReplaceAll(s, word, "")
		}
		if s == prev {
			break
		}
	}
	return strings.TrimSpace(s)
}
