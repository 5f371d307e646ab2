package docugen

import (
	"strings"
	"unicode"
)

// TagCategory classifies a tag marker. Numeric categories follow the TSDoc
// standardization groups. The renderer styles category two (modifier) tags
// as badges.
type TagCategory string

// TagCategory constants.
const (
	TagCategoryOne         TagCategory = "1"
	TagCategoryTwo         TagCategory = "2"
	TagCategoryThree       TagCategory = "3"
	TagCategoryFour        TagCategory = "4"
	TagCategorySpecial     TagCategory = "special"
	TagCategoryUnsupported TagCategory = "unsupported"
)

// Tag is a registered documentation annotation.
type Tag struct {
	Marker   string      `json:"marker"`
	Category TagCategory `json:"category"`
}

// Name returns the marker without its leading "@".
func (t Tag) Name() string {
	return strings.TrimPrefix(t.Marker, TagMarker)
}

// Tags is the tag registry. Lookups walk it in order.
var Tags = []Tag{
	{"@alpha", TagCategoryOne},
	{"@beta", TagCategoryOne},
	{"@decorator", TagCategoryTwo},
	{"@deprecated", TagCategoryOne},
	{"@defaultValue", TagCategoryFour},
	{"@eventProperty", TagCategoryTwo},
	{"@example", TagCategoryFour},
	{"@experimental", TagCategoryOne},
	{"@inheritDoc", TagCategoryUnsupported},
	{"@internal", TagCategoryTwo},
	{"@label", TagCategorySpecial},
	{"@link", TagCategoryThree},
	{"@override", TagCategoryTwo},
	{"@packageDocumentation", TagCategoryUnsupported},
	{"@param", TagCategoryThree},
	{"@privateRemarks", TagCategorySpecial},
	{"@public", TagCategoryTwo},
	{"@readonly", TagCategoryTwo},
	{"@remarks", TagCategoryFour},
	{"@returns", TagCategoryThree},
	{"@sealed", TagCategoryTwo},
	{"@see", TagCategoryThree},
	{"@throws", TagCategoryThree},
	{"@typeParam", TagCategoryThree},
	{"@virtual", TagCategoryTwo},
	{"@warning", TagCategoryOne},
}

// LookupTag resolves the tag a tag line opens with. The marker must be
// followed by the end of the line or a non-word character, so "@params"
// does not resolve to "@param".
func LookupTag(line string) (Tag, bool) {
	return lookupTag(Tags, line)
}

func lookupTag(tags []Tag, line string) (Tag, bool) {
	for _, tag := range tags {
		if !strings.HasPrefix(line, tag.Marker) {
			continue
		}
		rest := line[len(tag.Marker):]
		if rest == "" {
			return tag, true
		}
		r := []rune(rest)[0]
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return tag, true
		}
	}
	return Tag{}, false
}

// ValidateTags returns an error if any registered marker is a substring of
// another one, which would make classification depend on registry order.
func ValidateTags() error {
	return validateTags(Tags)
}

func validateTags(tags []Tag) error {
	for i, a := range tags {
		for j, b := range tags {
			if i == j {
				continue
			}
			if strings.Contains(b.Marker, a.Marker) {
				return Errorf(EINVALID, "tag %q is a substring of tag %q", a.Marker, b.Marker)
			}
		}
	}
	return nil
}
