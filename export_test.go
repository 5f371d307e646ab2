package docugen

// Exported for testing.
var (
	LookupTagIn    = lookupTag
	ValidateTagsIn = validateTags
)
