package docugen

// Comment delimiters and the tag marker.
const (
	DocStart  = "/**"
	DocEnd    = "*/"
	DocLine   = "*"
	TagMarker = "@"
)

// Keywords mark a declaration line. Order matters: the classifier picks the
// first keyword in this list that occurs in the line.
var Keywords = []string{
	"function",
	"class",
	"interface",
	"type",
	"enum",
	"namespace",
	"let",
	"var",
	"const",
	"readonly",
	"public",
	"private",
	"protected",
	"static",
	"get",
	"set",
}

// StopWords terminate a declaration name.
var StopWords = []string{" ", ":", "=", "(", "{", "}", ")", "=>", ",", ";"}

// FlavorText words are stripped from declaration modifiers.
var FlavorText = []string{"export", "import", "declare"}
