package docugen

import (
	"fmt"
	"sort"
	"strings"
)

// DocRecord is a documented declaration.
type DocRecord struct {
	Declaration Declaration `json:"declaration" msgpack:"declaration"`
	Docs        Docs        `json:"docs" msgpack:"docs"`
}

// DocsData maps a source path to its records in scan order.
type DocsData map[string][]DocRecord

// Paths returns the source paths in lexical order.
func (d DocsData) Paths() []string {
	paths := make([]string, 0, len(d))
	for path := range d {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Count returns the total number of records.
func (d DocsData) Count() int {
	var n int
	for _, records := range d {
		n += len(records)
	}
	return n
}

// Warning codes.
const (
	EUNRESOLVEDTAG     = "unresolved_tag"
	EUNRESOLVEDKEYWORD = "unresolved_keyword"
	EUNTERMINATED      = "unterminated_block"
	EREAD              = "read_failure"
	ECACHE             = "cache_failure"
)

// Warning is a recoverable anomaly found while generating documentation.
// Warnings never stop a run.
type Warning struct {
	Code string `json:"code"`
	Path string `json:"path"`
	Line string `json:"line"`
	Err  error  `json:"-"`
}

// String returns a human readable description of the warning.
func (w Warning) String() string {
	line := strings.TrimSpace(w.Line)
	switch w.Code {
	case EUNRESOLVEDTAG:
		return fmt.Sprintf("%s: skipping unsupported tag in line %q", w.Path, line)
	case EUNRESOLVEDKEYWORD:
		return fmt.Sprintf("%s: no declaration keyword found in line %q", w.Path, line)
	case EUNTERMINATED:
		return fmt.Sprintf("%s: documentation block at %s is not followed by a declaration", w.Path, line)
	case EREAD:
		return fmt.Sprintf("%s: skipping file: %v", w.Path, w.Err)
	case ECACHE:
		return fmt.Sprintf("%s: cannot cache records: %v", w.Path, w.Err)
	}
	return fmt.Sprintf("%s: %s %q", w.Path, w.Code, line)
}

// Assemble classifies and segments every block of every file. Files with
// at least one block appear in the result, even if none of their blocks
// carries documentation; files without blocks are absent.
func Assemble(files map[string]*BlockMap) (DocsData, []Warning) {
	data := make(DocsData, len(files))
	var warnings []Warning
	for path, blocks := range files {
		if blocks.Len() == 0 {
			continue
		}
		records, w := AssembleFile(path, blocks)
		data[path] = records
		warnings = append(warnings, w...)
	}
	sort.SliceStable(warnings, func(i, j int) bool { return warnings[i].Path < warnings[j].Path })
	return data, warnings
}

// AssembleFile builds the records of a single file. Blocks whose docs are
// empty are skipped. The returned slice is never nil.
func AssembleFile(path string, blocks *BlockMap) ([]DocRecord, []Warning) {
	records := make([]DocRecord, 0, blocks.Len())
	var warnings []Warning
	for _, block := range blocks.Blocks() {
		decl, ok := ParseDeclaration(block.Declaration)
		if !ok {
			warnings = append(warnings, Warning{Code: EUNRESOLVEDKEYWORD, Path: path, Line: block.Declaration})
		}

		docs, dropped := ParseDocs(block.Lines)
		for _, line := range dropped {
			warnings = append(warnings, Warning{Code: EUNRESOLVEDTAG, Path: path, Line: line})
		}

		if docs.IsEmpty() {
			continue
		}
		records = append(records, DocRecord{Declaration: decl, Docs: docs})
	}
	return records, warnings
}
