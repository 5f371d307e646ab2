// Package docugen extracts TSDoc-style documentation comments from source
// files and turns them into markdown pages.
//
// The package holds the domain types, the service interfaces and the pure
// parsing logic: the line scanner that pairs comment blocks with the
// declaration that follows them, the declaration classifier and the
// documentation segmenter. Implementations that touch the outside world
// live in subdirectories named after their primary dependency (e.g. fs/,
// sqlite/, slog/).
package docugen
