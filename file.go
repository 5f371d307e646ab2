package docugen

import "context"

// FileLister lists the source files to document.
type FileLister interface {
	// List walks every include directory recursively and returns files whose
	// extension is in extensions, skipping anything matching excludes.
	List(includes, extensions, excludes []string) ([]string, error)
}

// FileReader reads source files.
type FileReader interface {
	// ReadFile returns the full text content of path.
	// The context controls timeout and cancellation.
	ReadFile(ctx context.Context, path string) (string, error)
}
