// Package generate orchestrates a documentation run: list, scan, assemble,
// render and save.
package generate

// ProgressEvent represents a progress update during scanning.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	Error     error
}

// ProgressType indicates the kind of progress event.
type ProgressType int

const (
	// ProgressStarted is sent once before any file is scanned.
	ProgressStarted ProgressType = iota
	// ProgressCompleted is sent when a file was scanned or found in the cache.
	ProgressCompleted
	// ProgressFailed is sent when a file could not be read.
	ProgressFailed
	// ProgressFinished is sent once after every file was handled.
	ProgressFinished
)

// ProgressFunc is a callback for reporting scan progress.
type ProgressFunc func(event ProgressEvent)
