package types

import "fmt"

// ContainerReadError is returned when the codec cannot load a file:
// the path does not exist, is unreadable, or is not a FLAC container.
type ContainerReadError struct {
	Path string
	Err  error
}

func (e *ContainerReadError) Error() string {
	return fmt.Sprintf("%s: read container: %v", e.Path, e.Err)
}

func (e *ContainerReadError) Unwrap() error { return e.Err }

// ContainerWriteError is returned when the codec fails to persist a
// file (disk full, permissions, invalid field values).
type ContainerWriteError struct {
	Path string
	Err  error
}

func (e *ContainerWriteError) Error() string {
	return fmt.Sprintf("%s: write container: %v", e.Path, e.Err)
}

func (e *ContainerWriteError) Unwrap() error { return e.Err }

// ConsistencyError reports that the files of a selection do not share
// the same shape and cannot be batch-edited. Aspect names what diverged.
type ConsistencyError struct {
	// Aspect is one of "block count", "block codes", "tag fields".
	Aspect string
	// Path is the first file that diverged from the selection's first file.
	Path string
}

func (e *ConsistencyError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("selection is not consistent: %s differ (first divergent file: %s)", e.Aspect, e.Path)
	}
	return fmt.Sprintf("selection is not consistent: %s differ", e.Aspect)
}

// UnresolvedBlockError reports that a reconciliation entry had no
// matching block in a file's backup list. The file's block list is left
// unchanged; files earlier in the batch may already have been written.
type UnresolvedBlockError struct {
	Path string
	Code BlockCode
	Hash string
}

func (e *UnresolvedBlockError) Error() string {
	return fmt.Sprintf("%s: no %s block with content hash %.12s", e.Path, e.Code, e.Hash)
}

// ValidationError is returned when an operation is rejected before any
// file I/O: deleting a STREAMINFO block, a negative padding override,
// malformed MD5 hex, and similar input problems.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Reason
}

// Warning represents a non-fatal issue surfaced by an operation.
//
// Warnings indicate conditions that do not prevent the operation from
// completing but that the user should see, such as a padding block that
// is no longer last after a reorder.
type Warning struct {
	// Stage where the warning occurred: "load", "reconcile", "save".
	Stage string

	// Path of the file the warning concerns ("" if not file-specific).
	Path string

	// Warning message.
	Message string
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Path != "" {
		return fmt.Sprintf("%s: %s: %s", w.Stage, w.Path, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
