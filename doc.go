// Package flacbatch is a batch metadata editor engine for FLAC files.
//
// flacbatch loads a selection of FLAC files, checks that they are
// structurally consistent enough to edit together, merges their tag
// dictionaries into one editable view, and maps an edited or reordered
// metadata block list back onto each file's original blocks by content
// identity before writing the new block sequence back.
//
// # Quick Start
//
// Editing the same tag across several files:
//
//	sel, err := flacbatch.OpenMany(ctx, paths...)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	rows, err := flacbatch.Merge(sel)
//	if err != nil {
//		log.Fatal(err) // e.g. files disagree on tag fields
//	}
//
//	rows[0].Value = "New Title"
//	written, err := flacbatch.SaveTags(sel, rows)
//
// # Consistency Before Editing
//
// Batch operations require every file in the selection to present the
// same shape: the same ordered tag field names for tag editing, the
// same block count and code sequence for block editing. The checks run
// eagerly, before any editable view is built, so incompatible
// selections are rejected before the user invests edits.
//
// # Content Identity
//
// Blocks are identified across snapshots by a (code, content hash)
// pair, never by list position. The hash is a SHA-256 digest of the
// block payload, recomputed on demand. Reordering a block list and
// reconciling it back therefore moves the original blocks byte for
// byte; a block whose recorded hash no longer matches anything in the
// file is reported as unresolved rather than silently replaced.
//
// # Divergent Values
//
// When files disagree on a tag value, the merged row shows a
// multivalued marker followed by the sorted distinct values. Rows still
// carrying the marker at save time restore each file's original value;
// edited rows apply uniformly to every file. Untouched divergence is
// never collapsed by accident.
//
// # Error Handling
//
// flacbatch distinguishes eager validation failures, which block an
// operation before any file is touched (ConsistencyError,
// ValidationError), from I/O failures inside a multi-file write loop,
// which stop the loop and report exactly which files were already
// written (ContainerWriteError, UnresolvedBlockError). Advisory
// conditions, such as a padding block that is no longer last, are
// returned as Warning values, not errors.
//
// The container format itself is read and written by go-flac; this
// package never parses or serializes the byte-level container.
package flacbatch
