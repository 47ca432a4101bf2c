package flacbatch

import (
	"github.com/simonhull/flacbatch/internal/types"
)

// Selection is an ordered list of files chosen for a batch operation.
//
// A Selection is rebuilt on every selection change; it is not persisted
// and holds no state beyond the file references themselves.
type Selection []*File

// Paths returns the file paths in selection order.
func (s Selection) Paths() []string {
	paths := make([]string, len(s))
	for i, f := range s {
		paths[i] = f.Path
	}
	return paths
}

// CheckBlockShape verifies that every file presents the same number of
// metadata blocks with the same ordered code sequence.
//
// Returns nil for an empty or single-file selection. On divergence the
// returned ConsistencyError names which aspect differed (count before
// codes) and the first file that diverged; the caller must abort the
// batch block edit entirely.
func (s Selection) CheckBlockShape() error {
	if len(s) < 2 {
		return nil
	}

	ref := s[0].BlockCodes()
	for _, f := range s[1:] {
		codes := f.BlockCodes()
		if len(codes) != len(ref) {
			return &types.ConsistencyError{Aspect: "block count", Path: f.Path}
		}
		for i := range codes {
			if codes[i] != ref[i] {
				return &types.ConsistencyError{Aspect: "block codes", Path: f.Path}
			}
		}
	}
	return nil
}

// CheckTagShape verifies that every file presents the same ordered list
// of tag field names and returns that shared list.
//
// Field names are compared exactly, including order and spelling, as
// stored in each file. On divergence the merge must be aborted; a
// partial merge over the common subset is never attempted.
func (s Selection) CheckTagShape() ([]string, error) {
	if len(s) == 0 {
		return nil, nil
	}

	ref := s[0].Tags.FieldNames()
	for _, f := range s[1:] {
		names := f.Tags.FieldNames()
		if len(names) != len(ref) {
			return nil, &types.ConsistencyError{Aspect: "tag fields", Path: f.Path}
		}
		for i := range names {
			if names[i] != ref[i] {
				return nil, &types.ConsistencyError{Aspect: "tag fields", Path: f.Path}
			}
		}
	}
	return ref, nil
}
