package flacbatch

import (
	"fmt"

	"github.com/simonhull/flacbatch/internal/catalog"
	"github.com/simonhull/flacbatch/internal/codec"
	"github.com/simonhull/flacbatch/internal/types"
)

// BlockRef identifies one block by content: its code and the content
// hash recorded when the block list was displayed. Position is never
// part of the identity; two refs with equal code and hash refer to
// interchangeable blocks.
type BlockRef struct {
	Code BlockCode
	Hash string
}

// RefsOf returns the content-identity refs of a file's current blocks,
// in block order. Hashes are computed fresh from the current payloads.
func RefsOf(f *File) []BlockRef {
	refs := make([]BlockRef, len(f.Blocks))
	for i, b := range f.Blocks {
		refs[i] = BlockRef{Code: b.Code, Hash: b.ContentHash()}
	}
	return refs
}

// BlockRefs returns the refs of the selection's first file. Callers
// must have passed CheckBlockShape, which guarantees every file shares
// the same code sequence; the hashes shown are the first file's.
func (s Selection) BlockRefs() []BlockRef {
	if len(s) == 0 {
		return nil
	}
	return RefsOf(s[0])
}

// RemoveRef returns the ref list with the entry at index i removed.
//
// Removing a STREAMINFO entry is rejected with ValidationError before
// any mutation: every file must keep exactly one STREAMINFO block.
func RemoveRef(refs []BlockRef, i int) ([]BlockRef, error) {
	if i < 0 || i >= len(refs) {
		return nil, &types.ValidationError{Reason: fmt.Sprintf("block index %d out of range", i)}
	}
	if !catalog.Deletable(catalog.Classify(refs[i].Code)) {
		return nil, &types.ValidationError{Reason: fmt.Sprintf("%s block cannot be deleted", refs[i].Code)}
	}
	out := make([]BlockRef, 0, len(refs)-1)
	out = append(out, refs[:i]...)
	return append(out, refs[i+1:]...), nil
}

// MoveRef returns the ref list with the entry at from moved to to.
// Out-of-range indices leave the list unchanged.
func MoveRef(refs []BlockRef, from, to int) []BlockRef {
	if from < 0 || from >= len(refs) || to < 0 || to >= len(refs) || from == to {
		return refs
	}
	out := make([]BlockRef, 0, len(refs))
	out = append(out, refs...)
	ref := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]BlockRef{ref}, out[to:]...)...)
	return out
}

// Reconcile maps the edited block order back onto each file's original
// blocks and persists the new sequence per file.
//
// order is one ordered ref list describing the desired arrangement,
// assumed valid for every file; the block-shape check is re-run first
// and divergence aborts before any write. Per file, a backup of the
// current block list is taken and each ref is resolved against it by
// code and freshly recomputed content hash, consuming at most one
// backup block per ref (first match wins; duplicate identical blocks
// are indistinguishable by design). A ref that resolves to nothing
// yields UnresolvedBlockError: that file keeps its original list, the
// loop stops, and the returned slice reports the files already written.
//
// After all files persist, each is re-read; a PADDING block that is no
// longer last raises an advisory Warning per file, because other tools
// may reinterpret a non-terminal padding block.
func Reconcile(sel Selection, order []BlockRef, opts ...SaveOption) (written []string, warnings []Warning, err error) {
	o, err := applySaveOptions(opts)
	if err != nil {
		return nil, nil, err
	}
	if err := sel.CheckBlockShape(); err != nil {
		return nil, nil, err
	}

	hasStreamInfo := false
	for _, ref := range order {
		if ref.Code == BlockStreamInfo {
			hasStreamInfo = true
			break
		}
	}
	if !hasStreamInfo {
		return nil, nil, &types.ValidationError{Reason: "edited block list must retain the STREAMINFO block"}
	}

	for _, f := range sel {
		backup := f.CloneBlocks()
		used := make([]bool, len(backup))
		resolved := make([]*Block, 0, len(order))

		for _, ref := range order {
			found := -1
			for j, b := range backup {
				if !used[j] && b.Code == ref.Code && b.ContentHash() == ref.Hash {
					found = j
					break
				}
			}
			if found < 0 {
				return written, nil, &types.UnresolvedBlockError{Path: f.Path, Code: ref.Code, Hash: ref.Hash}
			}
			used[found] = true
			resolved = append(resolved, backup[found])
		}

		f.Blocks = resolved
		if err := codec.Save(f, o.padding); err != nil {
			return written, nil, err
		}
		written = append(written, f.Path)
	}

	// Post-write advisory pass: reload and check padding placement.
	for _, f := range sel {
		fresh, err := codec.Load(f.Path)
		if err != nil {
			warnings = append(warnings, Warning{
				Stage:   "reconcile",
				Path:    f.Path,
				Message: fmt.Sprintf("could not re-read after save: %v", err),
			})
			continue
		}
		*f = *fresh
		codes := f.BlockCodes()
		for i, code := range codes {
			if catalog.MustBeLast(catalog.Classify(code)) && i != len(codes)-1 {
				warnings = append(warnings, Warning{
					Stage:   "reconcile",
					Path:    f.Path,
					Message: "PADDING is not the last block; padding changes may not take effect",
				})
				break
			}
		}
	}
	return written, warnings, nil
}
