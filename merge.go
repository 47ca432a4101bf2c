package flacbatch

import (
	"fmt"
	"sort"
	"strings"

	"github.com/simonhull/flacbatch/internal/codec"
	"github.com/simonhull/flacbatch/internal/types"
)

// MultivaluedMarker is the sentinel prefix shown when a tag field holds
// different values across the files of a selection. A row whose value
// still starts with the marker at save time is treated as untouched and
// restores each file's original value.
const MultivaluedMarker = "≪Multivalued≫"

// MergedRow is one row of the merged, editable tag view.
type MergedRow struct {
	// Field is the tag field name, spelled as the first file stores it.
	Field string

	// Value is the display value: either the single shared value, or
	// MultivaluedMarker followed by the sorted distinct values joined
	// with "; ".
	Value string

	// Multivalued reports whether the files disagreed at merge time.
	Multivalued bool

	// PerFile records the first value each file held at merge time,
	// keyed by path ("" for a file missing the field). Kept for every
	// row, single- or multi-valued.
	PerFile map[string]string
}

// multivalued reports whether a display value carries the marker.
func multivalued(value string) bool {
	return strings.HasPrefix(value, MultivaluedMarker)
}

// Merge builds the editable tag view for a selection.
//
// The tag-shape check runs first: every file must present the same
// ordered field names or Merge fails with ConsistencyError and no view
// is built. For each field the current first value is collected from
// every file (absent fields count as empty). Identical values collapse
// to a single-value row; divergent values produce a multivalued row
// whose display string lists the distinct values in sorted order, so
// repeated merges of the same selection render identically.
func Merge(sel Selection) ([]MergedRow, error) {
	fields, err := sel.CheckTagShape()
	if err != nil {
		return nil, err
	}

	rows := make([]MergedRow, 0, len(fields))
	for _, field := range fields {
		perFile := make(map[string]string, len(sel))
		distinct := make(map[string]bool)
		for _, f := range sel {
			value := f.Tags.First(field)
			perFile[f.Path] = value
			distinct[value] = true
		}

		row := MergedRow{Field: field, PerFile: perFile}
		if len(distinct) == 1 {
			row.Value = sel[0].Tags.First(field)
		} else {
			values := make([]string, 0, len(distinct))
			for v := range distinct {
				values = append(values, v)
			}
			sort.Strings(values)
			row.Value = MultivaluedMarker + " " + strings.Join(values, "; ")
			row.Multivalued = true
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// SaveTags applies the edited rows to every file in the selection and
// persists each file.
//
// Resolution per row: a value still carrying the multivalued marker
// restores the file's original values for that field (all of them, from
// a fresh snapshot taken at save time); any other value is applied
// identically to every file. The resulting tag dictionary follows the
// row order, so removed rows drop the field and added rows append it.
//
// Before any file is mutated, every file is re-read from disk to
// snapshot its pre-edit values; a snapshot failure aborts the whole
// batch with no partial writes. I/O failures during the write loop stop
// the loop; the returned slice lists the files already written, in
// order, whether or not an error occurred.
func SaveTags(sel Selection, rows []MergedRow, opts ...SaveOption) ([]string, error) {
	o, err := applySaveOptions(opts)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if strings.TrimSpace(row.Field) == "" {
			return nil, &types.ValidationError{Reason: "tag field name must not be empty"}
		}
	}

	// Snapshot phase: all files or none.
	snapshots := make(map[string]TagDict, len(sel))
	for _, f := range sel {
		fresh, err := codec.Load(f.Path)
		if err != nil {
			return nil, err
		}
		snapshots[f.Path] = fresh.Tags
	}

	var written []string
	for _, f := range sel {
		snapshot := snapshots[f.Path]

		dict := types.TagDict{Vendor: f.Tags.Vendor}
		for _, row := range rows {
			if multivalued(row.Value) {
				// Untouched divergent row: keep what this file had.
				for _, orig := range snapshot.Fields() {
					if strings.EqualFold(orig.Name, row.Field) {
						dict.Append(orig.Name, orig.Value)
					}
				}
				continue
			}
			dict.Append(row.Field, row.Value)
		}

		f.Tags = dict
		if err := codec.SyncTags(f); err != nil {
			return written, err
		}
		if err := codec.Save(f, o.padding); err != nil {
			return written, err
		}
		if o.verify {
			if err := verifyWrittenTags(f); err != nil {
				return written, fmt.Errorf("verify %s: %w", f.Path, err)
			}
		}
		written = append(written, f.Path)
	}
	return written, nil
}
