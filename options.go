package flacbatch

import (
	"fmt"

	"github.com/simonhull/flacbatch/internal/types"
)

// SaveOption configures behavior when persisting a batch edit.
//
// Options use the functional options pattern:
//
//	written, err := flacbatch.SaveTags(sel, rows,
//	    flacbatch.WithPadding(8192),
//	    flacbatch.WithVerification(),
//	)
type SaveOption func(*saveOptions)

// saveOptions holds configuration for persisting files.
type saveOptions struct {
	padding *int // Padding override in bytes (nil: keep existing padding)
	verify  bool // Re-read written files with an independent tag reader
}

// defaultSaveOptions returns the default configuration.
func defaultSaveOptions() *saveOptions {
	return &saveOptions{}
}

// applySaveOptions folds the options and validates them. Validation
// happens here, before any file is touched.
func applySaveOptions(opts []SaveOption) (*saveOptions, error) {
	o := defaultSaveOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.padding != nil && *o.padding < 0 {
		return nil, &types.ValidationError{
			Reason: fmt.Sprintf("padding override must be a non-negative byte count, got %d", *o.padding),
		}
	}
	return o, nil
}

// WithPadding replaces each file's padding on save: existing PADDING
// blocks are dropped and a single padding block of n zero bytes is
// appended as the last block.
//
// A negative n is rejected with ValidationError before any file I/O.
func WithPadding(n int) SaveOption {
	return func(o *saveOptions) {
		o.padding = &n
	}
}

// WithVerification re-reads each written file with an independent tag
// reader (dhowden/tag) and cross-checks the title, artist and album
// values. A mismatch fails the save of that file.
//
// This guards against codec round-trip bugs at the cost of one extra
// read per file.
func WithVerification() SaveOption {
	return func(o *saveOptions) {
		o.verify = true
	}
}
