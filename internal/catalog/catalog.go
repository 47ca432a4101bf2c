// Package catalog classifies FLAC metadata block codes and answers
// per-kind policy questions: whether a block may be deleted and whether
// it is expected to sit at the end of the block sequence.
//
// The catalog is a pure lookup with no state and no failure mode.
// Codes outside the known range classify as KindUnknown, which carries
// the permissive default policy (deletable, no position constraint).
package catalog

import "github.com/simonhull/flacbatch/internal/types"

// Kind is the classified kind of a block code.
type Kind int

const (
	KindUnknown Kind = iota
	KindStreamInfo
	KindPadding
	KindApplication
	KindSeekTable
	KindVorbisComment
	KindCueSheet
	KindPicture
)

// Classify maps a block code to its kind.
func Classify(code types.BlockCode) Kind {
	switch code {
	case types.BlockStreamInfo:
		return KindStreamInfo
	case types.BlockPadding:
		return KindPadding
	case types.BlockApplication:
		return KindApplication
	case types.BlockSeekTable:
		return KindSeekTable
	case types.BlockVorbisComment:
		return KindVorbisComment
	case types.BlockCueSheet:
		return KindCueSheet
	case types.BlockPicture:
		return KindPicture
	}
	return KindUnknown
}

// Deletable reports whether blocks of this kind may be removed from a
// file. Only STREAMINFO is protected: every file must keep exactly one.
func Deletable(kind Kind) bool {
	return kind != KindStreamInfo
}

// MustBeLast reports whether blocks of this kind belong at the end of
// the block sequence. True only for PADDING, and advisory: a violation
// raises a warning, not a failure, because other tools may reinterpret
// a non-terminal padding block.
func MustBeLast(kind Kind) bool {
	return kind == KindPadding
}
