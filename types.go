package flacbatch

import (
	"github.com/simonhull/flacbatch/internal/types"
)

// File is an alias to types.File: one FLAC file in the editing session.
type File = types.File

// Block is an alias to types.Block: one metadata block of a file.
type Block = types.Block

// BlockCode is an alias to types.BlockCode.
type BlockCode = types.BlockCode

// Block codes of the FLAC container format.
const (
	BlockStreamInfo    = types.BlockStreamInfo
	BlockPadding       = types.BlockPadding
	BlockApplication   = types.BlockApplication
	BlockSeekTable     = types.BlockSeekTable
	BlockVorbisComment = types.BlockVorbisComment
	BlockCueSheet      = types.BlockCueSheet
	BlockPicture       = types.BlockPicture
)

// TagDict is an alias to types.TagDict: an ordered tag dictionary.
type TagDict = types.TagDict

// TagField is an alias to types.TagField.
type TagField = types.TagField

// StreamInfo is an alias to types.StreamInfo.
type StreamInfo = types.StreamInfo

// Picture is an alias to types.Picture.
type Picture = types.Picture

// PictureType is an alias to types.PictureType.
type PictureType = types.PictureType

// PictureFrontCover is the front cover picture type.
const PictureFrontCover = types.PictureFrontCover

// Warning is an alias to types.Warning: a non-fatal advisory.
type Warning = types.Warning
