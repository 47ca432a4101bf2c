// Package codec is the container collaborator: it loads FLAC files into
// the engine's block/tag model and persists edited block sequences.
//
// All container parsing and serialization is delegated to go-flac; the
// engine above this package never touches the byte-level format. Block
// payloads cross the boundary as opaque byte slices, with dedicated
// helpers for the three payloads the engine needs to interpret
// (STREAMINFO, VORBIS_COMMENT, PICTURE).
package codec

import (
	"fmt"
	"os"

	flac "github.com/go-flac/go-flac"

	"github.com/simonhull/flacbatch/internal/types"
)

// Load reads the file at path and decodes it into the engine model.
//
// Fails with ContainerReadError on unreadable or non-FLAC input. A file
// without a VORBIS_COMMENT block loads with an empty TagDict; decode
// problems in individual blocks are reported as warnings on the File,
// not as errors, so a damaged file can still be inspected.
func Load(path string) (*types.File, error) {
	f, err := flac.ParseFile(path)
	if err != nil {
		return nil, &types.ContainerReadError{Path: path, Err: err}
	}

	file := &types.File{Path: path}
	if info, err := os.Stat(path); err == nil {
		file.Size = info.Size()
	}

	for _, meta := range f.Meta {
		payload := make([]byte, len(meta.Data))
		copy(payload, meta.Data)
		file.Blocks = append(file.Blocks, &types.Block{
			Code:    types.BlockCode(meta.Type),
			Payload: payload,
		})
	}

	if b := file.FindBlock(types.BlockStreamInfo); b != nil {
		info, err := DecodeStreamInfo(b.Payload)
		if err != nil {
			file.Warnings = append(file.Warnings, types.Warning{
				Stage:   "load",
				Path:    path,
				Message: fmt.Sprintf("decode STREAMINFO: %v", err),
			})
		} else {
			file.Info = info
		}
	}

	if b := file.FindBlock(types.BlockVorbisComment); b != nil {
		tags, warns, err := DecodeTags(b.Payload)
		if err != nil {
			file.Warnings = append(file.Warnings, types.Warning{
				Stage:   "load",
				Path:    path,
				Message: fmt.Sprintf("decode VORBIS_COMMENT: %v", err),
			})
		} else {
			file.Tags = tags
			for _, w := range warns {
				w.Path = path
				file.Warnings = append(file.Warnings, w)
			}
		}
	}

	return file, nil
}

// Save persists the file's current block sequence back to its path.
//
// The audio frames are taken from the on-disk file, so Save must not be
// called after the underlying file has been replaced by something else.
// If paddingOverride is non-nil, every PADDING block is dropped and a
// single padding block of that many zero bytes is appended as the last
// block. Fails with ContainerWriteError.
func Save(file *types.File, paddingOverride *int) error {
	f, err := flac.ParseFile(file.Path)
	if err != nil {
		return &types.ContainerWriteError{Path: file.Path, Err: err}
	}

	blocks := file.Blocks
	if paddingOverride != nil {
		trimmed := make([]*types.Block, 0, len(blocks)+1)
		for _, b := range blocks {
			if b.Code != types.BlockPadding {
				trimmed = append(trimmed, b)
			}
		}
		trimmed = append(trimmed, &types.Block{
			Code:    types.BlockPadding,
			Payload: make([]byte, *paddingOverride),
		})
		blocks = trimmed
	}

	meta := make([]*flac.MetaDataBlock, 0, len(blocks))
	for _, b := range blocks {
		payload := make([]byte, len(b.Payload))
		copy(payload, b.Payload)
		meta = append(meta, &flac.MetaDataBlock{
			Type: flac.BlockType(b.Code),
			Data: payload,
		})
	}
	f.Meta = meta

	if err := f.Save(file.Path); err != nil {
		return &types.ContainerWriteError{Path: file.Path, Err: err}
	}
	return nil
}

// SyncTags re-encodes file.Tags into the file's VORBIS_COMMENT block so
// that a following Save persists the edited dictionary.
//
// If the file has no comment block one is inserted, before a trailing
// PADDING block when present so padding stays last.
func SyncTags(file *types.File) error {
	payload, err := EncodeTags(file.Tags)
	if err != nil {
		return err
	}

	if b := file.FindBlock(types.BlockVorbisComment); b != nil {
		b.Payload = payload
		return nil
	}

	block := &types.Block{Code: types.BlockVorbisComment, Payload: payload}
	n := len(file.Blocks)
	if n > 0 && file.Blocks[n-1].Code == types.BlockPadding {
		file.Blocks = append(file.Blocks[:n-1], block, file.Blocks[n-1])
	} else {
		file.Blocks = append(file.Blocks, block)
	}
	return nil
}
