package flacbatch

import (
	"bytes"

	"github.com/simonhull/flacbatch/internal/codec"
	"github.com/simonhull/flacbatch/internal/types"
)

// frontCoverData returns the image bytes of the file's first front
// cover picture block, or nil if the file has none that decodes.
func frontCoverData(f *File) []byte {
	for _, b := range f.Blocks {
		if b.Code != BlockPicture {
			continue
		}
		pic, err := codec.DecodePicture(b.Payload)
		if err != nil {
			continue
		}
		if pic.Type == PictureFrontCover {
			return pic.Data
		}
	}
	return nil
}

// FrontCover returns the decoded first front cover picture of the
// selection's first file, and whether one exists.
func (s Selection) FrontCover() (*Picture, bool) {
	if len(s) == 0 {
		return nil, false
	}
	for _, b := range s[0].Blocks {
		if b.Code != BlockPicture {
			continue
		}
		pic, err := codec.DecodePicture(b.Payload)
		if err != nil {
			continue
		}
		if pic.Type == PictureFrontCover {
			return pic, true
		}
	}
	return nil, false
}

// CoverConsistent reports whether every file in the selection carries a
// front cover with byte-identical image data.
//
// A file missing a front cover counts as a mismatch, so the caller can
// only present a single image when the whole selection agrees on one;
// anything else must be shown as an aggregate "multiple different
// images" state.
func (s Selection) CoverConsistent() bool {
	if len(s) == 0 {
		return false
	}
	ref := frontCoverData(s[0])
	if ref == nil {
		return false
	}
	for _, f := range s[1:] {
		data := frontCoverData(f)
		if data == nil || !bytes.Equal(ref, data) {
			return false
		}
	}
	return true
}

// ApplyCover sets the same front cover on every file in the selection:
// existing front cover picture blocks are removed, one new PICTURE
// block is built from the given payload and attributes, and each file
// is persisted.
//
// The new block is inserted before a trailing PADDING block when one
// exists, so padding stays last. An empty image payload is rejected
// with ValidationError before any file is touched. Persisting is
// best-effort across files: the container has no cross-file
// transaction, so a write failure stops the loop, leaves the already
// written files modified, and reports the failing path; the returned
// slice lists the files written before the failure.
func ApplyCover(sel Selection, pic Picture, opts ...SaveOption) ([]string, error) {
	o, err := applySaveOptions(opts)
	if err != nil {
		return nil, err
	}
	if len(pic.Data) == 0 {
		return nil, &types.ValidationError{Reason: "cover image payload must not be empty"}
	}
	if pic.MIME == "" {
		pic.MIME = "image/jpeg"
	}
	pic.Type = PictureFrontCover

	var written []string
	for _, f := range sel {
		kept := make([]*Block, 0, len(f.Blocks)+1)
		for _, b := range f.Blocks {
			if b.Code == BlockPicture {
				if p, err := codec.DecodePicture(b.Payload); err == nil && p.Type == PictureFrontCover {
					continue
				}
			}
			kept = append(kept, b)
		}

		block := codec.EncodePicture(pic)
		n := len(kept)
		if n > 0 && kept[n-1].Code == BlockPadding {
			kept = append(kept[:n-1], block, kept[n-1])
		} else {
			kept = append(kept, block)
		}

		f.Blocks = kept
		if err := codec.Save(f, o.padding); err != nil {
			return written, err
		}
		written = append(written, f.Path)
	}
	return written, nil
}
