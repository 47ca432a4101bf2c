package codec

import (
	"fmt"
	"strings"

	"github.com/go-flac/flacvorbis"
	flac "github.com/go-flac/go-flac"

	"github.com/simonhull/flacbatch/internal/types"
)

// DecodeTags decodes a VORBIS_COMMENT payload into an ordered TagDict.
//
// Comment entries that are not in "KEY=VALUE" form are skipped and
// reported as warnings; the rest of the block still decodes.
func DecodeTags(payload []byte) (types.TagDict, []types.Warning, error) {
	cmt, err := flacvorbis.ParseFromMetaDataBlock(flac.MetaDataBlock{
		Type: flac.VorbisComment,
		Data: payload,
	})
	if err != nil {
		return types.TagDict{}, nil, err
	}

	var fields []types.TagField
	var warns []types.Warning
	for _, comment := range cmt.Comments {
		eq := strings.IndexByte(comment, '=')
		if eq < 1 {
			warns = append(warns, types.Warning{
				Stage:   "load",
				Message: fmt.Sprintf("skipping malformed Vorbis comment %q", comment),
			})
			continue
		}
		fields = append(fields, types.TagField{
			Name:  comment[:eq],
			Value: comment[eq+1:],
		})
	}

	return types.NewTagDict(cmt.Vendor, fields), warns, nil
}

// EncodeTags encodes the dictionary back into a VORBIS_COMMENT payload,
// preserving field order, duplicate fields and the vendor string.
func EncodeTags(dict types.TagDict) ([]byte, error) {
	cmt := flacvorbis.New()
	cmt.Vendor = dict.Vendor
	for _, f := range dict.Fields() {
		if err := cmt.Add(f.Name, f.Value); err != nil {
			return nil, &types.ValidationError{
				Reason: fmt.Sprintf("invalid tag field %q: %v", f.Name, err),
			}
		}
	}
	block := cmt.Marshal()
	return block.Data, nil
}
