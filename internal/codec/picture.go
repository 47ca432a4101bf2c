package codec

import (
	"github.com/go-flac/flacpicture"
	flac "github.com/go-flac/go-flac"

	"github.com/simonhull/flacbatch/internal/types"
)

// DecodePicture decodes a PICTURE block payload.
func DecodePicture(payload []byte) (*types.Picture, error) {
	pic, err := flacpicture.ParseFromMetaDataBlock(flac.MetaDataBlock{
		Type: flac.Picture,
		Data: payload,
	})
	if err != nil {
		return nil, err
	}
	return &types.Picture{
		Type:          types.PictureType(pic.PictureType),
		MIME:          pic.MIME,
		Description:   pic.Description,
		Width:         int(pic.Width),
		Height:        int(pic.Height),
		ColorDepth:    int(pic.ColorDepth),
		IndexedColors: int(pic.IndexedColorCount),
		Data:          pic.ImageData,
	}, nil
}

// EncodePicture encodes a picture into a PICTURE metadata block.
func EncodePicture(pic types.Picture) *types.Block {
	mb := &flacpicture.MetadataBlockPicture{
		PictureType:       flacpicture.PictureType(pic.Type),
		MIME:              pic.MIME,
		Description:       pic.Description,
		Width:             uint32(pic.Width),
		Height:            uint32(pic.Height),
		ColorDepth:        uint32(pic.ColorDepth),
		IndexedColorCount: uint32(pic.IndexedColors),
		ImageData:         pic.Data,
	}
	block := mb.Marshal()
	return &types.Block{Code: types.BlockPicture, Payload: block.Data}
}
