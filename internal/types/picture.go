package types

// PictureType is the APIC-style picture type of a PICTURE block.
type PictureType uint32

// PictureFrontCover is the front cover picture type (3). The batch
// cover operations only ever touch pictures of this type.
const PictureFrontCover PictureType = 3

// Picture is the decoded view of a PICTURE block payload.
type Picture struct {
	Type        PictureType
	MIME        string
	Description string
	Width       int
	Height      int
	ColorDepth  int
	// IndexedColors is the number of colors for indexed images (0 for
	// non-indexed formats such as JPEG and most PNGs).
	IndexedColors int
	// Data is the raw image bytes, treated as opaque.
	Data []byte
}
