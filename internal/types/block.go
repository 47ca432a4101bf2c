package types

import (
	"crypto/sha256"
	"encoding/hex"
)

// BlockCode identifies the type of a FLAC metadata block.
//
// The values match the block type field of the FLAC container format.
// Codes not listed here are preserved but treated as unknown.
type BlockCode int

const (
	BlockStreamInfo    BlockCode = 0
	BlockPadding       BlockCode = 1
	BlockApplication   BlockCode = 2
	BlockSeekTable     BlockCode = 3
	BlockVorbisComment BlockCode = 4
	BlockCueSheet      BlockCode = 5
	BlockPicture       BlockCode = 6
)

// String returns the conventional FLAC name for the block code.
func (c BlockCode) String() string {
	switch c {
	case BlockStreamInfo:
		return "STREAMINFO"
	case BlockPadding:
		return "PADDING"
	case BlockApplication:
		return "APPLICATION"
	case BlockSeekTable:
		return "SEEKTABLE"
	case BlockVorbisComment:
		return "VORBIS_COMMENT"
	case BlockCueSheet:
		return "CUESHEET"
	case BlockPicture:
		return "PICTURE"
	}
	return "UNKNOWN"
}

// Block is one metadata block of a FLAC file: a type code and an opaque
// payload whose interpretation depends on the code.
//
// A Block is owned by the File that contains it. Ordering within
// File.Blocks is significant and is persisted on save.
type Block struct {
	Code    BlockCode
	Payload []byte
}

// ContentHash returns the content-identity digest of the block: the
// lowercase hex SHA-256 of the payload bytes. The code is deliberately
// excluded so that identity pairs with the code as a (code, hash) key.
//
// The digest is recomputed on every call so it always reflects the
// current payload state; it is never cached.
func (b *Block) ContentHash() string {
	sum := sha256.Sum256(b.Payload)
	return hex.EncodeToString(sum[:])
}

// Clone returns a deep copy of the block.
func (b *Block) Clone() *Block {
	payload := make([]byte, len(b.Payload))
	copy(payload, b.Payload)
	return &Block{Code: b.Code, Payload: payload}
}
