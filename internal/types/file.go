package types

// File is one FLAC file loaded into the editing session.
//
// Blocks is the ordered metadata block sequence exactly as stored in the
// container. Tags is the decoded view of the VORBIS_COMMENT block (empty
// if the file has none) and Info the decoded view of the STREAMINFO
// block. A File is mutated in memory only; nothing reaches disk until
// the codec is asked to save it.
type File struct {
	// Path the file was loaded from.
	Path string

	// Size of the file in bytes at load time.
	Size int64

	// Ordered metadata block sequence.
	Blocks []*Block

	// Decoded Vorbis comment block.
	Tags TagDict

	// Decoded STREAMINFO block.
	Info StreamInfo

	// Warnings collected while loading (non-fatal issues).
	Warnings []Warning
}

// BlockCodes returns the ordered list of block codes.
func (f *File) BlockCodes() []BlockCode {
	codes := make([]BlockCode, len(f.Blocks))
	for i, b := range f.Blocks {
		codes[i] = b.Code
	}
	return codes
}

// FindBlock returns the first block with the given code, or nil.
func (f *File) FindBlock(code BlockCode) *Block {
	for _, b := range f.Blocks {
		if b.Code == code {
			return b
		}
	}
	return nil
}

// CloneBlocks returns a shallow copy of the block list: a new slice
// holding the same block pointers, for use as a reconciliation backup.
func (f *File) CloneBlocks() []*Block {
	backup := make([]*Block, len(f.Blocks))
	copy(backup, f.Blocks)
	return backup
}
