package flacbatch

import (
	"bytes"
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// This duplicates the synthetic builder from internal/codec so the
// public API tests stay independent of the codec test suite.

// testStreamInfo builds a 34-byte STREAMINFO payload. The seed byte is
// written into the MD5 signature so payloads can differ per file.
func testStreamInfo(seed byte) []byte {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.BigEndian, uint16(4096))
	binary.Write(buf, binary.BigEndian, uint16(4096))
	buf.Write([]byte{0x00, 0x00, 0x10})
	buf.Write([]byte{0x00, 0x40, 0x00})

	packed := uint64(44100)<<44 | uint64(1)<<41 | uint64(15)<<36 | uint64(44100)
	binary.Write(buf, binary.BigEndian, packed)

	md5 := make([]byte, 16)
	md5[0] = seed
	buf.Write(md5)
	return buf.Bytes()
}

// testVorbis builds a VORBIS_COMMENT payload from raw comment strings.
func testVorbis(vendor string, comments ...string) []byte {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.LittleEndian, uint32(len(vendor)))
	buf.WriteString(vendor)
	binary.Write(buf, binary.LittleEndian, uint32(len(comments)))
	for _, c := range comments {
		binary.Write(buf, binary.LittleEndian, uint32(len(c)))
		buf.WriteString(c)
	}
	return buf.Bytes()
}

// writeFLAC serializes the blocks into a synthetic FLAC file under dir
// and returns its path.
func writeFLAC(t *testing.T, dir, name string, blocks []*Block) string {
	t.Helper()

	buf := &bytes.Buffer{}
	buf.WriteString("fLaC")
	for i, b := range blocks {
		header := byte(b.Code)
		if i == len(blocks)-1 {
			header |= 0x80
		}
		buf.WriteByte(header)
		n := len(b.Payload)
		buf.Write([]byte{byte(n >> 16), byte(n >> 8), byte(n)})
		buf.Write(b.Payload)
	}
	buf.Write([]byte{0xFF, 0xF8, 0x69, 0x18, 0x00, 0x00})

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// tagged writes a minimal tagged FLAC file and returns its path.
func tagged(t *testing.T, dir, name string, comments ...string) string {
	t.Helper()
	return writeFLAC(t, dir, name, []*Block{
		{Code: BlockStreamInfo, Payload: testStreamInfo(0)},
		{Code: BlockVorbisComment, Payload: testVorbis("test vendor", comments...)},
	})
}

// openSel opens the given paths as a selection, failing the test on error.
func openSel(t *testing.T, paths ...string) Selection {
	t.Helper()
	sel, err := OpenMany(context.Background(), paths...)
	if err != nil {
		t.Fatalf("OpenMany: %v", err)
	}
	return sel
}
