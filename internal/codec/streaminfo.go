package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/simonhull/flacbatch/internal/types"
)

// streamInfoSize is the fixed payload size of a STREAMINFO block.
const streamInfoSize = 34

// md5Offset is the byte offset of the MD5 signature within the payload.
const md5Offset = 18

// DecodeStreamInfo decodes the 34-byte STREAMINFO payload.
//
// Layout (all big-endian): min/max block size (16 bits each), min/max
// frame size (24 bits each), then a bit-packed 64-bit group holding the
// sample rate (20 bits), channels-1 (3 bits), bits-per-sample-1
// (5 bits) and total samples (36 bits), then the 16-byte MD5 signature.
func DecodeStreamInfo(payload []byte) (types.StreamInfo, error) {
	if len(payload) != streamInfoSize {
		return types.StreamInfo{}, fmt.Errorf("invalid STREAMINFO size: %d (expected %d)", len(payload), streamInfoSize)
	}

	var info types.StreamInfo
	info.MinBlockSize = int(binary.BigEndian.Uint16(payload[0:2]))
	info.MaxBlockSize = int(binary.BigEndian.Uint16(payload[2:4]))
	info.MinFrameSize = int(payload[4])<<16 | int(payload[5])<<8 | int(payload[6])
	info.MaxFrameSize = int(payload[7])<<16 | int(payload[8])<<8 | int(payload[9])

	packed := binary.BigEndian.Uint64(payload[10:18])
	info.SampleRate = int(packed >> 44 & 0xFFFFF)
	info.Channels = int(packed>>41&0x7) + 1
	info.BitsPerSample = int(packed>>36&0x1F) + 1
	info.TotalSamples = int64(packed & 0xFFFFFFFFF)

	copy(info.MD5[:], payload[md5Offset:])
	return info, nil
}

// SetStreamInfoMD5 overwrites the MD5 signature bytes of a STREAMINFO
// block payload in place. The rest of the payload is untouched.
func SetStreamInfoMD5(block *types.Block, md5 [16]byte) error {
	if block.Code != types.BlockStreamInfo {
		return &types.ValidationError{Reason: "MD5 signature can only be set on a STREAMINFO block"}
	}
	if len(block.Payload) != streamInfoSize {
		return &types.ValidationError{
			Reason: fmt.Sprintf("STREAMINFO payload is %d bytes, expected %d", len(block.Payload), streamInfoSize),
		}
	}
	copy(block.Payload[md5Offset:], md5[:])
	return nil
}
