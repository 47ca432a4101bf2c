package types

import "time"

// StreamInfo is the decoded view of a STREAMINFO block payload.
//
// The fields mirror the FLAC stream parameters. The engine never derives
// or validates them; it only displays them and, for the MD5 signature,
// writes an edited value back into the payload.
type StreamInfo struct {
	MinBlockSize  int
	MaxBlockSize  int
	MinFrameSize  int
	MaxFrameSize  int
	SampleRate    int
	Channels      int
	BitsPerSample int
	TotalSamples  int64

	// MD5 signature of the unencoded audio data (16 bytes).
	MD5 [16]byte
}

// Duration returns the stream duration, or zero if the sample rate is
// unknown.
func (s StreamInfo) Duration() time.Duration {
	if s.SampleRate <= 0 {
		return 0
	}
	seconds := float64(s.TotalSamples) / float64(s.SampleRate)
	return time.Duration(seconds * float64(time.Second))
}
