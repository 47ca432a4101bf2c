package flacbatch

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/simonhull/flacbatch/internal/codec"
	"github.com/simonhull/flacbatch/internal/types"
)

// InfoView is the merged stream-property view of a selection. Every
// field is a display string; where files diverge the value carries the
// multivalued marker followed by the sorted distinct values, exactly
// like the merged tag rows.
type InfoView struct {
	FileLength    string
	FileHash      string
	AudioMD5      string
	Length        string
	BitsPerSample string
	SampleRate    string
	Bitrate       string
	VendorString  string
	PaddingLength string
	MinBlockSize  string
	MaxBlockSize  string
	MinFrameSize  string
	MaxFrameSize  string
	TotalSamples  string
}

// MergeInfo builds the merged stream-property view for a selection.
//
// FileHash is the MD5 of each file's full content (a whole-file
// fingerprint for display); AudioMD5 is the STREAMINFO signature of the
// unencoded audio. Files that cannot be re-read for hashing show an
// empty hash rather than failing the view.
func MergeInfo(sel Selection) InfoView {
	collect := func(get func(*File) string) string {
		values := make([]string, len(sel))
		for i, f := range sel {
			values[i] = get(f)
		}
		return mergeValue(values)
	}

	return InfoView{
		FileLength: collect(func(f *File) string {
			return fmt.Sprintf("%d (%s)", f.Size, formatSize(f.Size))
		}),
		FileHash: collect(fileHash),
		AudioMD5: collect(func(f *File) string {
			return hex.EncodeToString(f.Info.MD5[:])
		}),
		Length: collect(func(f *File) string {
			return formatDuration(f.Info)
		}),
		BitsPerSample: collect(func(f *File) string {
			return fmt.Sprintf("%d bit", f.Info.BitsPerSample)
		}),
		SampleRate: collect(func(f *File) string {
			return fmt.Sprintf("%g kHz", float64(f.Info.SampleRate)/1000)
		}),
		Bitrate: collect(func(f *File) string {
			d := f.Info.Duration()
			if d <= 0 {
				return ""
			}
			return fmt.Sprintf("%d kbps", int(float64(f.Size)*8/d.Seconds()/1000+0.5))
		}),
		VendorString: collect(func(f *File) string {
			return f.Tags.Vendor
		}),
		PaddingLength: collect(func(f *File) string {
			if b := f.FindBlock(BlockPadding); b != nil {
				return fmt.Sprintf("%d", len(b.Payload))
			}
			return ""
		}),
		MinBlockSize: collect(func(f *File) string { return fmt.Sprintf("%d", f.Info.MinBlockSize) }),
		MaxBlockSize: collect(func(f *File) string { return fmt.Sprintf("%d", f.Info.MaxBlockSize) }),
		MinFrameSize: collect(func(f *File) string { return fmt.Sprintf("%d", f.Info.MinFrameSize) }),
		MaxFrameSize: collect(func(f *File) string { return fmt.Sprintf("%d", f.Info.MaxFrameSize) }),
		TotalSamples: collect(func(f *File) string { return fmt.Sprintf("%d", f.Info.TotalSamples) }),
	}
}

// ApplyInfo writes an edited vendor string and audio MD5 signature to
// every file in the selection.
//
// Either input may carry the multivalued marker, in which case that
// property is left untouched per file. The MD5 is given as hex; an
// empty string also means "leave unchanged". Invalid hex is rejected
// with ValidationError before any file I/O. The write loop stops at the
// first failure and reports the files already written.
func ApplyInfo(sel Selection, vendor, md5hex string, opts ...SaveOption) ([]string, error) {
	o, err := applySaveOptions(opts)
	if err != nil {
		return nil, err
	}

	setVendor := !multivalued(vendor)
	setMD5 := !multivalued(md5hex) && md5hex != ""

	var signature [16]byte
	if setMD5 {
		raw, err := hex.DecodeString(strings.TrimSpace(md5hex))
		if err != nil || len(raw) != md5.Size {
			return nil, &types.ValidationError{
				Reason: fmt.Sprintf("audio MD5 must be %d hex-encoded bytes", md5.Size),
			}
		}
		copy(signature[:], raw)
	}

	var written []string
	for _, f := range sel {
		if setVendor {
			f.Tags.Vendor = vendor
			if err := codec.SyncTags(f); err != nil {
				return written, err
			}
		}
		if setMD5 {
			b := f.FindBlock(BlockStreamInfo)
			if b == nil {
				return written, &types.ValidationError{Reason: f.Path + " has no STREAMINFO block"}
			}
			if err := codec.SetStreamInfoMD5(b, signature); err != nil {
				return written, err
			}
			f.Info.MD5 = signature
		}
		if err := codec.Save(f, o.padding); err != nil {
			return written, err
		}
		written = append(written, f.Path)
	}
	return written, nil
}

// mergeValue collapses per-file display values into one: the shared
// value when all agree, otherwise the marker plus the sorted distinct
// values joined with "; ".
func mergeValue(values []string) string {
	if len(values) == 0 {
		return ""
	}
	distinct := make(map[string]bool)
	for _, v := range values {
		distinct[v] = true
	}
	if len(distinct) == 1 {
		return values[0]
	}
	out := make([]string, 0, len(distinct))
	for v := range distinct {
		out = append(out, v)
	}
	sort.Strings(out)
	return MultivaluedMarker + " " + strings.Join(out, "; ")
}

// fileHash returns the MD5 of the file's content as hex, or "" if the
// file cannot be read.
func fileHash(f *File) string {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return ""
	}
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}

// formatDuration renders a stream duration as HH:MM:SS.
func formatDuration(info StreamInfo) string {
	total := int(info.Duration().Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, total%3600/60, total%60)
}

// formatSize renders a byte count in human-readable units.
func formatSize(n int64) string {
	units := []string{"B", "KB", "MB", "GB", "TB"}
	size := float64(n)
	i := 0
	for size >= 1024 && i < len(units)-1 {
		size /= 1024
		i++
	}
	return fmt.Sprintf("%.2f %s", size, units[i])
}
