package flacbatch

import (
	"encoding/hex"
	"errors"
	"strings"
	"testing"
)

func TestMergeInfo_SharedAndDivergentValues(t *testing.T) {
	dir := t.TempDir()
	// Different MD5 seeds make the audio signatures diverge while the
	// remaining stream properties stay identical.
	a := writeFLAC(t, dir, "a.flac", []*Block{
		{Code: BlockStreamInfo, Payload: testStreamInfo(1)},
		{Code: BlockVorbisComment, Payload: testVorbis("vend", "TITLE=X")},
	})
	b := writeFLAC(t, dir, "b.flac", []*Block{
		{Code: BlockStreamInfo, Payload: testStreamInfo(2)},
		{Code: BlockVorbisComment, Payload: testVorbis("vend", "TITLE=X")},
	})
	sel := openSel(t, a, b)

	view := MergeInfo(sel)
	if view.SampleRate != "44.1 kHz" {
		t.Errorf("SampleRate = %q", view.SampleRate)
	}
	if view.BitsPerSample != "16 bit" {
		t.Errorf("BitsPerSample = %q", view.BitsPerSample)
	}
	if view.VendorString != "vend" {
		t.Errorf("VendorString = %q", view.VendorString)
	}
	if !strings.HasPrefix(view.AudioMD5, MultivaluedMarker) {
		t.Errorf("divergent MD5 should carry the marker: %q", view.AudioMD5)
	}
	if view.Length != "00:00:01" {
		t.Errorf("Length = %q", view.Length)
	}
}

func TestApplyInfo_SetsVendorAndMD5(t *testing.T) {
	dir := t.TempDir()
	a := tagged(t, dir, "a.flac", "TITLE=X")
	sel := openSel(t, a)

	sig := strings.Repeat("ab", 16)
	written, err := ApplyInfo(sel, "new vendor", sig)
	if err != nil {
		t.Fatalf("ApplyInfo: %v", err)
	}
	if len(written) != 1 {
		t.Fatalf("written = %v", written)
	}

	f, err := Open(a)
	if err != nil {
		t.Fatal(err)
	}
	if f.Tags.Vendor != "new vendor" {
		t.Errorf("Vendor = %q", f.Tags.Vendor)
	}
	if hex.EncodeToString(f.Info.MD5[:]) != sig {
		t.Errorf("MD5 = %x", f.Info.MD5)
	}
	if f.Tags.First("TITLE") != "X" {
		t.Error("tags must survive an info edit")
	}
}

func TestApplyInfo_MarkerLeavesVendorUnchanged(t *testing.T) {
	dir := t.TempDir()
	a := tagged(t, dir, "a.flac", "TITLE=X")
	sel := openSel(t, a)

	marked := MultivaluedMarker + " one; two"
	if _, err := ApplyInfo(sel, marked, ""); err != nil {
		t.Fatalf("ApplyInfo: %v", err)
	}

	f, _ := Open(a)
	if f.Tags.Vendor != "test vendor" {
		t.Errorf("marked vendor must stay untouched, got %q", f.Tags.Vendor)
	}
}

func TestApplyInfo_RejectsBadHex(t *testing.T) {
	dir := t.TempDir()
	sel := openSel(t, tagged(t, dir, "a.flac", "TITLE=X"))

	for _, bad := range []string{"zz", "abcd", strings.Repeat("ab", 17)} {
		_, err := ApplyInfo(sel, MultivaluedMarker, bad)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("md5 %q: expected ValidationError, got %v", bad, err)
		}
	}
}
