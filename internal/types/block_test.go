package types

import "testing"

func TestBlock_ContentHash_Deterministic(t *testing.T) {
	b := &Block{Code: BlockVorbisComment, Payload: []byte("payload")}

	first := b.ContentHash()
	second := b.ContentHash()
	if first != second {
		t.Errorf("hash changed between calls: %s vs %s", first, second)
	}
	if len(first) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(first))
	}
}

func TestBlock_ContentHash_TracksPayload(t *testing.T) {
	b := &Block{Code: BlockPadding, Payload: []byte{0, 0, 0}}
	before := b.ContentHash()

	b.Payload = append(b.Payload, 0)
	after := b.ContentHash()

	if before == after {
		t.Error("hash did not change after payload mutation")
	}
}

func TestBlock_ContentHash_IgnoresCode(t *testing.T) {
	payload := []byte("same bytes")
	a := &Block{Code: BlockPicture, Payload: payload}
	b := &Block{Code: BlockApplication, Payload: payload}

	if a.ContentHash() != b.ContentHash() {
		t.Error("hash should depend on payload only, not block code")
	}
}

func TestBlock_Clone_Independent(t *testing.T) {
	orig := &Block{Code: BlockSeekTable, Payload: []byte{1, 2, 3}}
	clone := orig.Clone()

	clone.Payload[0] = 9
	if orig.Payload[0] != 1 {
		t.Error("mutating clone payload changed the original")
	}
}

func TestBlockCode_String(t *testing.T) {
	tests := []struct {
		code BlockCode
		want string
	}{
		{BlockStreamInfo, "STREAMINFO"},
		{BlockPadding, "PADDING"},
		{BlockVorbisComment, "VORBIS_COMMENT"},
		{BlockPicture, "PICTURE"},
		{BlockCode(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("BlockCode(%d).String() = %q, want %q", tt.code, got, tt.want)
		}
	}
}
