package flacbatch

import (
	"errors"
	"testing"
)

func threeBlockFile(t *testing.T, dir, name, title string) string {
	t.Helper()
	return writeFLAC(t, dir, name, []*Block{
		{Code: BlockStreamInfo, Payload: testStreamInfo(0)},
		{Code: BlockVorbisComment, Payload: testVorbis("v", "TITLE="+title)},
		{Code: BlockPadding, Payload: make([]byte, 32)},
	})
}

func TestBlockRefs_MatchCurrentBlocks(t *testing.T) {
	dir := t.TempDir()
	sel := openSel(t, threeBlockFile(t, dir, "a.flac", "A"))

	refs := sel.BlockRefs()
	if len(refs) != 3 {
		t.Fatalf("got %d refs, want 3", len(refs))
	}
	if refs[0].Code != BlockStreamInfo || refs[1].Code != BlockVorbisComment || refs[2].Code != BlockPadding {
		t.Errorf("ref codes = %v %v %v", refs[0].Code, refs[1].Code, refs[2].Code)
	}
	for i, b := range sel[0].Blocks {
		if refs[i].Hash != b.ContentHash() {
			t.Errorf("ref %d hash does not match block payload", i)
		}
	}
}

func TestRemoveRef_RejectsStreamInfo(t *testing.T) {
	dir := t.TempDir()
	sel := openSel(t, threeBlockFile(t, dir, "a.flac", "A"))
	refs := sel.BlockRefs()

	_, err := RemoveRef(refs, 0)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestRemoveRef_OutOfRange(t *testing.T) {
	refs := []BlockRef{{Code: BlockStreamInfo}}
	if _, err := RemoveRef(refs, 5); err == nil {
		t.Error("expected an error for an out-of-range index")
	}
	if _, err := RemoveRef(refs, -1); err == nil {
		t.Error("expected an error for a negative index")
	}
}

func TestRemoveRef_KeepsOriginal(t *testing.T) {
	refs := []BlockRef{
		{Code: BlockStreamInfo, Hash: "a"},
		{Code: BlockPadding, Hash: "b"},
		{Code: BlockPicture, Hash: "c"},
	}
	out, err := RemoveRef(refs, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 || out[1].Hash != "c" {
		t.Errorf("out = %v", out)
	}
	if len(refs) != 3 {
		t.Error("input slice was mutated")
	}
}

func TestMoveRef(t *testing.T) {
	refs := []BlockRef{
		{Code: BlockStreamInfo, Hash: "a"},
		{Code: BlockVorbisComment, Hash: "b"},
		{Code: BlockPadding, Hash: "c"},
	}

	out := MoveRef(refs, 2, 1)
	if out[1].Hash != "c" || out[2].Hash != "b" {
		t.Errorf("out = %v", out)
	}
	if refs[1].Hash != "b" {
		t.Error("input slice was mutated")
	}

	same := MoveRef(refs, 0, 5)
	if len(same) != 3 || same[0].Hash != "a" {
		t.Errorf("out-of-range move should be a no-op, got %v", same)
	}
}

func TestReconcile_ReordersEveryFile(t *testing.T) {
	dir := t.TempDir()
	a := threeBlockFile(t, dir, "a.flac", "Same")
	b := threeBlockFile(t, dir, "b.flac", "Same")
	sel := openSel(t, a, b)

	// Move padding between STREAMINFO and VORBIS_COMMENT.
	order := MoveRef(sel.BlockRefs(), 2, 1)

	written, warnings, err := Reconcile(sel, order)
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if len(written) != 2 {
		t.Fatalf("written = %v", written)
	}
	// Non-terminal padding is advisory, one warning per file.
	if len(warnings) != 2 {
		t.Errorf("got %d warnings, want 2", len(warnings))
	}

	for _, path := range []string{a, b} {
		f, err := Open(path)
		if err != nil {
			t.Fatal(err)
		}
		codes := f.BlockCodes()
		if codes[0] != BlockStreamInfo || codes[1] != BlockPadding || codes[2] != BlockVorbisComment {
			t.Errorf("%s: codes = %v", path, codes)
		}
	}
}

func TestReconcile_DeletesResolvedBlock(t *testing.T) {
	dir := t.TempDir()
	a := threeBlockFile(t, dir, "a.flac", "A")
	sel := openSel(t, a)

	order, err := RemoveRef(sel.BlockRefs(), 2)
	if err != nil {
		t.Fatal(err)
	}

	if _, _, err := Reconcile(sel, order); err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	f, _ := Open(a)
	if f.FindBlock(BlockPadding) != nil {
		t.Error("deleted PADDING block survived")
	}
	if f.Tags.First("TITLE") != "A" {
		t.Error("kept blocks must survive intact")
	}
}

func TestReconcile_RequiresStreamInfo(t *testing.T) {
	dir := t.TempDir()
	sel := openSel(t, threeBlockFile(t, dir, "a.flac", "A"))

	order := sel.BlockRefs()[1:] // drop STREAMINFO from the order

	_, _, err := Reconcile(sel, order)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestReconcile_UnresolvedRef(t *testing.T) {
	dir := t.TempDir()
	sel := openSel(t, threeBlockFile(t, dir, "a.flac", "A"))

	order := sel.BlockRefs()
	order[1].Hash = "deadbeef" // no block has this content

	_, _, err := Reconcile(sel, order)
	var uerr *UnresolvedBlockError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UnresolvedBlockError, got %v", err)
	}
	if uerr.Code != BlockVorbisComment {
		t.Errorf("error code = %v", uerr.Code)
	}
}

func TestReconcile_FailsOnShapeDivergence(t *testing.T) {
	dir := t.TempDir()
	a := threeBlockFile(t, dir, "a.flac", "A")
	b := tagged(t, dir, "b.flac", "TITLE=B") // two blocks, not three
	sel := openSel(t, a, b)

	_, _, err := Reconcile(sel, sel.BlockRefs())
	var cerr *ConsistencyError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConsistencyError, got %v", err)
	}
}

func TestReconcile_DuplicateBlocksResolveOnce(t *testing.T) {
	dir := t.TempDir()
	// Two identical padding blocks: same code, same content hash.
	a := writeFLAC(t, dir, "a.flac", []*Block{
		{Code: BlockStreamInfo, Payload: testStreamInfo(0)},
		{Code: BlockPadding, Payload: make([]byte, 16)},
		{Code: BlockPadding, Payload: make([]byte, 16)},
	})
	sel := openSel(t, a)

	if _, _, err := Reconcile(sel, sel.BlockRefs()); err != nil {
		t.Fatalf("identical twins must each consume one backup block: %v", err)
	}
	f, _ := Open(a)
	if len(f.Blocks) != 3 {
		t.Errorf("got %d blocks, want 3", len(f.Blocks))
	}
}
