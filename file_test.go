package flacbatch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestOpen_NotFLAC(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.flac")
	if err := os.WriteFile(path, []byte("junk"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Open(path)
	var rerr *ContainerReadError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected ContainerReadError, got %v", err)
	}
}

func TestOpenMany_PreservesOrder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"c.flac", "a.flac", "b.flac"} {
		paths = append(paths, tagged(t, dir, name, "TITLE="+name))
	}

	sel, err := OpenMany(context.Background(), paths...)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(sel.Paths(), paths) {
		t.Errorf("order not preserved: %v", sel.Paths())
	}
}

func TestOpenMany_AllOrNothing(t *testing.T) {
	dir := t.TempDir()
	good := tagged(t, dir, "good.flac", "TITLE=Ok")
	bad := filepath.Join(dir, "missing.flac")

	sel, err := OpenMany(context.Background(), good, bad)
	if err == nil {
		t.Fatal("expected an error for the missing file")
	}
	if sel != nil {
		t.Error("a failed batch must not return a partial selection")
	}
}

func TestOpenMany_Empty(t *testing.T) {
	sel, err := OpenMany(context.Background())
	if err != nil || sel != nil {
		t.Errorf("empty input: sel=%v err=%v", sel, err)
	}
}

func TestOpenContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := OpenContext(ctx, "whatever.flac"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestCollectFiles_WalksDirectories(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "album")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	a := tagged(t, dir, "b.flac", "TITLE=B")
	b := tagged(t, sub, "a.FLAC", "TITLE=A")
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := CollectFiles([]string{dir})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{b, a} // sorted: album/a.FLAC before b.flac
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CollectFiles = %v, want %v", got, want)
	}
}

func TestCollectFiles_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	a := tagged(t, dir, "a.flac", "TITLE=A")

	got, err := CollectFiles([]string{a})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []string{a}) {
		t.Errorf("CollectFiles = %v", got)
	}
}

func TestCollectFiles_MissingPath(t *testing.T) {
	if _, err := CollectFiles([]string{filepath.Join(t.TempDir(), "nope")}); err == nil {
		t.Error("expected an error for a missing path")
	}
}

func TestIsFLACPath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"song.flac", true},
		{"SONG.FLAC", true},
		{"song.Flac", true},
		{"song.mp3", false},
		{"flac", false},
	}
	for _, tt := range tests {
		if got := IsFLACPath(tt.path); got != tt.want {
			t.Errorf("IsFLACPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
