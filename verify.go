package flacbatch

import (
	"fmt"
	"os"

	"github.com/dhowden/tag"
)

// verifyWrittenTags re-reads a written file with an independent tag
// reader and cross-checks the key fields against the in-memory state.
// A second implementation agreeing on the bytes we just wrote is a
// strong signal the comment block round-tripped intact.
func verifyWrittenTags(f *File) error {
	fh, err := os.Open(f.Path)
	if err != nil {
		return fmt.Errorf("re-open: %w", err)
	}
	defer fh.Close()

	m, err := tag.ReadFrom(fh)
	if err != nil {
		return fmt.Errorf("re-read tags: %w", err)
	}

	checks := []struct {
		name string
		got  string
		want string
	}{
		{"title", m.Title(), f.Tags.First("TITLE")},
		{"artist", m.Artist(), f.Tags.First("ARTIST")},
		{"album", m.Album(), f.Tags.First("ALBUM")},
	}
	for _, c := range checks {
		if c.want != "" && c.got != c.want {
			return fmt.Errorf("%s mismatch: got %q, want %q", c.name, c.got, c.want)
		}
	}
	return nil
}
