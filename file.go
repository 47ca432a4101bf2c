package flacbatch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/flacbatch/internal/codec"
)

// Open loads a single FLAC file into the editing session.
//
// Returns ContainerReadError if the path cannot be read or is not a
// FLAC container. Non-fatal decode issues (a malformed comment entry,
// an undersized STREAMINFO) are collected in File.Warnings instead of
// failing the load.
func Open(path string) (*File, error) {
	return codec.Load(path)
}

// OpenContext opens a file with context support for cancellation.
//
// The context is checked before the load starts; parsing a single local
// file is fast enough that incremental cancellation is not needed.
func OpenContext(ctx context.Context, path string) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path)
}

// OpenMany loads multiple FLAC files concurrently and returns them as a
// Selection in the same order as the input paths.
//
// Files are parsed in parallel using up to runtime.NumCPU() goroutines.
// If any file fails to load, the whole selection is abandoned and the
// first error is returned: a selection is only useful when every member
// loaded. Mutating operations on the returned Selection are strictly
// sequential; only the initial load fans out.
func OpenMany(ctx context.Context, paths ...string) (Selection, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	sel := make(Selection, len(paths))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			file, err := Open(path)
			if err != nil {
				return err
			}
			sel[i] = file
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sel, nil
}

// CollectFiles expands the given paths into a sorted list of FLAC file
// paths. Directories are walked recursively; non-FLAC files are
// skipped. The extension check is case-insensitive.
func CollectFiles(paths []string) ([]string, error) {
	var out []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if !info.IsDir() {
			if IsFLACPath(path) {
				out = append(out, path)
			}
			continue
		}
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && IsFLACPath(p) {
				out = append(out, p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", path, err)
		}
	}
	sort.Strings(out)
	return out, nil
}

// IsFLACPath reports whether the path has a .flac extension, ignoring
// case. Only the name is inspected, not the content.
func IsFLACPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".flac")
}
