// Command flacbatch is a terminal batch editor for FLAC metadata.
//
// Usage:
//
//	flacbatch [flags] path ...
//
// Paths may be files or directories; directories are walked recursively
// and every .flac file found is offered for selection. Without -show the
// interactive editor starts; with -show the merged tag table of all
// given files is printed and the program exits.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/simonhull/flacbatch"
	"github.com/simonhull/flacbatch/internal/config"
	"github.com/simonhull/flacbatch/internal/tui"
)

func main() {
	show := flag.Bool("show", false, "print the merged tag table and exit")
	version := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *version {
		fmt.Println("flacbatch " + flacbatch.Version)
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: flacbatch [flags] path ...")
		os.Exit(2)
	}

	paths, err := flacbatch.CollectFiles(args)
	if err != nil {
		fatal(err)
	}
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "no FLAC files found")
		os.Exit(1)
	}

	cfgPath, err := config.Path()
	if err != nil {
		fatal(err)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fatal(err)
	}

	if *show {
		if err := printMerged(paths); err != nil {
			fatal(err)
		}
		return
	}

	p := tea.NewProgram(tui.New(cfg, paths), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fatal(err)
	}
}

// printMerged loads all files and prints the merged tag table.
func printMerged(paths []string) error {
	sel, err := flacbatch.OpenMany(context.Background(), paths...)
	if err != nil {
		return err
	}
	rows, err := flacbatch.Merge(sel)
	if err != nil {
		return err
	}
	for _, row := range rows {
		fmt.Printf("%-24s %s\n", row.Field, row.Value)
	}
	return nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "flacbatch:", err)
	os.Exit(1)
}
