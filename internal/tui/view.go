package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/simonhull/flacbatch"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Padding(0, 1)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	fieldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Width(24)

	multiStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	okStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)
)

// View implements tea.Model.
func (a *App) View() string {
	var body string
	switch a.state {
	case screenFiles:
		body = a.files.View()
	case screenTags:
		body = a.viewTags()
	case screenBlocks:
		body = a.viewBlocks()
	case screenCover:
		body = a.viewCover()
	case screenInfo:
		body = a.viewInfo()
	}
	return body + "\n" + a.viewFooter()
}

func (a *App) viewFooter() string {
	var b strings.Builder
	if a.target != editNone {
		b.WriteString(a.editPrompt() + " " + a.input.View() + "\n")
	}
	if a.errMsg != "" {
		b.WriteString(errStyle.Render("error: "+a.errMsg) + "\n")
	} else if a.status != "" {
		b.WriteString(okStyle.Render(a.status) + "\n")
	}
	b.WriteString(helpStyle.Render(a.helpLine()))
	return b.String()
}

func (a *App) editPrompt() string {
	switch a.target {
	case editTagValue:
		return "value:"
	case editTagAdd:
		return "new tag (NAME=VALUE):"
	case editCoverPath:
		return "image path:"
	case editVendor:
		return "vendor string:"
	case editMD5:
		return "audio MD5 (hex):"
	case editPadding:
		return "padding bytes (empty disables):"
	}
	return ">"
}

func (a *App) helpLine() string {
	if a.target != editNone {
		return "enter apply · esc cancel"
	}
	switch a.state {
	case screenFiles:
		return "space mark · enter open · q quit"
	case screenTags:
		return "e edit · a add · d delete · b blocks · c cover · i info · p padding · s save · esc back"
	case screenBlocks:
		return "J/K move · d delete · s save order · esc back"
	case screenCover:
		return "o set image · esc back"
	case screenInfo:
		return "v vendor · m audio md5 · s save · esc back"
	}
	return ""
}

func (a *App) viewTags() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Tags — %d file(s)", len(a.sel))) + "\n\n")
	if len(a.rows) == 0 {
		b.WriteString(dimStyle.Render("  no tags; press a to add one") + "\n")
	}
	for i, row := range a.rows {
		marker := "  "
		if i == a.cursor {
			marker = cursorStyle.Render("> ")
		}
		value := row.Value
		if row.Multivalued {
			value = multiStyle.Render(value)
		}
		b.WriteString(marker + fieldStyle.Render(row.Field) + value + "\n")
	}
	return b.String()
}

func (a *App) viewBlocks() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Metadata blocks") + "\n\n")
	for i, ref := range a.refs {
		marker := "  "
		if i == a.cursor {
			marker = cursorStyle.Render("> ")
		}
		line := fmt.Sprintf("%-16s", ref.Code)
		if a.cfg.ShowHashes {
			line += dimStyle.Render(fmt.Sprintf("  %.12s", ref.Hash))
		}
		b.WriteString(marker + line + "\n")
	}
	return b.String()
}

func (a *App) viewCover() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Front cover") + "\n\n")
	if a.sel.CoverConsistent() {
		pic, _ := a.sel.FrontCover()
		b.WriteString(fmt.Sprintf("  one cover shared by all files: %s, %d bytes\n", pic.MIME, len(pic.Data)))
		if pic.Width > 0 || pic.Height > 0 {
			b.WriteString(fmt.Sprintf("  %dx%d, %d bpp\n", pic.Width, pic.Height, pic.ColorDepth))
		}
		if pic.Description != "" {
			b.WriteString("  " + dimStyle.Render(pic.Description) + "\n")
		}
	} else {
		b.WriteString(multiStyle.Render("  covers differ across the selection (or some files have none)") + "\n")
	}
	return b.String()
}

func (a *App) viewInfo() string {
	rows := []struct {
		label, value string
	}{
		{"File length", a.info.FileLength},
		{"File hash", a.info.FileHash},
		{"Audio MD5", a.md5hex},
		{"Length", a.info.Length},
		{"Bits per sample", a.info.BitsPerSample},
		{"Sample rate", a.info.SampleRate},
		{"Bitrate", a.info.Bitrate},
		{"Vendor string", a.vendor},
		{"Padding length", a.info.PaddingLength},
		{"Min block size", a.info.MinBlockSize},
		{"Max block size", a.info.MaxBlockSize},
		{"Min frame size", a.info.MinFrameSize},
		{"Max frame size", a.info.MaxFrameSize},
		{"Total samples", a.info.TotalSamples},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Stream info") + "\n\n")
	for _, r := range rows {
		value := r.value
		if strings.HasPrefix(value, flacbatch.MultivaluedMarker) {
			value = multiStyle.Render(value)
		}
		b.WriteString("  " + fieldStyle.Render(r.label) + value + "\n")
	}
	return b.String()
}
