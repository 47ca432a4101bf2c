// Package tui is the terminal front end of the batch editor.
//
// It follows The Elm Architecture as used by bubbletea: a model holding
// all state, an Update function folding messages into a new model, and
// a View rendering the model to a string. The package is presentation
// only: every mutation goes through the flacbatch engine API, and the
// engine never imports this package.
package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/simonhull/flacbatch"
	"github.com/simonhull/flacbatch/internal/config"
)

// screen identifies which view is active.
type screen int

const (
	screenFiles  screen = iota // File list with multi-select
	screenTags                 // Merged tag table
	screenBlocks               // Metadata block list
	screenCover                // Front cover state
	screenInfo                 // Stream properties
)

// editTarget identifies what the text input is editing.
type editTarget int

const (
	editNone editTarget = iota
	editTagValue
	editTagAdd
	editCoverPath
	editVendor
	editMD5
	editPadding
)

// fileItem is one entry of the file list.
type fileItem struct {
	path   string
	marked bool
}

func (i fileItem) Title() string {
	if i.marked {
		return "[x] " + filepath.Base(i.path)
	}
	return "[ ] " + filepath.Base(i.path)
}
func (i fileItem) Description() string { return i.path }
func (i fileItem) FilterValue() string { return i.path }

// selectionLoadedMsg carries the result of loading a selection.
type selectionLoadedMsg struct {
	sel flacbatch.Selection
	err error
}

// savedMsg carries the result of a persisting operation.
type savedMsg struct {
	written  []string
	warnings []flacbatch.Warning
	err      error
}

// App is the application model. It holds all TUI state; file state
// lives in the engine's Selection.
type App struct {
	cfg config.Config

	state  screen
	width  int
	height int

	files list.Model

	sel  flacbatch.Selection
	rows []flacbatch.MergedRow
	refs []flacbatch.BlockRef

	info   flacbatch.InfoView
	vendor string
	md5hex string

	cursor  int
	target  editTarget
	input   textinput.Model
	padding *int

	status string
	errMsg string
}

// New builds the application model over the given file paths.
func New(cfg config.Config, paths []string) *App {
	items := make([]list.Item, len(paths))
	for i, p := range paths {
		items[i] = fileItem{path: p}
	}

	delegate := list.NewDefaultDelegate()
	files := list.New(items, delegate, 0, 0)
	files.Title = "FLAC files"
	files.SetShowStatusBar(false)

	input := textinput.New()
	input.CharLimit = 0

	app := &App{cfg: cfg, files: files, input: input}
	if cfg.UsePadding {
		n := cfg.DefaultPadding
		app.padding = &n
	}
	return app
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// markedPaths returns the checked file paths, falling back to the file
// under the cursor when nothing is checked.
func (a *App) markedPaths() []string {
	var paths []string
	for _, it := range a.files.Items() {
		if fi, ok := it.(fileItem); ok && fi.marked {
			paths = append(paths, fi.path)
		}
	}
	if len(paths) == 0 {
		if fi, ok := a.files.SelectedItem().(fileItem); ok {
			paths = append(paths, fi.path)
		}
	}
	return paths
}

// loadSelection loads the checked files into a fresh Selection.
func loadSelection(paths []string) tea.Cmd {
	return func() tea.Msg {
		sel, err := flacbatch.OpenMany(context.Background(), paths...)
		return selectionLoadedMsg{sel: sel, err: err}
	}
}

func (a *App) saveOptions() []flacbatch.SaveOption {
	var opts []flacbatch.SaveOption
	if a.padding != nil {
		opts = append(opts, flacbatch.WithPadding(*a.padding))
	}
	if a.cfg.VerifyWrites {
		opts = append(opts, flacbatch.WithVerification())
	}
	return opts
}

func (a *App) saveTags() tea.Cmd {
	sel, rows, opts := a.sel, a.rows, a.saveOptions()
	return func() tea.Msg {
		written, err := flacbatch.SaveTags(sel, rows, opts...)
		return savedMsg{written: written, err: err}
	}
}

func (a *App) saveBlocks() tea.Cmd {
	sel, refs, opts := a.sel, a.refs, a.saveOptions()
	return func() tea.Msg {
		written, warnings, err := flacbatch.Reconcile(sel, refs, opts...)
		return savedMsg{written: written, warnings: warnings, err: err}
	}
}

func (a *App) applyCover(path string) tea.Cmd {
	sel, opts := a.sel, a.saveOptions()
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return savedMsg{err: fmt.Errorf("read image: %w", err)}
		}
		pic := flacbatch.Picture{
			MIME:        mimeForPath(path),
			Description: "Cover",
			Data:        data,
		}
		written, err := flacbatch.ApplyCover(sel, pic, opts...)
		return savedMsg{written: written, err: err}
	}
}

func (a *App) applyInfo() tea.Cmd {
	sel, vendor, md5hex, opts := a.sel, a.vendor, a.md5hex, a.saveOptions()
	return func() tea.Msg {
		written, err := flacbatch.ApplyInfo(sel, vendor, md5hex, opts...)
		return savedMsg{written: written, err: err}
	}
}

// mimeForPath guesses the image MIME type from the file extension.
func mimeForPath(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return "image/png"
	}
	return "image/jpeg"
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.files.SetSize(msg.Width, msg.Height-2)
		return a, nil

	case selectionLoadedMsg:
		if msg.err != nil {
			a.errMsg = msg.err.Error()
			return a, nil
		}
		a.sel = msg.sel
		rows, err := flacbatch.Merge(a.sel)
		if err != nil {
			a.errMsg = err.Error()
			a.sel = nil
			return a, nil
		}
		a.rows = rows
		a.cursor = 0
		a.errMsg = ""
		a.status = fmt.Sprintf("%d file(s) selected", len(a.sel))
		a.state = screenTags
		return a, nil

	case savedMsg:
		if msg.err != nil {
			a.errMsg = msg.err.Error()
			if len(msg.written) > 0 {
				a.errMsg += fmt.Sprintf(" (%d file(s) already written)", len(msg.written))
			}
			return a, nil
		}
		a.errMsg = ""
		a.status = fmt.Sprintf("saved %d file(s)", len(msg.written))
		for _, w := range msg.warnings {
			a.status += "; " + w.String()
		}
		// Reload so the views reflect what is on disk.
		return a, loadSelection(a.sel.Paths())

	case tea.KeyMsg:
		if a.target != editNone {
			return a.updateEditing(msg)
		}
		switch a.state {
		case screenFiles:
			return a.updateFiles(msg)
		case screenTags:
			return a.updateTags(msg)
		case screenBlocks:
			return a.updateBlocks(msg)
		case screenCover:
			return a.updateCover(msg)
		case screenInfo:
			return a.updateInfo(msg)
		}
	}

	var cmd tea.Cmd
	a.files, cmd = a.files.Update(msg)
	return a, cmd
}

func (a *App) updateFiles(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case " ":
		i := a.files.Index()
		if fi, ok := a.files.SelectedItem().(fileItem); ok {
			fi.marked = !fi.marked
			a.files.SetItem(i, fi)
		}
		return a, nil
	case "enter":
		paths := a.markedPaths()
		if len(paths) == 0 {
			a.errMsg = "no files selected"
			return a, nil
		}
		a.status = "loading..."
		return a, loadSelection(paths)
	}
	var cmd tea.Cmd
	a.files, cmd = a.files.Update(msg)
	return a, cmd
}

func (a *App) updateTags(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "esc":
		a.state = screenFiles
		return a, nil
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.rows)-1 {
			a.cursor++
		}
	case "enter", "e":
		if len(a.rows) == 0 {
			return a, nil
		}
		a.startEdit(editTagValue, a.rows[a.cursor].Value)
	case "a":
		a.startEdit(editTagAdd, "")
	case "d":
		if len(a.rows) > 0 {
			a.rows = append(a.rows[:a.cursor], a.rows[a.cursor+1:]...)
			if a.cursor >= len(a.rows) && a.cursor > 0 {
				a.cursor--
			}
		}
	case "p":
		a.startEdit(editPadding, paddingPrompt(a.padding))
	case "b":
		if err := a.sel.CheckBlockShape(); err != nil {
			a.errMsg = err.Error()
			return a, nil
		}
		a.refs = a.sel.BlockRefs()
		a.cursor = 0
		a.state = screenBlocks
	case "c":
		a.state = screenCover
	case "i":
		a.info = flacbatch.MergeInfo(a.sel)
		a.vendor = a.info.VendorString
		a.md5hex = a.info.AudioMD5
		a.state = screenInfo
	case "s":
		a.status = "saving..."
		return a, a.saveTags()
	}
	return a, nil
}

func (a *App) updateBlocks(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "esc":
		a.state = screenTags
		a.cursor = 0
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.refs)-1 {
			a.cursor++
		}
	case "K", "shift+up":
		if a.cursor > 0 {
			a.refs = flacbatch.MoveRef(a.refs, a.cursor, a.cursor-1)
			a.cursor--
		}
	case "J", "shift+down":
		if a.cursor < len(a.refs)-1 {
			a.refs = flacbatch.MoveRef(a.refs, a.cursor, a.cursor+1)
			a.cursor++
		}
	case "d":
		refs, err := flacbatch.RemoveRef(a.refs, a.cursor)
		if err != nil {
			a.errMsg = err.Error()
			return a, nil
		}
		a.errMsg = ""
		a.refs = refs
		if a.cursor >= len(a.refs) && a.cursor > 0 {
			a.cursor--
		}
	case "s":
		a.status = "saving..."
		return a, a.saveBlocks()
	}
	return a, nil
}

func (a *App) updateCover(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "esc":
		a.state = screenTags
	case "o":
		a.startEdit(editCoverPath, "")
	}
	return a, nil
}

func (a *App) updateInfo(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "esc":
		a.state = screenTags
	case "v":
		a.startEdit(editVendor, a.vendor)
	case "m":
		a.startEdit(editMD5, a.md5hex)
	case "s":
		a.status = "saving..."
		return a, a.applyInfo()
	}
	return a, nil
}

func (a *App) startEdit(target editTarget, initial string) {
	a.target = target
	a.input.SetValue(initial)
	a.input.CursorEnd()
	a.input.Focus()
}

func (a *App) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.target = editNone
		a.input.Blur()
		return a, nil
	case "enter":
		value := a.input.Value()
		target := a.target
		a.target = editNone
		a.input.Blur()
		return a.commitEdit(target, value)
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) commitEdit(target editTarget, value string) (tea.Model, tea.Cmd) {
	switch target {
	case editTagValue:
		a.rows[a.cursor].Value = value
	case editTagAdd:
		name, val, ok := strings.Cut(value, "=")
		if !ok || strings.TrimSpace(name) == "" {
			a.errMsg = "new tag must be given as NAME=VALUE"
			return a, nil
		}
		a.rows = append(a.rows, flacbatch.MergedRow{Field: name, Value: val})
		a.cursor = len(a.rows) - 1
	case editCoverPath:
		if value == "" {
			return a, nil
		}
		a.status = "applying cover..."
		return a, a.applyCover(value)
	case editVendor:
		a.vendor = value
	case editMD5:
		a.md5hex = value
	case editPadding:
		if value == "" {
			a.padding = nil
			a.status = "padding override disabled"
			return a, nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < 0 {
			a.errMsg = "padding must be a non-negative number"
			return a, nil
		}
		a.padding = &n
		a.status = fmt.Sprintf("padding override: %d bytes", n)
	}
	a.errMsg = ""
	return a, nil
}

// paddingPrompt renders the current padding override for editing.
func paddingPrompt(padding *int) string {
	if padding == nil {
		return ""
	}
	return strconv.Itoa(*padding)
}
