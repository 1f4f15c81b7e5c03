package tui

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"scatterbrush/internal/chart"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !chart.Supported(name) {
			continue
		}
		items = append(items, fileItem{
			title: name,
			desc:  strings.ToLower(filepath.Ext(name)),
			path:  filepath.Join(m.cwd, name),
		})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no supported files in current directory"
	}
}

// loadPath replaces the dataset with the file at p. The old selection does
// not carry over to new data.
func (m *Model) loadPath(p string) {
	d, err := chart.Load(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		m.log.Warn("load failed", slog.String("path", p), slog.Any("err", err))
		return
	}
	m.selPath = p
	m.data = d
	m.last.points, m.last.sel, m.last.changed = nil, nil, false
	if _, err := m.rec.SetControlled(nil); err != nil {
		m.log.Warn("clear failed", slog.Any("err", err))
	}
	m.rerender()
	m.status = "loaded: " + filepath.Base(p) + fmt.Sprintf("  points=%d fields=%d", len(d.Points), len(d.Fields))
	m.log.Info("loaded", slog.String("path", p), slog.Int("points", len(d.Points)))
	if m.showAttrs {
		m.refreshAttrsFromCurrent()
	}
}
