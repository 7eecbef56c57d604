// Package tui is the live chart viewer: it renders a dataset through the
// terminal backend and re-renders whenever the data file changes on disk,
// the window resizes, or the theme cycles.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/janekbaraniewski/barview/internal/chart"
	"github.com/janekbaraniewski/barview/internal/dataload"
	"github.com/janekbaraniewski/barview/internal/termrender"
)

const (
	chromeRows   = 4 // header, separator, blank line, help footer
	sidePadding  = 2
	minChartCols = 20
	minChartRows = 6
)

type datasetMsg struct {
	ds  dataload.Dataset
	err error
}

// Model drives the viewer. It owns no mutable chart state: every View call
// re-derives the layout tree from (dataset, style, size).
type Model struct {
	path      string
	baseStyle chart.BarStyle

	dataset dataload.Dataset
	loadErr error

	themes   []Theme
	themeIdx int

	width  int
	height int

	watcher *fsnotify.Watcher
}

// NewModel builds a viewer for the data file at path. style is the ambient
// style resolved at composition time; themeName picks the starting theme.
func NewModel(path string, style chart.BarStyle, themeName string) Model {
	themes := BuiltinThemes()
	idx := 0
	for i, t := range themes {
		if strings.EqualFold(t.Name, themeName) {
			idx = i
			break
		}
	}
	m := Model{
		path:      path,
		baseStyle: style,
		themes:    themes,
		themeIdx:  idx,
	}
	// Watching is best effort: without a watcher the viewer still reloads
	// manually with `r`.
	if w, err := newWatcher(path); err == nil {
		m.watcher = w
	}
	return m
}

func (m Model) theme() Theme {
	return m.themes[m.themeIdx]
}

func loadCmd(path string) tea.Cmd {
	return func() tea.Msg {
		ds, err := dataload.Load(path)
		return datasetMsg{ds: ds, err: err}
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{loadCmd(m.path)}
	if m.watcher != nil {
		cmds = append(cmds, waitForChange(m.watcher, m.path))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case datasetMsg:
		m.dataset = msg.ds
		m.loadErr = msg.err
		return m, nil

	case fileChangedMsg:
		cmds := []tea.Cmd{loadCmd(m.path)}
		if m.watcher != nil {
			cmds = append(cmds, waitForChange(m.watcher, m.path))
		}
		return m, tea.Batch(cmds...)

	case watchErrMsg:
		m.loadErr = msg.err
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if m.watcher != nil {
				m.watcher.Close()
			}
			return m, tea.Quit
		case "t":
			m.themeIdx = (m.themeIdx + 1) % len(m.themes)
			return m, nil
		case "r":
			return m, loadCmd(m.path)
		}
	}
	return m, nil
}

// chartView renders the dataset at the current size and theme.
func (m Model) chartView() string {
	if m.loadErr != nil {
		return errorStyle().Render("  " + m.loadErr.Error())
	}
	if len(m.dataset.Points) == 0 && m.dataset.Limit == nil {
		return subtitleStyle(m.theme()).Render("  No data points")
	}

	cols := m.width - sidePadding*2
	if cols < minChartCols {
		cols = minChartCols
	}
	rows := m.height - chromeRows
	if rows < minChartRows {
		rows = minChartRows
	}

	style := m.theme().Style(m.baseStyle)
	// The terminal draws one cell per layout unit; the configured minimum
	// track height is for pixel-sized backends and would blow past the
	// window here.
	if style.BarMinHeight > float64(rows) {
		style.BarMinHeight = float64(rows)
	}

	root := m.dataset.Chart().LayoutStyled(chart.Rect{W: float64(cols), H: float64(rows)}, style)
	out := termrender.Render(root)

	var indented []string
	for _, line := range strings.Split(out, "\n") {
		indented = append(indented, strings.Repeat(" ", sidePadding)+line)
	}
	return strings.Join(indented, "\n")
}

func (m Model) View() string {
	t := m.theme()
	var sb strings.Builder

	title := headerStyle(t).Render("barview")
	subtitle := subtitleStyle(t).Render(fmt.Sprintf("%s · %s %s", m.path, t.Icon, t.Name))
	sb.WriteString("  " + title + "  " + subtitle + "\n\n")

	sb.WriteString(m.chartView())
	sb.WriteString("\n\n")

	help := strings.Join([]string{
		helpKeyStyle(t).Render("t") + helpStyle(t).Render(" theme"),
		helpKeyStyle(t).Render("r") + helpStyle(t).Render(" reload"),
		helpKeyStyle(t).Render("q") + helpStyle(t).Render(" quit"),
	}, helpStyle(t).Render("  ·  "))
	sb.WriteString("  " + help)

	return sb.String()
}
