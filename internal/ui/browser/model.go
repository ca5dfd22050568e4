// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package browser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jeranaias/tracenav/internal/group"
	"github.com/jeranaias/tracenav/internal/navigator"
	"github.com/jeranaias/tracenav/internal/trace"
	"github.com/jeranaias/tracenav/internal/ui/styles"
	"github.com/jeranaias/tracenav/internal/util"
)

// Header and status bar each take one row.
const (
	headerHeight    = 1
	statusBarHeight = 1
)

// Options configures a browser model.
type Options struct {
	// Keys defaults to DefaultKeyMap when it has no quit binding.
	Keys KeyMap
	// Theme defaults to an auto-detected theme.
	Theme *styles.Theme
	// Highlight colours JSON items.
	Highlight bool
	// Logger receives COMMAND debug events. Nil disables logging.
	Logger *zap.Logger
}

// Model is the bubbletea model of the group browser. Navigation state
// lives in the navigator; the model only scrolls and paints.
type Model struct {
	nav      *navigator.Navigator
	keys     KeyMap
	help     help.Model
	viewport viewport.Model
	theme    *styles.Theme
	logger   *zap.Logger

	highlight bool
	showHelp  bool
	helpText  string

	width  int
	height int
}

// =============================================================================
// CONSTRUCTOR
// =============================================================================

// NewModel creates a browser positioned on the first group.
func NewModel(groups []group.Group, opts Options) Model {
	keys := opts.Keys
	if len(keys.Quit.Keys()) == 0 {
		keys = DefaultKeyMap()
	}
	theme := opts.Theme
	if theme == nil {
		theme = styles.NewTheme("auto")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	m := Model{
		nav:       navigator.New(groups),
		keys:      keys,
		help:      help.New(),
		viewport:  viewport.New(80, 20),
		theme:     theme,
		logger:    logger,
		highlight: opts.Highlight && !theme.Colorless(),
		width:     80,
		height:    20 + headerHeight + statusBarHeight,
	}
	m.help.Styles.ShortKey = theme.StatusKey
	m.help.Styles.ShortDesc = theme.Muted
	m.help.Styles.ShortSeparator = theme.Muted
	m.refresh()
	return m
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init implements tea.Model.
// An empty trace quits straight away, leaving the no-data message on screen.
func (m Model) Init() tea.Cmd {
	if m.nav.Terminated() {
		return tea.Quit
	}
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.nav.Len() == 0 {
		return navigator.NoDataMessage
	}
	if m.nav.Terminated() {
		return ""
	}

	body := m.viewport.View()
	if m.showHelp {
		body = m.helpText
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), body, m.renderStatusBar())
}

// Cursor returns the index of the displayed group.
func (m Model) Cursor() int {
	return m.nav.Cursor()
}

// =============================================================================
// MESSAGE HANDLERS
// =============================================================================

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = max(msg.Width, 1)
	m.height = max(msg.Height, 1)

	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-headerHeight-statusBarHeight, 1)
	m.help.Width = m.width

	m.refresh()
	if m.showHelp {
		m.helpText = m.renderHelp()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.showHelp = !m.showHelp
		if m.showHelp {
			m.helpText = m.renderHelp()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.HalfViewUp()
		return m, nil
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.HalfViewDown()
		return m, nil
	}

	cmd := m.keys.Command(msg)
	m.logger.Debug("COMMAND", zap.String("key", msg.String()), zap.Stringer("command", cmd))
	if cmd == navigator.CmdOther {
		return m, nil
	}

	prev := m.nav.Cursor()
	if !m.nav.Apply(cmd) {
		return m, tea.Quit
	}
	m.showHelp = false
	if m.nav.Cursor() != prev {
		m.refresh()
		m.viewport.GotoTop()
	}
	return m, nil
}

// =============================================================================
// RENDERING
// =============================================================================

// refresh repaints the current group into the viewport.
func (m *Model) refresh() {
	if m.nav.Len() == 0 {
		m.viewport.SetContent(navigator.NoDataMessage)
		return
	}
	g := m.nav.Current()

	lines := make([]string, 0, g.Len())
	for _, r := range g.Records() {
		lines = append(lines, m.renderRecord(r))
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

// renderRecord styles one record; without colour it matches navigator.RecordLine.
func (m Model) renderRecord(r *trace.Record) string {
	t := m.theme
	parts := []string{
		t.ID.Render(strconv.FormatInt(int64(r.ID), 10)),
		t.Class.Render(r.ClassName),
	}
	if r.HasParent() {
		parts = append(parts, m.renderItems(r.State, " "))
	}
	parts = append(parts, t.Function.Render(r.FunctionName), m.renderItems(r.Args, ", "))

	line := strings.Join(parts, " ")
	if r.HasParent() {
		line = navigator.ChildIndent + line
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(line)
}

func (m Model) renderItems(items []string, sep string) string {
	out := make([]string, len(items))
	for i, item := range items {
		if m.highlight && isJSONItem(item) {
			out[i] = highlightJSON(item, m.theme.ChromaStyle)
			continue
		}
		out[i] = m.theme.Item.Render(item)
	}
	return strings.Join(out, sep)
}

func (m Model) renderHeader() string {
	text := navigator.HeaderLine(m.nav.Current())
	text = util.TruncateWidth(text, max(m.width-2, 1))
	return m.theme.Header.Width(m.width).Render(text)
}

func (m Model) renderStatusBar() string {
	pos := fmt.Sprintf("group %d/%d", m.nav.Cursor()+1, m.nav.Len())
	bar := pos + "  " + m.help.View(m.keys)
	return m.theme.Status.Width(m.width).MaxHeight(statusBarHeight).Render(bar)
}

// renderHelp builds the full key reference as markdown and renders it
// with glamour.
func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString("# tracenav keys\n\n")
	b.WriteString("| Keys | Action |\n|---|---|\n")
	for _, column := range m.keys.FullHelp() {
		for _, kb := range column {
			h := kb.Help()
			fmt.Fprintf(&b, "| `%s` | %s |\n", h.Key, h.Desc)
		}
	}
	md := b.String()

	style := "dark"
	switch {
	case m.theme.Colorless():
		style = "ascii"
	case !m.theme.IsDark:
		style = "light"
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(m.width-4, 20)),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
