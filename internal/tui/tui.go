// Package tui provides the Bubble Tea page for browsing tips.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fakeyudi/tipsfortoday/internal/catalog"
	"github.com/fakeyudi/tipsfortoday/internal/logs"
	"github.com/fakeyudi/tipsfortoday/internal/page"
	"github.com/fakeyudi/tipsfortoday/internal/selector"
	"github.com/fakeyudi/tipsfortoday/internal/session"
)

// ── Styles ────────────

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 2)

	captionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("161")).
			Padding(0, 2)

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// Success callout around the advice.
	calloutStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("28")).
			Padding(0, 1)

	codeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("235"))

	langStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("178")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("245")).
			Padding(0, 1)
)

// ── Keys ────────────────

type keyMap struct {
	Reroll key.Binding
	Up     key.Binding
	Down   key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reroll, k.Up, k.Down, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Reroll: key.NewBinding(
		key.WithKeys("enter", " ", "r"),
		key.WithHelp("enter/r", "give me a tip"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "scroll code"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "scroll code"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "quit"),
	),
}

// sessionChangedMsg reports that another process rewrote the session.
type sessionChangedMsg struct{}

// Options wires the model to its collaborators.
type Options struct {
	Catalog  *catalog.Catalog
	Selector *selector.Selector
	Store    session.SessionStore
	Session  *session.Session
	Logger   logs.Logger
	Now      func() time.Time // defaults to time.Now
}

// ── Model ────────────────────

// Model is the root Bubble Tea model for the TUI.
type Model struct {
	ctx     context.Context
	catalog *catalog.Catalog
	sel     *selector.Selector
	store   session.SessionStore
	sess    *session.Session
	logger  logs.Logger
	now     func() time.Time

	page   page.Page
	code   viewport.Model
	help   help.Model
	status string // last save/reload error, shown in the status bar
	width  int
	height int
	ready  bool
}

// New performs the first render pass for the session and persists it.
func New(ctx context.Context, o Options) (Model, error) {
	if o.Catalog == nil || o.Selector == nil || o.Store == nil || o.Session == nil {
		return Model{}, errors.New("tui: catalog, selector, store and session are required")
	}
	logger := o.Logger
	if logger == nil {
		logger = logs.New(logs.Options{})
	}
	now := o.Now
	if now == nil {
		now = time.Now
	}
	m := Model{
		ctx:     ctx,
		catalog: o.Catalog,
		sel:     o.Selector,
		store:   o.Store,
		sess:    o.Session,
		logger:  logger,
		now:     now,
		help:    help.New(),
	}
	m.render(false)
	m.sess.LastSeen = m.now()
	if err := m.store.Save(ctx, m.sess); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Page returns the page currently on screen.
func (m Model) Page() page.Page { return m.page }

// Status returns the last error message shown in the status bar.
func (m Model) Status() string { return m.status }

// ── Bubble Tea interface ───────────────

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Reroll):
			m.render(true)
			m.save()
			return m, nil
		}
		var cmd tea.Cmd
		m.code, cmd = m.code.Update(msg)
		return m, cmd

	case sessionChangedMsg:
		m.reload()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		m.layout()
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	if !m.ready {
		return "Loading…"
	}
	footer := m.footerView()
	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		m.codeView(),
		footer,
	)
}

// ── Render pass ───────────────

// render runs one pass over (catalog, session, triggered) and refreshes the
// snippet viewport.
func (m *Model) render(triggered bool) {
	m.page = page.Build(m.catalog, m.sel, m.sess, triggered)
	if triggered {
		m.logger.InfoContext(m.ctx, "tip rerolled", "session", m.sess.ID, "index", m.page.Index, "rerolls", m.sess.Rerolls)
	} else {
		m.logger.DebugContext(m.ctx, "tip selected", "session", m.sess.ID, "index", m.page.Index)
	}
	m.layout()
}

// save stamps LastSeen and persists the session.
func (m *Model) save() {
	m.sess.LastSeen = m.now()
	if err := m.store.Save(m.ctx, m.sess); err != nil {
		m.status = "could not save session: " + err.Error()
		m.logger.ErrorContext(m.ctx, "save session", "error", err)
		return
	}
	m.status = ""
}

// reload adopts the stored session after another process changed it.
func (m *Model) reload() {
	s, err := m.store.Load(m.ctx)
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			// The session was stopped elsewhere; keep showing ours.
			return
		}
		m.status = "could not reload session: " + err.Error()
		return
	}
	stored, ok := s.Selection()
	if ok && stored == m.page.Index && s.ID == m.sess.ID {
		return
	}
	m.sess = s
	m.render(false)
	m.status = ""
	// A session saved without a usable selection gets one drawn here. Store
	// it so every other reader shows the same tip.
	if !ok || stored != m.page.Index {
		m.save()
	}
}

// ── Layout ─────────────────────

func (m *Model) layout() {
	if !m.ready {
		return
	}
	chrome := lipgloss.Height(m.headerView()) + lipgloss.Height(m.footerView()) + 1 // +1 language label
	lines := strings.Count(m.page.Tip.Snippet, "\n") + 1
	h := m.height - chrome
	if h > lines {
		h = lines
	}
	if h < 1 {
		h = 1
	}
	w := m.width - 4
	if w < 10 {
		w = 10
	}
	m.code = viewport.New(w, h)
	m.code.SetContent(m.page.Tip.Snippet)
}

func (m Model) headerView() string {
	p := m.page
	var sb strings.Builder
	sb.WriteString(titleStyle.Width(m.width).Render(p.Icon+"  "+p.Title) + "\n")
	for _, c := range p.Captions {
		sb.WriteString("  " + captionStyle.Render(c) + "\n")
	}
	sb.WriteString("\n  " + buttonStyle.Render(p.ButtonLabel) + "\n\n")
	sb.WriteString("  " + headingStyle.Render(p.Tip.Title) +
		dimStyle.Render(fmt.Sprintf("  (%d/%d)", p.Index+1, p.Total)) + "\n")

	calloutWidth := m.width - 4
	if calloutWidth < 10 {
		calloutWidth = 10
	}
	sb.WriteString(indentBlock(calloutStyle.Width(calloutWidth).Render("✓ "+p.Tip.Advice), "  "))
	return sb.String()
}

func (m Model) codeView() string {
	label := "  " + langStyle.Render(m.page.Tip.Language)
	return label + "\n" + indentBlock(codeStyle.Render(m.code.View()), "  ")
}

func (m Model) footerView() string {
	var sb strings.Builder
	sb.WriteString("\n  " + dimStyle.Render(strings.Repeat("─", max(m.width-4, 1))) + "\n")
	for _, f := range m.page.Footer {
		sb.WriteString("  " + captionStyle.Render(f) + "\n")
	}
	bar := m.help.View(keys)
	if m.status != "" {
		bar = errorStyle.Render(m.status) + "  " + bar
	}
	sb.WriteString(statusBarStyle.Width(m.width).Render(bar))
	return sb.String()
}

func indentBlock(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}

// Run starts the TUI and blocks until the user quits. When the store is a
// local file, changes made by other tips processes are picked up live.
func Run(ctx context.Context, o Options) error {
	m, err := New(ctx, o)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if fb, ok := o.Store.(session.FileBacked); ok {
		go func() {
			err := session.Watch(watchCtx, fb.Path(), func() { p.Send(sessionChangedMsg{}) })
			if err != nil {
				m.logger.WarnContext(watchCtx, "session watcher stopped", "error", err)
			}
		}()
	}

	_, err = p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
