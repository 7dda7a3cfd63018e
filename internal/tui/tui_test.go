package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/fakeyudi/tipsfortoday/internal/catalog"
	"github.com/fakeyudi/tipsfortoday/internal/selector"
	"github.com/fakeyudi/tipsfortoday/internal/session"
)

// queueSource hands out the queued draws in order, repeating the last one.
type queueSource struct{ vals []int }

func (q *queueSource) IntN(int) int {
	v := q.vals[0]
	if len(q.vals) > 1 {
		q.vals = q.vals[1:]
	}
	return v
}

type brokenStore struct {
	session.SessionStore
	saveErr error
}

func (b *brokenStore) Save(ctx context.Context, s *session.Session) error {
	if b.saveErr != nil {
		return b.saveErr
	}
	return b.SessionStore.Save(ctx, s)
}

func newModel(t *testing.T, store session.SessionStore, draws ...int) Model {
	t.Helper()
	c := catalog.Builtin()
	sel, err := selector.New(c.Size(), &queueSource{vals: draws})
	require.NoError(t, err)
	m, err := New(context.Background(), Options{
		Catalog:  c,
		Selector: sel,
		Store:    store,
		Session:  session.New(time.Now()),
	})
	require.NoError(t, err)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	return updated.(Model)
}

var (
	keyR     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyQ     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}
)

func TestNewSelectsAndSaves(t *testing.T) {
	store := session.NewMemoryStore()
	m := newModel(t, store, 6)

	require.Equal(t, 6, m.Page().Index)
	saved, err := store.Load(context.Background())
	require.NoError(t, err)
	i, ok := saved.Selection()
	require.True(t, ok)
	require.Equal(t, 6, i)
}

func TestNewRequiresCollaborators(t *testing.T) {
	_, err := New(context.Background(), Options{})
	require.Error(t, err)
}

func TestButtonKeysReroll(t *testing.T) {
	store := session.NewMemoryStore()
	m := newModel(t, store, 1, 2, 3, 4)

	for k, msg := range []tea.KeyMsg{keyR, keyEnter, keySpace} {
		m = press(t, m, msg)
		require.Equal(t, k+2, m.Page().Index, "key %q", msg.String())
	}

	saved, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, saved.Rerolls)
	i, _ := saved.Selection()
	require.Equal(t, 4, i)
}

func TestScrollKeysKeepSelection(t *testing.T) {
	m := newModel(t, session.NewMemoryStore(), 16, 20)
	m = press(t, m, keyDown)
	require.Equal(t, 16, m.Page().Index)
}

func TestQuit(t *testing.T) {
	m := newModel(t, session.NewMemoryStore(), 0)
	_, cmd := m.Update(keyQ)
	require.NotNil(t, cmd)
	_, isQuit := cmd().(tea.QuitMsg)
	require.True(t, isQuit)
}

func TestSaveErrorShownNotFatal(t *testing.T) {
	store := &brokenStore{SessionStore: session.NewMemoryStore()}
	m := newModel(t, store, 0, 5)

	store.saveErr = errors.New("disk full")
	m = press(t, m, keyR)
	require.Equal(t, 5, m.Page().Index)
	require.Contains(t, m.Status(), "disk full")
	require.Contains(t, m.View(), "disk full")

	store.saveErr = nil
	m = press(t, m, keyR)
	require.Empty(t, m.Status())
}

func TestSessionChangedElsewhere(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	m := newModel(t, store, 2)

	other, err := store.Load(ctx)
	require.NoError(t, err)
	other.Select(11)
	require.NoError(t, store.Save(ctx, other))

	updated, _ := m.Update(sessionChangedMsg{})
	m = updated.(Model)
	require.Equal(t, 11, m.Page().Index)
}

func TestSessionStoppedElsewhereKeepsPage(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	m := newModel(t, store, 8)

	require.NoError(t, store.Delete(ctx))
	updated, _ := m.Update(sessionChangedMsg{})
	m = updated.(Model)
	require.Equal(t, 8, m.Page().Index)
	require.Empty(t, m.Status())
}

func TestViewShowsPage(t *testing.T) {
	m := newModel(t, session.NewMemoryStore(), 0)
	view := m.View()

	p := m.Page()
	for _, want := range []string{p.Title, p.ButtonLabel, p.Tip.Title, p.Tip.Advice, "python", "Disclaimer"} {
		require.True(t, strings.Contains(view, want), "view missing %q", want)
	}
	// The first snippet line is visible in the code viewport.
	require.Contains(t, view, strings.Split(p.Tip.Snippet, "\n")[0])
}

func TestViewBeforeSize(t *testing.T) {
	c := catalog.Builtin()
	sel, err := selector.New(c.Size(), &queueSource{vals: []int{0}})
	require.NoError(t, err)
	m, err := New(context.Background(), Options{
		Catalog:  c,
		Selector: sel,
		Store:    session.NewMemoryStore(),
		Session:  session.New(time.Now()),
	})
	require.NoError(t, err)
	require.Equal(t, "Loading…", m.View())
}

// A session saved elsewhere without a tip gets the drawn tip stored, so a
// later render pass in another process agrees with the open page.
func TestReloadUnselectedSessionStoresPick(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	m := newModel(t, store, 3, 9)

	fresh := session.New(time.Now())
	require.NoError(t, store.Save(ctx, fresh))
	updated, _ := m.Update(sessionChangedMsg{})
	m = updated.(Model)
	require.Equal(t, 9, m.Page().Index)

	saved, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, fresh.ID, saved.ID)
	i, ok := saved.Selection()
	require.True(t, ok)
	require.Equal(t, 9, i)

	// Another process resumes the session and renders without a reroll.
	other, err := selector.New(catalog.Builtin().Size(), &queueSource{vals: []int{20}})
	require.NoError(t, err)
	s, started, err := session.Resume(ctx, store, 12*time.Hour, time.Now())
	require.NoError(t, err)
	require.False(t, started)
	require.Equal(t, 9, other.Pass(s, false))
	require.NoError(t, store.Save(ctx, s))

	updated, _ = m.Update(sessionChangedMsg{})
	m = updated.(Model)
	require.Equal(t, 9, m.Page().Index)
	require.Zero(t, m.sess.Rerolls)
}

func TestRerollCountsAsActivity(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	opened := time.Now().Add(-11 * time.Hour)
	clock := opened

	c := catalog.Builtin()
	sel, err := selector.New(c.Size(), &queueSource{vals: []int{1, 2}})
	require.NoError(t, err)
	m, err := New(ctx, Options{
		Catalog:  c,
		Selector: sel,
		Store:    store,
		Session:  session.New(opened),
		Now:      func() time.Time { return clock },
	})
	require.NoError(t, err)

	clock = opened.Add(11 * time.Hour)
	m = press(t, m, keyR)

	saved, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, saved.LastSeen.Equal(clock), "LastSeen %v, want %v", saved.LastSeen, clock)
	require.False(t, saved.Expired(clock.Add(2*time.Hour), 12*time.Hour))
}
