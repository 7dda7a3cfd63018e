package cmd

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fakeyudi/tipsfortoday/internal/catalog"
	"github.com/fakeyudi/tipsfortoday/internal/page"
	"github.com/fakeyudi/tipsfortoday/internal/session"
)

func showJSON(t *testing.T, args ...string) page.Page {
	t.Helper()
	out, err := executeCommand(rootCmd, append([]string{"show", "--format", "json"}, args...)...)
	require.NoError(t, err)

	var p page.Page
	require.NoError(t, json.Unmarshal([]byte(out), &p), "output: %s", out)
	return p
}

// Repeated show without a reroll keeps the same tip for the session.
func TestShowStableAcrossInvocations(t *testing.T) {
	isolate(t)

	first := showJSON(t)
	require.Equal(t, page.Title, first.Title)
	require.Equal(t, len(catalog.BuiltinRecords()), first.Total)
	require.GreaterOrEqual(t, first.Index, 0)
	require.Less(t, first.Index, first.Total)

	for range 5 {
		next := showJSON(t)
		require.Equal(t, first.Index, next.Index)
		require.Equal(t, first.Tip, next.Tip)
	}

	s := loadSession(t)
	i, ok := s.Selection()
	require.True(t, ok)
	require.Equal(t, first.Index, i)
	require.Zero(t, s.Rerolls)
}

// Show honors a selection stored by an earlier run.
func TestShowUsesStoredSelection(t *testing.T) {
	isolate(t)

	s := session.New(time.Now())
	s.Select(7)
	saveSession(t, s)

	p := showJSON(t)
	require.Equal(t, 7, p.Index)
	require.Equal(t, catalog.BuiltinRecords()[7], p.Tip)
}

func TestShowRerollRecordsNewSelection(t *testing.T) {
	isolate(t)

	s := session.New(time.Now())
	s.Select(7)
	saveSession(t, s)

	p := showJSON(t, "--reroll", "--seed", "42")

	got := loadSession(t)
	i, ok := got.Selection()
	require.True(t, ok)
	require.Equal(t, p.Index, i)
	require.Equal(t, 1, got.Rerolls)
	require.Equal(t, s.ID, got.ID)

	// Without --reroll the rerolled tip sticks.
	showReroll = false
	require.Equal(t, p.Index, showJSON(t).Index)
}

func TestRerollCommand(t *testing.T) {
	isolate(t)

	for range 3 {
		_, err := executeCommand(rootCmd, "reroll")
		require.NoError(t, err)
	}
	require.Equal(t, 3, loadSession(t).Rerolls)
}

func TestShowMarkdown(t *testing.T) {
	isolate(t)

	out, err := executeCommand(rootCmd, "show", "--format", "markdown")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "# "), "output: %s", out)
	require.Contains(t, out, "```python")
	require.Contains(t, out, "Put together by amitrm")
}

func TestShowPlainIsDefault(t *testing.T) {
	isolate(t)

	out, err := executeCommand(rootCmd, "show")
	require.NoError(t, err)
	require.Contains(t, out, page.Title)
	require.Contains(t, out, "Put together by amitrm")
	require.NotContains(t, out, "```")
}

// An expired session is replaced and starts without a selection.
func TestShowAfterExpiryStartsNewSession(t *testing.T) {
	isolate(t)

	old := session.New(time.Now().Add(-24 * time.Hour))
	old.Select(2)
	old.Rerolls = 9
	saveSession(t, old)

	showJSON(t)

	got := loadSession(t)
	require.NotEqual(t, old.ID, got.ID)
	require.Zero(t, got.Rerolls)
	require.True(t, got.HasSelection())
}

func TestShowMemoryStore(t *testing.T) {
	isolate(t)

	p := showJSON(t, "--store", "memory")
	require.Less(t, p.Index, p.Total)

	// Nothing reached disk.
	st, err := session.NewSessionStore()
	require.NoError(t, err)
	_, err = st.Load(t.Context())
	require.ErrorIs(t, err, session.ErrNoSession)
}

// An empty catalog fails at startup and renders nothing.
func TestEmptyCatalogFails(t *testing.T) {
	isolate(t)

	orig := newCatalog
	newCatalog = func() (*catalog.Catalog, error) { return catalog.New(nil) }
	t.Cleanup(func() { newCatalog = orig })

	out, err := executeCommand(rootCmd, "show")
	require.Error(t, err)
	require.True(t, errors.Is(err, catalog.ErrEmptyCatalog), "got %v", err)
	require.NotContains(t, out, page.Title)
}

func TestInvalidStoreRejected(t *testing.T) {
	isolate(t)

	_, err := executeCommand(rootCmd, "show", "--store", "floppy")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid config")
}

func TestStartupUsesSharedCatalog(t *testing.T) {
	c, err := newCatalog()
	require.NoError(t, err)
	require.Same(t, catalog.Builtin(), c)
}
