package picker

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runger/hop/internal/icon"
	"github.com/runger/hop/internal/launch"
)

type fakeLauncher struct {
	opened []string
	ran    []string
	err    error
}

func (l *fakeLauncher) OpenFile(path string) error {
	l.opened = append(l.opened, path)
	return l.err
}

func (l *fakeLauncher) RunCommand(command string) error {
	l.ran = append(l.ran, command)
	return l.err
}

func testStore(t *testing.T) *launch.Store {
	t.Helper()
	store, err := launch.ParseStore([]byte(`
docs:
  url: https://docs.example.com
  tags: [reference]
build:
  system: make all
  tags: [reference, work]
notes:
  location: /home/me/notes.txt
`))
	require.NoError(t, err)
	return store
}

func typeQuery(m Model, query string) Model {
	for _, r := range query {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

func key(m Model, t tea.KeyType) (Model, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: t})
	return next.(Model), cmd
}

func TestModel_TypingUpdatesMatches(t *testing.T) {
	m := NewModel(Options{Store: testStore(t), Launcher: &fakeLauncher{}})

	assert.Empty(t, m.matches)
	assert.Equal(t, -1, m.selection)

	m = typeQuery(m, "reference")
	require.Len(t, m.matches, 2)
	assert.Equal(t, 0, m.selection, "best match selected")

	// Tie on the tag; the later-declared entry ranks first.
	first, _ := m.selectedEntry()
	assert.Equal(t, "build", first.Name)
}

func TestModel_NoMatchesForGibberish(t *testing.T) {
	m := NewModel(Options{Store: testStore(t), Launcher: &fakeLauncher{}})

	m = typeQuery(m, "zzzz")
	assert.Empty(t, m.matches)
	assert.Equal(t, -1, m.selection)
	assert.Contains(t, m.View(), "no matches")
}

func TestModel_SelectionMovement(t *testing.T) {
	m := NewModel(Options{Store: testStore(t), Launcher: &fakeLauncher{}})
	m = typeQuery(m, "reference")
	require.Len(t, m.matches, 2)

	m, _ = key(m, tea.KeyDown)
	assert.Equal(t, 1, m.selection)

	// Clamped at the bottom
	m, _ = key(m, tea.KeyDown)
	assert.Equal(t, 1, m.selection)

	m, _ = key(m, tea.KeyUp)
	assert.Equal(t, 0, m.selection)

	m, _ = key(m, tea.KeyUp)
	assert.Equal(t, 0, m.selection)
}

func TestModel_SelectionResetsOnQueryChange(t *testing.T) {
	m := NewModel(Options{Store: testStore(t), Launcher: &fakeLauncher{}})
	m = typeQuery(m, "reference")
	m, _ = key(m, tea.KeyDown)
	require.Equal(t, 1, m.selection)

	m = typeQuery(m, " work")
	assert.Equal(t, 0, m.selection)
	require.Len(t, m.matches, 1)
}

func TestModel_EnterLaunchesFileTarget(t *testing.T) {
	l := &fakeLauncher{}
	m := NewModel(Options{Store: testStore(t), Launcher: l})

	m = typeQuery(m, "notes")
	m, cmd := key(m, tea.KeyEnter)

	assert.NotNil(t, cmd, "enter should quit")
	assert.Equal(t, "notes", m.Launched())
	assert.NoError(t, m.Err())
	assert.Equal(t, []string{"/home/me/notes.txt"}, l.opened)
	assert.Empty(t, l.ran)
}

func TestModel_EnterLaunchesSystemTarget(t *testing.T) {
	l := &fakeLauncher{}
	m := NewModel(Options{Store: testStore(t), Launcher: l})

	m = typeQuery(m, "build")
	m, _ = key(m, tea.KeyEnter)

	assert.Equal(t, "build", m.Launched())
	assert.Equal(t, []string{"make all"}, l.ran)
	assert.Empty(t, l.opened)
}

func TestModel_EnterWithNoSelectionDoesNothing(t *testing.T) {
	l := &fakeLauncher{}
	m := NewModel(Options{Store: testStore(t), Launcher: l})

	m, cmd := key(m, tea.KeyEnter)
	assert.Nil(t, cmd)
	assert.Empty(t, m.Launched())
	assert.Empty(t, l.opened)
}

func TestModel_LaunchFailure(t *testing.T) {
	want := errors.New("no handler")
	l := &fakeLauncher{err: want}
	m := NewModel(Options{Store: testStore(t), Launcher: l})

	m = typeQuery(m, "notes")
	m, _ = key(m, tea.KeyEnter)

	assert.Empty(t, m.Launched())
	assert.ErrorIs(t, m.Err(), want)
}

func TestModel_EscCancels(t *testing.T) {
	m := NewModel(Options{Store: testStore(t), Launcher: &fakeLauncher{}})

	m, cmd := key(m, tea.KeyEsc)
	assert.True(t, m.Cancelled())
	assert.NotNil(t, cmd)
}

func TestModel_WorkerHandshake(t *testing.T) {
	commands := make(chan icon.Command, 8)
	cache := icon.NewCache()
	settings := icon.Settings{Size: 16}

	m := NewModel(Options{
		Store:    testStore(t),
		Launcher: &fakeLauncher{},
		Cache:    cache,
		Settings: settings,
	})

	next, _ := m.Update(iconEventMsg{event: icon.WorkerStarted{Commands: commands}})
	m = next.(Model)

	// The handshake must immediately configure the worker.
	got := <-commands
	require.IsType(t, icon.LoadSettings{}, got)
	assert.Equal(t, settings, got.(icon.LoadSettings).Settings)

	// And the cache must now route misses to the worker.
	key := icon.URLKey("https://docs.example.com")
	_, ok := cache.Get(key)
	assert.False(t, ok)
	assert.Equal(t, icon.LoadIcon{Key: key}, <-commands)
}

func TestModel_IconReceivedResolvesCache(t *testing.T) {
	cache := icon.NewCache()
	m := NewModel(Options{
		Store:    testStore(t),
		Launcher: &fakeLauncher{},
		Cache:    cache,
	})

	key := icon.URLKey("https://docs.example.com")
	want := icon.Placeholder(2)

	next, _ := m.Update(iconEventMsg{event: icon.IconReceived{Key: key, Icon: want}})
	_ = next

	got, ok := cache.Get(key)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestModel_ViewShowsFormattedNames(t *testing.T) {
	store, err := launch.ParseStore([]byte(`
"search:%s":
  url: https://find.example.com/?q=%s
  keyword: s
`))
	require.NoError(t, err)

	m := NewModel(Options{Store: store, Launcher: &fakeLauncher{}})
	m = typeQuery(m, "s hello")

	require.Len(t, m.matches, 1)
	assert.Contains(t, m.View(), "search:hello")
}

func TestModel_ViewPrompt(t *testing.T) {
	m := NewModel(Options{Store: testStore(t), Launcher: &fakeLauncher{}})
	assert.Contains(t, m.View(), "start typing")
}
