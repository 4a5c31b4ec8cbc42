// Package picker implements the interactive launch picker TUI.
package picker

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/runger/hop/internal/icon"
	"github.com/runger/hop/internal/launch"
	"github.com/runger/hop/internal/storage"
)

// pickerState represents the current state of the picker's state machine.
type pickerState int

const (
	stateBrowsing  pickerState = iota // Accepting input, showing matches
	stateLaunched                     // Entry launched; shutting down
	stateFailed                       // Launch attempt failed
	stateCancelled                    // User cancelled (Esc / Ctrl+C)
)

// iconEventMsg wraps one event from the icon worker stream.
type iconEventMsg struct {
	event icon.Event
}

// iconsClosedMsg is sent when the worker's event stream closes.
type iconsClosedMsg struct{}

// Options configures a picker Model. Store and Launcher are required;
// the icon fields are optional (no icons are shown without them), and
// History may be nil to disable launch recording.
type Options struct {
	Store    *launch.Store
	Launcher launch.Launcher

	Cache    *icon.Cache
	Events   <-chan icon.Event
	Settings icon.Settings

	History *storage.HistoryStore
	Logger  *slog.Logger

	MaxResults       int
	ShowDescriptions bool
}

// Model is the Bubble Tea model for the launch picker TUI.
type Model struct {
	state pickerState
	opts  Options
	input textinput.Model

	matches   []launch.EntryID
	selection int // Index into matches; -1 when empty

	profile termenv.Profile

	launchedName string
	launchErr    error

	width  int
	height int
}

// NewModel creates a new picker Model.
func NewModel(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.MaxResults < 1 {
		opts.MaxResults = 10
	}

	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "type to search"
	input.Focus()

	return Model{
		state:     stateBrowsing,
		opts:      opts,
		input:     input,
		selection: -1,
		profile:   termenv.ColorProfile(),
	}
}

// Launched returns the name of the launched entry, or "" if nothing
// was launched.
func (m Model) Launched() string {
	return m.launchedName
}

// Cancelled reports whether the user dismissed the picker.
func (m Model) Cancelled() bool {
	return m.state == stateCancelled
}

// Err returns the launch error, if the selected entry failed to open.
func (m Model) Err() error {
	return m.launchErr
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForIconEvent())
}

// waitForIconEvent pumps one event from the worker stream back into
// the Bubble Tea loop. Update re-arms it after each event, so the
// stream is drained one message at a time on the control goroutine.
func (m Model) waitForIconEvent() tea.Cmd {
	events := m.opts.Events
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return iconsClosedMsg{}
		}
		return iconEventMsg{event: ev}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 4
		return m, nil

	case iconEventMsg:
		return m.handleIconEvent(msg.event)

	case iconsClosedMsg:
		return m, nil
	}

	return m, nil
}

// handleIconEvent applies one worker event. The cache is only ever
// touched here and in View, both on the control goroutine.
func (m Model) handleIconEvent(ev icon.Event) (tea.Model, tea.Cmd) {
	switch ev := ev.(type) {
	case icon.WorkerStarted:
		if m.opts.Cache != nil {
			m.opts.Cache.SetCommands(ev.Commands)
		}
		ev.Commands <- icon.LoadSettings{Settings: m.opts.Settings}

	case icon.IconReceived:
		m.opts.Cache.AddIcon(ev.Key, ev.Icon)
	}
	return m, m.waitForIconEvent()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		m.state = stateCancelled
		return m, tea.Quit

	case tea.KeyEnter:
		return m.launchSelection()

	case tea.KeyUp, tea.KeyCtrlP:
		if m.selection > 0 {
			m.selection--
		}
		return m, nil

	case tea.KeyDown, tea.KeyCtrlN:
		if m.selection < m.visibleCount()-1 {
			m.selection++
		}
		return m, nil

	case tea.KeyCtrlY:
		m.copySelection()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refreshMatches()
	return m, cmd
}

// refreshMatches recomputes the ranked match list for the current
// query and resets the selection to the best match.
func (m *Model) refreshMatches() {
	query := m.input.Value()
	if strings.TrimSpace(query) == "" {
		m.matches = nil
		m.selection = -1
		return
	}

	m.matches = m.opts.Store.FindMatches(query)
	if len(m.matches) == 0 {
		m.selection = -1
	} else {
		m.selection = 0
	}
}

// launchSelection hands the selected entry to the launcher and quits.
func (m Model) launchSelection() (tea.Model, tea.Cmd) {
	entry, ok := m.selectedEntry()
	if !ok {
		return m, nil
	}

	query := m.input.Value()
	if err := entry.HandleSelection(m.opts.Launcher, query); err != nil {
		m.state = stateFailed
		m.launchErr = err
		return m, tea.Quit
	}

	m.state = stateLaunched
	m.launchedName = entry.Name
	m.opts.Logger.Info("launched entry", "name", entry.Name)

	if m.opts.History != nil {
		// Best-effort: history failures never block the launch.
		err := m.opts.History.RecordLaunch(context.Background(),
			entry.Name, entry.FormatSelection(query), query)
		if err != nil {
			m.opts.Logger.Warn("failed to record launch", "error", err)
		}
	}

	return m, tea.Quit
}

// copySelection puts the formatted selection on the system clipboard.
func (m *Model) copySelection() {
	entry, ok := m.selectedEntry()
	if !ok {
		return
	}
	text := entry.FormatSelection(m.input.Value())
	if err := clipboard.WriteAll(text); err != nil {
		m.opts.Logger.Warn("clipboard write failed", "error", err)
	}
}

func (m Model) selectedEntry() (*launch.Entry, bool) {
	if m.selection < 0 || m.selection >= len(m.matches) {
		return nil, false
	}
	return m.opts.Store.Get(m.matches[m.selection]), true
}

// visibleCount returns how many matches are shown.
func (m Model) visibleCount() int {
	return min(len(m.matches), m.opts.MaxResults)
}

// --- View rendering ---

var (
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	normalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	targetStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View implements tea.Model.
func (m Model) View() string {
	if m.state != stateBrowsing {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteRune('\n')
	b.WriteString(m.viewList())
	return b.String()
}

// viewList renders the ranked matches with icon swatches.
func (m Model) viewList() string {
	if m.input.Value() == "" {
		return dimStyle.Render("  start typing to match entries")
	}
	if len(m.matches) == 0 {
		return dimStyle.Render("  no matches")
	}

	query := m.input.Value()
	var b strings.Builder
	for i := 0; i < m.visibleCount(); i++ {
		entry := m.opts.Store.Get(m.matches[i])

		name := entry.FormatName(query)
		if m.width > 8 {
			name = MiddleTruncate(name, m.width-8)
		}

		line := m.swatch(entry) + " " + name
		if i == m.selection {
			b.WriteString(selectedStyle.Render("> ") + m.swatch(entry) + " " + selectedStyle.Render(name))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteRune('\n')
	}

	if m.opts.ShowDescriptions {
		if desc := m.viewDescription(); desc != "" {
			b.WriteRune('\n')
			b.WriteString(desc)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// swatch renders a one-cell color chip for the entry's icon: the mean
// icon color while resolved, a dim placeholder glyph while pending.
func (m Model) swatch(entry *launch.Entry) string {
	if m.opts.Cache == nil {
		return normalStyle.Render("·")
	}

	ic, ok := m.opts.Cache.Get(entry.IconKey())
	if !ok || ic.IsZero() {
		return dimStyle.Render("○")
	}

	r, g, b := ic.MeanColor()
	c := m.profile.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
	return termenv.String("●").Foreground(c).String()
}

// viewDescription renders the selected entry's description, if any.
func (m Model) viewDescription() string {
	entry, ok := m.selectedEntry()
	if !ok || entry.Description == "" {
		return ""
	}

	paragraphs, ok := launch.DescriptionParagraphs(entry.Description)
	if !ok {
		// Not restricted-format text; show it raw as a single block.
		paragraphs = []string{entry.Description}
	}

	width := m.width - 4
	if width < 10 {
		width = 60
	}
	style := targetStyle.Width(width).PaddingLeft(2)
	return style.Render(strings.Join(paragraphs, "\n\n"))
}
