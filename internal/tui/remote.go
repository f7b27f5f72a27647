// Package tui provides the remote-control terminal UI: a keyboard front
// end for manual slideshow playback, standing in for a device's touch
// buttons.
package tui

import (
	"fmt"
	"time"

	"glowframe/internal/playback"
	"glowframe/pkg/types"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// tickInterval is the engine tick cadence while the remote UI runs
const tickInterval = 50 * time.Millisecond

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4F4FB7")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#959595"))

	imageStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FF87"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// KeyMap defines the keybindings for the remote control
type KeyMap struct {
	Forward        key.Binding
	Backward       key.Binding
	BrightnessUp   key.Binding
	BrightnessDown key.Binding
	Quit           key.Binding
}

// DefaultKeyMap returns the standard remote-control bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Forward: key.NewBinding(
			key.WithKeys("right", " ", "n"),
			key.WithHelp("→/space", "next image"),
		),
		Backward: key.NewBinding(
			key.WithKeys("left", "p"),
			key.WithHelp("←", "previous image"),
		),
		BrightnessUp: key.NewBinding(
			key.WithKeys("up", "+"),
			key.WithHelp("↑/+", "brighter"),
		),
		BrightnessDown: key.NewBinding(
			key.WithKeys("down", "-"),
			key.WithHelp("↓/-", "dimmer"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model drives the playback engine from the bubbletea event loop. The
// engine is single-owner, so every engine call happens inside Update.
type Model struct {
	engine   *playback.Engine
	keys     KeyMap
	finished bool
	quitting bool
}

// NewModel creates the remote-control model around an engine
func NewModel(engine *playback.Engine) *Model {
	return &Model{
		engine: engine,
		keys:   DefaultKeyMap(),
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.finished {
			return m, nil
		}
		if !m.engine.Update() {
			m.finished = true
			return m, nil
		}
		return m, tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Forward):
			m.engine.Advance(types.Forward)
		case key.Matches(msg, m.keys.Backward):
			m.engine.Advance(types.Backward)
		case key.Matches(msg, m.keys.BrightnessUp):
			m.engine.BacklightLevelUp()
		case key.Matches(msg, m.keys.BrightnessDown):
			m.engine.BacklightLevelDown()
		}
	}
	return m, nil
}

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	title := titleStyle.Render("glowframe remote")

	current := m.engine.Current()
	if current == "" {
		current = "(between images)"
	}

	level := m.engine.BacklightLevel()
	status := statusStyle.Render(fmt.Sprintf(
		"state: %s   direction: %s   brightness: %d%%",
		m.engine.State(), m.engine.Direction(), level*100/playback.LevelMax,
	))

	body := imageStyle.Render(current)
	if m.finished {
		body = imageStyle.Render("slideshow finished")
	}

	help := helpStyle.Render("→/space next · ← previous · ↑/+ brighter · ↓/- dimmer · q quit")

	return fmt.Sprintf("%s\n\n%s\n%s\n\n%s\n", title, body, status, help)
}
