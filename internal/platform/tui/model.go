package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/engine"
	"github.com/vovakirdan/tui-dino/internal/games/dino"
	"github.com/vovakirdan/tui-dino/internal/platform/render"
)

// Model is the Bubble Tea model for a run.
type Model struct {
	game     *dino.Game
	ramp     *config.DifficultyRamp
	surface  *core.Surface
	palette  *render.Palette
	keys     KeyMap
	help     help.Model
	interval time.Duration
	pending  core.Action // First action pressed since the last tick
	done     bool
	result   engine.Result
}

// NewModel creates a model for the given game. The frame surface is sized
// once from the game's world; resizing the window does not change it.
func NewModel(game *dino.Game, ramp *config.DifficultyRamp, km core.KeyMap) Model {
	world := game.World()
	return Model{
		game:     game,
		ramp:     ramp,
		surface:  core.NewSurface(world.Cols, world.Rows),
		palette:  render.DefaultPalette(),
		keys:     NewKeyMap(km),
		help:     help.New(),
		interval: ramp.Initial(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the action for the next tick. Quit wins over a queued jump.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit || m.pending == core.ActionNone {
		m.pending = action
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	result := m.game.Step(m.pending)
	m.pending = core.ActionNone

	switch {
	case result.Quit:
		return m.finish(engine.OutcomeQuit), tea.Quit
	case result.State.GameOver:
		return m.finish(engine.OutcomeGameOver), tea.Quit
	}

	m.interval = m.ramp.Interval(result.State.Score)
	return m, tickCmd(m.interval)
}

func (m Model) finish(outcome engine.Outcome) Model {
	m.done = true
	m.result = engine.Result{
		Outcome: outcome,
		Score:   m.game.State().Score,
		Ticks:   m.game.Ticks(),
	}
	return m
}

// Result returns how the run ended. Valid once the program has exited.
func (m Model) Result() engine.Result {
	return m.result
}

// Interval returns the current tick interval.
func (m Model) Interval() time.Duration {
	return m.interval
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.done {
		return ""
	}

	m.game.Render(m.surface)

	var b strings.Builder
	b.WriteString(m.palette.Screen(m.surface, 0, "\n"))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Run starts the Bubble Tea program and blocks until the run ends.
func Run(game *dino.Game, ramp *config.DifficultyRamp, km core.KeyMap) (engine.Result, error) {
	p := tea.NewProgram(
		NewModel(game, ramp, km),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return engine.Result{}, err
	}
	return final.(Model).Result(), nil
}
