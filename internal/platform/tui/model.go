package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/terminal-arcade/goldrush/internal/core"
	"github.com/terminal-arcade/goldrush/internal/game"
	"github.com/terminal-arcade/goldrush/internal/storage"
)

// Model is the Bubble Tea model for a local goldrush session.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	startedAt  time.Time
	quitting   bool
	runSaved   bool // Whether the current run has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		startedAt:  time.Now(),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveRun("quit")
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The playfield is fixed-size;
// only the screen buffer follows the terminal.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	restarting := m.inputFrame.Has(core.ActionRestart) &&
		(m.gameState.GameOver || m.gameState.Won)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if restarting && !m.gameState.GameOver && !m.gameState.Won {
		m.runSaved = false
		m.startedAt = time.Now()
	}

	// Record the run once when it ends
	if m.gameState.GameOver {
		m.saveRun("lost")
	} else if m.gameState.Won {
		m.saveRun("won")
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRun persists the current run outcome. Best-effort; the session
// continues regardless of storage errors.
func (m *Model) saveRun(outcome string) {
	if m.runSaved || m.store == nil {
		return
	}
	snap := m.game.Snapshot()
	if outcome == "quit" && snap.Score == 0 {
		return
	}

	//nolint:errcheck // Best-effort save
	m.store.SaveRun(storage.RunRecord{
		Score:     snap.Score,
		Gold:      snap.GoldCollected,
		GoldTotal: snap.GoldTotal,
		Outcome:   outcome,
		Duration:  int(time.Since(m.startedAt).Seconds()),
	})
	m.runSaved = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(g, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
