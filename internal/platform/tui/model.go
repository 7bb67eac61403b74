package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/meteor-dodge/internal/core"
	"github.com/vovakirdan/meteor-dodge/internal/registry"
	"github.com/vovakirdan/meteor-dodge/internal/storage"
)

// RunResult summarizes a finished game for logging by the caller.
type RunResult struct {
	GameID  string
	RunID   string // Empty if the run was not stored
	Outcome core.Outcome
	Score   int
	Cycles  int
	Meteors int
}

// meteorCounter is implemented by games that can report their obstacle count.
type meteorCounter interface {
	MeteorCount() int
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithLogger sets the logger used for storage warnings.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) { m.logger = l }
}

// Embedded makes the model finish without quitting the program,
// so a parent model (the SSH session) can take over.
func Embedded() ModelOption {
	return func(m *Model) { m.embedded = true }
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	canvas     *core.ScreenCanvas
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame *core.InputFrame // Shared across value copies so key buffering survives Update
	gameState  core.GameState
	result     RunResult
	embedded   bool
	recorded   bool // Whether the run has been stored
	done       bool // Final frame has been held; nothing more to do
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	frame := core.NewInputFrame()

	m := Model{
		game:       game,
		screen:     screen,
		store:      store,
		logger:     log.Default(),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: &frame,
		result:     RunResult{GameID: game.ID()},
	}
	for _, opt := range opts {
		opt(&m)
	}

	// Reset before the first View so the world size and opening frame exist.
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	w, h := m.game.World()
	m.canvas = core.NewScreenCanvas(screen, w, h)

	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
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

	case EndHoldMsg:
		return m.finish()
	}

	return m, nil
}

// handleKey buffers keyboard input for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	// Once the game is over only leaving is meaningful.
	if m.gameState.GameOver {
		action, isQuit := m.keyMapper.MapKey(msg)
		if isQuit || action == core.ActionBack || action == core.ActionConfirm {
			return m.finish()
		}
		return m, nil
	}

	m.keyMapper.MapKeyToFrame(msg, m.inputFrame)
	return m, nil
}

// handleResize changes the terminal size. The simulation is unaffected
// because it runs in world units.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation cycle with the buffered input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.gameState.GameOver {
		return m, nil
	}

	result := m.game.Step(m.inputFrame.Clone())
	m.gameState = result.State
	m.inputFrame.Clear()

	if !m.gameState.GameOver {
		return m, tickCmd(m.config.TickRate)
	}

	m.record()
	return m, endHoldCmd(m.config.EndDelay)
}

// record stores the finished run once. Won and lost runs also enter the
// high score table; quit runs are kept only in the run history.
func (m *Model) record() {
	if m.recorded {
		return
	}
	m.recorded = true

	m.result.Outcome = m.gameState.Outcome
	m.result.Score = m.gameState.Score
	m.result.Cycles = m.gameState.Cycle
	if mc, ok := m.game.(meteorCounter); ok {
		m.result.Meteors = mc.MeteorCount()
	}

	if m.store == nil {
		return
	}

	runID, err := m.store.RecordRun(storage.Run{
		GameID:  m.result.GameID,
		Outcome: m.result.Outcome.String(),
		Score:   m.result.Score,
		Cycles:  m.result.Cycles,
		Meteors: m.result.Meteors,
	}, m.result.Outcome.Ranked())
	if err != nil {
		m.logger.Warn("could not save run", "game", m.result.GameID, "error", err)
	}
	m.result.RunID = runID
}

// finish ends the model after the final frame.
func (m Model) finish() (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}
	m.done = true
	if m.embedded {
		return m, nil
	}
	m.quitting = true
	return m, tea.Quit
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	dir := filepath.Join(os.Getenv("HOME"), ".meteors", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
	}
}

// draw presents the game's last frame on the screen buffer.
func (m *Model) draw() {
	m.game.Render(m.canvas)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen)
}

// Done reports whether the game ended and its final frame was shown.
func (m Model) Done() bool {
	return m.done
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Result returns the outcome of the run. Outcome is OutcomeNone while running.
func (m Model) Result() RunResult {
	return m.result
}

// Run plays a game in the terminal until it ends and returns its result.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) (RunResult, error) {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return RunResult{GameID: game.ID()}, fmt.Errorf("tui: %w", err)
	}

	m, ok := finalModel.(Model)
	if !ok {
		return RunResult{GameID: game.ID()}, nil
	}
	return m.Result(), nil
}
