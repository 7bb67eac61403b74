// Package meteors implements the meteor dodging game: a ship avoids
// meteors falling at random speeds until the cycle budget runs out.
package meteors

import (
	"fmt"

	"github.com/vovakirdan/meteor-dodge/internal/config"
	"github.com/vovakirdan/meteor-dodge/internal/core"
	"github.com/vovakirdan/meteor-dodge/internal/registry"
)

// Game IDs registered by this package.
const (
	ClassicID = "meteors"
	EndlessID = "meteors_endless"
)

// Score overlay position in world units.
const (
	scoreX = 30
	scoreY = 30
)

// Status is the simulation state machine.
type Status int

const (
	StatusRunning Status = iota
	StatusWon
	StatusLost
	StatusQuit // Early exit requested by the player; no end message
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	case StatusQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Outcome converts the status to the platform-level outcome.
func (s Status) Outcome() core.Outcome {
	switch s {
	case StatusWon:
		return core.OutcomeWon
	case StatusLost:
		return core.OutcomeLost
	case StatusQuit:
		return core.OutcomeQuit
	default:
		return core.OutcomeNone
	}
}

// Game implements the meteor dodging simulation.
type Game struct {
	id      string
	title   string
	fixed   *config.MeteorsConfig // Set by NewWithConfig; skips config loading
	endless bool

	cfg     config.MeteorsConfig
	runtime core.RuntimeConfig
	ship    *Ship
	field   *Field
	cycle   int // Incremented once per Step, unconditionally
	score   int
	status  Status
	frame   core.DisplayList // Frame built by the last Step

	bg, text, msgBg core.Color
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// LoadConfig loads the configuration the registered games will use,
// honoring SetConfigPath and SetDifficultyPreset.
func LoadConfig() (config.MeteorsConfig, error) {
	cfg, err := config.LoadMeteors(configPath)
	if err != nil {
		return cfg, err
	}
	if difficultyPreset != "" {
		config.ApplyMeteorsPreset(&cfg, difficultyPreset)
	}
	return cfg, nil
}

// New creates the classic game (fixed cycle budget).
func New() *Game {
	return &Game{id: ClassicID, title: "Meteor Dodge"}
}

// NewEndless creates the endless game (no cycle budget, capped meteor count).
func NewEndless() *Game {
	return &Game{id: EndlessID, title: "Meteor Dodge (Endless)", endless: true}
}

// NewWithConfig creates a classic game bound to an explicit configuration.
func NewWithConfig(cfg config.MeteorsConfig) *Game {
	g := New()
	g.fixed = &cfg
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	switch {
	case g.fixed != nil:
		g.cfg = *g.fixed
	default:
		cfg, err := LoadConfig()
		if err != nil {
			cfg = config.DefaultMeteorsConfig()
		}
		g.cfg = cfg
	}
	if g.endless {
		g.cfg = config.EndlessVariant(g.cfg)
	}

	g.bg = parseColorOr(g.cfg.Colors.Background, core.ColorBlack)
	g.text = parseColorOr(g.cfg.Colors.Text, core.ColorBlue)
	g.msgBg = parseColorOr(g.cfg.Colors.MessageBackground, core.ColorWhite)

	g.ship = NewShip(&g.cfg)
	if g.field == nil {
		g.field = NewField(runtime.Seed, &g.cfg)
	} else {
		g.field.cfg = &g.cfg
		g.field.Reset(runtime.Seed)
	}
	g.cycle = 0
	g.score = 0
	g.status = StatusRunning

	g.frame.Reset()
	g.drawScene()
	g.drawScore()
}

// Step advances the game by one cycle. The order of operations is fixed:
// count, win check, input, advance, draw, collision, spawn, score.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.status != StatusRunning {
		return core.StepResult{State: g.State()}
	}

	g.cycle++
	won := g.cfg.Rules.MaxCycles > 0 && g.cycle == g.cfg.Rules.MaxCycles

	quit := false
	for _, a := range in.Actions() {
		switch a {
		case core.ActionQuit:
			quit = true
		case core.ActionLeft:
			g.ship.MoveLeft()
		case core.ActionRight:
			g.ship.MoveRight()
		case core.ActionUp:
			g.ship.MoveUp()
		case core.ActionDown:
			g.ship.MoveDown()
		}
	}

	g.field.AdvanceAll()

	g.frame.Reset()
	g.drawScene()

	lost := g.field.CheckCollision(g.ship.Bounds())
	switch {
	case lost:
		g.drawMessage(fmt.Sprintf("You lost! Score: %d", g.score))
	case won:
		g.drawMessage("You've Won!")
	}

	if g.cycle%g.cfg.Meteors.SpawnInterval == 0 {
		g.field.Spawn()
	}

	if g.cycle%g.cfg.Rules.ScoreInterval == 0 {
		g.score++
	}
	g.drawScore()

	switch {
	case lost:
		g.status = StatusLost
	case won:
		g.status = StatusWon
	case quit:
		g.status = StatusQuit
	}

	return core.StepResult{State: g.State()}
}

// drawScene clears the frame and draws the ship, then every meteor on top.
func (g *Game) drawScene() {
	g.frame.Fill(g.bg)
	g.ship.Draw(&g.frame)
	g.field.Draw(&g.frame)
}

func (g *Game) drawMessage(msg string) {
	g.frame.Fill(g.msgBg)
	g.frame.TextCentered(g.cfg.Screen.Width/2, g.cfg.Screen.Height/2, core.FontMessage, msg, g.text, g.msgBg)
}

func (g *Game) drawScore() {
	g.frame.Text(scoreX, scoreY, core.FontScore, fmt.Sprintf("Score: %d", g.score), g.text, core.ColorDefault)
}

// Render presents the frame built by the last Step (or Reset).
func (g *Game) Render(dst core.Canvas) {
	g.frame.Replay(dst)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Cycle:    g.cycle,
		GameOver: g.status != StatusRunning,
		Outcome:  g.status.Outcome(),
	}
}

// Status returns the simulation state.
func (g *Game) Status() Status {
	return g.status
}

// Config returns the configuration in effect since the last Reset.
func (g *Game) Config() config.MeteorsConfig {
	return g.cfg
}

// World returns the logical playfield size.
func (g *Game) World() (int, int) {
	return g.cfg.Screen.Width, g.cfg.Screen.Height
}

// MeteorCount returns the number of meteors in play.
func (g *Game) MeteorCount() int {
	if g.field == nil {
		return 0
	}
	return g.field.Len()
}

func parseColorOr(name string, fallback core.Color) core.Color {
	c, err := core.ParseColor(name)
	if err != nil {
		return fallback
	}
	return c
}

// Register the games with the registry
func init() {
	registry.Register(ClassicID, func() registry.Game {
		return New()
	})
	registry.Register(EndlessID, func() registry.Game {
		return NewEndless()
	})
}
