package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/meteor-dodge/internal/config"
	"github.com/vovakirdan/meteor-dodge/internal/core"
	"github.com/vovakirdan/meteor-dodge/internal/games/meteors"
	"github.com/vovakirdan/meteor-dodge/internal/storage"
)

// shortGame returns a game that cannot be lost and is won after a few cycles.
func shortGame(cycles int) *meteors.Game {
	cfg := config.DefaultMeteorsConfig()
	cfg.Meteors.MaxSpeed = 0
	cfg.Rules.MaxCycles = cycles
	return meteors.NewWithConfig(cfg)
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  120,
		ScreenH:  40,
		TickRate: 30,
		Seed:     7,
		EndDelay: time.Millisecond,
	}
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// send applies a message and returns the updated Model and command.
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	updated, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return updated, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelInitialView(t *testing.T) {
	m := NewModel(shortGame(5), nil, testConfig())

	view := m.View()
	if !strings.Contains(view, "Score: 0") {
		t.Errorf("opening frame should show the score, got %q", view)
	}
	if m.Init() == nil {
		t.Error("Init should start the tick loop")
	}
}

func TestModelWinStoresScoreAndRun(t *testing.T) {
	store := openTestStore(t)
	m := NewModel(shortGame(3), store, testConfig())

	var cmd tea.Cmd
	for range 3 {
		m, cmd = send(t, m, TickMsg(time.Now()))
	}
	if !m.State().GameOver {
		t.Fatal("game should be over after MaxCycles ticks")
	}
	if cmd == nil {
		t.Fatal("game over should schedule the end hold")
	}
	if !strings.Contains(m.View(), "You've Won!") {
		t.Error("final frame should show the win message")
	}

	// Further ticks do nothing.
	m, cmd = send(t, m, TickMsg(time.Now()))
	if cmd != nil || m.State().Cycle != 3 {
		t.Errorf("ticks after game over should be ignored, cycle=%d", m.State().Cycle)
	}

	res := m.Result()
	if res.Outcome != core.OutcomeWon || res.Cycles != 3 || res.Meteors != 8 {
		t.Errorf("unexpected result %+v", res)
	}
	if res.RunID == "" {
		t.Error("run should have been stored with an ID")
	}

	scores, err := store.TopScores(meteors.ClassicID, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Errorf("expected 1 stored score, got %d", len(scores))
	}

	m, cmd = send(t, m, EndHoldMsg(time.Now()))
	if !isQuit(cmd) {
		t.Error("standalone model should quit after the end hold")
	}
	if !m.Done() {
		t.Error("model should be done after the end hold")
	}
}

func TestModelQuitKeyEndsOnNextTick(t *testing.T) {
	store := openTestStore(t)
	m := NewModel(shortGame(100), store, testConfig())

	m, cmd := send(t, m, runeKey("q"))
	if cmd != nil {
		t.Error("quit key should be buffered, not acted on immediately")
	}
	if m.State().GameOver {
		t.Fatal("game should still run until the next tick")
	}

	m, _ = send(t, m, TickMsg(time.Now()))
	if m.State().Outcome != core.OutcomeQuit {
		t.Fatalf("outcome = %v, expected quit", m.State().Outcome)
	}

	scores, _ := store.TopScores(meteors.ClassicID, 10)
	if len(scores) != 0 {
		t.Errorf("quit runs should not enter the score table, got %d", len(scores))
	}
	runs, _ := store.RecentRuns(meteors.ClassicID, 10)
	if len(runs) != 1 || runs[0].Outcome != "quit" {
		t.Errorf("expected one quit run, got %+v", runs)
	}
}

func TestModelKeyDuringEndHoldLeaves(t *testing.T) {
	m := NewModel(shortGame(1), nil, testConfig(), Embedded())
	m, _ = send(t, m, TickMsg(time.Now()))
	if !m.State().GameOver {
		t.Fatal("game should be over")
	}

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("embedded model should not quit the program")
	}
	if !m.Done() {
		t.Error("enter after game over should finish the model")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m := NewModel(shortGame(100), nil, testConfig())
	m, _ = send(t, m, TickMsg(time.Now()))
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})

	if m.State().Cycle != 1 {
		t.Errorf("resize should not reset the game, cycle=%d", m.State().Cycle)
	}
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 20 {
		t.Errorf("view should have 20 rows after resize, got %d", len(lines))
	}
}
