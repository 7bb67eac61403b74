package gfx

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/meteor-dodge/internal/assets"
	"github.com/vovakirdan/meteor-dodge/internal/core"
	"github.com/vovakirdan/meteor-dodge/internal/registry"
	"github.com/vovakirdan/meteor-dodge/internal/sfx"
	"github.com/vovakirdan/meteor-dodge/internal/storage"
)

// Options configures a window run.
type Options struct {
	Title    string
	TPS      int
	Seed     int64
	EndDelay time.Duration
	Sprites  assets.Sprites
	Volume   float64 // Jingle volume 0..1; 0 disables audio
	Store    *storage.Store
	Logger   *log.Logger
}

// Result summarizes a finished window game.
type Result struct {
	GameID  string
	RunID   string
	Outcome core.Outcome
	Score   int
	Cycles  int
}

// holdTicks converts the end hold to a number of updates at tps.
func holdTicks(d time.Duration, tps int) int {
	if d <= 0 || tps <= 0 {
		return 0
	}
	return int(d * time.Duration(tps) / time.Second)
}

// window implements ebiten.Game around a registry game.
type window struct {
	game   registry.Game
	opts   Options
	canvas *Canvas
	input  core.InputFrame
	keys   []ebiten.Key
	state  core.GameState
	hold   int // Updates left before the window closes
	result Result

	audio  *audio.Context
	player *audio.Player
}

func (w *window) Update() error {
	if w.state.GameOver {
		if w.hold <= 0 || ebiten.IsWindowBeingClosed() {
			return ebiten.Termination
		}
		w.hold--
		return nil
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	w.keys = inpututil.AppendJustPressedKeys(w.keys[:0])
	AppendActions(&w.input, w.keys, ctrl)
	if ebiten.IsWindowBeingClosed() {
		w.input.Push(core.ActionQuit)
	}

	w.state = w.game.Step(w.input).State
	w.input.Clear()

	if w.state.GameOver {
		w.finish()
	}
	return nil
}

// finish records the run and starts the end jingle.
func (w *window) finish() {
	w.hold = holdTicks(w.opts.EndDelay, w.opts.TPS)
	w.result.Outcome = w.state.Outcome
	w.result.Score = w.state.Score
	w.result.Cycles = w.state.Cycle

	if w.opts.Store != nil {
		run := storage.Run{
			GameID:  w.result.GameID,
			Outcome: w.result.Outcome.String(),
			Score:   w.result.Score,
			Cycles:  w.result.Cycles,
		}
		if mc, ok := w.game.(interface{ MeteorCount() int }); ok {
			run.Meteors = mc.MeteorCount()
		}
		runID, err := w.opts.Store.RecordRun(run, w.result.Outcome.Ranked())
		if err != nil {
			w.opts.Logger.Warn("could not save run", "game", w.result.GameID, "error", err)
		}
		w.result.RunID = runID
	}

	w.playJingle()
}

func (w *window) playJingle() {
	if w.audio == nil {
		return
	}
	kind, ok := sfx.ForOutcome(w.state.Outcome)
	if !ok {
		return
	}
	w.player = w.audio.NewPlayerFromBytes(sfx.Render(sfx.Jingle(kind, w.opts.Volume)))
	w.player.Play()
}

func (w *window) Draw(screen *ebiten.Image) {
	w.game.Render(w.canvas.On(screen))
}

func (w *window) Layout(_, _ int) (int, int) {
	return w.game.World()
}

// Run opens a window and plays the game until it ends.
func Run(game registry.Game, opts Options) (Result, error) {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.TPS <= 0 {
		opts.TPS = 30
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	canvas, err := NewCanvas(opts.Sprites)
	if err != nil {
		return Result{}, err
	}

	game.Reset(core.RuntimeConfig{
		TickRate: opts.TPS,
		Seed:     opts.Seed,
		EndDelay: opts.EndDelay,
	})
	worldW, worldH := game.World()

	w := &window{
		game:   game,
		opts:   opts,
		canvas: canvas,
		input:  core.NewInputFrame(),
		state:  game.State(),
		result: Result{GameID: game.ID()},
	}
	if opts.Volume > 0 {
		w.audio = audio.NewContext(int(sfx.SampleRate))
	}

	ebiten.SetWindowSize(worldW, worldH)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetTPS(opts.TPS)
	ebiten.SetWindowClosingHandled(true)

	err = ebiten.RunGame(w)
	if w.player != nil {
		w.player.Close()
	}
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return w.result, fmt.Errorf("gfx: %w", err)
	}
	return w.result, nil
}
