package meteors

import (
	"fmt"

	"github.com/vovakirdan/meteor-dodge/internal/config"
	"github.com/vovakirdan/meteor-dodge/internal/core"
)

// Ship is the player-controlled entity. Every move keeps it fully on screen.
type Ship struct {
	Entity
	speed   int
	screenW int
	screenH int
}

// NewShip places a ship horizontally centered near the bottom edge.
func NewShip(cfg *config.MeteorsConfig) *Ship {
	s := &Ship{
		Entity: Entity{
			X: cfg.Screen.Width / 2,
			Y: cfg.Screen.Height - cfg.Ship.BottomOffset,
			W: cfg.Ship.Width,
			H: cfg.Ship.Height,
		},
		speed:   cfg.Ship.Speed,
		screenW: cfg.Screen.Width,
		screenH: cfg.Screen.Height,
	}
	s.clamp()
	return s
}

// MoveLeft moves the ship one step left, stopping at the left edge.
func (s *Ship) MoveLeft() {
	s.X -= s.speed
	s.clamp()
}

// MoveRight moves the ship one step right, stopping at the right edge.
func (s *Ship) MoveRight() {
	s.X += s.speed
	s.clamp()
}

// MoveUp moves the ship one step up, stopping at the top edge.
func (s *Ship) MoveUp() {
	s.Y -= s.speed
	s.clamp()
}

// MoveDown moves the ship one step down, stopping at the bottom edge.
func (s *Ship) MoveDown() {
	s.Y += s.speed
	s.clamp()
}

func (s *Ship) clamp() {
	r := s.Bounds().ClampInto(s.screenW, s.screenH)
	s.X, s.Y = r.X, r.Y
}

// Draw blits the ship sprite.
func (s *Ship) Draw(c core.Canvas) {
	c.Blit(core.SpriteShip, s.Bounds())
}

func (s *Ship) String() string {
	return fmt.Sprintf("Starship (%d, %d)", s.X, s.Y)
}
