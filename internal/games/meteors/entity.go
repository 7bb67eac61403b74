package meteors

import "github.com/vovakirdan/meteor-dodge/internal/core"

// Positionable is anything with an on-screen bounding box.
type Positionable interface {
	Bounds() core.Rect
}

// Drawable is anything that can draw itself onto a canvas.
type Drawable interface {
	Draw(c core.Canvas)
}

// Entity holds the position and fixed size shared by ships and meteors.
type Entity struct {
	X, Y int // Top-left corner in world units
	W, H int // Fixed at construction
}

// Bounds returns the entity's bounding box.
func (e Entity) Bounds() core.Rect {
	return core.NewRect(e.X, e.Y, e.W, e.H)
}

var (
	_ Positionable = (*Ship)(nil)
	_ Drawable     = (*Ship)(nil)
	_ Positionable = (*Meteor)(nil)
	_ Drawable     = (*Meteor)(nil)
)
