package meteors

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/meteor-dodge/internal/config"
	"github.com/vovakirdan/meteor-dodge/internal/core"
)

// Meteor is a falling obstacle. It only ever moves down its own column and
// re-enters from the top after passing the bottom edge.
type Meteor struct {
	Entity
	Speed    int // Fall per cycle; 0 is a stationary meteor
	reentryY int
	screenH  int
}

// Advance moves the meteor down by its speed, wrapping to the re-entry
// height once it has fallen past the bottom edge.
func (m *Meteor) Advance() {
	m.Y += m.Speed
	if m.Y > m.screenH {
		m.Y = m.reentryY
	}
}

// Draw blits the meteor sprite.
func (m *Meteor) Draw(c core.Canvas) {
	c.Blit(core.SpriteMeteor, m.Bounds())
}

func (m *Meteor) String() string {
	return fmt.Sprintf("Meteor (%d, %d)", m.X, m.Y)
}

// Field owns the meteor collection: spawning, movement, collision and drawing.
type Field struct {
	meteors []*Meteor
	rng     *rand.Rand
	cfg     *config.MeteorsConfig
	oldest  int // Next slot to recycle once MaxCount is reached
}

// NewField creates a field seeded for deterministic spawns and fills it
// with the initial meteors.
func NewField(seed int64, cfg *config.MeteorsConfig) *Field {
	f := &Field{
		meteors: make([]*Meteor, 0, cfg.Meteors.InitialCount+8),
		cfg:     cfg,
	}
	f.Reset(seed)
	return f
}

// Reset clears all meteors, reseeds the RNG and spawns the initial set.
func (f *Field) Reset(seed int64) {
	f.meteors = f.meteors[:0]
	f.oldest = 0
	f.rng = rand.New(rand.NewSource(seed))
	for i := 0; i < f.cfg.Meteors.InitialCount; i++ {
		f.Spawn()
	}
}

// Spawn adds one meteor at a random column with a random speed.
// With MaxCount set and reached, the oldest meteor is replaced instead.
func (f *Field) Spawn() *Meteor {
	mc := f.cfg.Meteors
	m := &Meteor{
		Entity: Entity{
			X: f.rng.Intn(f.cfg.Screen.Width + 1),
			Y: mc.InitialY,
			W: mc.Width,
			H: mc.Height,
		},
		Speed:    f.rng.Intn(mc.MaxSpeed + 1),
		reentryY: mc.ReentryY,
		screenH:  f.cfg.Screen.Height,
	}

	if mc.MaxCount > 0 && len(f.meteors) >= mc.MaxCount {
		f.meteors[f.oldest] = m
		f.oldest = (f.oldest + 1) % len(f.meteors)
		return m
	}
	f.meteors = append(f.meteors, m)
	return m
}

// AdvanceAll moves every meteor one step.
func (f *Field) AdvanceAll() {
	for _, m := range f.meteors {
		m.Advance()
	}
}

// FirstHit returns the first meteor, in collection order, overlapping r.
func (f *Field) FirstHit(r core.Rect) (*Meteor, bool) {
	for _, m := range f.meteors {
		if r.Intersects(m.Bounds()) {
			return m, true
		}
	}
	return nil, false
}

// CheckCollision tests if the given rectangle collides with any meteor.
func (f *Field) CheckCollision(r core.Rect) bool {
	_, hit := f.FirstHit(r)
	return hit
}

// Draw draws every meteor in collection order.
func (f *Field) Draw(c core.Canvas) {
	for _, m := range f.meteors {
		m.Draw(c)
	}
}

// Meteors returns the current collection.
func (f *Field) Meteors() []*Meteor {
	return f.meteors
}

// Len returns the number of meteors.
func (f *Field) Len() int {
	return len(f.meteors)
}
