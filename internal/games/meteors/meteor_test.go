package meteors

import (
	"testing"

	"github.com/vovakirdan/meteor-dodge/internal/config"
	"github.com/vovakirdan/meteor-dodge/internal/core"
)

func TestMeteorAdvanceWraps(t *testing.T) {
	m := &Meteor{
		Entity:   Entity{X: 42, Y: 10, W: 30, H: 30},
		Speed:    5,
		reentryY: 5,
		screenH:  800,
	}

	// 10 + 5*158 = 800: still on screen (wrap only once y exceeds the height)
	for i := 0; i < 158; i++ {
		m.Advance()
	}
	if m.Y != 800 {
		t.Fatalf("after 158 advances y = %d, expected 800", m.Y)
	}

	m.Advance()
	if m.Y != 5 {
		t.Errorf("after passing the bottom y = %d, expected re-entry at 5", m.Y)
	}
	if m.X != 42 {
		t.Errorf("x changed to %d; meteors never move sideways", m.X)
	}

	m.Advance()
	if m.Y != 10 {
		t.Errorf("falling should resume from re-entry, y = %d", m.Y)
	}
}

func TestMeteorNeverUnbounded(t *testing.T) {
	for speed := 0; speed <= 5; speed++ {
		m := &Meteor{Entity: Entity{Y: 10, W: 30, H: 30}, Speed: speed, reentryY: 5, screenH: 800}
		for i := 0; i < 10000; i++ {
			m.Advance()
			if m.Y < 0 || m.Y > 800 {
				t.Fatalf("speed %d: y = %d out of range after %d advances", speed, m.Y, i+1)
			}
		}
	}
}

func TestStationaryMeteor(t *testing.T) {
	m := &Meteor{Entity: Entity{X: 1, Y: 10, W: 30, H: 30}, Speed: 0, reentryY: 5, screenH: 800}
	for i := 0; i < 100; i++ {
		m.Advance()
	}
	if m.Y != 10 {
		t.Errorf("speed-0 meteor moved to y = %d", m.Y)
	}
}

func TestFieldSpawnRanges(t *testing.T) {
	cfg := config.DefaultMeteorsConfig()
	f := NewField(99, &cfg)

	if f.Len() != 8 {
		t.Fatalf("new field has %d meteors, expected 8", f.Len())
	}

	for i := 0; i < 2000; i++ {
		f.Spawn()
	}
	sawZero := false
	for _, m := range f.Meteors() {
		if m.X < 0 || m.X > cfg.Screen.Width {
			t.Errorf("spawn x = %d outside [0, %d]", m.X, cfg.Screen.Width)
		}
		if m.Speed < 0 || m.Speed > cfg.Meteors.MaxSpeed {
			t.Errorf("speed %d outside [0, %d]", m.Speed, cfg.Meteors.MaxSpeed)
		}
		if m.Y != cfg.Meteors.InitialY {
			t.Errorf("spawn y = %d, expected %d", m.Y, cfg.Meteors.InitialY)
		}
		if m.W != 30 || m.H != 30 {
			t.Errorf("meteor size %dx%d, expected 30x30", m.W, m.H)
		}
		if m.Speed == 0 {
			sawZero = true
		}
	}
	if !sawZero {
		t.Error("speed 0 should be drawable")
	}
}

func TestFieldDeterministic(t *testing.T) {
	cfg := config.DefaultMeteorsConfig()
	a := NewField(12345, &cfg)
	b := NewField(12345, &cfg)

	for i := 0; i < 20; i++ {
		a.Spawn()
		b.Spawn()
	}
	for i := range a.Meteors() {
		ma, mb := a.Meteors()[i], b.Meteors()[i]
		if ma.X != mb.X || ma.Speed != mb.Speed {
			t.Fatalf("meteor %d differs: %v/%d vs %v/%d", i, ma, ma.Speed, mb, mb.Speed)
		}
	}
}

func TestFieldRecyclesWhenCapped(t *testing.T) {
	cfg := config.DefaultMeteorsConfig()
	cfg.Meteors.MaxCount = 10
	f := NewField(1, &cfg)

	first := f.Meteors()[0]
	for i := 0; i < 2; i++ {
		f.Spawn()
	}
	if f.Len() != 10 {
		t.Fatalf("Len() = %d, expected 10", f.Len())
	}

	replacement := f.Spawn()
	if f.Len() != 10 {
		t.Errorf("capped field grew to %d", f.Len())
	}
	if f.Meteors()[0] == first || f.Meteors()[0] != replacement {
		t.Error("the oldest meteor should be replaced first")
	}

	for i := 0; i < 500; i++ {
		f.Spawn()
	}
	if f.Len() != 10 {
		t.Errorf("capped field grew to %d after many spawns", f.Len())
	}
}

func TestFieldCollision(t *testing.T) {
	cfg := config.DefaultMeteorsConfig()
	cfg.Meteors.InitialCount = 0
	f := NewField(1, &cfg)

	ship := core.NewRect(100, 100, 100, 100)
	if f.CheckCollision(ship) {
		t.Fatal("empty field should never collide")
	}

	f.meteors = append(f.meteors,
		&Meteor{Entity: Entity{X: 500, Y: 500, W: 30, H: 30}},
		&Meteor{Entity: Entity{X: 190, Y: 190, W: 30, H: 30}},
		&Meteor{Entity: Entity{X: 150, Y: 150, W: 30, H: 30}},
	)

	hit, ok := f.FirstHit(ship)
	if !ok {
		t.Fatal("expected a collision")
	}
	if hit != f.meteors[1] {
		t.Errorf("FirstHit should return the first overlapping meteor in collection order")
	}

	// Touching edges do not overlap
	edge := core.NewRect(530, 400, 50, 100)
	if f.CheckCollision(edge) {
		t.Error("touching boxes should not collide")
	}
}
