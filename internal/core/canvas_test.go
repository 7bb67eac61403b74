package core

import "testing"

func TestDisplayListReplayOrder(t *testing.T) {
	var d DisplayList
	d.Fill(ColorBlack)
	d.Blit(SpriteShip, NewRect(1, 2, 3, 4))
	d.Text(30, 30, FontScore, "Score: 0", ColorBlue, ColorDefault)
	d.TextCentered(60, 40, FontMessage, "bye", ColorBlue, ColorWhite)

	var got DisplayList
	d.Replay(&got)

	if got.Len() != 4 {
		t.Fatalf("Replay recorded %d ops, expected 4", got.Len())
	}
	ops := got.Ops()
	if !ops[0].IsFill() || ops[0].Color != ColorBlack {
		t.Errorf("op 0 = %+v, expected black fill", ops[0])
	}
	if !ops[1].IsBlit() || ops[1].Sprite != SpriteShip || ops[1].Rect != NewRect(1, 2, 3, 4) {
		t.Errorf("op 1 = %+v, expected ship blit", ops[1])
	}
	if !ops[2].IsText() || ops[2].Text != "Score: 0" {
		t.Errorf("op 2 = %+v, expected score text", ops[2])
	}
	if !ops[3].IsText() || ops[3].Size != FontMessage || ops[3].Bg != ColorWhite {
		t.Errorf("op 3 = %+v, expected centered message", ops[3])
	}

	d.Reset()
	if d.Len() != 0 {
		t.Errorf("Reset should drop ops, got %d", d.Len())
	}
}

func TestScreenCanvasScaling(t *testing.T) {
	s := NewScreen(120, 40)
	c := NewScreenCanvas(s, 1200, 800)

	tests := []struct {
		name     string
		in       Rect
		expected Rect
	}{
		{"ship", NewRect(600, 700, 100, 100), NewRect(60, 35, 10, 5)},
		{"meteor", NewRect(0, 10, 30, 30), NewRect(0, 0, 3, 2)},
		{"tiny keeps one cell", NewRect(5, 5, 1, 1), NewRect(0, 0, 1, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := c.CellRect(tc.in)
			if got != tc.expected {
				t.Errorf("CellRect(%+v) = %+v, expected %+v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestScreenCanvasDraw(t *testing.T) {
	s := NewScreen(120, 40)
	c := NewScreenCanvas(s, 1200, 800)

	c.Fill(ColorBlack)
	c.Blit(SpriteMeteor, NewRect(100, 100, 30, 30))

	cell := s.GetCell(10, 5)
	if cell.Rune != DefaultSpriteStyles[SpriteMeteor].Glyph {
		t.Errorf("meteor glyph missing, got %q", cell.Rune)
	}
	if cell.Bg != ColorBlack {
		t.Errorf("blit should keep the background, got %v", cell.Bg)
	}

	c.Text(30, 30, FontScore, "Score: 3", ColorBlue, ColorDefault)
	if s.Row(1)[3:11] != "Score: 3" {
		t.Errorf("score text misplaced, row 1 = %q", s.Row(1))
	}

	c.TextCentered(600, 400, FontMessage, "You've Won!", ColorBlue, ColorWhite)
	row := []rune(s.Row(20))
	if want := "You've Won!"; string(row[55:55+len(want)]) != want {
		t.Errorf("message not centered, row 20 = %q", string(row))
	}
	if s.GetCell(60, 20).Bg != ColorWhite {
		t.Error("message background should be white")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"blue", ColorBlue, false},
		{" White ", ColorWhite, false},
		{"", ColorDefault, false},
		{"transparent", ColorDefault, false},
		{"grey", ColorGray, false},
		{"chartreuse", ColorDefault, true},
	}

	for _, tc := range tests {
		got, err := ParseColor(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseColor(%q) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame(ActionLeft, ActionNone, ActionLeft, ActionUp)

	if f.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3 (ActionNone dropped)", f.Len())
	}
	want := []Action{ActionLeft, ActionLeft, ActionUp}
	for i, a := range f.Actions() {
		if a != want[i] {
			t.Errorf("Actions()[%d] = %v, expected %v", i, a, want[i])
		}
	}
	if !f.Has(ActionUp) || f.Has(ActionQuit) {
		t.Error("Has() mismatch")
	}

	clone := f.Clone()
	f.Clear()
	if f.Len() != 0 {
		t.Error("Clear should empty the frame")
	}
	if clone.Len() != 3 {
		t.Error("Clone should be independent of the original")
	}
}

func TestOutcomeRanked(t *testing.T) {
	tests := []struct {
		o      Outcome
		name   string
		ranked bool
	}{
		{OutcomeNone, "running", false},
		{OutcomeWon, "won", true},
		{OutcomeLost, "lost", true},
		{OutcomeQuit, "quit", false},
	}
	for _, tt := range tests {
		if got := tt.o.String(); got != tt.name {
			t.Errorf("String() = %q, expected %q", got, tt.name)
		}
		if got := tt.o.Ranked(); got != tt.ranked {
			t.Errorf("%s.Ranked() = %v, expected %v", tt.name, got, tt.ranked)
		}
	}
}
