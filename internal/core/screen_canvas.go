package core

// SpriteStyle describes how a sprite is drawn on a terminal.
type SpriteStyle struct {
	Glyph rune
	Fg    Color
}

// DefaultSpriteStyles are the terminal looks of the game's sprites.
var DefaultSpriteStyles = map[Sprite]SpriteStyle{
	SpriteShip:   {Glyph: '█', Fg: ColorCyan},
	SpriteMeteor: {Glyph: '●', Fg: ColorOrange},
}

// ScreenCanvas draws world-unit commands onto a character Screen, scaling
// the world rectangle to the screen's cell grid.
type ScreenCanvas struct {
	screen *Screen
	worldW int
	worldH int
	styles map[Sprite]SpriteStyle
}

// NewScreenCanvas wraps a screen for a world of worldW x worldH units.
func NewScreenCanvas(s *Screen, worldW, worldH int) *ScreenCanvas {
	return &ScreenCanvas{
		screen: s,
		worldW: Max(1, worldW),
		worldH: Max(1, worldH),
		styles: DefaultSpriteStyles,
	}
}

// cellX converts a world x coordinate to a column.
func (c *ScreenCanvas) cellX(x int) int {
	return x * c.screen.Width() / c.worldW
}

// cellY converts a world y coordinate to a row.
func (c *ScreenCanvas) cellY(y int) int {
	return y * c.screen.Height() / c.worldH
}

// CellRect converts a world rectangle to cells. Anything visible in the world
// covers at least one cell.
func (c *ScreenCanvas) CellRect(r Rect) Rect {
	x0, y0 := c.cellX(r.X), c.cellY(r.Y)
	x1, y1 := c.cellX(r.Right()), c.cellY(r.Bottom())
	return NewRect(x0, y0, Max(1, x1-x0), Max(1, y1-y0))
}

func (c *ScreenCanvas) Fill(col Color) {
	c.screen.FillCell(Cell{Rune: ' ', Bg: col})
}

func (c *ScreenCanvas) Blit(s Sprite, r Rect) {
	style, ok := c.styles[s]
	if !ok {
		style = SpriteStyle{Glyph: '?'}
	}
	cr := c.CellRect(r)
	for y := cr.Y; y < cr.Bottom(); y++ {
		for x := cr.X; x < cr.Right(); x++ {
			bg := c.screen.GetCell(x, y).Bg
			c.screen.SetCell(x, y, Cell{Rune: style.Glyph, Fg: style.Fg, Bg: bg})
		}
	}
}

func (c *ScreenCanvas) Text(x, y int, _ FontSize, text string, fg, bg Color) {
	c.screen.DrawStyledText(c.cellX(x), c.cellY(y), text, fg, bg)
}

// TextCentered draws the text inside a padded box so it stays readable over
// the playfield.
func (c *ScreenCanvas) TextCentered(cx, cy int, size FontSize, text string, fg, bg Color) {
	n := len([]rune(text))
	row := c.cellY(cy)
	col := c.cellX(cx) - n/2

	if size == FontMessage {
		box := NewRect(col-2, row-1, n+4, 3)
		boxBg := bg
		if boxBg == ColorDefault {
			boxBg = c.screen.GetCell(col, row).Bg
		}
		c.screen.FillRect(box, Cell{Rune: ' ', Bg: boxBg})
		c.screen.DrawBox(box, fg, boxBg)
	}
	c.screen.DrawStyledText(col, row, text, fg, bg)
}
