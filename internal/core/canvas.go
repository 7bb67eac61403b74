package core

// Sprite identifies a visual asset. Front ends decide what it looks like:
// a scaled PNG in a window, a block of glyphs in a terminal.
type Sprite int

const (
	SpriteShip Sprite = iota
	SpriteMeteor
)

// String returns the sprite name.
func (s Sprite) String() string {
	switch s {
	case SpriteShip:
		return "ship"
	case SpriteMeteor:
		return "meteor"
	default:
		return "unknown"
	}
}

// FontSize selects one of the two text sizes the game uses.
type FontSize int

const (
	FontScore   FontSize = iota // Live score overlay (30pt)
	FontMessage                 // End-of-game message (48pt)
)

// Points returns the nominal point size.
func (f FontSize) Points() float64 {
	if f == FontMessage {
		return 48
	}
	return 30
}

// Canvas is the drawing surface games render to. All coordinates are in
// world units (the game's logical screen), not terminal cells or pixels.
type Canvas interface {
	// Fill paints the whole surface.
	Fill(c Color)
	// Blit draws a sprite into the given bounding box.
	Blit(s Sprite, r Rect)
	// Text draws a string with its top-left corner at (x, y).
	// A ColorDefault background is transparent.
	Text(x, y int, size FontSize, text string, fg, bg Color)
	// TextCentered draws a string centered on (cx, cy).
	TextCentered(cx, cy int, size FontSize, text string, fg, bg Color)
}

type opKind int

const (
	opFill opKind = iota
	opBlit
	opText
	opTextCentered
)

// DrawOp is one recorded drawing command.
type DrawOp struct {
	kind   opKind
	Color  Color
	Sprite Sprite
	Rect   Rect
	X, Y   int
	Size   FontSize
	Text   string
	Bg     Color
}

// DisplayList records drawing commands in order so a frame built during a
// simulation tick can be presented later, as many times as the front end needs.
type DisplayList struct {
	ops []DrawOp
}

// Reset drops all recorded commands, keeping the backing storage.
func (d *DisplayList) Reset() {
	d.ops = d.ops[:0]
}

// Len returns the number of recorded commands.
func (d *DisplayList) Len() int {
	return len(d.ops)
}

// Ops returns the recorded commands in draw order.
func (d *DisplayList) Ops() []DrawOp {
	return d.ops
}

func (d *DisplayList) Fill(c Color) {
	d.ops = append(d.ops, DrawOp{kind: opFill, Color: c})
}

func (d *DisplayList) Blit(s Sprite, r Rect) {
	d.ops = append(d.ops, DrawOp{kind: opBlit, Sprite: s, Rect: r})
}

func (d *DisplayList) Text(x, y int, size FontSize, text string, fg, bg Color) {
	d.ops = append(d.ops, DrawOp{kind: opText, X: x, Y: y, Size: size, Text: text, Color: fg, Bg: bg})
}

func (d *DisplayList) TextCentered(cx, cy int, size FontSize, text string, fg, bg Color) {
	d.ops = append(d.ops, DrawOp{kind: opTextCentered, X: cx, Y: cy, Size: size, Text: text, Color: fg, Bg: bg})
}

// Replay draws every recorded command onto dst in order.
func (d *DisplayList) Replay(dst Canvas) {
	for _, op := range d.ops {
		switch op.kind {
		case opFill:
			dst.Fill(op.Color)
		case opBlit:
			dst.Blit(op.Sprite, op.Rect)
		case opText:
			dst.Text(op.X, op.Y, op.Size, op.Text, op.Color, op.Bg)
		case opTextCentered:
			dst.TextCentered(op.X, op.Y, op.Size, op.Text, op.Color, op.Bg)
		}
	}
}

// IsFill reports whether the op is a full-surface fill.
func (op DrawOp) IsFill() bool { return op.kind == opFill }

// IsBlit reports whether the op draws a sprite.
func (op DrawOp) IsBlit() bool { return op.kind == opBlit }

// IsText reports whether the op draws text (positioned or centered).
func (op DrawOp) IsText() bool { return op.kind == opText || op.kind == opTextCentered }
