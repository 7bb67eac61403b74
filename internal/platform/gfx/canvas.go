// Package gfx is the graphical window front end, built on Ebitengine.
package gfx

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/meteor-dodge/internal/assets"
	"github.com/vovakirdan/meteor-dodge/internal/core"
)

// palette maps core colors to RGBA.
var palette = map[core.Color]color.RGBA{
	core.ColorBlack:  colornames.Black,
	core.ColorWhite:  colornames.White,
	core.ColorBlue:   colornames.Blue,
	core.ColorRed:    colornames.Red,
	core.ColorYellow: colornames.Yellow,
	core.ColorCyan:   colornames.Cyan,
	core.ColorOrange: colornames.Orange,
	core.ColorGray:   colornames.Gray,
}

// RGBA returns the window color for c and false for ColorDefault.
func RGBA(c core.Color) (color.RGBA, bool) {
	rgba, ok := palette[c]
	return rgba, ok
}

// Canvas draws the game's frame onto an Ebitengine image in world pixels.
type Canvas struct {
	dst     *ebiten.Image
	sprites map[core.Sprite]*ebiten.Image
	faces   map[core.FontSize]*text.GoTextFace
}

// NewCanvas uploads the sprites and prepares the two font sizes.
func NewCanvas(sprites assets.Sprites) (*Canvas, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("gfx: cannot load font: %w", err)
	}

	return &Canvas{
		sprites: map[core.Sprite]*ebiten.Image{
			core.SpriteShip:   ebiten.NewImageFromImage(sprites.Ship),
			core.SpriteMeteor: ebiten.NewImageFromImage(sprites.Meteor),
		},
		faces: map[core.FontSize]*text.GoTextFace{
			core.FontScore:   {Source: src, Size: core.FontScore.Points()},
			core.FontMessage: {Source: src, Size: core.FontMessage.Points()},
		},
	}, nil
}

// On targets the canvas at dst for the next frame.
func (c *Canvas) On(dst *ebiten.Image) *Canvas {
	c.dst = dst
	return c
}

func (c *Canvas) Fill(col core.Color) {
	if rgba, ok := RGBA(col); ok {
		c.dst.Fill(rgba)
	}
}

func (c *Canvas) Blit(s core.Sprite, r core.Rect) {
	img, ok := c.sprites[s]
	if !ok {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(r.X), float64(r.Y))
	c.dst.DrawImage(img, op)
}

func (c *Canvas) Text(x, y int, size core.FontSize, s string, fg, bg core.Color) {
	c.drawText(float64(x), float64(y), size, s, fg, bg, text.AlignStart)
}

func (c *Canvas) TextCentered(cx, cy int, size core.FontSize, s string, fg, bg core.Color) {
	c.drawText(float64(cx), float64(cy), size, s, fg, bg, text.AlignCenter)
}

// drawText draws s with its top-left (or center) at x, y, over a
// background box when bg is set.
func (c *Canvas) drawText(x, y float64, size core.FontSize, s string, fg, bg core.Color, align text.Align) {
	face := c.faces[size]
	if face == nil {
		face = c.faces[core.FontScore]
	}

	if rgba, ok := RGBA(bg); ok {
		w, h := text.Measure(s, face, face.Size)
		left, top := x, y
		if align == text.AlignCenter {
			left, top = x-w/2, y-h/2
		}
		vector.DrawFilledRect(c.dst, float32(left), float32(top), float32(w), float32(h), rgba, false)
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = align
	op.SecondaryAlign = align
	op.LineSpacing = face.Size
	if rgba, ok := RGBA(fg); ok {
		op.ColorScale.ScaleWithColor(rgba)
	}
	text.Draw(c.dst, s, face, op)
}
