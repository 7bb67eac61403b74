package core

import (
	"fmt"
	"strings"
)

// Color represents a color used by the game's drawing commands.
// Front ends map it to ANSI 256-color codes or to RGBA values.
type Color uint8

// Predefined colors. ColorDefault means "terminal default" for foregrounds
// and "transparent" for text backgrounds.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorBlue
	ColorRed
	ColorYellow
	ColorCyan
	ColorOrange
	ColorGray
)

var colorNames = map[Color]string{
	ColorDefault: "default",
	ColorBlack:   "black",
	ColorWhite:   "white",
	ColorBlue:    "blue",
	ColorRed:     "red",
	ColorYellow:  "yellow",
	ColorCyan:    "cyan",
	ColorOrange:  "orange",
	ColorGray:    "gray",
}

// String returns the lower-case color name.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// ParseColor resolves a color name as written in YAML configs.
// An empty name resolves to ColorDefault.
func ParseColor(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "transparent" {
		return ColorDefault, nil
	}
	if name == "grey" {
		return ColorGray, nil
	}
	for c, n := range colorNames {
		if n == name {
			return c, nil
		}
	}
	return ColorDefault, fmt.Errorf("unknown color %q", name)
}
