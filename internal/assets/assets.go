// Package assets loads the game's sprite images, either from the copies
// embedded in the binary or from a directory given on the command line.
package assets

import (
	"embed"
	"fmt"
	"image"
	_ "image/png" // Register PNG format
	"io/fs"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/vovakirdan/meteor-dodge/internal/config"
)

//go:embed images/*.png
var embedded embed.FS

// Embedded returns the built-in image files.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "images")
	if err != nil {
		// The directory is part of the binary.
		panic(err)
	}
	return sub
}

// Source returns the filesystem images are read from: dir when set,
// the embedded images otherwise.
func Source(dir string) fs.FS {
	if dir == "" {
		return Embedded()
	}
	return os.DirFS(dir)
}

// LoadSprite decodes an image and scales it to exactly w x h pixels.
func LoadSprite(fsys fs.FS, name string, w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("assets: invalid size %dx%d for %s", w, h, name)
	}

	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot open %s: %w", name, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot decode %s: %w", name, err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst, nil
}

// Sprites holds the scaled images of the ship and a meteor.
type Sprites struct {
	Ship   *image.RGBA
	Meteor *image.RGBA
}

// LoadSprites loads both sprites at the sizes the configuration gives them.
func LoadSprites(cfg *config.MeteorsConfig) (Sprites, error) {
	fsys := Source(cfg.Assets.Dir)

	ship, err := LoadSprite(fsys, cfg.Assets.ShipImage, cfg.Ship.Width, cfg.Ship.Height)
	if err != nil {
		return Sprites{}, err
	}
	meteor, err := LoadSprite(fsys, cfg.Assets.MeteorImage, cfg.Meteors.Width, cfg.Meteors.Height)
	if err != nil {
		return Sprites{}, err
	}
	return Sprites{Ship: ship, Meteor: meteor}, nil
}
