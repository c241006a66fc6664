// Package assets loads the game's sprite set and can generate a
// placeholder version of it from scratch, so the game runs without any
// hand-drawn art.
package assets

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
)

// Sprite dimensions in pixels.
const (
	BackgroundWidth  = 800
	BackgroundHeight = 480
	PlaneWidth       = 88
	PlaneHeight      = 73
	ObstacleWidth    = 108
	ObstacleHeight   = 239
)

// Palette defines the colors used by the placeholder sprites.
var Palette = struct {
	SkyTop       color.NRGBA
	SkyBottom    color.NRGBA
	Ground       color.NRGBA
	PlaneBody    color.NRGBA
	PlaneWing    color.NRGBA
	PlaneBlade   color.NRGBA
	RockStone    color.NRGBA
	RockGrass    color.NRGBA
	IceBody      color.NRGBA
	IceHighlight color.NRGBA
}{
	SkyTop:       color.NRGBA{90, 150, 220, 255},
	SkyBottom:    color.NRGBA{160, 210, 240, 255},
	Ground:       color.NRGBA{90, 160, 70, 255},
	PlaneBody:    color.NRGBA{210, 60, 50, 255},
	PlaneWing:    color.NRGBA{160, 40, 35, 255},
	PlaneBlade:   color.NRGBA{70, 70, 75, 255},
	RockStone:    color.NRGBA{130, 120, 110, 255},
	RockGrass:    color.NRGBA{100, 170, 70, 255},
	IceBody:      color.NRGBA{190, 225, 245, 255},
	IceHighlight: color.NRGBA{230, 245, 255, 255},
}

// CreateBackground creates the fully opaque scrolling background tile: a
// vertical sky gradient over a ground strip.
func CreateBackground() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, BackgroundWidth, BackgroundHeight))

	groundTop := BackgroundHeight - 60
	for y := 0; y < BackgroundHeight; y++ {
		var clr color.NRGBA
		if y >= groundTop {
			clr = Palette.Ground
		} else {
			clr = lerpColor(Palette.SkyTop, Palette.SkyBottom, float64(y)/float64(groundTop))
		}
		for x := 0; x < BackgroundWidth; x++ {
			img.SetNRGBA(x, y, clr)
		}
	}

	return img
}

// CreatePlaneFrame creates one frame of the plane animation on a
// transparent background. Frames differ in propeller blade length so the
// animation reads as a spinning propeller.
func CreatePlaneFrame(frame, frameCount int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, PlaneWidth, PlaneHeight))

	// Fuselage and tail fin.
	fillEllipse(img, 40, 42, 30, 16, Palette.PlaneBody)
	fillRect(img, 8, 20, 20, 44, Palette.PlaneBody)

	// Wing over the fuselage.
	fillEllipse(img, 42, 50, 13, 6, Palette.PlaneWing)

	// Propeller blade at the nose; its half-length cycles per frame.
	halfLen := 4 + 14*(frameCount-1-frame%frameCount)/frameCount
	fillRect(img, 72, 42-halfLen, 76, 42+halfLen, Palette.PlaneBlade)

	return img
}

// CreateRock creates the ground obstacle: a grass-topped spire that
// widens toward the bottom of the sprite, transparent elsewhere.
func CreateRock() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, ObstacleWidth, ObstacleHeight))

	center := ObstacleWidth / 2
	for y := 0; y < ObstacleHeight; y++ {
		half := 8 + (center-2-8)*y/(ObstacleHeight-1)
		clr := Palette.RockStone
		if y < 14 {
			clr = Palette.RockGrass
		}
		for x := center - half; x <= center+half; x++ {
			img.SetNRGBA(x, y, clr)
		}
	}

	return img
}

// CreateIce creates the ceiling obstacle: an icicle that hangs from the
// top of the sprite and narrows toward its tip.
func CreateIce() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, ObstacleWidth, ObstacleHeight))

	center := ObstacleWidth / 2
	for y := 0; y < ObstacleHeight; y++ {
		half := center - 2 - (center-2-4)*y/(ObstacleHeight-1)
		for x := center - half; x <= center+half; x++ {
			clr := Palette.IceBody
			if x < center-half/2 {
				clr = Palette.IceHighlight
			}
			img.SetNRGBA(x, y, clr)
		}
	}

	return img
}

// SavePNG saves an image as a PNG file.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}

// Generate writes the full placeholder sprite set into dir, creating the
// directory if needed.
func Generate(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create asset directory %s: %w", dir, err)
	}

	sprites := map[string]image.Image{
		backgroundFile: CreateBackground(),
		rockFile:       CreateRock(),
		iceFile:        CreateIce(),
	}
	for i := 0; i < planeFrameCount; i++ {
		sprites[planeFrameFile(i)] = CreatePlaneFrame(i, planeFrameCount)
	}

	for name, img := range sprites {
		if err := SavePNG(img, filepath.Join(dir, name)); err != nil {
			return err
		}
	}

	return nil
}

// lerpColor linearly interpolates between two colors.
func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.NRGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 255}
}

// fillRect fills the rectangle [x0,x1)x[y0,y1) with a color.
func fillRect(img *image.NRGBA, x0, y0, x1, y1 int, clr color.NRGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetNRGBA(x, y, clr)
		}
	}
}

// fillEllipse fills an axis-aligned ellipse centered at (cx, cy).
func fillEllipse(img *image.NRGBA, cx, cy, rx, ry int, clr color.NRGBA) {
	for y := cy - ry; y <= cy+ry; y++ {
		for x := cx - rx; x <= cx+rx; x++ {
			dx := float64(x-cx) / float64(rx)
			dy := float64(y-cy) / float64(ry)
			if dx*dx+dy*dy <= 1 {
				img.SetNRGBA(x, y, clr)
			}
		}
	}
}
