package game

import (
	"image"
	"image/color"
	"io"

	"github.com/charmbracelet/log"

	"chosenoffset.com/flapgo/internal/assets"
	"chosenoffset.com/flapgo/internal/config"
	"chosenoffset.com/flapgo/internal/render"
)

// The tests run the core loop against in-memory fakes so they never
// touch a real graphics backend.

func init() {
	render.NewGeoM = func() render.GeoM { return &fakeGeoM{} }
}

type fakeGeoM struct {
	tx, ty float64
}

func (g *fakeGeoM) Translate(tx, ty float64) {
	g.tx += tx
	g.ty += ty
}

func (g *fakeGeoM) Reset() {
	g.tx, g.ty = 0, 0
}

// blitCall records one DrawImage call on a fake image.
type blitCall struct {
	src  render.Image
	x, y float64
}

type fakeImage struct {
	width, height int
	blits         []blitCall
}

func (f *fakeImage) Size() (int, int)     { return f.width, f.height }
func (f *fakeImage) Fill(clr color.Color) {}
func (f *fakeImage) Clear()               {}
func (f *fakeImage) Dispose()             {}

func (f *fakeImage) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	call := blitCall{src: src}
	if opts != nil && opts.GeoM != nil {
		geoM := opts.GeoM.(*fakeGeoM)
		call.x, call.y = geoM.tx, geoM.ty
	}
	f.blits = append(f.blits, call)
}

type fakeRenderer struct {
	texts []string
}

func (f *fakeRenderer) NewImage(width, height int) render.Image {
	return &fakeImage{width: width, height: height}
}

func (f *fakeRenderer) DrawText(dst render.Image, text string, x, y int, clr color.Color) {
	f.texts = append(f.texts, text)
}

// opaqueMask returns a fully opaque mask. A 20x40 mask yields ten
// colliders centered at x 9.5 with radius 9.5, the first at y 4.
func opaqueMask(width, height int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.NRGBA{R: 255, A: 255})
		}
	}
	return img
}

// testBundle builds a sprite bundle out of fakes.
func testBundle(screenWidth int) *assets.Bundle {
	obstacle := assets.ObstacleAsset{
		Image: &fakeImage{width: 20, height: 40},
		Mask:  opaqueMask(20, 40),
	}
	return &assets.Bundle{
		Background: &fakeImage{width: screenWidth, height: 480},
		PlayerFrames: []render.Image{
			&fakeImage{width: 88, height: 73},
			&fakeImage{width: 88, height: 73},
			&fakeImage{width: 88, height: 73},
		},
		Obstacles: map[config.ObstacleType]assets.ObstacleAsset{
			config.ObstacleRock: obstacle,
			config.ObstacleIce:  obstacle,
		},
	}
}

// discardLogger returns a logger that drops everything.
func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

// newTestGame builds a game over fakes with logging discarded.
func newTestGame(cfg config.Config) (*Game, *fakeRenderer) {
	renderer := &fakeRenderer{}
	return New(cfg, testBundle(cfg.Screen.Width), renderer, discardLogger()), renderer
}
