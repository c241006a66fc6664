package assets

import (
	"fmt"
	"image"
	"path/filepath"

	"chosenoffset.com/flapgo/internal/config"
	"chosenoffset.com/flapgo/internal/render"
)

// Asset file names inside the asset directory.
const (
	backgroundFile  = "background.png"
	rockFile        = "rockGrass.png"
	iceFile         = "rockIceDown.png"
	planeFrameCount = 3
)

// planeFrameFile returns the file name of one plane animation frame.
func planeFrameFile(i int) string {
	return fmt.Sprintf("planeRed%d.png", i+1)
}

// ObstacleAsset pairs an obstacle's renderable sprite with its decoded
// pixels, which the collider derivation reads.
type ObstacleAsset struct {
	Image render.Image
	Mask  image.Image
}

// Bundle holds every sprite the game draws.
type Bundle struct {
	Background   render.Image
	PlayerFrames []render.Image
	Obstacles    map[config.ObstacleType]ObstacleAsset
}

// Load reads the full sprite set from dir through the resource loader.
// A missing or unreadable asset is fatal to the caller; there is no
// fallback art at runtime.
func Load(loader render.ResourceLoader, dir string) (*Bundle, error) {
	background, _, err := loader.LoadImage(filepath.Join(dir, backgroundFile))
	if err != nil {
		return nil, fmt.Errorf("failed to load background: %w", err)
	}

	frames := make([]render.Image, planeFrameCount)
	for i := range frames {
		frame, _, err := loader.LoadImage(filepath.Join(dir, planeFrameFile(i)))
		if err != nil {
			return nil, fmt.Errorf("failed to load player frame %d: %w", i+1, err)
		}
		frames[i] = frame
	}

	obstacles := make(map[config.ObstacleType]ObstacleAsset)
	for kind, file := range map[config.ObstacleType]string{
		config.ObstacleRock: rockFile,
		config.ObstacleIce:  iceFile,
	} {
		img, mask, err := loader.LoadImage(filepath.Join(dir, file))
		if err != nil {
			return nil, fmt.Errorf("failed to load %s obstacle: %w", kind, err)
		}
		obstacles[kind] = ObstacleAsset{Image: img, Mask: mask}
	}

	return &Bundle{
		Background:   background,
		PlayerFrames: frames,
		Obstacles:    obstacles,
	}, nil
}
