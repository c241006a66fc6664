package game

import (
	"chosenoffset.com/flapgo/internal/render"
)

// Background is the horizontally tiling scroller behind everything else.
// It carries no colliders.
type Background struct {
	image       render.Image
	width       float64
	scrollSpeed float64
	x           float64
}

// NewBackground creates a background scrolling leftward at scrollSpeed
// pixels per second.
func NewBackground(img render.Image, scrollSpeed float64) *Background {
	w, _ := img.Size()
	return &Background{
		image:       img,
		width:       float64(w),
		scrollSpeed: scrollSpeed,
	}
}

// X returns the current offset of the tile's left edge, always in
// (-width, 0].
func (b *Background) X() float64 {
	return b.x
}

// Update scrolls the tile leftward and wraps it once it has fully left
// the screen, so the loop is seamless.
func (b *Background) Update(dt float64) {
	b.x -= b.scrollSpeed * dt
	for b.x <= -b.width {
		b.x += b.width
	}
}

// Draw blits the tile twice, at x and x+width, covering the viewport
// without a gap.
func (b *Background) Draw(screen render.Image) {
	blit(screen, b.image, b.x, 0)
	blit(screen, b.image, b.x+b.width, 0)
}
