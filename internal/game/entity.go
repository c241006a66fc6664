// Package game implements the core loop of the side-scroller: spawning,
// scrolling, pruning and collision-checking the world's entities.
package game

import (
	"chosenoffset.com/flapgo/internal/collider"
	"chosenoffset.com/flapgo/internal/render"
)

// Entity is anything the game places in the world: it has a position in
// local screen coordinates, a set of collision circles relative to that
// position, and per-frame update and draw behavior.
type Entity interface {
	X() float64
	Y() float64

	// SetX and SetY move the entity and atomically refresh any geometry
	// derived from its position.
	SetX(x float64)
	SetY(y float64)

	// Colliders returns the entity's collision circles in local
	// (sprite-relative) coordinates. An empty list means intangible.
	Colliders() []collider.Circle

	Update(dt float64)
	Draw(screen render.Image)
}

// blit draws src onto dst with its top-left corner at (x, y).
func blit(dst, src render.Image, x, y float64) {
	geoM := render.NewGeoM()
	geoM.Translate(x, y)
	dst.DrawImage(src, &render.DrawImageOptions{GeoM: geoM})
}
