package game

import (
	"chosenoffset.com/flapgo/internal/assets"
	"chosenoffset.com/flapgo/internal/collider"
	"chosenoffset.com/flapgo/internal/config"
	"chosenoffset.com/flapgo/internal/render"
)

// Obstacle is a static entity. It has no behavior of its own; the game
// controller translates it with the scrolling world. Its collision
// circles are derived from the sprite's alpha mask at construction and
// fixed from then on.
type Obstacle struct {
	x, y      float64
	kind      config.ObstacleType
	image     render.Image
	colliders []collider.Circle
}

// NewObstacle creates an obstacle of the given kind at (x, y) in local
// coordinates.
func NewObstacle(kind config.ObstacleType, asset assets.ObstacleAsset, x, y float64) *Obstacle {
	return &Obstacle{
		x:         x,
		y:         y,
		kind:      kind,
		image:     asset.Image,
		colliders: collider.FromImage(asset.Mask),
	}
}

// Kind returns the obstacle's variant tag.
func (o *Obstacle) Kind() config.ObstacleType {
	return o.kind
}

// X returns the obstacle's horizontal position.
func (o *Obstacle) X() float64 {
	return o.x
}

// Y returns the obstacle's vertical position.
func (o *Obstacle) Y() float64 {
	return o.y
}

// SetX moves the obstacle horizontally.
func (o *Obstacle) SetX(x float64) {
	o.x = x
}

// SetY moves the obstacle vertically.
func (o *Obstacle) SetY(y float64) {
	o.y = y
}

// Colliders returns the mask-derived collision circles in local
// coordinates.
func (o *Obstacle) Colliders() []collider.Circle {
	return o.colliders
}

// Update is a no-op; obstacles are static.
func (o *Obstacle) Update(dt float64) {}

// Draw blits the obstacle sprite at its position.
func (o *Obstacle) Draw(screen render.Image) {
	blit(screen, o.image, o.x, o.y)
}
