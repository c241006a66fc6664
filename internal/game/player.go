package game

import (
	"chosenoffset.com/flapgo/internal/collider"
	"chosenoffset.com/flapgo/internal/config"
	"chosenoffset.com/flapgo/internal/render"
)

// playerCollider is the player's fixed collision circle in sprite-local
// coordinates, tuned to the plane silhouette.
var playerCollider = collider.Circle{X: 44, Y: 36, R: 44}

// Player is the player-controlled plane: an animated sprite with
// vertical-velocity physics and a single collision circle.
type Player struct {
	x, y     float64
	velocity float64

	frames    []render.Image
	frame     int
	timeAcc   float64
	frameTime float64

	gravity      float64
	gravityScale float64
	boost        float64

	// world caches the collider translated to the player's position; the
	// position setters keep it in sync.
	world collider.Circle
}

// NewPlayer creates the player at the origin with zero vertical velocity.
func NewPlayer(frames []render.Image, physics config.PhysicsConfig, anim config.AnimationConfig) *Player {
	return &Player{
		frames:       frames,
		frameTime:    anim.FrameTime(),
		gravity:      physics.Gravity,
		gravityScale: physics.GravityScale,
		boost:        physics.BoostImpulse,
		world:        playerCollider,
	}
}

// X returns the player's horizontal position.
func (p *Player) X() float64 {
	return p.x
}

// Y returns the player's vertical position.
func (p *Player) Y() float64 {
	return p.y
}

// SetX moves the player horizontally and refreshes the cached
// world-space collider.
func (p *Player) SetX(x float64) {
	p.x = x
	p.world.X = playerCollider.X + x
}

// SetY moves the player vertically and refreshes the cached world-space
// collider.
func (p *Player) SetY(y float64) {
	p.y = y
	p.world.Y = playerCollider.Y + y
}

// Colliders returns the player's collision circle in local coordinates.
func (p *Player) Colliders() []collider.Circle {
	return []collider.Circle{playerCollider}
}

// WorldCollider returns the player's collision circle translated to its
// current position.
func (p *Player) WorldCollider() collider.Circle {
	return p.world
}

// BoostUp applies an instantaneous upward impulse.
func (p *Player) BoostUp() {
	p.velocity -= p.boost
}

// Update applies gravity, integrates the vertical position, and advances
// the cyclic frame animation. The animation accumulator is drained in
// fixed frame-time steps, so a large dt advances several frames at once.
func (p *Player) Update(dt float64) {
	p.timeAcc += dt
	p.velocity += p.gravity * dt * p.gravityScale
	p.SetY(p.y + p.velocity*dt)

	for p.timeAcc >= p.frameTime {
		p.timeAcc -= p.frameTime
		p.frame = (p.frame + 1) % len(p.frames)
	}
}

// Draw blits the current animation frame at the player's position.
func (p *Player) Draw(screen render.Image) {
	blit(screen, p.frames[p.frame], p.x, p.y)
}
