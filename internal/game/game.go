package game

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/charmbracelet/log"

	"chosenoffset.com/flapgo/internal/assets"
	"chosenoffset.com/flapgo/internal/config"
	"chosenoffset.com/flapgo/internal/render"
)

// Action is a recognized input action routed into the game.
type Action string

// ActionJump boosts the player upward.
const ActionJump Action = "jump"

// Outcome is the result of advancing the game by one frame.
type Outcome int

const (
	// OutcomeRunning means the session continues.
	OutcomeRunning Outcome = iota
	// OutcomeCollision means the player hit an obstacle and the session
	// is over. It is terminal; the caller decides how to end the run.
	OutcomeCollision
)

// String returns a readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "running"
	case OutcomeCollision:
		return "collision"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Game owns the background, the player, and the live obstacles, and
// drives the spawn/update/prune/collision cycle each frame.
type Game struct {
	width       float64
	scrollSpeed float64

	// distance is the cumulative world displacement since session start.
	// It only grows, which is what makes pruning permanent: a pruned
	// obstacle's world x can never re-enter the spawn window.
	distance float64

	specs          []config.ObstacleSpec
	entities       map[int]Entity
	obstacleAssets map[config.ObstacleType]assets.ObstacleAsset

	background *Background
	player     *Player

	renderer render.Renderer
	logger   *log.Logger
}

// New creates a game session from a validated configuration and a loaded
// sprite bundle.
func New(cfg config.Config, bundle *assets.Bundle, renderer render.Renderer, logger *log.Logger) *Game {
	return &Game{
		width:          float64(cfg.Screen.Width),
		scrollSpeed:    cfg.ScrollSpeed,
		specs:          cfg.Obstacles,
		entities:       make(map[int]Entity),
		obstacleAssets: bundle.Obstacles,
		background:     NewBackground(bundle.Background, cfg.ScrollSpeed),
		player:         NewPlayer(bundle.PlayerFrames, cfg.Physics, cfg.Animation),
		renderer:       renderer,
		logger:         logger,
	}
}

// Update advances the session by dt seconds and reports whether it may
// continue. On a collision the frame stops immediately: neither the
// background nor the player advances past the hit.
func (g *Game) Update(dt float64) Outcome {
	g.distance += dt * g.scrollSpeed

	g.spawnEntities()
	g.updateEntities(dt)
	g.pruneEntities()

	if id, hit := g.checkCollision(); hit {
		g.logger.Info("collided with obstacle", "id", id)
		return OutcomeCollision
	}

	g.background.Update(dt)
	g.player.Update(dt)
	return OutcomeRunning
}

// Draw renders the frame: background, player, obstacles, then the HUD.
func (g *Game) Draw(screen render.Image) {
	g.background.Draw(screen)
	g.player.Draw(screen)
	for _, id := range g.liveIDs() {
		g.entities[id].Draw(screen)
	}
	g.renderer.DrawText(screen, fmt.Sprintf("distance: %.0f", g.distance), 8, 8, color.White)
}

// HandleInput routes a recognized action to the player. Unrecognized
// actions are ignored.
func (g *Game) HandleInput(action Action) {
	switch action {
	case ActionJump:
		g.player.BoostUp()
	}
}

// Distance returns the cumulative world displacement since session start.
func (g *Game) Distance() float64 {
	return g.distance
}

// spawnEntities instantiates every not-yet-live obstacle whose world x
// lies strictly within (distance, distance + 2*width). The local x is the
// world x relative to the distance traveled so far. Re-invocation with an
// unchanged distance is idempotent: live ids are skipped.
func (g *Game) spawnEntities() {
	for _, spec := range g.specs {
		if _, live := g.entities[spec.ID]; live {
			continue
		}

		x := spec.Position.X
		if x <= g.distance || x >= g.distance+2*g.width {
			continue
		}

		asset, ok := g.obstacleAssets[spec.Type]
		if !ok {
			continue
		}

		g.entities[spec.ID] = NewObstacle(spec.Type, asset, x-g.distance, spec.Position.Y)
		g.logger.Info("spawned obstacle", "id", spec.ID, "type", spec.Type)
	}
}

// updateEntities translates every live entity with the scrolling world,
// then lets it run its own per-frame behavior.
func (g *Game) updateEntities(dt float64) {
	for _, id := range g.liveIDs() {
		e := g.entities[id]
		e.SetX(e.X() - g.scrollSpeed*dt)
		e.Update(dt)
	}
}

// pruneEntities removes every live entity that has scrolled a full
// screen width past the left edge. Removal is permanent.
func (g *Game) pruneEntities() {
	for _, id := range g.liveIDs() {
		if g.entities[id].X() < -g.width {
			delete(g.entities, id)
			g.logger.Info("removed obstacle", "id", id)
		}
	}
}

// checkCollision tests the player's collider against every collider of
// every live entity and returns the id of the first hit. The center
// distance must be strictly below the radius sum; touching circles do
// not collide.
func (g *Game) checkCollision() (int, bool) {
	pc := g.player.WorldCollider()

	for _, id := range g.liveIDs() {
		e := g.entities[id]
		for _, c := range e.Colliders() {
			if pc.Intersects(c.Translate(e.X(), e.Y())) {
				return id, true
			}
		}
	}
	return 0, false
}

// liveIDs returns the live entity ids in ascending order, so iteration
// over the mapping, and therefore log output, is deterministic.
func (g *Game) liveIDs() []int {
	ids := make([]int, 0, len(g.entities))
	for id := range g.entities {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
