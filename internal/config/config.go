// Package config provides YAML-based game configuration with embedded
// defaults and validation.
package config

import "fmt"

// Config holds all tunables and level data for a game session.
type Config struct {
	Screen      ScreenConfig    `yaml:"screen"`
	Physics     PhysicsConfig   `yaml:"physics"`
	Animation   AnimationConfig `yaml:"animation"`
	ScrollSpeed float64         `yaml:"scroll_speed"`
	AssetDir    string          `yaml:"asset_dir"`
	Obstacles   []ObstacleSpec  `yaml:"obstacles"`
}

// ScreenConfig defines the window geometry and caption.
type ScreenConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PhysicsConfig defines the player's vertical physics.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`       // acceleration in m/s^2
	GravityScale float64 `yaml:"gravity_scale"` // world-units-per-meter scale factor
	BoostImpulse float64 `yaml:"boost_impulse"` // instantaneous upward velocity change
}

// AnimationConfig defines the player sprite animation.
type AnimationConfig struct {
	DurationMs float64 `yaml:"duration_ms"` // full-cycle duration in milliseconds
	FrameCount int     `yaml:"frame_count"`
}

// FrameTime returns the duration of a single animation frame in seconds.
func (a AnimationConfig) FrameTime() float64 {
	return a.DurationMs / float64(a.FrameCount) / 1000.0
}

// ObstacleType identifies an obstacle variant and its sprite.
type ObstacleType string

// Known obstacle types.
const (
	ObstacleRock ObstacleType = "rock"
	ObstacleIce  ObstacleType = "ice"
)

// ObstacleSpec places one obstacle in the world. The spec list is static
// level data; it is never mutated at runtime.
type ObstacleSpec struct {
	ID       int          `yaml:"id"`
	Type     ObstacleType `yaml:"type"`
	Position Position     `yaml:"position"`
}

// Position is a point in world pixels.
type Position struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Default returns the compiled-in configuration.
func Default() Config {
	return Config{
		Screen: ScreenConfig{
			Width:  800,
			Height: 480,
			Title:  "FlapGo",
		},
		Physics: PhysicsConfig{
			Gravity:      9.81,
			GravityScale: 10,
			BoostImpulse: 50,
		},
		Animation: AnimationConfig{
			DurationMs: 50,
			FrameCount: 3,
		},
		ScrollSpeed: 100,
		AssetDir:    "data",
		Obstacles: []ObstacleSpec{
			{ID: 0, Type: ObstacleRock, Position: Position{X: 400, Y: 241}},
			{ID: 3, Type: ObstacleIce, Position: Position{X: 700, Y: 0}},
			{ID: 1, Type: ObstacleRock, Position: Position{X: 1910, Y: 241}},
			{ID: 2, Type: ObstacleRock, Position: Position{X: 2200, Y: 300}},
		},
	}
}

// Validate checks the configuration for values the game cannot run with.
// Duplicate obstacle ids are rejected so the live-entity mapping keyed by
// id stays unambiguous.
func (c Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.ScrollSpeed <= 0 {
		return fmt.Errorf("scroll speed must be positive, got %v", c.ScrollSpeed)
	}
	if c.Animation.FrameCount < 1 {
		return fmt.Errorf("animation frame count must be at least 1, got %d", c.Animation.FrameCount)
	}
	if c.Animation.DurationMs <= 0 {
		return fmt.Errorf("animation duration must be positive, got %v", c.Animation.DurationMs)
	}
	if c.AssetDir == "" {
		return fmt.Errorf("asset directory must not be empty")
	}

	seen := make(map[int]bool, len(c.Obstacles))
	for _, spec := range c.Obstacles {
		if seen[spec.ID] {
			return fmt.Errorf("duplicate obstacle id %d", spec.ID)
		}
		seen[spec.ID] = true

		switch spec.Type {
		case ObstacleRock, ObstacleIce:
		default:
			return fmt.Errorf("unknown obstacle type %q for obstacle id %d", spec.Type, spec.ID)
		}
	}

	return nil
}
