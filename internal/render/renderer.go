// Package render defines the interfaces between the game logic and the
// rendering/input backend, so the core loop never touches the graphics
// engine directly.
package render

import (
	"image"
	"image/color"
)

// Renderer creates image surfaces and draws auxiliary overlays such as
// HUD text.
type Renderer interface {
	// NewImage creates a new blank image with the given dimensions.
	NewImage(width, height int) Image

	// DrawText draws a line of text at (x, y) on the destination image.
	DrawText(dst Image, text string, x, y int, clr color.Color)
}

// Image represents a renderable surface that can be drawn to or drawn from.
type Image interface {
	// Size returns the width and height of the image in pixels.
	Size() (width, height int)

	// Fill fills the entire image with the given color.
	Fill(clr color.Color)

	// Clear clears the image to transparent.
	Clear()

	// DrawImage blits the source image onto this image.
	DrawImage(src Image, opts *DrawImageOptions)

	// Dispose releases the image resources.
	Dispose()
}

// DrawImageOptions contains options for drawing an image.
type DrawImageOptions struct {
	GeoM GeoM
}

// GeoM represents a geometric transformation matrix applied to a blit.
type GeoM interface {
	// Translate shifts the image by (tx, ty).
	Translate(tx, ty float64)

	// Reset resets the matrix to identity.
	Reset()
}

// NewGeoM creates a new geometric transformation matrix.
// This is implemented by the specific renderer backend.
var NewGeoM func() GeoM

// Event is a single input event drained from the backend's queue.
// Implementations: EventQuit, EventKeyDown.
type Event interface {
	isEvent()
}

// EventQuit signals that the user asked to close the window.
type EventQuit struct{}

func (EventQuit) isEvent() {}

// EventKeyDown signals that a key went down this frame. Key is the
// lowercase key name, e.g. "space" or "escape".
type EventKeyDown struct {
	Key string
}

func (EventKeyDown) isEvent() {}

// InputSource drains the per-frame batch of input events.
type InputSource interface {
	// PollEvents returns the events queued since the previous call.
	// It never blocks; an empty frame returns an empty batch.
	PollEvents() []Event
}

// ResourceLoader handles loading image resources from disk.
type ResourceLoader interface {
	// LoadImage loads an image from the given path. It returns both the
	// renderable surface and the decoded pixel data, which callers need
	// for CPU-side analysis such as collider derivation.
	LoadImage(path string) (Image, image.Image, error)
}

// Game represents the per-frame callbacks that the engine will invoke.
type Game interface {
	// Update advances the game logic by one tick.
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the
	// logical screen size used for rendering and input coordinates.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// RunGame runs the game loop with the provided game. It blocks until
	// the game ends and returns the error that ended it, if any.
	RunGame(game Game) error
}
