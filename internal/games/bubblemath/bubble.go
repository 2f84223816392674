// Package bubblemath implements the Bubble Math game: an equation is shown,
// answer bubbles drift upward, and the player must pop the correct one
// before it escapes off the top of the screen.
package bubblemath

import "github.com/vovakirdan/bubble-math/internal/core"

// BubbleState is the lifecycle state of a bubble. Popped and Escaped are
// terminal; only Live bubbles are advanced by the physics tick.
type BubbleState int

const (
	BubbleLive BubbleState = iota
	BubblePopped
	BubbleEscaped
)

// String returns a human-readable name for the state.
func (s BubbleState) String() string {
	switch s {
	case BubbleLive:
		return "Live"
	case BubblePopped:
		return "Popped"
	case BubbleEscaped:
		return "Escaped"
	default:
		return "Unknown"
	}
}

// Bubble is a single floating target carrying one candidate answer.
// Position and velocity are only mutated by the field's tick and collision
// functions; nothing else writes physics state.
type Bubble struct {
	ID         int
	Value      int
	Correct    bool
	Pos        core.Vec2
	Vel        core.Vec2
	Radius     float64
	SpawnOrder int // 0-based seeding order, drives deterministic layout
	State      BubbleState
}

// Contains reports whether the point (x, y) lies inside the bubble.
func (b *Bubble) Contains(x, y float64) bool {
	return core.Vec2{X: x, Y: y}.Sub(b.Pos).Len() <= b.Radius
}

// ColorHint returns the rendering color for this bubble, assigned by spawn
// order. The correct bubble is deliberately not visually distinct.
func (b *Bubble) ColorHint() core.Color {
	return core.BubblePalette[b.SpawnOrder%len(core.BubblePalette)]
}
