package bubblemath

import (
	"github.com/vovakirdan/bubble-math/internal/config"
	"github.com/vovakirdan/bubble-math/internal/core"
)

// Field owns the live bubble set and runs the fixed-step physics: lift,
// jitter, damping, Euler integration, wall bounces, pairwise collisions and
// escape detection. All bubble mutation is routed through Tick and Pop, so
// the collision math never observes a half-updated bubble.
type Field struct {
	width  float64
	height float64
	phys   config.PhysicsConfig
	rng    *SimpleRNG

	bubbles []*Bubble
}

// NewField creates an empty field of the given size in cells.
func NewField(width, height int, phys config.PhysicsConfig, rng *SimpleRNG) *Field {
	return &Field{
		width:  float64(width),
		height: float64(height),
		phys:   phys,
		rng:    rng,
	}
}

// Width returns the field width in cells.
func (f *Field) Width() float64 {
	return f.width
}

// Height returns the field height in cells.
func (f *Field) Height() float64 {
	return f.height
}

// Resize updates the field dimensions (terminal resize).
func (f *Field) Resize(width, height int) {
	f.width = float64(width)
	f.height = float64(height)
}

// Seed replaces the entire bubble set. Rounds never share bubbles; each
// round's set is fresh, so identity never survives a round boundary.
func (f *Field) Seed(bubbles []*Bubble) {
	f.bubbles = bubbles
}

// Bubbles returns the bubble slice in spawn order.
func (f *Field) Bubbles() []*Bubble {
	return f.bubbles
}

// bubbleByID returns the bubble with the given id, or nil.
func (f *Field) bubbleByID(id int) *Bubble {
	for _, b := range f.bubbles {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// BubbleAt returns the topmost live bubble containing the point, or nil.
// Later spawns draw on top, so the scan runs in reverse spawn order.
func (f *Field) BubbleAt(x, y float64) *Bubble {
	for i := len(f.bubbles) - 1; i >= 0; i-- {
		b := f.bubbles[i]
		if b.State == BubbleLive && b.Contains(x, y) {
			return b
		}
	}
	return nil
}

// BubbleByOrdinal returns the live bubble with the given 1-based spawn order.
func (f *Field) BubbleByOrdinal(n int) *Bubble {
	for _, b := range f.bubbles {
		if b.SpawnOrder == n-1 && b.State == BubbleLive {
			return b
		}
	}
	return nil
}

// LiveCount returns the number of live bubbles.
func (f *Field) LiveCount() int {
	count := 0
	for _, b := range f.bubbles {
		if b.State == BubbleLive {
			count++
		}
	}
	return count
}

// Tick advances every live bubble by one fixed step, in spawn order, then
// resolves pairwise collisions and escape detection. While locked (the round
// is processing an answer) escape detection is suppressed. Returns the
// events raised this tick.
func (f *Field) Tick(locked bool) []FieldEvent {
	maxSpeed := f.phys.MaxSpeed

	for _, b := range f.bubbles {
		if b.State != BubbleLive {
			continue
		}

		// Constant upward lift plus a small random horizontal wobble
		b.Vel.Y -= f.phys.Lift
		b.Vel.X += (f.rng.Float64()*2 - 1) * f.phys.Jitter

		// Horizontal jitter dies out faster than vertical drift
		b.Vel.X *= f.phys.HorizontalDamping
		b.Vel.Y *= f.phys.VerticalDamping

		// Clamp so accumulated impulses never run away
		b.Vel.X = core.ClampF(b.Vel.X, -maxSpeed, maxSpeed)
		b.Vel.Y = core.ClampF(b.Vel.Y, -maxSpeed, maxSpeed)

		// Explicit Euler is fine here: soft circles at 60 Hz
		b.Pos = b.Pos.Add(b.Vel)

		f.bounceOffWalls(b)
	}

	// O(n²) pair scan; round sizes are bounded by difficulty (≤ 9)
	for i := 0; i < len(f.bubbles); i++ {
		a := f.bubbles[i]
		if a.State != BubbleLive {
			continue
		}
		for j := i + 1; j < len(f.bubbles); j++ {
			b := f.bubbles[j]
			if b.State != BubbleLive {
				continue
			}
			f.resolveCollision(a, b)
		}
	}

	var events []FieldEvent
	if !locked {
		for _, b := range f.bubbles {
			if b.State == BubbleLive && b.Correct && f.hasEscaped(b) {
				// Live -> Escaped is terminal, so this fires exactly once
				b.State = BubbleEscaped
				events = append(events, EscapedEvent{ID: b.ID})
			}
		}
	}

	return events
}

// bounceOffWalls clamps a bubble to the horizontal bounds and inverts its
// horizontal velocity with energy loss.
func (f *Field) bounceOffWalls(b *Bubble) {
	minX := f.phys.WallPadding + b.Radius
	maxX := f.width - f.phys.WallPadding - b.Radius

	if b.Pos.X <= minX {
		b.Pos.X = minX
		b.Vel.X = -b.Vel.X * f.phys.WallBounce
	} else if b.Pos.X >= maxX {
		b.Pos.X = maxX
		b.Vel.X = -b.Vel.X * f.phys.WallBounce
	}
}

// resolveCollision applies an elastic-with-loss impulse between two live
// bubbles and separates any overlap. The restitution is deliberately above
// 1 (game feel); the velocity clamp in Tick bounds the added energy.
func (f *Field) resolveCollision(a, b *Bubble) {
	delta := b.Pos.Sub(a.Pos)
	dist := delta.Len()
	minDist := a.Radius + b.Radius + f.phys.CollisionBuffer

	if dist >= minDist {
		return
	}
	if dist == 0 {
		// Identical centers: no usable normal, skip rather than divide by zero
		return
	}

	normal := delta.Scale(1 / dist)

	// Push both halves of the overlap apart so no overlap survives the tick
	overlap := minDist - dist
	a.Pos = a.Pos.Sub(normal.Scale(overlap / 2))
	b.Pos = b.Pos.Add(normal.Scale(overlap / 2))

	// Skip the impulse if already separating along the normal
	relVel := b.Vel.Sub(a.Vel)
	along := relVel.Dot(normal)
	if along > 0 {
		return
	}

	// Equal masses: equal-and-opposite impulse along the normal
	impulse := -(1 + f.phys.Restitution) * along / 2
	a.Vel = a.Vel.Sub(normal.Scale(impulse))
	b.Vel = b.Vel.Add(normal.Scale(impulse))
}

// hasEscaped reports whether the bubble has drifted fully above the top edge
// plus the configured margin.
func (f *Field) hasEscaped(b *Bubble) bool {
	return b.Pos.Y < -(b.Radius + f.phys.EscapeMargin)
}

// Pop transitions a live bubble to Popped and returns the event. Popping an
// already-popped or escaped bubble is a no-op: that is a UI race
// (double-tap) and is silently absorbed.
func (f *Field) Pop(id int) (PoppedEvent, bool) {
	b := f.bubbleByID(id)
	if b == nil || b.State != BubbleLive {
		return PoppedEvent{}, false
	}
	b.State = BubblePopped
	return PoppedEvent{ID: b.ID, Value: b.Value, Correct: b.Correct}, true
}

// escapeCorrect force-escapes the live correct bubble, used by the round
// time cap. Returns the event and whether a bubble was escaped.
func (f *Field) escapeCorrect() (EscapedEvent, bool) {
	for _, b := range f.bubbles {
		if b.State == BubbleLive && b.Correct {
			b.State = BubbleEscaped
			return EscapedEvent{ID: b.ID}, true
		}
	}
	return EscapedEvent{}, false
}
