// Package config provides YAML-based configuration loading, validation and
// difficulty tiers for Bubble Math.
package config

import (
	"fmt"
	"sort"
)

// BubbleMathConfig contains all tunable parameters for the game.
type BubbleMathConfig struct {
	Physics PhysicsConfig         `yaml:"physics"`
	Bubbles BubbleConfig          `yaml:"bubbles"`
	Scoring ScoringConfig         `yaml:"scoring"`
	Session SessionConfig         `yaml:"session"`
	Tiers   map[string]TierConfig `yaml:"tiers"`
}

// PhysicsConfig defines the bubble field physics, in cells and ticks.
type PhysicsConfig struct {
	// Lift is the upward acceleration per tick (applied as negative Y).
	Lift float64 `yaml:"lift"`
	// Jitter is the max magnitude of random horizontal acceleration per tick.
	Jitter float64 `yaml:"jitter"`
	// HorizontalDamping scales vx each tick; slightly below 1 so jitter dies out.
	HorizontalDamping float64 `yaml:"horizontal_damping"`
	// VerticalDamping scales vy each tick; closer to 1 so drift persists.
	VerticalDamping float64 `yaml:"vertical_damping"`
	// MaxSpeed clamps each velocity component, preventing impulse runaway.
	MaxSpeed float64 `yaml:"max_speed"`
	// WallBounce is the velocity retention factor on a side-wall bounce (<1).
	WallBounce float64 `yaml:"wall_bounce"`
	// WallPadding keeps bubbles this many cells away from the side walls.
	WallPadding float64 `yaml:"wall_padding"`
	// Restitution is the collision bounciness. Deliberately above 1: the
	// super-elastic feel is load-bearing for the game, not a modeling bug.
	Restitution float64 `yaml:"restitution"`
	// CollisionBuffer widens the contact test by this many cells.
	CollisionBuffer float64 `yaml:"collision_buffer"`
	// EscapeMargin is how far above the top edge a bubble must drift,
	// beyond its own radius, to count as escaped.
	EscapeMargin float64 `yaml:"escape_margin"`
}

// BubbleConfig defines bubble geometry and spawn layout.
type BubbleConfig struct {
	// Diameter of a bubble in cells; radius is derived from it.
	Diameter float64 `yaml:"diameter"`
	// SpawnStagger is the vertical offset between consecutive spawns,
	// so freshly seeded bubbles never start overlapping.
	SpawnStagger float64 `yaml:"spawn_stagger"`
}

// ScoringConfig defines score deltas. Penalties are magnitudes; the session
// floors the score at zero.
type ScoringConfig struct {
	CorrectPoints int `yaml:"correct_points"`
	WrongPenalty  int `yaml:"wrong_penalty"`
	EscapePenalty int `yaml:"escape_penalty"`
}

// SessionConfig defines session-level timing.
type SessionConfig struct {
	// TimeLimitSeconds is the classic-mode countdown.
	TimeLimitSeconds int `yaml:"time_limit_seconds"`
	// ResolveDelayTicks is the feedback pause between answer and next round.
	ResolveDelayTicks int `yaml:"resolve_delay_ticks"`
	// BlitzTimeLimitSeconds is the countdown for the blitz variant.
	BlitzTimeLimitSeconds int `yaml:"blitz_time_limit_seconds"`
	// BlitzLiftScale multiplies physics lift in the blitz variant.
	BlitzLiftScale float64 `yaml:"blitz_lift_scale"`
}

// TierConfig defines one difficulty tier.
type TierConfig struct {
	MinOperand int `yaml:"min_operand"`
	MaxOperand int `yaml:"max_operand"`
	// BubbleCount is bubbles per round: 1 correct + (BubbleCount-1) distractors.
	BubbleCount int `yaml:"bubble_count"`
	// RoundTimeSeconds caps a single round; 0 disables the cap.
	// A round exceeding it resolves as an escape.
	RoundTimeSeconds int `yaml:"round_time_seconds"`
	// Operators is the allowed set: "add", "subtract", "multiply".
	Operators []string `yaml:"operators"`
}

// Known operator names accepted in tier configs.
const (
	OperatorAdd      = "add"
	OperatorSubtract = "subtract"
	OperatorMultiply = "multiply"
)

// Validate rejects malformed configuration before a session starts.
// The core never runs with an invalid config; all checks happen here.
func (c *BubbleMathConfig) Validate() error {
	p := c.Physics
	if p.Lift <= 0 {
		return fmt.Errorf("config: physics.lift must be positive, got %v", p.Lift)
	}
	if p.HorizontalDamping <= 0 || p.HorizontalDamping > 1 {
		return fmt.Errorf("config: physics.horizontal_damping must be in (0, 1], got %v", p.HorizontalDamping)
	}
	if p.VerticalDamping <= 0 || p.VerticalDamping > 1 {
		return fmt.Errorf("config: physics.vertical_damping must be in (0, 1], got %v", p.VerticalDamping)
	}
	if p.MaxSpeed <= 0 {
		return fmt.Errorf("config: physics.max_speed must be positive, got %v", p.MaxSpeed)
	}
	if p.WallBounce <= 0 || p.WallBounce >= 1 {
		return fmt.Errorf("config: physics.wall_bounce must be in (0, 1), got %v", p.WallBounce)
	}
	if p.Restitution <= 0 {
		return fmt.Errorf("config: physics.restitution must be positive, got %v", p.Restitution)
	}
	if p.Jitter < 0 || p.WallPadding < 0 || p.CollisionBuffer < 0 || p.EscapeMargin < 0 {
		return fmt.Errorf("config: physics offsets must be non-negative")
	}

	if c.Bubbles.Diameter <= 0 {
		return fmt.Errorf("config: bubbles.diameter must be positive, got %v", c.Bubbles.Diameter)
	}
	if c.Bubbles.SpawnStagger < 0 {
		return fmt.Errorf("config: bubbles.spawn_stagger must be non-negative, got %v", c.Bubbles.SpawnStagger)
	}

	if c.Scoring.CorrectPoints <= 0 {
		return fmt.Errorf("config: scoring.correct_points must be positive, got %d", c.Scoring.CorrectPoints)
	}
	if c.Scoring.WrongPenalty < 0 || c.Scoring.EscapePenalty < 0 {
		return fmt.Errorf("config: scoring penalties must be non-negative")
	}

	s := c.Session
	if s.TimeLimitSeconds <= 0 || s.BlitzTimeLimitSeconds <= 0 {
		return fmt.Errorf("config: session time limits must be positive")
	}
	if s.ResolveDelayTicks < 0 {
		return fmt.Errorf("config: session.resolve_delay_ticks must be non-negative, got %d", s.ResolveDelayTicks)
	}
	if s.BlitzLiftScale <= 0 {
		return fmt.Errorf("config: session.blitz_lift_scale must be positive, got %v", s.BlitzLiftScale)
	}

	if len(c.Tiers) == 0 {
		return fmt.Errorf("config: at least one difficulty tier is required")
	}
	for name, tier := range c.Tiers {
		if err := tier.validate(); err != nil {
			return fmt.Errorf("config: tier %q: %w", name, err)
		}
	}

	return nil
}

// validate checks a single difficulty tier.
func (t TierConfig) validate() error {
	if t.MinOperand < 0 {
		return fmt.Errorf("min_operand must be non-negative, got %d", t.MinOperand)
	}
	if t.MaxOperand < t.MinOperand {
		return fmt.Errorf("max_operand %d is below min_operand %d", t.MaxOperand, t.MinOperand)
	}
	// Ordinals map to digit keys 1-9, and the distractor offset range is
	// clamped to at least 10 candidates, so 9 bubbles always converge.
	if t.BubbleCount < 2 || t.BubbleCount > 9 {
		return fmt.Errorf("bubble_count must be in [2, 9], got %d", t.BubbleCount)
	}
	if t.RoundTimeSeconds < 0 {
		return fmt.Errorf("round_time_seconds must be non-negative, got %d", t.RoundTimeSeconds)
	}
	if len(t.Operators) == 0 {
		return fmt.Errorf("at least one operator is required")
	}
	for _, op := range t.Operators {
		switch op {
		case OperatorAdd, OperatorSubtract, OperatorMultiply:
		default:
			return fmt.Errorf("unknown operator %q", op)
		}
	}
	return nil
}

// Tier returns the named difficulty tier.
func (c *BubbleMathConfig) Tier(name string) (TierConfig, error) {
	tier, ok := c.Tiers[name]
	if !ok {
		return TierConfig{}, fmt.Errorf("config: unknown difficulty tier %q (have: %v)", name, c.TierNames())
	}
	return tier, nil
}

// TierNames returns the configured tier names, sorted.
func (c *BubbleMathConfig) TierNames() []string {
	names := make([]string, 0, len(c.Tiers))
	for name := range c.Tiers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
