package config

import (
	_ "embed"
)

//go:embed defaults/bubblemath.yaml
var defaultBubbleMathYAML []byte

// DefaultBubbleMathConfig returns the default configuration.
// Kept in sync with defaults/bubblemath.yaml; used as the last-resort
// fallback if the embedded YAML fails to parse.
func DefaultBubbleMathConfig() BubbleMathConfig {
	return BubbleMathConfig{
		Physics: PhysicsConfig{
			Lift:              0.0008,
			Jitter:            0.02,
			HorizontalDamping: 0.96,
			VerticalDamping:   0.99,
			MaxSpeed:          0.5,
			WallBounce:        0.8,
			WallPadding:       1.0,
			Restitution:       1.05,
			CollisionBuffer:   0.5,
			EscapeMargin:      2.0,
		},
		Bubbles: BubbleConfig{
			Diameter:     7.0,
			SpawnStagger: 4.0,
		},
		Scoring: ScoringConfig{
			CorrectPoints: 10,
			WrongPenalty:  3,
			EscapePenalty: 5,
		},
		Session: SessionConfig{
			TimeLimitSeconds:      120,
			ResolveDelayTicks:     45,
			BlitzTimeLimitSeconds: 45,
			BlitzLiftScale:        1.6,
		},
		Tiers: map[string]TierConfig{
			"easy": {
				MinOperand:       1,
				MaxOperand:       10,
				BubbleCount:      3,
				RoundTimeSeconds: 0,
				Operators:        []string{OperatorAdd, OperatorSubtract},
			},
			"normal": {
				MinOperand:       1,
				MaxOperand:       20,
				BubbleCount:      4,
				RoundTimeSeconds: 30,
				Operators:        []string{OperatorAdd, OperatorSubtract, OperatorMultiply},
			},
			"hard": {
				MinOperand:       1,
				MaxOperand:       50,
				BubbleCount:      6,
				RoundTimeSeconds: 20,
				Operators:        []string{OperatorAdd, OperatorSubtract, OperatorMultiply},
			},
		},
	}
}
