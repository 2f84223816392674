package bubblemath

import (
	"fmt"
	"math"

	"github.com/vovakirdan/bubble-math/internal/config"
	"github.com/vovakirdan/bubble-math/internal/core"
)

// Offset-range bounds for distractor sampling. Keeping the range at 10 or
// more guarantees enough distinct non-negative candidates for up to 9
// bubbles, so rejection sampling cannot starve on a validated config.
const (
	minOffsetRange = 10
	maxOffsetRange = 30

	// attemptsPerDistractor bounds the rejection loop; exhausting the
	// budget is a configuration error, never an endless loop.
	attemptsPerDistractor = 64
)

// DistractorGenerator produces plausible wrong answers around a correct one.
type DistractorGenerator struct {
	rng *SimpleRNG
}

// NewDistractorGenerator creates a generator driven by the given RNG.
func NewDistractorGenerator(rng *SimpleRNG) *DistractorGenerator {
	return &DistractorGenerator{rng: rng}
}

// Generate returns count distinct non-negative integers, none equal to
// correct. Offsets are sampled from a difficulty-scaled range around the
// correct answer, biased toward positive offsets when the correct answer is
// small so negative candidates are not repeatedly sampled and rejected.
func (g *DistractorGenerator) Generate(correct, count int, tier config.TierConfig) ([]int, error) {
	offsetRange := core.Clamp(tier.MaxOperand-tier.MinOperand, minOffsetRange, maxOffsetRange)

	seen := make(map[int]struct{}, count)
	result := make([]int, 0, count)
	budget := count * attemptsPerDistractor

	for len(result) < count && budget > 0 {
		budget--

		offset := g.rng.Intn(2*offsetRange+1) - offsetRange
		if correct < offsetRange && offset < 0 && g.rng.Float64() < 0.7 {
			offset = -offset
		}

		candidate := int(math.Round(float64(correct + offset)))
		if candidate < 0 {
			candidate = 0
		}
		if candidate == correct {
			continue
		}
		if _, dup := seen[candidate]; dup {
			continue
		}

		seen[candidate] = struct{}{}
		result = append(result, candidate)
	}

	if len(result) < count {
		return nil, fmt.Errorf("bubblemath: distractor sampling starved after %d attempts (correct=%d count=%d range=%d)",
			count*attemptsPerDistractor, correct, count, offsetRange)
	}

	return result, nil
}
