package bubblemath

import (
	"fmt"
	"math"

	"github.com/vovakirdan/bubble-math/internal/config"
)

// Operator is an arithmetic operator used in generated equations.
type Operator int

const (
	OpAdd Operator = iota
	OpSubtract
	OpMultiply
)

// String returns the display glyph for the operator.
func (o Operator) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "×"
	default:
		return "?"
	}
}

// Apply computes the operator over two operands.
func (o Operator) Apply(a, b int) float64 {
	switch o {
	case OpAdd:
		return float64(a) + float64(b)
	case OpSubtract:
		return float64(a) - float64(b)
	case OpMultiply:
		return float64(a) * float64(b)
	default:
		return 0
	}
}

// operatorFromName maps a config operator name to an Operator.
// Unknown names are rejected by config validation before this is reached.
func operatorFromName(name string) Operator {
	switch name {
	case config.OperatorSubtract:
		return OpSubtract
	case config.OperatorMultiply:
		return OpMultiply
	default:
		return OpAdd
	}
}

// Equation is the question for one round. Immutable after generation.
type Equation struct {
	Text   string
	Answer int
	Left   int
	Right  int
	Op     Operator
}

// EquationGenerator produces arithmetic questions for a difficulty tier.
type EquationGenerator struct {
	rng *SimpleRNG
}

// NewEquationGenerator creates a generator driven by the given RNG.
func NewEquationGenerator(rng *SimpleRNG) *EquationGenerator {
	return &EquationGenerator{rng: rng}
}

// Generate produces an equation for the tier. The operator is chosen
// uniformly from the tier's allowed set; subtraction operands are swapped so
// the result is never negative. Always succeeds given a validated tier.
func (g *EquationGenerator) Generate(tier config.TierConfig) Equation {
	op := operatorFromName(tier.Operators[g.rng.Intn(len(tier.Operators))])

	span := tier.MaxOperand - tier.MinOperand + 1
	left := tier.MinOperand + g.rng.Intn(span)
	right := tier.MinOperand + g.rng.Intn(span)

	if op == OpSubtract && left < right {
		left, right = right, left
	}

	// Integer domain today; the rounding step guards any future extension
	// to non-integer operands.
	answer := int(math.Round(op.Apply(left, right)))

	return Equation{
		Text:   fmt.Sprintf("%d %s %d = ?", left, op, right),
		Answer: answer,
		Left:   left,
		Right:  right,
		Op:     op,
	}
}
