package bubblemath

import (
	"fmt"
	"testing"

	"github.com/vovakirdan/bubble-math/internal/config"
)

func testTier() config.TierConfig {
	return config.TierConfig{
		MinOperand:  1,
		MaxOperand:  20,
		BubbleCount: 4,
		Operators:   []string{config.OperatorAdd, config.OperatorSubtract, config.OperatorMultiply},
	}
}

func TestEquationAnswersNeverNegative(t *testing.T) {
	gen := NewEquationGenerator(NewSimpleRNG(42))
	tier := testTier()

	for i := 0; i < 1000; i++ {
		eq := gen.Generate(tier)
		if eq.Answer < 0 {
			t.Fatalf("negative answer %d for %q", eq.Answer, eq.Text)
		}
	}
}

func TestEquationSubtractionOperandsSwapped(t *testing.T) {
	gen := NewEquationGenerator(NewSimpleRNG(7))
	tier := config.TierConfig{
		MinOperand:  1,
		MaxOperand:  50,
		BubbleCount: 4,
		Operators:   []string{config.OperatorSubtract},
	}

	for i := 0; i < 500; i++ {
		eq := gen.Generate(tier)
		if eq.Op != OpSubtract {
			t.Fatalf("expected subtraction, got %v", eq.Op)
		}
		if eq.Left < eq.Right {
			t.Fatalf("operands not swapped: %d - %d", eq.Left, eq.Right)
		}
		if eq.Answer != eq.Left-eq.Right {
			t.Fatalf("wrong answer %d for %d - %d", eq.Answer, eq.Left, eq.Right)
		}
	}
}

func TestEquationOperandsWithinTier(t *testing.T) {
	gen := NewEquationGenerator(NewSimpleRNG(99))
	tier := config.TierConfig{
		MinOperand:  5,
		MaxOperand:  12,
		BubbleCount: 3,
		Operators:   []string{config.OperatorAdd},
	}

	for i := 0; i < 500; i++ {
		eq := gen.Generate(tier)
		if eq.Left < 5 || eq.Left > 12 || eq.Right < 5 || eq.Right > 12 {
			t.Fatalf("operands out of range: %d, %d", eq.Left, eq.Right)
		}
	}
}

func TestEquationRespectsOperatorList(t *testing.T) {
	gen := NewEquationGenerator(NewSimpleRNG(3))
	tier := config.TierConfig{
		MinOperand:  1,
		MaxOperand:  10,
		BubbleCount: 3,
		Operators:   []string{config.OperatorAdd, config.OperatorMultiply},
	}

	for i := 0; i < 500; i++ {
		eq := gen.Generate(tier)
		if eq.Op != OpAdd && eq.Op != OpMultiply {
			t.Fatalf("unexpected operator %v", eq.Op)
		}
	}
}

func TestEquationTextFormat(t *testing.T) {
	gen := NewEquationGenerator(NewSimpleRNG(11))
	tier := testTier()

	for i := 0; i < 100; i++ {
		eq := gen.Generate(tier)
		want := fmt.Sprintf("%d %s %d = ?", eq.Left, eq.Op, eq.Right)
		if eq.Text != want {
			t.Fatalf("text %q, want %q", eq.Text, want)
		}
	}
}

func TestEquationDeterminism(t *testing.T) {
	tier := testTier()

	gen1 := NewEquationGenerator(NewSimpleRNG(12345))
	gen2 := NewEquationGenerator(NewSimpleRNG(12345))

	for i := 0; i < 100; i++ {
		eq1 := gen1.Generate(tier)
		eq2 := gen2.Generate(tier)
		if eq1 != eq2 {
			t.Fatalf("sequence diverged at %d: %+v vs %+v", i, eq1, eq2)
		}
	}
}

func TestOperatorApply(t *testing.T) {
	tests := []struct {
		op   Operator
		a, b int
		want float64
	}{
		{OpAdd, 3, 4, 7},
		{OpSubtract, 9, 4, 5},
		{OpMultiply, 6, 7, 42},
	}

	for _, tt := range tests {
		if got := tt.op.Apply(tt.a, tt.b); got != tt.want {
			t.Errorf("%d %s %d = %v, want %v", tt.a, tt.op, tt.b, got, tt.want)
		}
	}
}
