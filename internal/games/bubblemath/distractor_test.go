package bubblemath

import (
	"testing"

	"github.com/vovakirdan/bubble-math/internal/config"
)

func TestDistractorsDistinctAndNonNegative(t *testing.T) {
	gen := NewDistractorGenerator(NewSimpleRNG(42))
	tier := testTier()

	for i := 0; i < 200; i++ {
		correct := i % 40
		got, err := gen.Generate(correct, 3, tier)
		if err != nil {
			t.Fatalf("Generate(%d) failed: %v", correct, err)
		}
		if len(got) != 3 {
			t.Fatalf("got %d distractors, want 3", len(got))
		}

		seen := map[int]struct{}{}
		for _, v := range got {
			if v < 0 {
				t.Fatalf("negative distractor %d for correct=%d", v, correct)
			}
			if v == correct {
				t.Fatalf("distractor equals correct answer %d", correct)
			}
			if _, dup := seen[v]; dup {
				t.Fatalf("duplicate distractor %d for correct=%d", v, correct)
			}
			seen[v] = struct{}{}
		}
	}
}

func TestDistractorsNearCorrectAnswer(t *testing.T) {
	gen := NewDistractorGenerator(NewSimpleRNG(7))
	tier := config.TierConfig{
		MinOperand:  1,
		MaxOperand:  11, // range clamps to 10
		BubbleCount: 4,
		Operators:   []string{config.OperatorAdd},
	}

	got, err := gen.Generate(50, 3, tier)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for _, v := range got {
		if v < 40 || v > 60 {
			t.Errorf("distractor %d outside offset range of correct=50", v)
		}
	}
}

func TestDistractorsSmallCorrectAnswer(t *testing.T) {
	// correct=0 forces the non-negative clamp to do real work
	gen := NewDistractorGenerator(NewSimpleRNG(99))
	tier := testTier()

	for i := 0; i < 100; i++ {
		got, err := gen.Generate(0, 5, tier)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		for _, v := range got {
			if v <= 0 {
				t.Fatalf("distractor %d should be positive when correct=0", v)
			}
		}
	}
}

func TestDistractorStarvation(t *testing.T) {
	gen := NewDistractorGenerator(NewSimpleRNG(1))
	tier := config.TierConfig{
		MinOperand:  1,
		MaxOperand:  11, // range clamps to 10, so at most 20 distinct candidates
		BubbleCount: 4,
		Operators:   []string{config.OperatorAdd},
	}

	// Asking for more distinct values than the offset range can supply
	// must fail with an error, not loop forever.
	if _, err := gen.Generate(50, 25, tier); err == nil {
		t.Fatal("expected starvation error, got nil")
	}
}

func TestDistractorDeterminism(t *testing.T) {
	tier := testTier()

	gen1 := NewDistractorGenerator(NewSimpleRNG(555))
	gen2 := NewDistractorGenerator(NewSimpleRNG(555))

	for i := 0; i < 100; i++ {
		a, err1 := gen1.Generate(i, 3, tier)
		b, err2 := gen2.Generate(i, 3, tier)
		if err1 != nil || err2 != nil {
			t.Fatalf("Generate failed: %v / %v", err1, err2)
		}
		for j := range a {
			if a[j] != b[j] {
				t.Fatalf("sequence diverged at %d: %v vs %v", i, a, b)
			}
		}
	}
}
