package bubblemath

import (
	"fmt"
	"math"
	"sort"

	"github.com/vovakirdan/bubble-math/internal/core"
)

// Snapshot contains the complete game state for replay/save/determinism
// checks. Uses primitive types only for stable serialization; float fields
// are carried as IEEE-754 bit patterns so the round trip is exact.
type Snapshot struct {
	Tick          uint64
	Score         int
	QuestionCount int
	CorrectCount  int
	Status        int
	Mode          int
	Feedback      int
	FeedbackTicks int
	NextBubbleID  int

	// Equation state
	EqLeft   int
	EqRight  int
	EqOp     int
	EqAnswer int

	// Round state
	Phase            int
	Processing       bool
	ResolveTicksLeft int
	OutcomeCorrect   bool
	RoundTicks       int
	EscapedIDs       []int

	// Bubble state (each bubble is 9 uint64s:
	// ID, Value, Correct, PosX, PosY, VelX, VelY, SpawnOrder, State;
	// positions and velocities are Float64bits)
	BubbleCount int
	BubbleData  []uint64

	// RNG state shared by generators and field
	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	r := s.round

	bubbles := s.field.Bubbles()
	bubbleData := make([]uint64, len(bubbles)*9)
	for i, b := range bubbles {
		idx := i * 9
		bubbleData[idx] = uint64(b.ID)       //#nosec G115 -- ids are always positive
		bubbleData[idx+1] = uint64(b.Value)  //#nosec G115 -- values are non-negative
		if b.Correct {
			bubbleData[idx+2] = 1
		}
		bubbleData[idx+3] = math.Float64bits(b.Pos.X)
		bubbleData[idx+4] = math.Float64bits(b.Pos.Y)
		bubbleData[idx+5] = math.Float64bits(b.Vel.X)
		bubbleData[idx+6] = math.Float64bits(b.Vel.Y)
		bubbleData[idx+7] = uint64(b.SpawnOrder) //#nosec G115 -- spawn order is always positive
		bubbleData[idx+8] = uint64(b.State)      //#nosec G115 -- small enum
	}

	escapedIDs := make([]int, 0, len(r.escapedIDs))
	for id := range r.escapedIDs {
		escapedIDs = append(escapedIDs, id)
	}
	sort.Ints(escapedIDs)

	return Snapshot{
		Tick:          uint64(s.ticks), //#nosec G115 -- tick count is always positive
		Score:         s.score,
		QuestionCount: s.questionCount,
		CorrectCount:  s.correctCount,
		Status:        int(s.status),
		Mode:          int(s.mode),
		Feedback:      int(s.feedback),
		FeedbackTicks: s.feedbackTicks,
		NextBubbleID:  s.nextBubbleID,

		EqLeft:   r.Equation.Left,
		EqRight:  r.Equation.Right,
		EqOp:     int(r.Equation.Op),
		EqAnswer: r.Equation.Answer,

		Phase:            int(r.phase),
		Processing:       r.processing,
		ResolveTicksLeft: r.resolveTicksLeft,
		OutcomeCorrect:   r.outcomeCorrect,
		RoundTicks:       r.ticks,
		EscapedIDs:       escapedIDs,

		BubbleCount: len(bubbles),
		BubbleData:  bubbleData,

		RNGState: s.rng.state,
	}
}

// ApplySnapshot restores game state from a snapshot.
func (g *Game) ApplySnapshot(snap Snapshot) {
	s := g.session

	s.ticks = int(snap.Tick) //#nosec G115 -- tick count fits in int
	s.score = snap.Score
	s.questionCount = snap.QuestionCount
	s.correctCount = snap.CorrectCount
	s.status = Status(snap.Status)
	s.mode = Mode(snap.Mode)
	s.feedback = Feedback(snap.Feedback)
	s.feedbackTicks = snap.FeedbackTicks
	s.nextBubbleID = snap.NextBubbleID
	s.rng.state = snap.RNGState

	op := Operator(snap.EqOp)
	eq := Equation{
		Text:   fmt.Sprintf("%d %s %d = ?", snap.EqLeft, op, snap.EqRight),
		Answer: snap.EqAnswer,
		Left:   snap.EqLeft,
		Right:  snap.EqRight,
		Op:     op,
	}

	// Restore bubble states. A snapshot claiming more bubbles than its data
	// carries is truncated to the complete records.
	count := snap.BubbleCount
	if max := len(snap.BubbleData) / 9; count > max {
		count = max
	}
	bubbles := make([]*Bubble, 0, count)
	for i := 0; i < count; i++ {
		idx := i * 9
		bubbles = append(bubbles, &Bubble{
			ID:      int(snap.BubbleData[idx]),   //#nosec G115 -- ids fit in int
			Value:   int(snap.BubbleData[idx+1]), //#nosec G115 -- values fit in int
			Correct: snap.BubbleData[idx+2] == 1,
			Pos: core.Vec2{
				X: math.Float64frombits(snap.BubbleData[idx+3]),
				Y: math.Float64frombits(snap.BubbleData[idx+4]),
			},
			Vel: core.Vec2{
				X: math.Float64frombits(snap.BubbleData[idx+5]),
				Y: math.Float64frombits(snap.BubbleData[idx+6]),
			},
			Radius:     s.cfg.Bubbles.Diameter / 2,
			SpawnOrder: int(snap.BubbleData[idx+7]), //#nosec G115 -- spawn order fits in int
			State:      BubbleState(snap.BubbleData[idx+8]),
		})
	}
	s.field.Seed(bubbles)

	// Restore round state over the re-seeded field
	r := newRound(eq, s.field, s.cfg.Session.ResolveDelayTicks, s.tier.RoundTimeSeconds*s.tickRate)
	r.phase = Phase(snap.Phase)
	r.processing = snap.Processing
	r.resolveTicksLeft = snap.ResolveTicksLeft
	r.outcomeCorrect = snap.OutcomeCorrect
	r.ticks = snap.RoundTicks
	for _, id := range snap.EscapedIDs {
		r.escapedIDs[id] = struct{}{}
	}
	s.round = r
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.QuestionCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CorrectCount)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Status)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Mode)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Feedback)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FeedbackTicks) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.NextBubbleID)  //#nosec G115 -- hash computation

	h = h*31 + uint64(snap.EqLeft)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EqRight)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EqOp)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EqAnswer) //#nosec G115 -- hash computation

	h = h*31 + uint64(snap.Phase) //#nosec G115 -- hash computation
	if snap.Processing {
		h = h*31 + 1
	} else {
		h = h * 31
	}
	h = h*31 + uint64(snap.ResolveTicksLeft) //#nosec G115 -- hash computation
	if snap.OutcomeCorrect {
		h = h*31 + 1
	} else {
		h = h * 31
	}
	h = h*31 + uint64(snap.RoundTicks) //#nosec G115 -- hash computation

	for _, id := range snap.EscapedIDs {
		h = h*31 + uint64(id) //#nosec G115 -- hash computation
	}

	h = h*31 + uint64(snap.BubbleCount) //#nosec G115 -- hash computation
	for _, v := range snap.BubbleData {
		h = h*31 + v
	}

	h = h*31 + snap.RNGState

	return h
}
