package bubblemath

// Phase is the round state machine position.
type Phase int

const (
	PhaseSpawning Phase = iota
	PhaseLive
	PhaseResolving
	PhaseAdvancing
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "Spawning"
	case PhaseLive:
		return "Live"
	case PhaseResolving:
		return "Resolving"
	case PhaseAdvancing:
		return "Advancing"
	default:
		return "Unknown"
	}
}

// Round orchestrates one question: it listens for pop/escape outcomes from
// the field, enforces the answer-processing lock, and times the feedback
// pause before the session advances to the next question.
//
// The processing flag is the single concurrency control: while it is set no
// further pop or escape transitions are accepted, so at most one transition
// is processed per tick.
type Round struct {
	Equation Equation

	field            *Field
	phase            Phase
	processing       bool
	escapedIDs       map[int]struct{}
	resolveDelay     int
	resolveTicksLeft int
	outcomeCorrect   bool
	ticks            int
	maxTicks         int // 0 disables the round time cap
}

// newRound creates a round over an already-seeded field.
func newRound(eq Equation, field *Field, resolveDelay, maxTicks int) *Round {
	return &Round{
		Equation:     eq,
		field:        field,
		phase:        PhaseSpawning,
		escapedIDs:   make(map[int]struct{}),
		resolveDelay: resolveDelay,
		maxTicks:     maxTicks,
	}
}

// roundTick summarizes one round tick for the session.
type roundTick struct {
	// escaped is true when the correct bubble escaped this tick
	// (or the round time cap forced the equivalent outcome).
	escaped bool
	// advance is true when the resolve pause has elapsed and the session
	// should start the next round.
	advance bool
	// outcomeCorrect is the round outcome, valid when advance is true.
	outcomeCorrect bool
}

// Tick advances the round by one step.
func (r *Round) Tick() roundTick {
	switch r.phase {
	case PhaseSpawning:
		// Seeding is synchronous; the first tick goes live immediately
		r.phase = PhaseLive
		return r.tickLive()

	case PhaseLive:
		return r.tickLive()

	case PhaseResolving:
		// Remaining bubbles keep drifting during the feedback pause
		r.field.Tick(true)
		r.resolveTicksLeft--
		if r.resolveTicksLeft <= 0 {
			r.phase = PhaseAdvancing
		}
		return roundTick{}

	case PhaseAdvancing:
		return roundTick{advance: true, outcomeCorrect: r.outcomeCorrect}
	}

	return roundTick{}
}

// tickLive runs one physics tick and consumes its events.
func (r *Round) tickLive() roundTick {
	r.ticks++

	events := r.field.Tick(r.processing)
	for _, ev := range events {
		esc, ok := ev.(EscapedEvent)
		if !ok {
			continue
		}
		if _, seen := r.escapedIDs[esc.ID]; seen {
			continue
		}
		r.escapedIDs[esc.ID] = struct{}{}
		if r.processing {
			continue
		}
		r.beginResolve(false)
		return roundTick{escaped: true}
	}

	// Round time cap: an overlong round resolves as an escape
	if r.maxTicks > 0 && r.ticks >= r.maxTicks && !r.processing {
		if _, ok := r.field.escapeCorrect(); ok {
			r.beginResolve(false)
			return roundTick{escaped: true}
		}
	}

	return roundTick{}
}

// HandleTap routes a pop request into the field. Taps are rejected while the
// round is processing an answer or not live; the rejection is a silent no-op
// because it signals a UI race, not an error. A correct pop locks the round
// and starts the resolve pause; a wrong pop keeps the round live so the
// player can try again.
func (r *Round) HandleTap(id int) (PoppedEvent, bool) {
	if r.phase != PhaseLive && r.phase != PhaseSpawning {
		return PoppedEvent{}, false
	}
	if r.processing {
		return PoppedEvent{}, false
	}

	ev, ok := r.field.Pop(id)
	if !ok {
		return PoppedEvent{}, false
	}

	if ev.Correct {
		r.beginResolve(true)
	}
	return ev, true
}

// beginResolve locks out further input and starts the feedback pause.
func (r *Round) beginResolve(correct bool) {
	r.processing = true
	r.outcomeCorrect = correct
	r.phase = PhaseResolving
	r.resolveTicksLeft = r.resolveDelay
	if r.resolveTicksLeft <= 0 {
		r.phase = PhaseAdvancing
	}
}

// Phase returns the current state machine position.
func (r *Round) Phase() Phase {
	return r.phase
}

// Processing reports whether the round is locked resolving an answer.
func (r *Round) Processing() bool {
	return r.processing
}

// Ticks returns the number of live ticks this round has run.
func (r *Round) Ticks() int {
	return r.ticks
}
