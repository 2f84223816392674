package bubblemath

import (
	"fmt"

	"github.com/vovakirdan/bubble-math/internal/config"
	"github.com/vovakirdan/bubble-math/internal/core"
)

// Mode selects the session variant.
type Mode int

const (
	ModeClassic Mode = iota // 2-minute session
	ModeBlitz               // short session with faster lift
)

// String returns the mode name used in storage and CLI output.
func (m Mode) String() string {
	if m == ModeBlitz {
		return "blitz"
	}
	return "classic"
}

// Status is the session lifecycle state. Transitions only Active -> Ended.
type Status int

const (
	StatusActive Status = iota
	StatusEnded
)

// Feedback is the transient outcome signal exposed to the rendering layer.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackCorrect
	FeedbackWrong
	FeedbackEscaped
)

// Session is the top-level game state machine: it owns exactly one round at
// a time, the countdown timer, and the score. All mutation happens inside
// Tick, driven by a single caller, so there is no hidden aliasing and no
// concurrent writer.
type Session struct {
	cfg      config.BubbleMathConfig
	tier     config.TierConfig
	tierName string
	mode     Mode

	rng         *SimpleRNG
	equations   *EquationGenerator
	distractors *DistractorGenerator
	field       *Field
	round       *Round

	tickRate       int
	timeLimitTicks int
	ticks          int

	score         int
	questionCount int
	correctCount  int
	status        Status

	feedback      Feedback
	feedbackTicks int

	nextBubbleID int
	err          error
}

// NewSession validates the configuration and starts the first round.
// Configuration errors are surfaced here, synchronously, so the caller can
// refuse to launch; nothing in the session errors during a steady-state tick.
func NewSession(cfg config.BubbleMathConfig, tierName string, mode Mode, width, height, tickRate int, seed int64) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tier, err := cfg.Tier(tierName)
	if err != nil {
		return nil, err
	}
	if tickRate <= 0 {
		return nil, fmt.Errorf("bubblemath: tick rate must be positive, got %d", tickRate)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("bubblemath: field size must be positive, got %dx%d", width, height)
	}

	phys := cfg.Physics
	limitSeconds := cfg.Session.TimeLimitSeconds
	if mode == ModeBlitz {
		phys.Lift *= cfg.Session.BlitzLiftScale
		limitSeconds = cfg.Session.BlitzTimeLimitSeconds
	}

	rng := NewSimpleRNG(seed)
	s := &Session{
		cfg:            cfg,
		tier:           tier,
		tierName:       tierName,
		mode:           mode,
		rng:            rng,
		equations:      NewEquationGenerator(rng),
		distractors:    NewDistractorGenerator(rng),
		field:          NewField(width, height, phys, rng),
		tickRate:       tickRate,
		timeLimitTicks: limitSeconds * tickRate,
	}

	if err := s.spawnRound(); err != nil {
		return nil, err
	}
	return s, nil
}

// spawnRound generates the next equation, builds a fresh bubble set and
// replaces the round wholesale. No state carries over between rounds.
func (s *Session) spawnRound() error {
	eq := s.equations.Generate(s.tier)

	wrongs, err := s.distractors.Generate(eq.Answer, s.tier.BubbleCount-1, s.tier)
	if err != nil {
		return err
	}

	values := make([]int, 0, s.tier.BubbleCount)
	values = append(values, eq.Answer)
	values = append(values, wrongs...)
	order := s.rng.Perm(len(values))

	radius := s.cfg.Bubbles.Diameter / 2
	pad := s.cfg.Physics.WallPadding
	n := len(values)

	// One horizontal slot per bubble keeps fresh spawns from overlapping;
	// rows are staggered so the collision pass has nothing to untangle.
	usable := s.field.Width() - 2*(pad+radius)
	slotW := usable / float64(n)

	bubbles := make([]*Bubble, 0, n)
	for i := 0; i < n; i++ {
		value := values[order[i]]

		wiggle := slotW - 2*radius
		if wiggle < 0 {
			wiggle = 0
		}
		x := pad + radius + float64(i)*slotW + radius + s.rng.Float64()*wiggle
		y := s.field.Height() - radius - float64(i%3)*s.cfg.Bubbles.SpawnStagger

		bubbles = append(bubbles, &Bubble{
			ID:         s.nextBubbleID,
			Value:      value,
			Correct:    value == eq.Answer,
			Pos:        core.Vec2{X: x, Y: y},
			Radius:     radius,
			SpawnOrder: i,
			State:      BubbleLive,
		})
		s.nextBubbleID++
	}

	s.field.Seed(bubbles)
	s.round = newRound(eq, s.field, s.cfg.Session.ResolveDelayTicks, s.tier.RoundTimeSeconds*s.tickRate)
	return nil
}

// Tick advances the session by one fixed step. popID is the bubble tapped
// this tick, or a negative value for none; taps are applied here, before the
// physics pass, never mid-tick.
func (s *Session) Tick(popID int) {
	if s.status != StatusActive {
		return
	}
	s.ticks++

	if s.feedbackTicks > 0 {
		s.feedbackTicks--
		if s.feedbackTicks == 0 {
			s.feedback = FeedbackNone
		}
	}

	// Countdown runs at 1 Hz granularity, independent of the physics rate
	if s.ticks%s.tickRate == 0 && s.ticks >= s.timeLimitTicks {
		s.endByTimeout()
		return
	}

	if popID >= 0 {
		s.handleTap(popID)
	}

	res := s.round.Tick()
	if res.escaped {
		s.applyPenalty(s.cfg.Scoring.EscapePenalty)
		s.setFeedback(FeedbackEscaped)
	}
	if res.advance {
		s.advanceRound(res.outcomeCorrect)
	}
}

// handleTap routes a pop into the round and applies scoring.
// Rejected taps (double-tap, tap while resolving) are silently absorbed.
func (s *Session) handleTap(popID int) {
	ev, ok := s.round.HandleTap(popID)
	if !ok {
		return
	}

	if ev.Correct {
		s.score += s.cfg.Scoring.CorrectPoints
		s.setFeedback(FeedbackCorrect)
	} else {
		s.applyPenalty(s.cfg.Scoring.WrongPenalty)
		s.setFeedback(FeedbackWrong)
	}
}

// advanceRound books the finished round and starts the next one.
func (s *Session) advanceRound(correct bool) {
	s.questionCount++
	if correct {
		s.correctCount++
	}

	if err := s.spawnRound(); err != nil {
		// Cannot happen on a validated config; end rather than loop
		s.err = err
		s.status = StatusEnded
	}
}

// endByTimeout ends the session when the countdown reaches zero. A round
// still live is simply abandoned: ending is treated as the correct bubble
// escaping without the penalty being counted again.
func (s *Session) endByTimeout() {
	s.status = StatusEnded
}

// ForceEnd ends the session on an external quit/back request.
func (s *Session) ForceEnd() {
	s.status = StatusEnded
}

// applyPenalty deducts points, floored at zero.
func (s *Session) applyPenalty(points int) {
	s.score -= points
	if s.score < 0 {
		s.score = 0
	}
}

// setFeedback publishes a transient outcome signal for the renderer.
func (s *Session) setFeedback(f Feedback) {
	s.feedback = f
	s.feedbackTicks = core.Max(s.cfg.Session.ResolveDelayTicks, 30)
}

// Score returns the current score. Never negative.
func (s *Session) Score() int {
	return s.score
}

// QuestionCount returns the number of completed rounds.
func (s *Session) QuestionCount() int {
	return s.questionCount
}

// CorrectCount returns the number of rounds answered correctly.
func (s *Session) CorrectCount() int {
	return s.correctCount
}

// Status returns the session lifecycle state.
func (s *Session) Status() Status {
	return s.status
}

// Round returns the current round.
func (s *Session) Round() *Round {
	return s.round
}

// Field returns the bubble field.
func (s *Session) Field() *Field {
	return s.field
}

// Feedback returns the transient outcome signal for rendering.
func (s *Session) Feedback() Feedback {
	return s.feedback
}

// Mode returns the session variant.
func (s *Session) Mode() Mode {
	return s.mode
}

// TierName returns the configured difficulty tier name.
func (s *Session) TierName() string {
	return s.tierName
}

// TimeRemaining returns the countdown in whole seconds, floored at zero.
func (s *Session) TimeRemaining() int {
	remaining := s.timeLimitTicks - s.ticks
	if remaining <= 0 {
		return 0
	}
	return (remaining + s.tickRate - 1) / s.tickRate
}

// ElapsedSeconds returns whole seconds since the session started.
func (s *Session) ElapsedSeconds() int {
	return s.ticks / s.tickRate
}

// Accuracy returns correctCount/questionCount, or 0 before any question.
func (s *Session) Accuracy() float64 {
	if s.questionCount == 0 {
		return 0
	}
	return float64(s.correctCount) / float64(s.questionCount)
}

// Err returns the fatal generation error that ended the session, if any.
func (s *Session) Err() error {
	return s.err
}

// Report returns the session-end summary for persistence.
func (s *Session) Report() core.SessionReport {
	return core.SessionReport{
		FinalScore:     s.score,
		QuestionCount:  s.questionCount,
		CorrectCount:   s.correctCount,
		Accuracy:       s.Accuracy(),
		ElapsedSeconds: s.ElapsedSeconds(),
		Difficulty:     s.tierName,
	}
}
