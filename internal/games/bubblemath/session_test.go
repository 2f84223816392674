package bubblemath

import (
	"testing"

	"github.com/vovakirdan/bubble-math/internal/config"
)

func newTestSession(t *testing.T, mode Mode, seed int64) *Session {
	t.Helper()
	s, err := NewSession(config.DefaultBubbleMathConfig(), "normal", mode, 80, 21, 60, seed)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return s
}

func TestSessionStartsWithOneCorrectBubble(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		s := newTestSession(t, ModeClassic, seed)

		correct := 0
		for _, b := range s.Field().Bubbles() {
			if b.Correct {
				correct++
				if b.Value != s.Round().Equation.Answer {
					t.Errorf("correct bubble value %d != answer %d", b.Value, s.Round().Equation.Answer)
				}
			}
		}
		if correct != 1 {
			t.Fatalf("seed %d: %d correct bubbles, want exactly 1", seed, correct)
		}
	}
}

func TestSessionBubblesSpawnInsideField(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		s := newTestSession(t, ModeClassic, seed)

		for _, b := range s.Field().Bubbles() {
			if b.Pos.X < b.Radius || b.Pos.X > s.Field().Width()-b.Radius {
				t.Errorf("seed %d: bubble %d spawned at x=%.2f outside field", seed, b.ID, b.Pos.X)
			}
			if b.Pos.Y > s.Field().Height() || b.Pos.Y < 0 {
				t.Errorf("seed %d: bubble %d spawned at y=%.2f outside field", seed, b.ID, b.Pos.Y)
			}
		}
	}
}

func TestSessionCorrectPopScoresAndAdvances(t *testing.T) {
	cfg := config.DefaultBubbleMathConfig()
	s := newTestSession(t, ModeClassic, 42)

	var correctID int
	for _, b := range s.Field().Bubbles() {
		if b.Correct {
			correctID = b.ID
		}
	}

	s.Tick(correctID)
	if s.Score() != cfg.Scoring.CorrectPoints {
		t.Errorf("score %d, want %d", s.Score(), cfg.Scoring.CorrectPoints)
	}
	if s.Feedback() != FeedbackCorrect {
		t.Errorf("feedback %v, want FeedbackCorrect", s.Feedback())
	}

	// Drain the resolve pause; the next round must spawn
	for i := 0; i <= cfg.Session.ResolveDelayTicks; i++ {
		s.Tick(-1)
	}
	if s.QuestionCount() != 1 {
		t.Errorf("question count %d, want 1", s.QuestionCount())
	}
	if s.CorrectCount() != 1 {
		t.Errorf("correct count %d, want 1", s.CorrectCount())
	}
	if s.Field().LiveCount() == 0 {
		t.Error("no bubbles after advance")
	}
	if s.Status() != StatusActive {
		t.Error("session ended after one round")
	}
}

func TestSessionWrongPopPenalizes(t *testing.T) {
	cfg := config.DefaultBubbleMathConfig()
	s := newTestSession(t, ModeClassic, 42)

	var wrongID int
	for _, b := range s.Field().Bubbles() {
		if !b.Correct {
			wrongID = b.ID
			break
		}
	}

	s.Tick(wrongID)
	// Score floors at zero
	if s.Score() != 0 {
		t.Errorf("score %d, want 0 after penalty from 0", s.Score())
	}
	if s.Feedback() != FeedbackWrong {
		t.Errorf("feedback %v, want FeedbackWrong", s.Feedback())
	}

	// With a positive balance the full penalty applies
	var correctID int
	for _, b := range s.Field().Bubbles() {
		if b.Correct && b.State == BubbleLive {
			correctID = b.ID
		}
	}
	s.Tick(correctID)
	for i := 0; i <= cfg.Session.ResolveDelayTicks; i++ {
		s.Tick(-1)
	}

	before := s.Score()
	for _, b := range s.Field().Bubbles() {
		if !b.Correct && b.State == BubbleLive {
			wrongID = b.ID
			break
		}
	}
	s.Tick(wrongID)
	if s.Score() != before-cfg.Scoring.WrongPenalty {
		t.Errorf("score %d, want %d", s.Score(), before-cfg.Scoring.WrongPenalty)
	}
}

func TestSessionScoreNeverNegative(t *testing.T) {
	s := newTestSession(t, ModeClassic, 7)

	// Tap every wrong bubble in sight for a while
	for i := 0; i < 2000; i++ {
		popID := -1
		for _, b := range s.Field().Bubbles() {
			if !b.Correct && b.State == BubbleLive {
				popID = b.ID
				break
			}
		}
		s.Tick(popID)
		if s.Score() < 0 {
			t.Fatalf("score went negative: %d", s.Score())
		}
		if s.Status() == StatusEnded {
			break
		}
	}
}

func TestSessionTimeoutEndsExactlyOnce(t *testing.T) {
	cfg := config.DefaultBubbleMathConfig()
	s := newTestSession(t, ModeClassic, 42)

	limit := cfg.Session.TimeLimitSeconds * 60
	for i := 0; i < limit+600; i++ {
		s.Tick(-1)
	}

	if s.Status() != StatusEnded {
		t.Fatal("session still active after time limit")
	}
	if s.TimeRemaining() != 0 {
		t.Errorf("time remaining %d, want 0", s.TimeRemaining())
	}

	// Further ticks are no-ops
	score := s.Score()
	questions := s.QuestionCount()
	for i := 0; i < 100; i++ {
		s.Tick(-1)
	}
	if s.Score() != score || s.QuestionCount() != questions {
		t.Error("session mutated after end")
	}
}

func TestSessionAccuracyZeroWithoutQuestions(t *testing.T) {
	s := newTestSession(t, ModeClassic, 42)
	s.ForceEnd()

	if s.Accuracy() != 0 {
		t.Errorf("accuracy %f, want 0 with no questions", s.Accuracy())
	}

	report := s.Report()
	if report.Accuracy != 0 || report.QuestionCount != 0 {
		t.Errorf("unexpected report %+v", report)
	}
}

func TestSessionReport(t *testing.T) {
	cfg := config.DefaultBubbleMathConfig()
	s := newTestSession(t, ModeClassic, 42)

	var correctID int
	for _, b := range s.Field().Bubbles() {
		if b.Correct {
			correctID = b.ID
		}
	}
	s.Tick(correctID)
	for i := 0; i <= cfg.Session.ResolveDelayTicks; i++ {
		s.Tick(-1)
	}
	s.ForceEnd()

	report := s.Report()
	if report.FinalScore != s.Score() {
		t.Errorf("report score %d != session score %d", report.FinalScore, s.Score())
	}
	if report.QuestionCount != 1 || report.CorrectCount != 1 {
		t.Errorf("report counts %d/%d, want 1/1", report.CorrectCount, report.QuestionCount)
	}
	if report.Accuracy != 1 {
		t.Errorf("report accuracy %f, want 1", report.Accuracy)
	}
	if report.Difficulty != "normal" {
		t.Errorf("report difficulty %q, want normal", report.Difficulty)
	}
}

func TestSessionBlitzUsesShorterLimit(t *testing.T) {
	cfg := config.DefaultBubbleMathConfig()
	s := newTestSession(t, ModeBlitz, 42)

	if s.TimeRemaining() != cfg.Session.BlitzTimeLimitSeconds {
		t.Errorf("blitz time remaining %d, want %d", s.TimeRemaining(), cfg.Session.BlitzTimeLimitSeconds)
	}
	if s.Mode() != ModeBlitz {
		t.Errorf("mode %v, want blitz", s.Mode())
	}
}

func TestSessionTimeRemainingCountsDown(t *testing.T) {
	cfg := config.DefaultBubbleMathConfig()
	s := newTestSession(t, ModeClassic, 42)

	if s.TimeRemaining() != cfg.Session.TimeLimitSeconds {
		t.Fatalf("initial time %d, want %d", s.TimeRemaining(), cfg.Session.TimeLimitSeconds)
	}

	// One second of ticks
	for i := 0; i < 60; i++ {
		s.Tick(-1)
	}
	if s.TimeRemaining() != cfg.Session.TimeLimitSeconds-1 {
		t.Errorf("after 1s time %d, want %d", s.TimeRemaining(), cfg.Session.TimeLimitSeconds-1)
	}
	if s.ElapsedSeconds() != 1 {
		t.Errorf("elapsed %d, want 1", s.ElapsedSeconds())
	}
}

func TestSessionRejectsBadArguments(t *testing.T) {
	cfg := config.DefaultBubbleMathConfig()

	if _, err := NewSession(cfg, "nightmare", ModeClassic, 80, 21, 60, 1); err == nil {
		t.Error("unknown tier accepted")
	}
	if _, err := NewSession(cfg, "normal", ModeClassic, 80, 21, 0, 1); err == nil {
		t.Error("zero tick rate accepted")
	}
	if _, err := NewSession(cfg, "normal", ModeClassic, 0, 21, 60, 1); err == nil {
		t.Error("zero width accepted")
	}

	bad := config.DefaultBubbleMathConfig()
	bad.Physics.Lift = -1
	if _, err := NewSession(bad, "normal", ModeClassic, 80, 21, 60, 1); err == nil {
		t.Error("invalid config accepted")
	}
}

func TestSessionDeterminism(t *testing.T) {
	run := func() (int, int, string) {
		s := newTestSession(t, ModeClassic, 987)
		for i := 0; i < 3000; i++ {
			popID := -1
			if i%97 == 0 {
				for _, b := range s.Field().Bubbles() {
					if b.State == BubbleLive {
						popID = b.ID
						break
					}
				}
			}
			s.Tick(popID)
		}
		return s.Score(), s.QuestionCount(), s.Round().Equation.Text
	}

	s1, q1, e1 := run()
	s2, q2, e2 := run()
	if s1 != s2 || q1 != q2 || e1 != e2 {
		t.Errorf("runs diverged: (%d,%d,%q) vs (%d,%d,%q)", s1, q1, e1, s2, q2, e2)
	}
}
