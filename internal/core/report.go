package core

// SessionReport is the session-end summary handed off to persistence.
// Accuracy is CorrectCount/QuestionCount, defined as 0 when no question
// was answered.
type SessionReport struct {
	FinalScore     int
	QuestionCount  int
	CorrectCount   int
	Accuracy       float64
	ElapsedSeconds int
	Difficulty     string
}

// Reporter is implemented by games that produce a session-end report.
// The platform checks for it when the game reaches game over.
type Reporter interface {
	Report() SessionReport
}
