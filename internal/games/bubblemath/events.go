package bubblemath

// FieldEvent is an event raised by the bubble field during a tick or a pop.
type FieldEvent interface {
	fieldEvent()
}

// PoppedEvent is raised when a live bubble is popped by player input.
type PoppedEvent struct {
	ID      int
	Value   int
	Correct bool
}

func (PoppedEvent) fieldEvent() {}

// EscapedEvent is raised exactly once when the correct bubble drifts off the
// top of the field unpopped.
type EscapedEvent struct {
	ID int
}

func (EscapedEvent) fieldEvent() {}
