package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionPause) {
		t.Error("empty frame should have no actions")
	}

	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set(ActionPause) not visible")
	}
	if f.Has(ActionQuit) {
		t.Error("unrelated action set")
	}

	f.Clear()
	if f.Has(ActionPause) {
		t.Error("Clear() did not reset actions")
	}
}

func TestInputFrameTap(t *testing.T) {
	f := NewInputFrame()

	f.SetTap(10, 5)
	if !f.HasTap || f.TapX != 10 || f.TapY != 5 {
		t.Errorf("tap not recorded: %+v", f)
	}

	// Second tap in the same frame is dropped
	f.SetTap(20, 20)
	if f.TapX != 10 || f.TapY != 5 {
		t.Errorf("second tap overwrote first: %+v", f)
	}

	// Ordinal tap is also blocked once a tap exists
	f.SetTapOrdinal(3)
	if f.TapOrdinal != 0 {
		t.Error("ordinal tap accepted alongside coordinate tap")
	}

	f.Clear()
	if f.HasTap || f.TapX != 0 || f.TapY != 0 {
		t.Errorf("Clear() did not reset tap: %+v", f)
	}
}

func TestInputFrameTapOrdinal(t *testing.T) {
	f := NewInputFrame()

	f.SetTapOrdinal(0)
	if f.TapOrdinal != 0 {
		t.Error("zero ordinal accepted")
	}

	f.SetTapOrdinal(2)
	if f.TapOrdinal != 2 {
		t.Errorf("TapOrdinal = %d, expected 2", f.TapOrdinal)
	}

	// Coordinate tap blocked after an ordinal tap
	f.SetTap(1, 1)
	if f.HasTap {
		t.Error("coordinate tap accepted alongside ordinal tap")
	}

	f.Clear()
	if f.TapOrdinal != 0 {
		t.Error("Clear() did not reset ordinal")
	}
}

func TestActionString(t *testing.T) {
	if ActionPause.String() != "Pause" || ActionQuit.String() != "Quit" {
		t.Error("Action names wrong")
	}
	if Action(99).String() != "Unknown" {
		t.Error("unknown action should stringify to Unknown")
	}
}
