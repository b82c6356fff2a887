package engine

import "testing"

// TestPopEvent_InvalidID checks the documented -1 sentinel.
func TestPopEvent_InvalidID(t *testing.T) {
	e := NewEngine(1, 1, 1)
	if got := e.PopEvent(0); got != -1 {
		t.Errorf("pop_event on empty arena = %d, want -1", got)
	}
	e.AddRobot(0, 0, 0)
	if got := e.PopEvent(5); got != -1 {
		t.Errorf("pop_event(5) with one robot = %d, want -1", got)
	}
	if got := e.PopEvent(-1); got != -1 {
		t.Errorf("pop_event(-1) = %d, want -1", got)
	}
}

// TestPopEvent_IdempotentWithoutTick covers I8: two polls with no
// intervening tick must return NoChange, or at least the same
// non-Invalid tag both times.
func TestPopEvent_IdempotentWithoutTick(t *testing.T) {
	e := NewEngine(1, 1, 1)
	e.AddRobot(0, 0, 0)

	first := e.PopEvent(0)
	second := e.PopEvent(0)

	tag1, _ := UnpackEvent(first)
	tag2, _ := UnpackEvent(second)

	if tag1 == EventInvalid || tag2 == EventInvalid {
		t.Fatalf("unexpected Invalid tag: %v, %v", tag1, tag2)
	}
	if tag2 != EventNoChange && tag2 != tag1 {
		t.Errorf("second poll with no intervening tick: got %v, want NoChange or repeat of %v", tag2, tag1)
	}
}

// TestPopEvent_SettledTransitionReportsOnce checks that settling is
// reported as a single Settled transition, then NoChange thereafter.
func TestPopEvent_SettledTransitionReportsOnce(t *testing.T) {
	e := newTestEngine(1, 1, 1, 100, NewSequenceRandomSource(0))
	e.SetCell(0, 0, 0, PlaceDoor)

	e.Tick() // spawn
	e.PopEvent(0)
	e.Tick() // total-block settle

	tag, _ := UnpackEvent(e.PopEvent(0))
	if tag != EventSettled {
		t.Fatalf("expected Settled after the robot entombs itself, got %v", tag)
	}

	e.Tick()
	tag2, _ := UnpackEvent(e.PopEvent(0))
	if tag2 != EventNoChange {
		t.Errorf("expected NoChange once settled, got %v", tag2)
	}
}

// TestUnpackEvent_RoundTrip checks the packed (tag, direction) encoding.
func TestUnpackEvent_RoundTrip(t *testing.T) {
	for _, d := range append([]Direction{Unknown}, AllDirections[:]...) {
		for _, tag := range []EventTag{EventNoChange, EventMoving, EventSettled, EventStopped} {
			packed := int(tag) | (directionCode(d) << 3)
			gotTag, gotDir := UnpackEvent(packed)
			if gotTag != tag {
				t.Errorf("tag round-trip: got %v, want %v", gotTag, tag)
			}
			if d != Unknown && gotDir != d {
				t.Errorf("direction round-trip: got %v, want %v", gotDir, d)
			}
		}
	}
}
