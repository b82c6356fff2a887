package engine

import "testing"

// TestDecide_TotalBlockSettles covers B2 / scenario 1: a robot entombed
// on all six sides becomes inactive via the total-block check.
func TestDecide_TotalBlockSettles(t *testing.T) {
	e := NewEngine(1, 1, 1)
	e.SetCell(0, 0, 0, PlaceDoor)
	r := newRobot(0, Vec3{0, 0, 0})
	e.observe(0, 0, 0, &r.obs)

	e.decide(&r, 0)

	if r.Active {
		t.Error("expected robot to become inactive (total-block)")
	}
}

// TestDecide_PreferUp covers scenario 3: an unobstructed Up takes
// priority over every other direction.
func TestDecide_PreferUp(t *testing.T) {
	e := NewEngine(1, 3, 1)
	for y := 0; y < 3; y++ {
		e.SetCell(0, y, 0, PlaceEmpty)
	}
	e.SetCell(0, 0, 0, PlaceDoor)

	r := newRobot(0, Vec3{0, 0, 0})
	e.observe(0, 0, 0, &r.obs)
	e.decide(&r, 0)

	if !r.Active {
		t.Fatal("expected robot to remain active")
	}
	if r.Target != (Vec3{0, 1, 0}) {
		t.Errorf("target = %v, want (0,1,0)", r.Target)
	}
	if r.LastMove != Up {
		t.Errorf("last_move = %v, want Up", r.LastMove)
	}
	if !r.EverMoved {
		t.Error("expected ever_moved=true after moving into a Free cell")
	}
}

// TestDecide_PushIntoOccupiedDoesNotSetEverMoved covers the wall-hugging
// heuristic of spec.md section 4.C7: moving into an Occupied cell
// records target but not last_move/ever_moved.
func TestDecide_PushIntoOccupiedDoesNotSetEverMoved(t *testing.T) {
	e := NewEngine(1, 3, 1)
	for y := 0; y < 3; y++ {
		e.SetCell(0, y, 0, PlaceEmpty)
	}
	e.SetCell(0, 0, 0, PlaceDoor)
	e.AddRobot(0, 1, 0) // occupies the Up cell

	r := newRobot(0, Vec3{0, 0, 0})
	e.observe(0, 0, 0, &r.obs)
	e.decide(&r, 0)

	if r.Target != (Vec3{0, 1, 0}) {
		t.Errorf("target = %v, want (0,1,0)", r.Target)
	}
	if r.EverMoved {
		t.Error("expected ever_moved to remain false when pushing into an Occupied cell")
	}
	if r.LastMove != Unknown {
		t.Errorf("last_move = %v, want Unknown", r.LastMove)
	}
}

// TestCanSettle_RejectedByReachability covers scenario 4: settling the
// center must be rejected when it would disconnect two opposite
// corners, forcing the horizontal sweep instead.
func TestCanSettle_RejectedByReachability(t *testing.T) {
	var n [27]CellState
	for i := range n {
		n[i] = StateWall
	}
	// Up, Left and Forward are Wall (satisfying the three-axis blocked
	// precondition); Down, Right and Back are Free but only mutually
	// adjacent through the center, so settling (removing the center)
	// would strand each of them from the other two.
	n[centerIndex] = StateFree
	n[relIndex(Down.Vec().X, Down.Vec().Y, Down.Vec().Z)] = StateFree
	n[relIndex(Right.Vec().X, Right.Vec().Y, Right.Vec().Z)] = StateFree
	n[relIndex(Back.Vec().X, Back.Vec().Y, Back.Vec().Z)] = StateFree

	r := Robot{EverMoved: true, obs: n}
	e := &Engine{logger: nullLogger()}

	if e.canSettle(&r) {
		t.Error("expected settlement to be rejected: Down/Right/Back are only mutually reachable through the center")
	}
}

// TestCanSettle_AcceptedWhenFullyEnclosed is the straightforward settle
// case: every neighbor is Wall except it still satisfies ever_moved, so
// nothing is reachable through the center and settlement is accepted.
func TestCanSettle_AcceptedWhenFullyEnclosed(t *testing.T) {
	var n [27]CellState
	for i := range n {
		n[i] = StateWall
	}
	n[centerIndex] = StateFree

	r := Robot{EverMoved: true, obs: n}
	e := &Engine{logger: nullLogger()}

	if !e.canSettle(&r) {
		t.Error("expected settlement to be accepted when fully enclosed")
	}
}

// TestCanSettle_RequiresEverMoved checks that a robot which has not yet
// moved never settles, even if otherwise enclosed.
func TestCanSettle_RequiresEverMoved(t *testing.T) {
	var n [27]CellState
	for i := range n {
		n[i] = StateWall
	}
	n[centerIndex] = StateFree

	r := Robot{EverMoved: false, obs: n}
	e := &Engine{logger: nullLogger()}

	if e.canSettle(&r) {
		t.Error("expected settlement to be rejected when ever_moved is false")
	}
}
