package engine

// Robot is a single dispersion-robot record (spec.md section 3). Robots
// are held by value inside Engine.robots and are never removed; a
// settled robot simply stops changing position.
type Robot struct {
	ID       int
	Position Vec3
	Target   Vec3

	// ExternalAxis is the nominal "up" axis of the world. It is fixed to
	// +Y and never rotated by the engine; kept for compatibility with a
	// future variant that tilts the world, per spec.md section 3.
	ExternalAxis Vec3

	PrimaryDir   Direction
	SecondaryDir Direction
	LastMove     Direction

	Sleeping  bool
	EverMoved bool
	ActiveFor int
	Active    bool

	SettledAge int

	obs [27]CellState
}

// settledAgeWall is the settled age beyond which a settled robot is
// visually indistinguishable from a wall, per spec.md section 3.
const settledAgeWall = 5

// newRobot constructs a fresh active robot at pos.
func newRobot(id int, pos Vec3) Robot {
	return Robot{
		ID:           id,
		Position:     pos,
		Target:       pos,
		ExternalAxis: Up.Vec(),
		PrimaryDir:   Unknown,
		SecondaryDir: Unknown,
		LastMove:     Unknown,
		Active:       true,
	}
}

// settle freezes the robot in place, as spec.md section 4.C7 step 1/2
// describes: active=false, settled_age reset to 0.
func (r *Robot) settle() {
	r.Active = false
	r.SettledAge = 0
}
