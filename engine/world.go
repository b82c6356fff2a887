package engine

// CellValue is the placement value accepted by SetCell (spec.md section
// 4.C3): v in {Empty, Wall, ActiveRobot, SettledRobot, Door}.
type CellValue int

const (
	PlaceEmpty CellValue = iota
	PlaceWall
	PlaceActiveRobot
	PlaceSettledRobot
	PlaceDoor
)

// SetCell updates the walkability layer at (x,y,z) and applies the
// placement side effects of spec.md section 4.C3. Out-of-bounds
// coordinates are silently ignored (spec.md section 7).
func (e *Engine) SetCell(x, y, z int, v CellValue) {
	if !e.inBounds(x, y, z) {
		return
	}
	idx := e.index(x, y, z)
	wasWalkable := e.walkable[idx]

	switch v {
	case PlaceWall:
		e.walkable[idx] = false
		if id := e.robotAt[idx]; id >= 0 && e.robots[id].Active {
			// Entombing an active robot forces it settled, already aged.
			e.robots[id].settle()
			e.robots[id].SettledAge = settledAgeWall + 1
		}
	case PlaceEmpty:
		e.walkable[idx] = true
	case PlaceActiveRobot, PlaceSettledRobot:
		e.walkable[idx] = true
		if e.robotAt[idx] < 0 {
			e.appendRobotAt(Vec3{x, y, z}, v == PlaceActiveRobot)
		}
	case PlaceDoor:
		e.walkable[idx] = true
		e.door = Vec3{x, y, z}
	}

	if e.walkable[idx] != wasWalkable {
		if e.walkable[idx] {
			e.available++
		} else {
			e.available--
		}
	}
}

// appendRobotAt appends a new robot at pos, honoring the arena capacity
// (spec.md section 7: overflow is silently suppressed).
func (e *Engine) appendRobotAt(pos Vec3, active bool) {
	if len(e.robots) >= e.maxRobots() {
		return
	}
	r := newRobot(len(e.robots), pos)
	r.Active = active
	if !active {
		r.EverMoved = true
	}
	e.robots = append(e.robots, r)
	e.prevState = append(e.prevState, lifecycleIdle)
	e.currState = append(e.currState, lifecycleIdle)
	e.growRobotMetrics()
	e.rebuildRobotField()
}

// AddRobot appends a new active robot at (x,y,z), per the external
// interface of spec.md section 6. Out-of-bounds coordinates are a no-op.
func (e *Engine) AddRobot(x, y, z int) {
	if !e.inBounds(x, y, z) {
		return
	}
	idx := e.index(x, y, z)
	if e.robotAt[idx] >= 0 {
		return
	}
	e.appendRobotAt(Vec3{x, y, z}, true)
}

// SetStartPosition retargets the door cell, per spec.md section 6. The
// straight-through (x,y,z) convention is used throughout this engine;
// spec.md section 9 notes a competing compatibility shim swaps the
// arguments, which this implementation deliberately does not replicate.
func (e *Engine) SetStartPosition(x, y, z int) {
	if !e.inBounds(x, y, z) {
		return
	}
	idx := e.index(x, y, z)
	if !e.walkable[idx] {
		e.walkable[idx] = true
		e.available++
	}
	e.door = Vec3{x, y, z}
}

// LoadMap decodes catalog entry i into the grid, sets the door, runs
// BFS, and resets metrics/events (spec.md section 4.C3). An
// out-of-range index loads entry 0 when the catalog is non-empty and is
// a no-op otherwise (spec.md section 7).
func (e *Engine) LoadMap(i int) {
	if len(e.catalog) == 0 {
		return
	}
	if i < 0 || i >= len(e.catalog) {
		i = 0
	}
	m := e.catalog[i]
	e.lastMapIndex = i

	e.InitGrid(m.SizeX, m.SizeY, m.SizeZ)
	n := m.bitLen()
	e.available = 0
	for idx := 0; idx < n && idx < len(e.walkable); idx++ {
		if m.bitAt(idx) {
			e.walkable[idx] = true
			e.available++
		}
	}
	e.door = m.Door
	e.BFS()
}

// Reset reloads the last loaded map index and resets metrics, per
// spec.md section 4.C3 (round-trip property R1).
func (e *Engine) Reset() {
	e.LoadMap(e.lastMapIndex)
}

// CellView returns the externally-visible CellKind at (x,y,z), per
// spec.md section 4.C3. Out-of-bounds coordinates return Wall.
func (e *Engine) CellView(x, y, z int) CellKind {
	if !e.inBounds(x, y, z) {
		return Wall
	}
	if (Vec3{x, y, z}) == e.door {
		return Door
	}
	idx := e.index(x, y, z)
	if id := e.robotAt[idx]; id >= 0 {
		r := &e.robots[id]
		switch {
		case r.Active && r.Sleeping:
			return SleepingRobot
		case r.Active:
			return ActiveRobot
		default:
			return SettledRobot
		}
	}
	if e.walkable[idx] {
		return Empty
	}
	return Wall
}

// cellState returns the internal neighborhood code for (x,y,z), per
// spec.md section 4.C3. Out-of-bounds or non-walkable cells, and cells
// holding an inactive robot, are Wall; cells holding an active robot are
// Occupied; remaining walkable cells are Free.
func (e *Engine) cellState(x, y, z int) CellState {
	if !e.inBounds(x, y, z) {
		return StateWall
	}
	idx := e.index(x, y, z)
	if !e.walkable[idx] {
		return StateWall
	}
	if id := e.robotAt[idx]; id >= 0 {
		if e.robots[id].Active {
			return StateOccupied
		}
		return StateWall
	}
	return StateFree
}

// rebuildRobotField clears robotAt and reassigns it by ascending robot
// id, earliest-id-wins on collisions (spec.md section 4.C3).
func (e *Engine) rebuildRobotField() {
	for i := range e.robotAt {
		e.robotAt[i] = -1
	}
	for i := range e.robots {
		r := &e.robots[i]
		if !e.inBounds(r.Position.X, r.Position.Y, r.Position.Z) {
			continue
		}
		idx := e.index(r.Position.X, r.Position.Y, r.Position.Z)
		if e.robotAt[idx] < 0 && e.walkable[idx] {
			e.robotAt[idx] = r.ID
		}
	}
}

// AvailableCells returns the number of walkable cells in the current map
// (spec.md section 4.C10).
func (e *Engine) AvailableCells() int {
	return e.available
}

// RobotCount returns the number of robots ever appended to the arena.
func (e *Engine) RobotCount() int {
	return len(e.robots)
}

// Distance returns the BFS distance from the door to (x,y,z), or
// infDistance if unreachable or out of bounds.
func (e *Engine) Distance(x, y, z int) int {
	if !e.inBounds(x, y, z) {
		return infDistance
	}
	return e.distance[e.index(x, y, z)]
}

// Door returns the current door coordinate.
func (e *Engine) Door() Vec3 {
	return e.door
}
