package engine

// decide runs the local decision procedure of spec.md section 4.C7 for
// robot r, whose fresh 3x3x3 observation is already stored in r.obs.
// tav is the BFS distance of the robot's current cell from the door.
func (e *Engine) decide(r *Robot, tav int) {
	r.ActiveFor++

	// 1. Total-block check.
	allWall := true
	for _, dir := range AllDirections {
		if r.obs[relIndex(dir.Vec().X, dir.Vec().Y, dir.Vec().Z)] != StateWall {
			allWall = false
			break
		}
	}
	if allWall {
		r.Active = false
		return
	}

	// 2. Settlement test.
	if e.canSettle(r) {
		r.settle()
		if r.ActiveFor != tav+1 {
			e.logger.Printf("engine: robot %d settled at active_for=%d, expected tav+1=%d", r.ID, r.ActiveFor, tav+1)
		}
		return
	}

	// 3. Prefer up.
	if r.LastMove != Down && r.obs[relIndex(0, 1, 0)] != StateWall {
		e.setMove(r, Up)
		return
	}

	// 4. Horizontal sweep, canonical order, skip axis-aligned with
	// external axis and the reverse of the last move.
	for _, d := range AllDirections {
		v := d.Vec()
		if v.X*r.ExternalAxis.X+v.Y*r.ExternalAxis.Y+v.Z*r.ExternalAxis.Z != 0 {
			continue
		}
		if r.LastMove != Unknown && v == r.LastMove.Vec().Neg() {
			continue
		}
		if r.obs[relIndex(v.X, v.Y, v.Z)] != StateWall {
			e.setMove(r, d)
			return
		}
	}

	// 5. Fall-through.
	e.setMove(r, Down)
}

// setMove implements the wall-hugging heuristic of spec.md section
// 4.C7: target is always recorded, but last_move/ever_moved are only
// updated when the chosen relative cell is Free rather than Occupied,
// so a robot that only ever pushed into occupied cells still counts as
// never having moved for settlement purposes.
func (e *Engine) setMove(r *Robot, d Direction) {
	v := d.Vec()
	r.Target = r.Position.Add(v)
	if r.obs[relIndex(v.X, v.Y, v.Z)] == StateFree {
		r.LastMove = d
		r.EverMoved = true
	}
}

// canSettle implements spec.md section 4.C7 step 2 in full: the
// ever_moved + three-axis-blocked precondition, followed by the
// reachability-preservation test run once on obs and once on the
// "both horizontal lids closed" variant obs2. Both checks must pass for
// settlement to be accepted.
func (e *Engine) canSettle(r *Robot) bool {
	if !r.EverMoved {
		return false
	}

	blockedAxis := func(a, b Direction) bool {
		return r.obs[relIndex(a.Vec().X, a.Vec().Y, a.Vec().Z)] == StateWall ||
			r.obs[relIndex(b.Vec().X, b.Vec().Y, b.Vec().Z)] == StateWall
	}
	if !blockedAxis(Up, Down) || !blockedAxis(Left, Right) || !blockedAxis(Forward, Back) {
		return false
	}

	obsPrime := r.obs
	obsPrime[centerIndex] = StateWall
	if !preservesReachability(&r.obs, &obsPrime) {
		return false
	}

	obs2 := r.obs
	for dx := -1; dx <= 1; dx++ {
		for dz := -1; dz <= 1; dz++ {
			obs2[relIndex(dx, 1, dz)] = StateWall
			obs2[relIndex(dx, -1, dz)] = StateWall
		}
	}
	obs2Prime := obs2
	obs2Prime[centerIndex] = StateWall
	if !preservesReachability(&obs2, &obs2Prime) {
		return false
	}

	return true
}

// preservesReachability checks every pair of relative cells (neither at
// the center) and rejects if any pair is reachable in before but not in
// after, per spec.md section 4.C7.
func preservesReachability(before, after *[27]CellState) bool {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				from := Vec3{dx, dy, dz}
				if from == (Vec3{}) {
					continue
				}
				for ex := -1; ex <= 1; ex++ {
					for ey := -1; ey <= 1; ey++ {
						for ez := -1; ez <= 1; ez++ {
							to := Vec3{ex, ey, ez}
							if to == (Vec3{}) {
								continue
							}
							if reachable(from, to, before) && !reachable(from, to, after) {
								return false
							}
						}
					}
				}
			}
		}
	}
	return true
}
