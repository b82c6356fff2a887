package engine

// lifecycle is the coarse per-robot state tracked by the event log
// (spec.md section 4.C9).
type lifecycle int

const (
	lifecycleIdle lifecycle = iota
	lifecycleActive
	lifecycleSettled
)

func lifecycleFromRobot(r Robot) lifecycle {
	if r.Active {
		return lifecycleActive
	}
	return lifecycleSettled
}

// SetActiveProbability clamps p to [0,100] and stores it as the
// per-robot activation probability used by Tick (spec.md section 6).
func (e *Engine) SetActiveProbability(p int) {
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	e.activeProbability = p
}

// Tick advances the simulation by one discrete step, per spec.md
// section 4.C8: activation sampling, decision, door respawn, move
// commit, robot-field rebuild, and completion detection.
func (e *Engine) Tick() {
	e.metrics.SimulationSteps++
	complete := true

	for i := range e.robots {
		r := &e.robots[i]
		if !r.Active {
			continue
		}

		roll := e.rng.RandomInt(0, 100)
		if roll > e.activeProbability {
			r.Sleeping = true
			complete = false
			continue
		}
		r.Sleeping = false

		e.observe(r.Position.X, r.Position.Y, r.Position.Z, &r.obs)
		tav := e.Distance(r.Position.X, r.Position.Y, r.Position.Z)
		e.decide(r, tav)
		complete = false
	}

	// Door respawn.
	doorIdx := -1
	if e.inBounds(e.door.X, e.door.Y, e.door.Z) {
		doorIdx = e.index(e.door.X, e.door.Y, e.door.Z)
	}
	if doorIdx >= 0 && e.robotAt[doorIdx] < 0 {
		if len(e.robots) < e.maxRobots() {
			r := newRobot(len(e.robots), e.door)
			e.robots = append(e.robots, r)
			e.prevState = append(e.prevState, lifecycleIdle)
			e.currState = append(e.currState, lifecycleIdle)
			e.growRobotMetrics()
			e.logger.Printf("engine: robot %d spawned at door %s", r.ID, e.door)
		}
		complete = false
	}

	// Commit.
	for i := range e.robots {
		r := &e.robots[i]
		if r.Active {
			if r.Target != r.Position {
				e.metrics.RobotSteps[r.ID]++
				e.metrics.TTotal++
				r.Position = r.Target
			}
			e.metrics.RobotTime[r.ID]++
			e.metrics.ETotal++
			if e.metrics.RobotSteps[r.ID] > e.metrics.TMax {
				e.metrics.TMax = e.metrics.RobotSteps[r.ID]
			}
			if e.metrics.RobotTime[r.ID] > e.metrics.EMax {
				e.metrics.EMax = e.metrics.RobotTime[r.ID]
			}
		} else {
			r.SettledAge++
		}
	}

	e.rebuildRobotField()
	e.metrics.Makespan = e.metrics.SimulationSteps
	e.metrics.Complete = complete
}

// IsComplete reports whether the simulation has finished: no robot was
// active and no respawn occurred at the start of the most recent tick
// (spec.md section 4.C8).
func (e *Engine) IsComplete() bool {
	return e.metrics.Complete
}
