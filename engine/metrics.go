package engine

// Metrics holds the scalar counters of spec.md section 4.C10.
type Metrics struct {
	SimulationSteps int
	TTotal          int
	TMax            int
	ETotal          int
	EMax            int
	Makespan        int
	Complete        bool

	// RobotSteps/RobotTime are indexed by robot id and grow alongside
	// the robot arena.
	RobotSteps []int
	RobotTime  []int
}

// growRobotMetrics extends the per-robot counters to cover every robot
// in the arena, called whenever a new robot is appended.
func (e *Engine) growRobotMetrics() {
	for len(e.metrics.RobotSteps) < len(e.robots) {
		e.metrics.RobotSteps = append(e.metrics.RobotSteps, 0)
		e.metrics.RobotTime = append(e.metrics.RobotTime, 0)
	}
}

// Makespan returns the tick index of the last update (monotone during a
// run; consumers freeze it at completion).
func (e *Engine) Makespan() int { return e.metrics.Makespan }

// TMax returns the maximum, over robots, of positional moves taken.
func (e *Engine) TMax() int { return e.metrics.TMax }

// TTotal returns the sum, over robots, of positional moves taken.
func (e *Engine) TTotal() int { return e.metrics.TTotal }

// EMax returns the maximum, over robots, of ticks spent present.
func (e *Engine) EMax() int { return e.metrics.EMax }

// ETotal returns the sum, over robots, of ticks spent present.
func (e *Engine) ETotal() int { return e.metrics.ETotal }

// SimulationSteps returns the number of ticks run so far.
func (e *Engine) SimulationSteps() int { return e.metrics.SimulationSteps }

// MetricsSnapshot returns a copy of the current Metrics, safe to retain
// across ticks (used by the comparison harness and the telemetry feed).
func (e *Engine) MetricsSnapshot() Metrics {
	m := e.metrics
	m.RobotSteps = append([]int(nil), e.metrics.RobotSteps...)
	m.RobotTime = append([]int(nil), e.metrics.RobotTime...)
	return m
}
