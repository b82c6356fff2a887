// Package engine implements the uniform-dispersion simulation core: a
// bounded 3D grid, a BFS distance field from a single door cell, and a
// population of finite-state robots that spread out from the door and
// settle so their final positions densely fill the walkable volume.
//
// The engine is single-threaded and cooperative (spec.md section 5): an
// *Engine value owns all of its state, performs no I/O beyond optional
// diagnostic logging, and never blocks. Callers drive it forward one
// Tick at a time.
package engine

import (
	"log"
	"math"
)

// MaxDimension is the largest size any single grid axis may take.
const MaxDimension = 20

// defaultActiveProbability is applied by NewEngine, per spec.md section
// 4.C8. Reset and InitGrid leave the current probability unchanged.
const defaultActiveProbability = 50

// infDistance stands in for BFS-unreachable ("infinite") cells.
const infDistance = math.MaxInt32

// Engine is the opaque handle holding every piece of process-wide state
// the original design described as globals (spec.md section 9): the
// grid, the robot arena, the event log, the metrics, and the injected
// RNG/logger.
type Engine struct {
	sizeX, sizeY, sizeZ int

	walkable  []bool
	distance  []int
	robotAt   []int // robot id occupying the cell, or -1
	door      Vec3
	available int

	robots []Robot

	prevState []lifecycle
	currState []lifecycle

	metrics Metrics

	catalog      []Map
	lastMapIndex int

	activeProbability int

	rng    RandomSource
	logger *log.Logger
}

// NewEngine constructs an Engine over an H x W x D grid, clamped to
// MaxDimension per axis, with the default built-in catalog, a
// math/rand-backed RandomSource, and a logger writing to log.Default().
func NewEngine(sizeX, sizeY, sizeZ int) *Engine {
	e := &Engine{
		catalog:           DefaultCatalog,
		activeProbability: defaultActiveProbability,
		rng:               NewDefaultRandomSource(),
		logger:            log.Default(),
	}
	e.InitGrid(sizeX, sizeY, sizeZ)
	return e
}

// SetRandomSource overrides the engine's RandomSource, e.g. with a
// deterministic stub for tests.
func (e *Engine) SetRandomSource(rng RandomSource) {
	if rng != nil {
		e.rng = rng
	}
}

// SetLogger overrides the diagnostic log sink.
func (e *Engine) SetLogger(l *log.Logger) {
	if l != nil {
		e.logger = l
	}
}

// SetCatalog replaces the engine's map catalog (for example with a
// slice built from DefaultCatalog by AppendMap).
func (e *Engine) SetCatalog(catalog []Map) {
	e.catalog = catalog
}

func clampDim(v int) int {
	if v < 1 {
		return 1
	}
	if v > MaxDimension {
		return MaxDimension
	}
	return v
}

// index returns the flat z-outer/y-mid/x-inner index of (x,y,z). Callers
// must have already bounds-checked.
func (e *Engine) index(x, y, z int) int {
	return z*e.sizeX*e.sizeY + y*e.sizeX + x
}

func (e *Engine) inBounds(x, y, z int) bool {
	return x >= 0 && x < e.sizeX && y >= 0 && y < e.sizeY && z >= 0 && z < e.sizeZ
}

// InitGrid clears all grid and robot state and resets the dimensions,
// per spec.md section 4.C3.
func (e *Engine) InitGrid(sizeX, sizeY, sizeZ int) {
	e.sizeX = clampDim(sizeX)
	e.sizeY = clampDim(sizeY)
	e.sizeZ = clampDim(sizeZ)

	n := e.sizeX * e.sizeY * e.sizeZ
	e.walkable = make([]bool, n)
	e.distance = make([]int, n)
	for i := range e.distance {
		e.distance[i] = infDistance
	}
	e.robotAt = make([]int, n)
	for i := range e.robotAt {
		e.robotAt[i] = -1
	}
	e.door = Vec3{}
	e.available = 0

	e.robots = e.robots[:0]
	e.prevState = e.prevState[:0]
	e.currState = e.currState[:0]
	e.metrics = Metrics{}
}

// maxRobots is the robot-arena capacity for the current grid: every
// walkable cell can hold at most one robot, per spec.md section 3.
func (e *Engine) maxRobots() int {
	return e.sizeX * e.sizeY * e.sizeZ
}

// GridSize returns the grid dimensions.
func (e *Engine) GridSize() (x, y, z int) {
	return e.sizeX, e.sizeY, e.sizeZ
}
