package engine

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// WorldPosition converts an integer grid coordinate to a floating-point
// world-space position for an external renderer, the way the voxel
// world example represents block positions as float vectors for
// rendering math. cellSize is the edge length of one grid cell in
// world units.
func WorldPosition(v Vec3, cellSize float32) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(v.X) * cellSize,
		float32(v.Y) * cellSize,
		float32(v.Z) * cellSize,
	}
}

// GridCell is the inverse of WorldPosition: it floors a world-space
// position back to the grid cell that contains it.
func GridCell(p mgl32.Vec3, cellSize float32) Vec3 {
	if cellSize <= 0 {
		cellSize = 1
	}
	return Vec3{
		X: int(math.Floor(float64(p.X() / cellSize))),
		Y: int(math.Floor(float64(p.Y() / cellSize))),
		Z: int(math.Floor(float64(p.Z() / cellSize))),
	}
}
