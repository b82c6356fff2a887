package engine

// reachable decides whether the relative cells from and to (each in
// {-1,0,1}^3) are mutually reachable through 6-connected non-Wall cells
// of neighborhood, per spec.md section 4.C6. If either endpoint is
// Wall, the answer is false. Otherwise a fixed-point expansion of a
// 3x3x3 boolean reach set is performed until no new cell is added
// (worst case 27 iterations).
func reachable(from, to Vec3, neighborhood *[27]CellState) bool {
	fromIdx := relIndex(from.X, from.Y, from.Z)
	toIdx := relIndex(to.X, to.Y, to.Z)

	if neighborhood[fromIdx] == StateWall || neighborhood[toIdx] == StateWall {
		return false
	}

	var reached [27]bool
	reached[fromIdx] = true

	for changed := true; changed; {
		changed = false
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				for dz := -1; dz <= 1; dz++ {
					idx := relIndex(dx, dy, dz)
					if !reached[idx] || neighborhood[idx] == StateWall {
						continue
					}
					for _, dir := range AllDirections {
						nx, ny, nz := dx+dir.Vec().X, dy+dir.Vec().Y, dz+dir.Vec().Z
						if nx < -1 || nx > 1 || ny < -1 || ny > 1 || nz < -1 || nz > 1 {
							continue
						}
						nIdx := relIndex(nx, ny, nz)
						if reached[nIdx] || neighborhood[nIdx] == StateWall {
							continue
						}
						reached[nIdx] = true
						changed = true
					}
				}
			}
		}
	}

	return reached[toIdx]
}
