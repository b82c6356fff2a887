package engine

import "testing"

func allFree() *[27]CellState {
	var n [27]CellState
	for i := range n {
		n[i] = StateFree
	}
	return &n
}

// TestReachable_Symmetric checks round-trip property R2: reachable is
// symmetric in its two endpoints.
func TestReachable_Symmetric(t *testing.T) {
	n := allFree()
	n[relIndex(0, 0, 0)] = StateWall // center itself is irrelevant to the pairs below

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
							if reachable(from, to, n) != reachable(to, from, n) {
								t.Fatalf("reachable not symmetric for %v <-> %v", from, to)
							}
						}
					}
				}
			}
		}
	}
}

// TestReachable_WallEndpointIsFalse checks that a Wall endpoint is
// always unreachable, regardless of the rest of the neighborhood.
func TestReachable_WallEndpointIsFalse(t *testing.T) {
	n := allFree()
	n[relIndex(1, 0, 0)] = StateWall

	if reachable(Vec3{1, 0, 0}, Vec3{-1, 0, 0}, n) {
		t.Error("expected false when the from-cell is Wall")
	}
	if reachable(Vec3{-1, 0, 0}, Vec3{1, 0, 0}, n) {
		t.Error("expected false when the to-cell is Wall")
	}
}

// TestReachable_BlockedCorridor checks that a fully walled ring around
// the center correctly isolates two opposite faces from each other when
// the only path between them would cross through the center.
func TestReachable_BlockedCorridor(t *testing.T) {
	n := allFree()
	// Wall off every cell except the two opposite face centers and the
	// world center, so the only 6-connected path between them is
	// through the center.
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				v := Vec3{dx, dy, dz}
				switch v {
				case Vec3{1, 0, 0}, Vec3{-1, 0, 0}, Vec3{0, 0, 0}:
					n[relIndex(dx, dy, dz)] = StateFree
				default:
					n[relIndex(dx, dy, dz)] = StateWall
				}
			}
		}
	}

	if !reachable(Vec3{1, 0, 0}, Vec3{-1, 0, 0}, n) {
		t.Error("expected the two faces to be reachable through the free center")
	}

	n[relIndex(0, 0, 0)] = StateWall
	if reachable(Vec3{1, 0, 0}, Vec3{-1, 0, 0}, n) {
		t.Error("expected the two faces to become unreachable once the center is walled")
	}
}
