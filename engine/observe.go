package engine

// observe fills a 27-element neighborhood buffer with the CellState of
// every cell in the 3x3x3 block centered on (x,y,z), per spec.md
// section 4.C5. The ordered triple loop runs i in {x-1,x,x+1}, j in
// {y-1,y,y+1}, k in {z-1,z,z+1}.
func (e *Engine) observe(x, y, z int, out *[27]CellState) {
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			for k := -1; k <= 1; k++ {
				out[relIndex(i, j, k)] = e.cellState(x+i, y+j, z+k)
			}
		}
	}
}
