package grid

// MoveBy advances the cursor by count element cells in render order,
// skipping padding and wrapping at either end. Count 0 is a no-op, and
// MoveBy(MoveBy(z, k), -k) == z for any element z and integer k.
func (g *Grid) MoveBy(z, count int) int {
	if len(g.cells) == 0 {
		return z
	}
	seq, ok := g.index[z]
	if !ok {
		return g.cells[0]
	}
	n := len(g.cells)
	seq = ((seq+count)%n + n) % n
	return g.cells[seq]
}
