package forest

// neighborInfo summarizes the Moore neighborhood of one cell, read entirely
// from the previous tick's frame.
type neighborInfo struct {
	trees      int
	fires      int
	underbrush float64
}

var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// neighborhood aggregates the up-to-eight neighbors of the cell at idx.
// Out-of-grid neighbors contribute nothing: the grid does not wrap, and the
// bounds check is symmetric on both axes. A neighbor counts as a tree when
// its tree value is positive and as a fire when it is burning, one each
// regardless of magnitude; underbrush is summed exactly.
func neighborhood(f *Frame, idx int) neighborInfo {
	row := idx / f.W
	col := idx % f.W

	var n neighborInfo
	for _, off := range neighborOffsets {
		nr := row + off[0]
		nc := col + off[1]
		if nr < 0 || nr >= f.H || nc < 0 || nc >= f.W {
			continue
		}
		c := f.Cells[nr*f.W+nc]
		if c.Tree > 0 {
			n.trees++
		}
		if c.FireRemaining > 0 {
			n.fires++
		}
		n.underbrush += float64(c.Underbrush)
	}
	return n
}
