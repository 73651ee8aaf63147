package powder

// Census holds per-material cell counts for one point in time.
type Census struct {
	counts [materialCount]int
	total  int
}

// Census tallies the current grid contents.
func (w *World) Census() Census {
	var c Census
	c.total = len(w.cells)
	for i := range w.cells {
		c.counts[w.cells[i].Mat]++
	}
	return c
}

// Count returns the number of cells holding the given material.
func (c Census) Count(m Material) int {
	if m >= materialCount {
		return 0
	}
	return c.counts[m]
}

// NonEmpty returns the number of occupied cells.
func (c Census) NonEmpty() int {
	return c.total - c.counts[Empty]
}

// Total returns the grid area.
func (c Census) Total() int { return c.total }

// Powders returns the number of powder cells.
func (c Census) Powders() int {
	return c.sumWhere(Material.IsPowder)
}

// Liquids returns the number of liquid cells.
func (c Census) Liquids() int {
	return c.sumWhere(Material.IsLiquid)
}

// Gases returns the number of gas cells.
func (c Census) Gases() int {
	return c.sumWhere(Material.IsGas)
}

// Actors returns the number of human and zombie cells.
func (c Census) Actors() int {
	return c.counts[Human] + c.counts[Zombie]
}

func (c Census) sumWhere(pred func(Material) bool) int {
	n := 0
	for m := Material(0); m < materialCount; m++ {
		if pred(m) {
			n += c.counts[m]
		}
	}
	return n
}
