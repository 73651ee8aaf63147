package powder

func (w *World) stepWetDirt(x, y int) {
	i0 := w.idx(x, y)

	nearWater := false
	for dy := -1; dy <= 1 && !nearWater; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nx, ny := x+dx, y+dy
			if !w.inBounds(nx, ny) {
				continue
			}
			e := w.cells[w.idx(nx, ny)].Mat
			if e == Water || e == SaltWater {
				nearWater = true
				break
			}
		}
	}

	if !nearWater {
		c := &w.cells[i0]
		c.Life--
		if c.Life <= 0 {
			*c = Cell{Mat: Dirt}
		}
	}

	w.updated[i0] = true
}

func (w *World) stepPlantLike(x, y int) {
	i0 := w.idx(x, y)
	t := w.cells[i0].Mat

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !w.inBounds(nx, ny) {
				continue
			}
			e := w.cells[w.idx(nx, ny)].Mat
			if e == Fire || e == Lava {
				w.cells[i0] = Cell{Fire, 20}
			}
		}
	}

	if w.cells[i0].Mat == Fire {
		w.updated[i0] = true
		return
	}

	if t == Plant {
		// Grows upward when rooted on wet dirt.
		goodSoil := w.inBounds(x, y+1) && w.cells[w.idx(x, y+1)].Mat == WetDirt
		if goodSoil && w.rng.Chance(w.cfg.Params.PlantGrowthChance) {
			if w.inBounds(x, y-1) && w.cells[w.idx(x, y-1)].Mat == Empty {
				w.cells[w.idx(x, y-1)] = Cell{Mat: Plant}
			}
		}
	} else {
		// Seaweed grows upward from its topmost segment while submerged.
		underwater := w.inBounds(x, y-1) &&
			(w.cells[w.idx(x, y-1)].Mat == Water || w.cells[w.idx(x, y-1)].Mat == SaltWater)
		isTop := !w.inBounds(x, y-1) || w.cells[w.idx(x, y-1)].Mat != Seaweed
		if underwater && isTop && w.rng.Chance(w.cfg.Params.PlantGrowthChance) {
			if w.inBounds(x, y-1) {
				ni := w.idx(x, y-1)
				e := w.cells[ni].Mat
				if e == Water || e == SaltWater {
					w.cells[ni] = Cell{Mat: Seaweed}
				}
			}
		}
	}

	w.updated[i0] = true
}

func (w *World) stepBurnableSolid(x, y int) {
	i0 := w.idx(x, y)
	t := w.cells[i0].Mat

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !w.inBounds(nx, ny) {
				continue
			}
			e := w.cells[w.idx(nx, ny)].Mat
			if e == Fire || e == Lava {
				life := int32(25)
				if t == Coal {
					life = 35
				}
				w.cells[i0] = Cell{Fire, life}
			}
		}
	}

	w.updated[i0] = true
}

func (w *World) stepGunpowder(x, y int) {
	i0 := w.idx(x, y)

	// Any heat source detonates the pile in place.
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !w.inBounds(nx, ny) {
				continue
			}
			e := w.cells[w.idx(nx, ny)].Mat
			if e == Fire || e == Lava {
				w.explode(x, y, 5)
				w.updated[i0] = true
				return
			}
		}
	}

	// Otherwise it behaves as a powder.
	if !w.movePowder(x, y) {
		w.updated[i0] = true
	}
}

func (w *World) stepConductor(x, y int) {
	i0 := w.idx(x, y)

	if q := w.cells[i0].Life; q > 0 {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := x+dx, y+dy
				if !w.inBounds(nx, ny) {
					continue
				}
				ni := w.idx(nx, ny)
				n := w.cells[ni]

				if n.Mat == Wire || n.Mat == Metal {
					if n.Life < q-1 {
						n.Life = q - 1
					}
				}
				if n.Mat == Water || n.Mat == SaltWater {
					if n.Life < q-1 {
						n.Life = q - 1
					}
				}
				if n.Mat.IsFlammable() && w.rng.Chance(15) {
					if n.Mat == Gunpowder {
						w.explode(nx, ny, 5)
					} else {
						n = Cell{Fire, int32(15 + w.rng.RangeInt(0, 10))}
					}
				}
				if (n.Mat == Hydrogen || n.Mat == Gas) && w.rng.Chance(35) {
					w.explode(nx, ny, 4)
				}

				w.cells[ni] = n
			}
		}
		c := &w.cells[i0]
		c.Life--
		if c.Life < 0 {
			c.Life = 0
		}
	}

	w.updated[i0] = true
}

func (w *World) stepIce(x, y int) {
	i0 := w.idx(x, y)

	melt := false
	for dy := -1; dy <= 1 && !melt; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nx, ny := x+dx, y+dy
			if !w.inBounds(nx, ny) {
				continue
			}
			e := w.cells[w.idx(nx, ny)].Mat
			if e == Fire || e == Lava || e == Steam {
				if w.rng.Chance(25) {
					melt = true
					break
				}
			}
		}
	}

	if melt {
		w.cells[i0] = Cell{Mat: Water}
	}

	w.updated[i0] = true
}
