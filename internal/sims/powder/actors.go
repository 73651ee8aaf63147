package powder

func (w *World) stepFire(x, y int) {
	i0 := w.idx(x, y)

	// Chance to flicker upward through empty space or gas.
	if w.inBounds(x, y-1) {
		iu := w.idx(x, y-1)
		up := w.cells[iu].Mat
		if (up == Empty || up.IsGas()) && w.rng.Chance(w.cfg.Params.FireFlickerChance) {
			w.swap(i0, iu)
			w.updated[iu] = true
		}
	}

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

			if n.Mat.IsFlammable() && w.rng.Chance(w.cfg.Params.FireIgniteChance) {
				if n.Mat == Gunpowder {
					w.explode(nx, ny, 5)
				} else {
					n = Cell{Fire, int32(15 + w.rng.RangeInt(0, 10))}
				}
			}
			if n.Mat == Water || n.Mat == SaltWater {
				w.cells[i0] = Cell{Smoke, 15}
			}
			if (n.Mat == Wire || n.Mat == Metal) && w.rng.Chance(5) {
				if n.Life < 5 {
					n.Life = 5
				}
			}

			w.cells[ni] = n
		}
	}

	// Fire burns out into smoke.
	c := &w.cells[i0]
	c.Life--
	if c.Life <= 0 {
		*c = Cell{Smoke, 15}
	}
	w.updated[i0] = true
}

func (w *World) stepLightning(x, y int) {
	i0 := w.idx(x, y)

	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !w.inBounds(nx, ny) {
				continue
			}
			ni := w.idx(nx, ny)
			n := w.cells[ni]
			e := n.Mat

			if e == Wire || e == Metal {
				if n.Life < 12 {
					n.Life = 12
				}
			}
			if e == Water || e == SaltWater {
				if n.Life < 8 {
					n.Life = 8
				}
			}
			if e.IsFlammable() {
				if e == Gunpowder {
					w.explode(nx, ny, 6)
				} else {
					n = Cell{Fire, int32(20 + w.rng.RangeInt(0, 10))}
				}
			}
			if e == Hydrogen || e == Gas {
				w.explode(nx, ny, 4)
			}

			w.cells[ni] = n
		}
	}

	c := &w.cells[i0]
	c.Life--
	if c.Life <= 0 {
		*c = Cell{}
	}
	w.updated[i0] = true
}

func (w *World) stepHuman(x, y int) {
	i0 := w.idx(x, y)

	// Hazards kill on contact, electrified water included.
	killed := false
	for dy := -1; dy <= 1 && !killed; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nx, ny := x+dx, y+dy
			if !w.inBounds(nx, ny) {
				continue
			}
			n := w.cells[w.idx(nx, ny)]
			if n.Mat.IsHazard() || ((n.Mat == Water || n.Mat == SaltWater) && n.Life > 0) {
				w.cells[i0] = Cell{Mat: Ash}
				killed = true
				break
			}
		}
	}
	if killed {
		w.updated[i0] = true
		return
	}

	// Animation tick.
	w.cells[i0].Life++

	// Fall through air and gas.
	if w.inBounds(x, y+1) {
		ib := w.idx(x, y+1)
		b := w.cells[ib].Mat
		if b == Empty || b.IsGas() {
			w.swap(i0, ib)
			w.updated[ib] = true
			return
		}
	}

	// First zombie found in the search window, scan order.
	sight := w.cfg.Params.ActorSight
	zx := 0
	seen := false
	for ry := -sight; ry <= sight && !seen; ry++ {
		for rx := -sight; rx <= sight; rx++ {
			nx, ny := x+rx, y+ry
			if !w.inBounds(nx, ny) {
				continue
			}
			if w.cells[w.idx(nx, ny)].Mat == Zombie {
				zx = nx
				seen = true
				break
			}
		}
	}

	// Fight adjacent zombies.
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
			if n.Mat == Zombie && w.rng.Chance(35) {
				if w.rng.Chance(60) {
					n = Cell{Fire, int32(10 + w.rng.RangeInt(0, 10))}
				} else {
					n = Cell{Mat: Ash}
				}
			}
			w.cells[ni] = n
		}
	}

	// Run away from a seen zombie, otherwise wander.
	dir := -1
	if w.rng.Chance(50) {
		dir = 1
	}
	if seen {
		dir = -1
		if zx < x {
			dir = 1
		}
	}

	if !w.tryWalk(x, y, x+dir, y) {
		if w.inBounds(x+dir, y-1) &&
			w.cells[w.idx(x+dir, y-1)].Mat == Empty &&
			w.cells[w.idx(x, y-1)].Mat == Empty &&
			w.rng.Chance(70) {
			w.swap(i0, w.idx(x, y-1))
		} else {
			alt := -1
			if w.rng.Chance(50) {
				alt = 1
			}
			w.tryWalk(x, y, x+alt, y)
		}
	}

	w.updated[i0] = true
}

func (w *World) stepZombie(x, y int) {
	i0 := w.idx(x, y)

	// Hazards, electrified water included.
	killed := false
	for dy := -1; dy <= 1 && !killed; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nx, ny := x+dx, y+dy
			if !w.inBounds(nx, ny) {
				continue
			}
			n := w.cells[w.idx(nx, ny)]
			if n.Mat.IsHazard() || ((n.Mat == Water || n.Mat == SaltWater) && n.Life > 0) {
				w.cells[i0] = Cell{Fire, 15}
				killed = true
				break
			}
		}
	}
	if w.cells[i0].Mat != Zombie {
		w.updated[i0] = true
		return
	}

	w.cells[i0].Life++

	if w.inBounds(x, y+1) {
		ib := w.idx(x, y+1)
		b := w.cells[ib].Mat
		if b == Empty || b.IsGas() {
			w.swap(i0, ib)
			w.updated[ib] = true
			return
		}
	}

	sight := w.cfg.Params.ActorSight
	hx := 0
	seen := false
	for ry := -sight; ry <= sight && !seen; ry++ {
		for rx := -sight; rx <= sight; rx++ {
			nx, ny := x+rx, y+ry
			if !w.inBounds(nx, ny) {
				continue
			}
			if w.cells[w.idx(nx, ny)].Mat == Human {
				hx = nx
				seen = true
				break
			}
		}
	}

	// Infect or burn adjacent humans.
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
			if n.Mat == Human {
				if w.rng.Chance(70) {
					n = Cell{Mat: Zombie}
				} else {
					n = Cell{Fire, 10}
				}
			}
			w.cells[ni] = n
		}
	}

	// Chase a seen human, otherwise wander.
	dir := -1
	if w.rng.Chance(50) {
		dir = 1
	}
	if seen {
		dir = -1
		if hx > x {
			dir = 1
		}
	}

	if !w.tryWalk(x, y, x+dir, y) {
		if w.inBounds(x+dir, y-1) &&
			w.cells[w.idx(x+dir, y-1)].Mat == Empty &&
			w.cells[w.idx(x, y-1)].Mat == Empty &&
			w.rng.Chance(70) {
			w.swap(i0, w.idx(x, y-1))
		} else {
			alt := -1
			if w.rng.Chance(50) {
				alt = 1
			}
			w.tryWalk(x, y, x+alt, y)
		}
	}

	w.updated[i0] = true
}

// tryWalk moves an actor to (tx, ty) when the destination is empty or gas.
func (w *World) tryWalk(x, y, tx, ty int) bool {
	if !w.inBounds(tx, ty) {
		return false
	}
	from, to := w.idx(x, y), w.idx(tx, ty)
	dst := w.cells[to].Mat
	if dst == Empty || dst.IsGas() {
		w.swap(from, to)
		return true
	}
	return false
}
