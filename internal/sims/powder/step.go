package powder

// Step advances the simulation by one tick. Rows are traversed from the
// bottom up so a cell that falls lands in a position already visited this
// tick and cannot fall twice; reversing the order visibly changes the
// simulation. The update mask is scratch state scoped to this call.
func (w *World) Step() {
	if w.w <= 0 || w.h <= 0 {
		return
	}

	for i := range w.updated {
		w.updated[i] = false
	}

	for y := w.h - 1; y >= 0; y-- {
		for x := 0; x < w.w; x++ {
			i := w.idx(x, y)
			if w.updated[i] {
				continue
			}

			switch m := w.cells[i].Mat; {
			case m == Empty || m == Wall:
				w.updated[i] = true
			case m == Gunpowder:
				w.stepGunpowder(x, y)
			case m.IsPowder():
				w.stepPowder(x, y)
			case m.IsLiquid():
				w.stepLiquid(x, y)
			case m.IsGas():
				w.stepGas(x, y)
			case m == Fire:
				w.stepFire(x, y)
			case m == Lightning:
				w.stepLightning(x, y)
			case m == Human:
				w.stepHuman(x, y)
			case m == Zombie:
				w.stepZombie(x, y)
			case m == WetDirt:
				w.stepWetDirt(x, y)
			case m == Plant || m == Seaweed:
				w.stepPlantLike(x, y)
			case m == Wood || m == Coal:
				w.stepBurnableSolid(x, y)
			case m == Wire || m == Metal:
				w.stepConductor(x, y)
			case m == Ice:
				w.stepIce(x, y)
			default:
				w.updated[i] = true
			}
		}
	}

	w.tick++
	w.rebuildDisplay()
}

func (w *World) swap(i, j int) {
	w.cells[i], w.cells[j] = w.cells[j], w.cells[i]
}

// movePowder applies powder gravity: straight down into empty or liquid,
// else a random-direction diagonal slide. Reports whether the cell moved.
func (w *World) movePowder(x, y int) bool {
	i0 := w.idx(x, y)

	if w.inBounds(x, y+1) {
		ib := w.idx(x, y+1)
		b := w.cells[ib].Mat
		if b == Empty || b.IsLiquid() {
			w.swap(i0, ib)
			w.updated[ib] = true
			return true
		}
	}

	dir := -1
	if w.rng.Chance(50) {
		dir = 1
	}
	for i := 0; i < 2; i++ {
		nx := x + dir
		if i == 1 {
			nx = x - dir
		}
		ny := y + 1
		if !w.inBounds(nx, ny) {
			continue
		}
		ni := w.idx(nx, ny)
		e := w.cells[ni].Mat
		if e == Empty || e.IsLiquid() {
			w.swap(i0, ni)
			w.updated[ni] = true
			return true
		}
	}
	return false
}

func (w *World) stepPowder(x, y int) {
	i0 := w.idx(x, y)
	t := w.cells[i0].Mat

	if !w.movePowder(x, y) {
		w.updated[i0] = true
	}

	// Snow melts near heat.
	if t == Snow {
		melt := false
		for dy := -1; dy <= 1 && !melt; dy++ {
			for dx := -1; dx <= 1; dx++ {
				nx, ny := x+dx, y+dy
				if !w.inBounds(nx, ny) {
					continue
				}
				e := w.cells[w.idx(nx, ny)].Mat
				if e == Fire || e == Lava {
					melt = true
					break
				}
			}
		}
		if melt {
			w.cells[i0] = Cell{Mat: Water}
		}
	}

	// Sand under persistent water eventually seeds seaweed, spaced apart.
	if t == Sand {
		life := w.cells[i0].Life
		if w.inBounds(x, y-1) && w.cells[w.idx(x, y-1)].Mat == Water {
			life++
			if life > int32(w.cfg.Params.SeaweedSoakTicks) {
				nearbyWeed := false
				for wy := -2; wy <= 2 && !nearbyWeed; wy++ {
					for wx := -2; wx <= 2; wx++ {
						sx, sy := x+wx, y+wy
						if !w.inBounds(sx, sy) {
							continue
						}
						if w.cells[w.idx(sx, sy)].Mat == Seaweed {
							nearbyWeed = true
							break
						}
					}
				}
				if !nearbyWeed && w.inBounds(x, y-1) && w.cells[w.idx(x, y-1)].Mat == Water {
					w.cells[w.idx(x, y-1)] = Cell{Mat: Seaweed}
				}
				life = 0
			}
		} else {
			life = 0
		}
		w.cells[i0].Life = life
	}
}

func (w *World) stepLiquid(x, y int) {
	i0 := w.idx(x, y)
	t := w.cells[i0].Mat
	moved := false

	// Fall through empty or gas, or sink below a lighter liquid.
	if w.inBounds(x, y+1) {
		ib := w.idx(x, y+1)
		b := w.cells[ib].Mat
		if b == Empty || b.IsGas() {
			w.swap(i0, ib)
			w.updated[ib] = true
			moved = true
		} else if b.IsLiquid() && t.Density() > b.Density() {
			w.swap(i0, ib)
			w.updated[ib] = true
			moved = true
		}
	}

	// Lateral flow.
	if !moved {
		order := [2]int{-1, 1}
		if w.rng.Chance(50) {
			order[0], order[1] = order[1], order[0]
		}
		for _, dx := range order {
			nx := x + dx
			if !w.inBounds(nx, y) {
				continue
			}
			ni := w.idx(nx, y)
			e := w.cells[ni].Mat
			if e == Empty || e.IsGas() {
				w.swap(i0, ni)
				w.updated[ni] = true
				moved = true
				break
			} else if e.IsLiquid() && t.Density() > e.Density() && w.rng.Chance(50) {
				w.swap(i0, ni)
				w.updated[ni] = true
				moved = true
				break
			}
		}
	}

	if !moved {
		w.updated[i0] = true
	}

	// Neighbor reactions keyed on the liquid's pre-move material.
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

			if t == Water || t == SaltWater {
				if n.Mat == Fire {
					w.cells[ni] = Cell{Smoke, 15}
				} else if n.Mat == Lava {
					w.cells[ni] = Cell{Mat: Stone}
					if w.rng.Chance(50) {
						w.cells[i0] = Cell{Steam, 20}
					} else {
						w.cells[i0] = Cell{Mat: Stone}
					}
				}
			}

			if t == Oil || t == Ethanol {
				if n.Mat == Fire || n.Mat == Lava {
					w.cells[i0] = Cell{Fire, 25}
				}
			}

			if t == Acid {
				if n.Mat.IsDissolvable() {
					if w.rng.Chance(30) {
						w.cells[ni] = Cell{ToxicGas, 25}
					} else {
						w.cells[ni] = Cell{}
					}
					if w.rng.Chance(25) {
						w.cells[i0] = Cell{}
					}
				}
				if n.Mat == Water && w.rng.Chance(30) {
					w.cells[i0] = Cell{Mat: SaltWater}
					if w.rng.Chance(30) {
						w.cells[ni] = Cell{Steam, 20}
					}
				}
			}

			if t == Lava {
				if n.Mat.IsFlammable() {
					w.cells[ni] = Cell{Fire, 25}
				} else if n.Mat == Sand || n.Mat == Snow {
					w.cells[ni] = Cell{Mat: Glass}
				} else if n.Mat == Water || n.Mat == SaltWater {
					w.cells[ni] = Cell{Mat: Stone}
					if w.rng.Chance(50) {
						w.cells[i0] = Cell{Steam, 20}
					} else {
						w.cells[i0] = Cell{Mat: Stone}
					}
				} else if n.Mat == Ice {
					w.cells[ni] = Cell{Mat: Water}
				}
			}
		}
	}

	// Lava cools into stone over time.
	if t == Lava {
		c := &w.cells[i0]
		c.Life++
		if c.Life > int32(w.cfg.Params.LavaCoolTicks) {
			*c = Cell{Mat: Stone}
		}
	}

	// Water hydrates surrounding dirt.
	if t == Water || t == SaltWater {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				nx, ny := x+dx, y+dy
				if !w.inBounds(nx, ny) {
					continue
				}
				n := &w.cells[w.idx(nx, ny)]
				if n.Mat == Dirt || n.Mat == WetDirt {
					n.Mat = WetDirt
					n.Life = int32(w.cfg.Params.WetDirtLife)
				}
			}
		}
	}

	// Electrified water: spread charge, kill adjacent actors, decay.
	if (t == Water || t == SaltWater) && w.cells[i0].Life > 0 {
		q := w.cells[i0].Life
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

				if n.Mat == Water || n.Mat == SaltWater {
					if n.Life < q-1 {
						n.Life = q - 1
					}
				}
				if n.Mat == Human || n.Mat == Zombie {
					n = Cell{Mat: Ash}
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
}

func (w *World) stepGas(x, y int) {
	i0 := w.idx(x, y)
	t := w.cells[i0].Mat
	moved := false

	// Rise into empty space; hydrogen gets an extra attempt.
	tries := 1
	if t == Hydrogen {
		tries = 2
	}
	for n := 0; n < tries; n++ {
		if w.inBounds(x, y-1) && w.cells[w.idx(x, y-1)].Mat == Empty {
			iu := w.idx(x, y-1)
			w.swap(i0, iu)
			w.updated[iu] = true
			moved = true
			break
		}
	}

	// Random sideways or diagonal-up drift.
	if !moved {
		order := [2]int{-1, 1}
		if w.rng.Chance(50) {
			order[0], order[1] = order[1], order[0]
		}
		for _, dx := range order {
			nx := x + dx
			ny := y
			if w.rng.Chance(50) {
				ny = y - 1
			}
			if w.inBounds(nx, ny) && w.cells[w.idx(nx, ny)].Mat == Empty {
				ni := w.idx(nx, ny)
				w.swap(i0, ni)
				w.updated[ni] = true
				moved = true
				break
			}
		}
	}

	// Hydrogen detonates near heat; plain gas just catches fire.
	if t == Hydrogen || t == Gas {
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
					if t == Hydrogen {
						w.explode(x, y, 4)
					} else {
						w.cells[i0] = Cell{Fire, 12}
					}
				}
			}
		}
	}

	// Chlorine withers plants.
	if t == Chlorine {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				nx, ny := x+dx, y+dy
				if !w.inBounds(nx, ny) {
					continue
				}
				n := &w.cells[w.idx(nx, ny)]
				if n.Mat == Plant && w.rng.Chance(35) {
					*n = Cell{ToxicGas, 25}
				}
			}
		}
	}

	// Lifetime decay and condensation at the source cell.
	c := &w.cells[i0]
	c.Life--
	if c.Life <= 0 {
		switch t {
		case Steam:
			if w.rng.Chance(15) {
				*c = Cell{Mat: Water}
			} else {
				*c = Cell{}
			}
		case Smoke:
			if w.rng.Chance(8) {
				*c = Cell{Mat: Ash}
			} else {
				*c = Cell{}
			}
		default:
			*c = Cell{}
		}
	} else if !moved {
		w.updated[i0] = true
	}
}
