package powder

// PlaceBrush fills every cell within the Euclidean radius of (cx, cy) with
// the material. Fire and gases receive a starting lifetime; Lightning is
// routed to vertical bolt placement instead of an area fill.
func (w *World) PlaceBrush(cx, cy, radius int, m Material) {
	if m == Lightning {
		w.placeLightning(cx, cy)
		w.rebuildDisplay()
		return
	}

	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			x, y := cx+dx, cy+dy
			if !w.inBounds(x, y) {
				continue
			}
			var life int32
			switch {
			case m == Fire:
				life = int32(w.cfg.Params.BrushFireLife)
			case m.IsGas():
				life = int32(w.cfg.Params.BrushGasLife)
			}
			w.cells[w.idx(x, y)] = Cell{m, life}
		}
	}
	w.rebuildDisplay()
}

// placeLightning drops a bolt from (cx, cy) straight down through empty
// space and gas, fills the traversed path, and electrifies water directly
// below the impact point.
func (w *World) placeLightning(cx, cy int) {
	if !w.inBounds(cx, cy) {
		return
	}

	x, y := cx, cy
	for y+1 < w.h {
		below := w.cells[w.idx(x, y+1)].Mat
		if below != Empty && !below.IsGas() {
			break
		}
		y++
	}

	for yy := cy; yy <= y; yy++ {
		w.cells[w.idx(x, yy)] = Cell{Lightning, 2}
	}

	if y+1 < w.h {
		c := &w.cells[w.idx(x, y+1)]
		if c.Mat == Water || c.Mat == SaltWater {
			if c.Life < 8 {
				c.Life = 8
			}
		}
	}
}

// explode converts every destructible cell within the radius into fire,
// smoke or gas. Wall, stone, glass, metal, wire and ice are blast-proof.
func (w *World) explode(cx, cy, r int) {
	r2 := r * r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			x, y := cx+dx, cy+dy
			if !w.inBounds(x, y) {
				continue
			}
			i := w.idx(x, y)
			switch w.cells[i].Mat {
			case Wall, Stone, Glass, Metal, Wire, Ice:
			default:
				roll := w.rng.RangeInt(1, 100)
				switch {
				case roll <= 50:
					w.cells[i] = Cell{Fire, int32(15 + w.rng.RangeInt(0, 10))}
				case roll <= 80:
					w.cells[i] = Cell{Smoke, 20}
				default:
					w.cells[i] = Cell{Gas, 20}
				}
			}
		}
	}
}
