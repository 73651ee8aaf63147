package powder

import "image/color"

// displayChargedBit flags electrified water in the display byte so the
// renderer can pulse it without consulting cell lifetimes.
const displayChargedBit = 0x80

func displayByte(c Cell) uint8 {
	v := uint8(c.Mat)
	if (c.Mat == Water || c.Mat == SaltWater) && c.Life > 0 {
		v |= displayChargedBit
	}
	return v
}

func (w *World) rebuildDisplay() {
	out := w.display.Cells()
	for i, c := range w.cells {
		out[i] = displayByte(c)
	}
}

var powderPalette = buildPowderPalette()

// Palette exposes the color palette used for rendering the powder world,
// indexed by display byte.
func (w *World) Palette() []color.RGBA {
	return powderPalette
}

func buildPowderPalette() []color.RGBA {
	palette := make([]color.RGBA, 256)
	for i := range palette {
		if i&displayChargedBit != 0 {
			palette[i] = color.RGBA{R: 255, G: 238, B: 80, A: 255}
			continue
		}
		palette[i] = materialColor(Material(i))
	}
	return palette
}

func materialColor(m Material) color.RGBA {
	switch m {
	case Sand:
		return color.RGBA{R: 216, G: 184, B: 99, A: 255}
	case Gunpowder:
		return color.RGBA{R: 90, G: 90, B: 80, A: 255}
	case Ash:
		return color.RGBA{R: 120, G: 116, B: 110, A: 255}
	case Snow:
		return color.RGBA{R: 235, G: 240, B: 248, A: 255}
	case Water:
		return color.RGBA{R: 48, G: 110, B: 215, A: 255}
	case SaltWater:
		return color.RGBA{R: 70, G: 135, B: 200, A: 255}
	case Oil:
		return color.RGBA{R: 80, G: 60, B: 35, A: 255}
	case Ethanol:
		return color.RGBA{R: 200, G: 215, B: 235, A: 255}
	case Acid:
		return color.RGBA{R: 150, G: 230, B: 60, A: 255}
	case Lava:
		return color.RGBA{R: 255, G: 95, B: 35, A: 255}
	case Mercury:
		return color.RGBA{R: 175, G: 180, B: 190, A: 255}
	case Stone:
		return color.RGBA{R: 130, G: 130, B: 130, A: 255}
	case Glass:
		return color.RGBA{R: 190, G: 210, B: 215, A: 255}
	case Wall:
		return color.RGBA{R: 75, G: 75, B: 85, A: 255}
	case Wood:
		return color.RGBA{R: 125, G: 85, B: 45, A: 255}
	case Plant:
		return color.RGBA{R: 60, G: 160, B: 70, A: 255}
	case Metal:
		return color.RGBA{R: 155, G: 160, B: 170, A: 255}
	case Wire:
		return color.RGBA{R: 180, G: 130, B: 60, A: 255}
	case Ice:
		return color.RGBA{R: 165, G: 215, B: 245, A: 255}
	case Coal:
		return color.RGBA{R: 45, G: 45, B: 45, A: 255}
	case Dirt:
		return color.RGBA{R: 110, G: 80, B: 50, A: 255}
	case WetDirt:
		return color.RGBA{R: 80, G: 58, B: 38, A: 255}
	case Seaweed:
		return color.RGBA{R: 40, G: 130, B: 90, A: 255}
	case Smoke:
		return color.RGBA{R: 95, G: 95, B: 100, A: 255}
	case Steam:
		return color.RGBA{R: 200, G: 200, B: 210, A: 255}
	case Gas:
		return color.RGBA{R: 170, G: 180, B: 120, A: 255}
	case ToxicGas:
		return color.RGBA{R: 130, G: 200, B: 60, A: 255}
	case Hydrogen:
		return color.RGBA{R: 205, G: 210, B: 225, A: 255}
	case Chlorine:
		return color.RGBA{R: 175, G: 220, B: 100, A: 255}
	case Fire:
		return color.RGBA{R: 255, G: 150, B: 40, A: 255}
	case Lightning:
		return color.RGBA{R: 250, G: 250, B: 160, A: 255}
	case Human:
		return color.RGBA{R: 240, G: 200, B: 160, A: 255}
	case Zombie:
		return color.RGBA{R: 120, G: 170, B: 110, A: 255}
	}
	return color.RGBA{A: 255}
}
