//go:build ebiten

package ui

import (
	"image/color"

	"powder-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// chargeMask is the display-byte flag marking electrified cells.
const chargeMask = 0x80

// Overlay draws optional debugging visuals on top of the base simulation.
type Overlay struct {
	sim   core.Sim
	scale int

	showCharge bool

	img *ebiten.Image
	buf []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale}
}

// Update toggles the overlay layers from keyboard input.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		o.showCharge = !o.showCharge
	}
}

// Draw renders the enabled overlay layers onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showCharge {
		return
	}
	size := o.sim.Size()
	total := size.W * size.H
	if total == 0 {
		return
	}
	cells := o.sim.Cells()
	if len(cells) != total {
		return
	}
	if o.img == nil || o.img.Bounds().Dx() != size.W || o.img.Bounds().Dy() != size.H {
		o.img = ebiten.NewImage(size.W, size.H)
		o.buf = make([]byte, 4*total)
	}

	tint := color.RGBA{R: 255, G: 240, B: 120, A: 170}
	for i := 0; i < total; i++ {
		base := i * 4
		if cells[i]&chargeMask == 0 {
			o.buf[base+0] = 0
			o.buf[base+1] = 0
			o.buf[base+2] = 0
			o.buf[base+3] = 0
			continue
		}
		o.buf[base+0] = tint.R
		o.buf[base+1] = tint.G
		o.buf[base+2] = tint.B
		o.buf[base+3] = tint.A
	}
	o.img.WritePixels(o.buf)

	op := &ebiten.DrawImageOptions{}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.img, op)
}
