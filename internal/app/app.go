//go:build ebiten

package app

import (
	"fmt"
	"time"

	"powder-ca/internal/render"
	"powder-ca/internal/sims/powder"
	"powder-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the powder world to the ebiten.Game interface and owns the
// interactive brush state.
type Game struct {
	world   *powder.World
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64

	selected int
	radius   int
}

// New constructs a Game for the provided world.
func New(world *powder.World, cfg Config) *Game {
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	hudWidth := cfg.HUDWidth
	if hudWidth < 0 {
		hudWidth = 0
	}
	return &Game{
		world:    world,
		painter:  render.NewGridPainter(world.Width(), world.Height()),
		hud:      ui.NewHUD(world, hudWidth),
		overlay:  ui.NewOverlay(world, scale),
		scale:    scale,
		hudWidth: hudWidth,
		seed:     cfg.Seed,
		radius:   4,
	}
}

// Reset reinitializes the world with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.world.Clear()
	}

	g.handleBrushInput()

	if g.overlay != nil {
		g.overlay.Update()
	}
	if g.hud != nil {
		g.hud.SetStatus(g.statusLines())
		g.hud.Update(g.world.Width() * g.scale)
	}

	if (!g.paused) || g.tickOnce {
		g.world.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) handleBrushInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.selected = (g.selected + 1) % len(powder.BrushMaterials)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.selected = (g.selected + len(powder.BrushMaterials) - 1) % len(powder.BrushMaterials)
	}
	digitKeys := []ebiten.Key{
		ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
		ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8,
		ebiten.KeyDigit9, ebiten.KeyDigit0,
	}
	shift := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	for i, key := range digitKeys {
		if shift && inpututil.IsKeyJustPressed(key) && i < len(powder.BrushMaterials) {
			g.selected = i
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) && g.radius < maxBrushRadius {
		g.radius++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) && g.radius > 0 {
		g.radius--
	}

	paint := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	erase := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !paint && !erase {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 || mx >= g.world.Width()*g.scale || my >= g.world.Height()*g.scale {
		return
	}
	cx := mx / g.scale
	cy := my / g.scale
	if erase {
		g.world.PlaceBrush(cx, cy, g.radius, powder.Empty)
		return
	}
	g.world.PlaceBrush(cx, cy, g.radius, g.material())
}

func (g *Game) material() powder.Material {
	return powder.BrushMaterials[g.selected]
}

func (g *Game) statusLines() []string {
	c := g.world.Census()
	mode := "running"
	if g.paused {
		mode = "paused"
	}
	return []string{
		fmt.Sprintf("Brush: %s (r=%d)", g.material().Name(), g.radius),
		fmt.Sprintf("Tick: %d  [%s]", g.world.Tick(), mode),
		fmt.Sprintf("Cells: %d  Actors: %d", c.NonEmpty(), c.Actors()),
		fmt.Sprintf("Liquids: %d  Gases: %d", c.Liquids(), c.Gases()),
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.world.Cells(), g.world.Palette(), g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	if g.hud != nil {
		g.hud.Draw(screen, g.world.Width()*g.scale, g.scale)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.world.Width()*g.scale + g.hudWidth, g.world.Height() * g.scale
}

const maxBrushRadius = 32
