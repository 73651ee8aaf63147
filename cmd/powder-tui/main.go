package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"powder-ca/internal/app"
	"powder-ca/internal/core"
	"powder-ca/internal/sims/powder"

	"github.com/gdamore/tcell/v2"
)

type tui struct {
	screen tcell.Screen
	world  *powder.World
	timer  *core.FixedStep

	colors [256]tcell.Color

	seed     int64
	paused   bool
	stepOnce bool
	selected int
	radius   int
}

func newTUI(world *powder.World, cfg app.Config) (*tui, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	t := &tui{
		screen: screen,
		world:  world,
		timer:  core.NewFixedStep(cfg.TPS),
		seed:   cfg.Seed,
		radius: 2,
	}
	for i, c := range world.Palette() {
		t.colors[i] = tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return t, nil
}

func (t *tui) material() powder.Material {
	return powder.BrushMaterials[t.selected]
}

func (t *tui) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			t.paused = !t.paused
		case 'n':
			t.stepOnce = true
		case 'r':
			t.world.Reset(t.seed)
		case 'S':
			t.seed = time.Now().UnixNano()
			t.world.Reset(t.seed)
		case 'c':
			t.world.Clear()
		case ']':
			t.selected = (t.selected + 1) % len(powder.BrushMaterials)
		case '[':
			t.selected = (t.selected + len(powder.BrushMaterials) - 1) % len(powder.BrushMaterials)
		case '+', '=':
			if t.radius < 32 {
				t.radius++
			}
		case '-':
			if t.radius > 0 {
				t.radius--
			}
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		buttons := ev.Buttons()
		if buttons&tcell.Button1 != 0 {
			t.world.PlaceBrush(x, y, t.radius, t.material())
		} else if buttons&tcell.Button2 != 0 {
			t.world.PlaceBrush(x, y, t.radius, powder.Empty)
		}
	}
	return true
}

func (t *tui) draw() {
	sw, sh := t.screen.Size()
	w := t.world.Width()
	if w > sw {
		w = sw
	}
	h := t.world.Height()
	if h > sh-1 {
		h = sh - 1
	}
	cells := t.world.Cells()
	for y := 0; y < h; y++ {
		row := y * t.world.Width()
		for x := 0; x < w; x++ {
			b := cells[row+x]
			cell := t.world.CellAt(x, y)
			glyph := powder.Glyph(cell.Mat, cell.Life)
			style := tcell.StyleDefault.Foreground(t.colors[b])
			t.screen.SetContent(x, y, glyph, nil, style)
		}
	}
	t.drawStatus(sw, sh)
	t.screen.Show()
}

func (t *tui) drawStatus(sw, sh int) {
	if sh <= 0 {
		return
	}
	c := t.world.Census()
	mode := "running"
	if t.paused {
		mode = "paused"
	}
	line := fmt.Sprintf(" %s r=%d | tick %d [%s] | cells %d actors %d | [/] material +/- brush space pause q quit",
		t.material().Name(), t.radius, t.world.Tick(), mode, c.NonEmpty(), c.Actors())
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkSlateGray)
	y := sh - 1
	for x := 0; x < sw; x++ {
		r := ' '
		if x < len(line) {
			r = rune(line[x])
		}
		t.screen.SetContent(x, y, r, nil, style)
	}
}

func (t *tui) run() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 64)
	go func() {
		for {
			eventChan <- t.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !t.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			for t.timer.ShouldStep() {
				if t.paused && !t.stepOnce {
					break
				}
				t.world.Step()
				t.stepOnce = false
			}
			t.draw()
		}
	}
}

func main() {
	cfg := app.DefaultConfig()
	cfg.Width = 120
	cfg.Height = 40
	cfg.TPS = 30
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	pcfg := powder.DefaultConfig()
	if cfg.ConfigPath != "" {
		loaded, err := powder.LoadConfig(cfg.ConfigPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		pcfg = loaded
	}
	pcfg.Width = cfg.Width
	pcfg.Height = cfg.Height
	pcfg.Seed = cfg.Seed

	world := powder.NewWithConfig(pcfg)
	world.Reset(cfg.Seed)

	t, err := newTUI(world, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer t.screen.Fini()

	t.run()
}
