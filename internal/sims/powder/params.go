package powder

import (
	"strconv"

	"powder-ca/internal/core"
)

type paramBinding struct {
	key     string
	label   string
	desc    string
	min     int
	max     int
	hasMax  bool
	get     func(*Params) int
	set     func(*Params, int)
}

var paramBindings = []paramBinding{
	{
		key: "fire_flicker_chance", label: "Fire flicker %", min: 0, max: 100, hasMax: true,
		desc: "Chance per tick for fire to jump upward",
		get:  func(p *Params) int { return p.FireFlickerChance },
		set:  func(p *Params, v int) { p.FireFlickerChance = v },
	},
	{
		key: "fire_ignite_chance", label: "Fire ignite %", min: 0, max: 100, hasMax: true,
		desc: "Chance per tick for fire to ignite a flammable neighbor",
		get:  func(p *Params) int { return p.FireIgniteChance },
		set:  func(p *Params, v int) { p.FireIgniteChance = v },
	},
	{
		key: "lava_cool_ticks", label: "Lava cool ticks", min: 0,
		desc: "Ticks before standing lava hardens to stone",
		get:  func(p *Params) int { return p.LavaCoolTicks },
		set:  func(p *Params, v int) { p.LavaCoolTicks = v },
	},
	{
		key: "seaweed_soak_ticks", label: "Seaweed soak", min: 0,
		desc: "Submersion ticks before sand seeds seaweed",
		get:  func(p *Params) int { return p.SeaweedSoakTicks },
		set:  func(p *Params, v int) { p.SeaweedSoakTicks = v },
	},
	{
		key: "wet_dirt_life", label: "Wet dirt life", min: 0,
		desc: "Ticks hydrated dirt stays wet without water",
		get:  func(p *Params) int { return p.WetDirtLife },
		set:  func(p *Params, v int) { p.WetDirtLife = v },
	},
	{
		key: "plant_growth_chance", label: "Plant growth %", min: 0, max: 100, hasMax: true,
		desc: "Chance per tick for plants and seaweed to grow upward",
		get:  func(p *Params) int { return p.PlantGrowthChance },
		set:  func(p *Params, v int) { p.PlantGrowthChance = v },
	},
	{
		key: "actor_sight", label: "Actor sight", min: 1,
		desc: "Search window radius for humans and zombies",
		get:  func(p *Params) int { return p.ActorSight },
		set:  func(p *Params, v int) { p.ActorSight = v },
	},
	{
		key: "brush_fire_life", label: "Brush fire life", min: 0,
		desc: "Starting life for brushed fire",
		get:  func(p *Params) int { return p.BrushFireLife },
		set:  func(p *Params, v int) { p.BrushFireLife = v },
	},
	{
		key: "brush_gas_life", label: "Brush gas life", min: 0,
		desc: "Starting life for brushed gases",
		get:  func(p *Params) int { return p.BrushGasLife },
		set:  func(p *Params, v int) { p.BrushGasLife = v },
	},
}

// Parameters reports the current tunables for HUD display.
func (w *World) Parameters() core.ParameterSnapshot {
	group := core.ParameterGroup{Name: "Rules"}
	for _, b := range paramBindings {
		group.Params = append(group.Params, core.Parameter{
			Key:         b.key,
			Label:       b.label,
			Type:        core.ParamTypeInt,
			Value:       strconv.Itoa(b.get(&w.cfg.Params)),
			Description: b.desc,
		})
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{group}}
}

// ParameterControls lists the HUD-adjustable tunables.
func (w *World) ParameterControls() []core.ParameterControl {
	controls := make([]core.ParameterControl, 0, len(paramBindings))
	for _, b := range paramBindings {
		controls = append(controls, core.ParameterControl{
			Key:    b.key,
			Label:  b.label,
			Type:   core.ParamTypeInt,
			Step:   1,
			Min:    b.min,
			Max:    b.max,
			HasMin: true,
			HasMax: b.hasMax,
		})
	}
	return controls
}

// SetIntParameter updates a tunable by key, clamping to its bounds.
// It reports whether the key was recognized.
func (w *World) SetIntParameter(key string, value int) bool {
	for _, b := range paramBindings {
		if b.key != key {
			continue
		}
		if value < b.min {
			value = b.min
		}
		if b.hasMax && value > b.max {
			value = b.max
		}
		b.set(&w.cfg.Params, value)
		return true
	}
	return false
}
