package powder

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Params holds tunable chances and lifetimes for the powder sim. The
// defaults reproduce the classic engine behavior exactly.
type Params struct {
	FireFlickerChance int `yaml:"fire_flicker_chance"`
	FireIgniteChance  int `yaml:"fire_ignite_chance"`
	LavaCoolTicks     int `yaml:"lava_cool_ticks"`
	SeaweedSoakTicks  int `yaml:"seaweed_soak_ticks"`
	WetDirtLife       int `yaml:"wet_dirt_life"`
	PlantGrowthChance int `yaml:"plant_growth_chance"`
	ActorSight        int `yaml:"actor_sight"`
	BrushFireLife     int `yaml:"brush_fire_life"`
	BrushGasLife      int `yaml:"brush_gas_life"`
}

// Config controls the powder world dimensions and rule tunables.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Seed int64 `yaml:"seed"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  256,
		Height: 160,
		Seed:   1337,
		Params: Params{
			FireFlickerChance: 50,
			FireIgniteChance:  40,
			LavaCoolTicks:     200,
			SeaweedSoakTicks:  220,
			WetDirtLife:       300,
			PlantGrowthChance: 2,
			ActorSight:        6,
			BrushFireLife:     20,
			BrushGasLife:      25,
		},
	}
}

// LoadConfig reads a YAML file over the defaults. An empty path returns the
// defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg.sanitized(), nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["fire_flicker_chance"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.FireFlickerChance = parsed
		}
	}
	if v, ok := cfg["fire_ignite_chance"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.FireIgniteChance = parsed
		}
	}
	if v, ok := cfg["lava_cool_ticks"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.LavaCoolTicks = parsed
		}
	}
	if v, ok := cfg["seaweed_soak_ticks"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.SeaweedSoakTicks = parsed
		}
	}
	if v, ok := cfg["wet_dirt_life"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.WetDirtLife = parsed
		}
	}
	if v, ok := cfg["plant_growth_chance"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.PlantGrowthChance = parsed
		}
	}
	if v, ok := cfg["actor_sight"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.ActorSight = parsed
		}
	}
	if v, ok := cfg["brush_fire_life"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.BrushFireLife = parsed
		}
	}
	if v, ok := cfg["brush_gas_life"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.BrushGasLife = parsed
		}
	}
	return c.sanitized()
}

func (c Config) sanitized() Config {
	if c.Width < 0 {
		c.Width = 0
	}
	if c.Height < 0 {
		c.Height = 0
	}
	if c.Params.ActorSight < 1 {
		c.Params.ActorSight = 1
	}
	return c
}
