package app

import "flag"

// Config holds the command line options shared by the front ends.
type Config struct {
	Width      int
	Height     int
	Scale      int
	TPS        int
	Seed       int64
	HUDWidth   int
	ConfigPath string
}

// DefaultConfig returns the baseline front end configuration.
func DefaultConfig() Config {
	return Config{
		Width:    256,
		Height:   160,
		Scale:    4,
		TPS:      60,
		Seed:     1337,
		HUDWidth: 230,
	}
}

// Bind registers the config fields on the provided flag set.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "initial world seed")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels, 0 to hide")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "optional YAML config file")
}
