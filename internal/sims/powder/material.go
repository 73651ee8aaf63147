package powder

// Material enumerates every substance a cell can hold. The declaration
// order is part of the engine's public surface: display bytes and bulk
// exports carry these values directly.
type Material uint8

const (
	Empty Material = iota
	// powders
	Sand
	Gunpowder
	Ash
	Snow
	// liquids
	Water
	SaltWater
	Oil
	Ethanol
	Acid
	Lava
	Mercury
	// solids / terrain
	Stone
	Glass
	Wall
	Wood
	Plant
	Metal
	Wire
	Ice
	Coal
	Dirt
	WetDirt
	Seaweed
	// gases
	Smoke
	Steam
	Gas
	ToxicGas
	Hydrogen
	Chlorine
	// actors / special
	Fire
	Lightning
	Human
	Zombie

	materialCount
)

// IsPowder reports whether the material falls and piles like sand.
func (m Material) IsPowder() bool {
	switch m {
	case Sand, Gunpowder, Ash, Snow:
		return true
	}
	return false
}

// IsLiquid reports whether the material flows and obeys density ordering.
func (m Material) IsLiquid() bool {
	switch m {
	case Water, SaltWater, Oil, Ethanol, Acid, Lava, Mercury:
		return true
	}
	return false
}

// IsGas reports whether the material rises and dissipates.
func (m Material) IsGas() bool {
	switch m {
	case Smoke, Steam, Gas, ToxicGas, Hydrogen, Chlorine:
		return true
	}
	return false
}

// IsFlammable reports whether fire, lava, sparks or lightning can ignite
// the material.
func (m Material) IsFlammable() bool {
	switch m {
	case Wood, Plant, Oil, Ethanol, Gunpowder, Coal, Seaweed:
		return true
	}
	return false
}

// IsDissolvable reports whether acid eats the material.
func (m Material) IsDissolvable() bool {
	switch m {
	case Sand, Stone, Glass, Wood, Plant, Metal, Wire, Ash, Coal, Seaweed, Dirt, WetDirt:
		return true
	}
	return false
}

// IsHazard reports whether mere contact kills humans and zombies.
func (m Material) IsHazard() bool {
	switch m {
	case Fire, Lava, Acid, ToxicGas, Chlorine, Lightning:
		return true
	}
	return false
}

// Density returns the relative density used to order liquid and gas
// displacement. Everything that is neither sinks through nothing.
func (m Material) Density() int {
	switch m {
	case Gas, Hydrogen:
		return 1
	case Steam:
		return 2
	case Smoke:
		return 3
	case Chlorine:
		return 5
	case Ethanol:
		return 85
	case Oil:
		return 90
	case Water:
		return 100
	case SaltWater:
		return 103
	case Acid:
		return 110
	case Lava:
		return 160
	case Mercury:
		return 200
	}
	return 999
}

var materialNames = [materialCount]string{
	Empty:     "Empty",
	Sand:      "Sand",
	Gunpowder: "Gunpowder",
	Ash:       "Ash",
	Snow:      "Snow",
	Water:     "Water",
	SaltWater: "Salt Water",
	Oil:       "Oil",
	Ethanol:   "Ethanol",
	Acid:      "Acid",
	Lava:      "Lava",
	Mercury:   "Mercury",
	Stone:     "Stone",
	Glass:     "Glass",
	Wall:      "Wall",
	Wood:      "Wood",
	Plant:     "Plant",
	Metal:     "Metal",
	Wire:      "Wire",
	Ice:       "Ice",
	Coal:      "Coal",
	Dirt:      "Dirt",
	WetDirt:   "Wet Dirt",
	Seaweed:   "Seaweed",
	Smoke:     "Smoke",
	Steam:     "Steam",
	Gas:       "Gas",
	ToxicGas:  "Toxic Gas",
	Hydrogen:  "Hydrogen",
	Chlorine:  "Chlorine",
	Fire:      "Fire",
	Lightning: "Lightning",
	Human:     "Human",
	Zombie:    "Zombie",
}

// Name returns the human-readable material name.
func (m Material) Name() string {
	if m >= materialCount {
		return "Unknown"
	}
	return materialNames[m]
}

// PaletteIndex maps a cell to a small color-pair index (1..9) in the style
// of classic terminal falling-sand games. Electrified water always pulses
// as index 9 regardless of its base color.
func PaletteIndex(m Material, life int32) int {
	if (m == Water || m == SaltWater) && life > 0 {
		return 9
	}

	switch m {
	case Sand, Gunpowder, Snow, Dirt:
		return 2
	case Water, SaltWater, Steam, Ice, Ethanol:
		return 3
	case Stone, Glass, Wall, Metal, Wire, Coal, WetDirt:
		return 4
	case Wood, Plant, Seaweed, Human:
		return 5
	case Fire, Lava, Zombie:
		return 6
	case Smoke, Ash, Gas, Hydrogen:
		return 7
	case Oil, Mercury:
		return 8
	case Acid, ToxicGas, Chlorine, Lightning:
		return 9
	}
	return 1
}

// Glyph returns a single drawing rune for text front-ends. Humans and
// zombies alternate between two glyphs on their animation counter.
func Glyph(m Material, life int32) rune {
	switch m {
	case Empty:
		return ' '
	case Sand:
		return '.'
	case Gunpowder:
		return '%'
	case Ash:
		return ';'
	case Snow:
		return ','
	case Water:
		return '~'
	case SaltWater:
		return ':'
	case Oil:
		return 'o'
	case Ethanol:
		return 'e'
	case Acid:
		return 'a'
	case Lava:
		return 'L'
	case Mercury:
		return 'm'
	case Stone:
		return '#'
	case Glass:
		return '='
	case Wall:
		return '@'
	case Wood:
		return 'w'
	case Plant:
		return 'p'
	case Seaweed:
		return 'v'
	case Metal:
		return 'M'
	case Wire:
		return '-'
	case Ice:
		return 'I'
	case Coal:
		return 'c'
	case Dirt:
		return 'd'
	case WetDirt:
		return 'D'
	case Smoke:
		return '^'
	case Steam:
		return '"'
	case Gas:
		return '`'
	case ToxicGas:
		return 'x'
	case Hydrogen:
		return '\''
	case Chlorine:
		return 'X'
	case Fire:
		return '*'
	case Lightning:
		return '|'
	case Human:
		if (life/6)%2 != 0 {
			return 'y'
		}
		return 'Y'
	case Zombie:
		if (life/6)%2 != 0 {
			return 't'
		}
		return 'T'
	}
	return '?'
}

// BrushMaterials lists the materials the interactive front ends cycle
// through, roughly ordered by how often they get painted.
var BrushMaterials = []Material{
	Sand, Water, Oil, Fire, Wall, Wood, Plant, Lava, Acid, Gunpowder,
	Stone, Ice, Snow, Coal, Dirt, Seaweed, Metal, Wire, Mercury, SaltWater,
	Ethanol, Glass, Gas, Hydrogen, Chlorine, Steam, Smoke, ToxicGas, Ash,
	Human, Zombie, Lightning, Empty,
}
