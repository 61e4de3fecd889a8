// Package palette holds the 16 stop gradient tables, their lookup and the gamma helpers.
package palette

import (
	"github.com/matt-g-everett/ledfx/pixel"
)

// Stops is the number of entries in every gradient table.
const Stops = 16

// Palette is a 16 stop gradient that wraps from the last stop back to the first.
type Palette [Stops]pixel.Color

// Palette identifiers as exposed on the palette choice control.
const (
	Default    uint8 = 0
	Aurora     uint8 = 1
	Forest     uint8 = 2
	Halloween  uint8 = 3
	Rainbow    uint8 = 4
	Fire       uint8 = 5
	Sunset     uint8 = 6
	Ice        uint8 = 7
	Party      uint8 = 8
	Lava       uint8 = 9
	Pastel     uint8 = 10
	Ocean      uint8 = 11
	HeatColors uint8 = 12
	Sakura     uint8 = 13
	Rivendell  uint8 = 14
	Cyberpunk  uint8 = 15
	OrangeTeal uint8 = 16
	Christmas  uint8 = 17
	RedBlue    uint8 = 18
	Matrix     uint8 = 19
	SunnyGold  uint8 = 20
	// SolidSelect is the selector position of "Solid", treated the same as Solid.
	SolidSelect uint8 = 21
	Fairy       uint8 = 22
	Twilight    uint8 = 23
	SmartRandom uint8 = 254
	Solid       uint8 = 255
)

var names = map[uint8]string{
	Aurora:      "Aurora",
	Forest:      "Forest",
	Halloween:   "Halloween",
	Rainbow:     "Rainbow",
	Fire:        "Fire",
	Sunset:      "Sunset",
	Ice:         "Ice",
	Party:       "Party",
	Lava:        "Lava",
	Pastel:      "Pastel",
	Ocean:       "Ocean",
	HeatColors:  "HeatColors",
	Sakura:      "Sakura",
	Rivendell:   "Rivendell",
	Cyberpunk:   "Cyberpunk",
	OrangeTeal:  "OrangeTeal",
	Christmas:   "Christmas",
	RedBlue:     "RedBlue",
	Matrix:      "Matrix",
	SunnyGold:   "SunnyGold",
	Fairy:       "Fairy",
	Twilight:    "Twilight",
	SmartRandom: "Smart Random",
	Solid:       "Solid",
}

// Options lists the palette choice values in selector order.
var Options = []string{
	"Default", "Aurora", "Forest", "Halloween", "Rainbow", "Fire", "Sunset", "Ice", "Party", "Lava",
	"Pastel", "Ocean", "HeatColors", "Sakura", "Rivendell", "Cyberpunk", "OrangeTeal", "Christmas",
	"RedBlue", "Matrix", "SunnyGold", "Solid", "Fairy", "Twilight", "Smart Random",
}

// Name returns the display name of a palette id, "Default" for anything unknown.
func Name(id uint8) string {
	if id == SolidSelect {
		id = Solid
	}
	if n, ok := names[id]; ok {
		return n
	}
	return "Default"
}

// ID maps a choice value to a palette id. Unknown names and "Default" map to 0.
func ID(name string) uint8 {
	switch name {
	case "None", "Solid":
		return Solid
	case "Default", "":
		return Default
	}
	for id, n := range names {
		if n == name {
			return id
		}
	}
	return Default
}

// IsSolid reports whether the id mirrors the primary color.
func IsSolid(id uint8) bool {
	return id == Solid || id == SolidSelect
}

// Lookup interpolates between the two stops around index and scales by brightness.
// Brightness 255 leaves the interpolated color unchanged.
func Lookup(p *Palette, index uint8, brightness uint8) pixel.Color {
	i := index >> 4
	f := int(index & 0x0F)
	c1 := p[i]
	c2 := p[(i+1)&0x0F]

	lerp := func(a, b uint8) uint8 {
		return uint8(int(a) + ((int(b)-int(a))*f)>>4)
	}
	c := pixel.Color{R: lerp(c1.R, c2.R), G: lerp(c1.G, c2.G), B: lerp(c1.B, c2.B), W: lerp(c1.W, c2.W)}
	if brightness == 255 {
		return c
	}
	return c.Brightness(brightness)
}

// SolidPalette fills every stop with the color.
func SolidPalette(c pixel.Color) Palette {
	var p Palette
	for i := range p {
		p[i] = c
	}
	return p
}

// Fixed returns the authored table for id, or nil when id names no fixed table.
func Fixed(id uint8) *Palette {
	return fixed[id]
}
