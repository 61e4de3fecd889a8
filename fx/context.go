package fx

import (
	"github.com/matt-g-everett/ledfx/palette"
	"github.com/matt-g-everett/ledfx/pixel"
	"github.com/matt-g-everett/ledfx/segment"
	"github.com/matt-g-everett/ledfx/timing"
)

// FrameTime is the default delay an effect suggests between frames, in ms.
const FrameTime = 15

// Context is everything one effect invocation may touch: the segment, its view
// of the pixels and the time base. It replaces any ambient "current strip" state,
// so several regions can be rendered one after another without interference.
type Context struct {
	Seg *segment.Segment
	// Pixels is the segment's logical frame; index 0 is the segment start.
	Pixels []pixel.Color
	// Now is the real time in ms.
	Now uint32
	// Delta is this tick's speed scaled virtual time.
	Delta uint32
	// Virtual is the total speed scaled virtual time.
	Virtual uint64
	// FrameMs is the real time since the previous frame.
	FrameMs uint32
	Gamma   *palette.Gamma
	Effect  uint8

	palettes *palette.Set
	framer   *timing.Framer
}

// NewContext creates an instance of a Context over pixels. Runners reuse one
// context and refresh its time fields each tick.
func NewContext(seg *segment.Segment, pixels []pixel.Color, palettes *palette.Set, gamma *palette.Gamma) *Context {
	c := new(Context)
	c.Seg = seg
	c.Pixels = pixels
	c.palettes = palettes
	c.Gamma = gamma
	c.framer = new(timing.Framer)
	if c.palettes == nil {
		c.palettes = palette.NewSet(nil)
	}
	if c.Gamma == nil {
		c.Gamma = palette.NewGamma(palette.ReferenceGamma)
	}
	return c
}

// Len is the number of cells the effect may write.
func (c *Context) Len() int {
	if len(c.Pixels) < c.Seg.Len() {
		return len(c.Pixels)
	}
	return c.Seg.Len()
}

// Set writes cell i; writes outside the segment are dropped.
func (c *Context) Set(i int, col pixel.Color) {
	if i < 0 || i >= c.Len() {
		return
	}
	c.Pixels[i] = col
}

// Get reads cell i, black outside the segment.
func (c *Context) Get(i int) pixel.Color {
	if i < 0 || i >= c.Len() {
		return pixel.Black
	}
	return c.Pixels[i]
}

// AddTo adds col to cell i with saturation.
func (c *Context) AddTo(i int, col pixel.Color) {
	if i < 0 || i >= c.Len() {
		return
	}
	c.Pixels[i] = pixel.Add(c.Pixels[i], col)
}

// BlendTo mixes cell i toward col by amount/255.
func (c *Context) BlendTo(i int, col pixel.Color, amount uint8) {
	if i < 0 || i >= c.Len() {
		return
	}
	c.Pixels[i] = pixel.Blend(c.Pixels[i], col, amount)
}

func (c *Context) Fill(col pixel.Color) {
	n := c.Len()
	for i := 0; i < n; i++ {
		c.Pixels[i] = col
	}
}

// FadeToBlackBy darkens every cell by amount/256.
func (c *Context) FadeToBlackBy(amount uint8) {
	n := c.Len()
	for i := 0; i < n; i++ {
		c.Pixels[i] = c.Pixels[i].Fade(amount)
	}
}

// Blur spreads a fraction of each cell into its neighbours.
func (c *Context) Blur(amount uint8) {
	n := c.Len()
	keep := 255 - amount
	seep := amount >> 1
	var carry pixel.Color
	for i := 0; i < n; i++ {
		cur := c.Pixels[i]
		part := cur.Scale(seep)
		cur = cur.Scale(keep)
		if i > 0 {
			c.Pixels[i-1] = pixel.Add(c.Pixels[i-1], part)
		}
		c.Pixels[i] = pixel.Add(cur, carry)
		carry = part
	}
}

// Primary returns the segment's first color.
func (c *Context) Primary() pixel.Color {
	return c.Seg.Colors[0]
}

// PaletteID resolves Default to the effect's natural palette.
func (c *Context) PaletteID() uint8 {
	if c.Seg.Palette == palette.Default {
		return NaturalPalette(c.Effect)
	}
	return c.Seg.Palette
}

// SolidMode reports whether the effect should render with the primary color.
func (c *Context) SolidMode() bool {
	return palette.IsSolid(c.PaletteID())
}

// Palette returns the resolved table for this frame.
func (c *Context) Palette() *palette.Palette {
	return c.palettes.Resolve(c.Seg.Palette, NaturalPalette(c.Effect), c.Primary())
}

// ColorFromPalette looks index up in the active palette.
func (c *Context) ColorFromPalette(index uint8, brightness uint8) pixel.Color {
	return palette.Lookup(c.Palette(), index, brightness)
}

// PaletteColor maps cell i across the palette when mapping is set, otherwise uses
// i directly as the palette index.
func (c *Context) PaletteColor(i int, mapping bool, brightness uint8) pixel.Color {
	idx := i
	if mapping {
		n := c.Len()
		if n > 1 {
			idx = i * 255 / (n - 1)
		} else {
			idx = 0
		}
	}
	return c.ColorFromPalette(uint8(idx), brightness)
}

// Frame returns speed scaled timing tracked per context.
func (c *Context) Frame() timing.FrameTiming {
	return c.framer.Frame(c.Now, c.Seg.Speed)
}

// Static renders the segment flat: the palette gradient or the primary color.
// Effects fall back to it when their scratch state cannot be allocated.
func Static(c *Context) uint16 {
	if c.SolidMode() {
		c.Fill(c.Primary())
		return FrameTime
	}
	n := c.Len()
	for i := 0; i < n; i++ {
		c.Set(i, c.PaletteColor(i, true, 255))
	}
	return FrameTime
}
