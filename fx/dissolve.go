package fx

import (
	"github.com/matt-g-everett/ledfx/pixel"
	"github.com/matt-g-everett/ledfx/util"
)

// Dissolve phases, kept in Aux0.
const (
	dissolveFilling = iota
	dissolveHoldOn
	dissolveDraining
	dissolveHoldOff
)

// bitmask is one bit per cell packed into the scratch block.
type bitmask []byte

func (b bitmask) get(i int) bool { return b[i>>3]>>(uint(i)&7)&1 == 1 }
func (b bitmask) set(i int)      { b[i>>3] |= 1 << (uint(i) & 7) }
func (b bitmask) clear(i int)    { b[i>>3] &^= 1 << (uint(i) & 7) }

// find returns the first cell from start, wrapping, whose bit equals want.
func (b bitmask) find(start, n int, want bool) (int, bool) {
	for k := 0; k < n; k++ {
		i := (start + k) % n
		if b.get(i) == want {
			return i, true
		}
	}
	return 0, false
}

// Dissolve fills the segment with random cells, holds, dissolves them away
// again and holds dark. Speed sets the hold time, intensity the cells per frame.
func Dissolve(c *Context) uint16 {
	s := c.Seg
	n := c.Len()
	if n <= 1 {
		return Static(c)
	}
	data, fresh, ok := allocate(c, (n+7)/8)
	if !ok {
		return Static(c)
	}
	mask := bitmask(data)
	if fresh {
		for i := range mask {
			mask[i] = 0
		}
		s.Aux0 = dissolveFilling
		s.Aux1 = 0
		s.Step = c.Now
	}

	phase := s.Aux0 & 0x03
	count := int(s.Aux1)
	since := s.Step

	speed := int(s.Speed) * 50 / 128
	intensity := int(s.Intensity) - 128
	if intensity < 0 {
		intensity = 0
	}
	perFrame := 1 + intensity>>5
	hold := uint32(500 + (255-speed)*10)
	const fillTimeout = 15000

	switch phase {
	case dissolveFilling:
		for k := 0; k < perFrame && count < n; k++ {
			i, found := mask.find(int(util.Random16())%n, n, false)
			if !found {
				count = n
				break
			}
			mask.set(i)
			count++
		}
		if count >= n || c.Now-since > fillTimeout {
			phase = dissolveHoldOn
			since = c.Now
		}
	case dissolveHoldOn:
		if c.Now-since > hold {
			phase = dissolveDraining
			since = c.Now
		}
	case dissolveDraining:
		for k := 0; k < perFrame && count > 0; k++ {
			i, found := mask.find(int(util.Random16())%n, n, true)
			if !found {
				count = 0
				break
			}
			mask.clear(i)
			count--
		}
		if count == 0 {
			phase = dissolveHoldOff
			since = c.Now
		}
	case dissolveHoldOff:
		if c.Now-since > hold {
			phase = dissolveFilling
			since = c.Now
			count = 0
			for i := range mask {
				mask[i] = 0
			}
		}
	}

	// An unset palette cycles hues instead of resolving to the solid color.
	rainbow := s.Palette == 0
	solid := c.SolidMode()
	for i := 0; i < n; i++ {
		switch {
		case !mask.get(i):
			c.Set(i, pixel.Black)
		case rainbow:
			c.Set(i, pixel.HSV(uint8(uint32(i*5)+c.Now/20), 255, 255))
		case solid:
			c.Set(i, c.Primary())
		default:
			c.Set(i, c.ColorFromPalette(uint8(i*255/n), 255))
		}
	}

	s.Aux0 = phase
	s.Aux1 = uint16(count)
	s.Step = since
	return FrameTime
}
