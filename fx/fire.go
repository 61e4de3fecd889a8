package fx

import (
	"github.com/matt-g-everett/ledfx/pixel"
	"github.com/matt-g-everett/ledfx/util"
)

// Fire is a one dimensional heat simulation: every cell cools, heat drifts away
// from the start and random sparks ignite near it. The heat map lives in the
// segment's scratch block.
func Fire(c *Context) uint16 {
	s := c.Seg
	n := c.Len()
	if n <= 1 {
		return Static(c)
	}
	heat, fresh, ok := allocate(c, n)
	if !ok {
		return Static(c)
	}
	if fresh {
		for i := range heat {
			heat[i] = 0
		}
		s.Step = 0
	}

	speed := int(wledSpeed(s.Speed))
	it := c.Now >> 5
	tick := it != s.Step

	ignition := n / 10
	if ignition < 3 {
		ignition = 3
	} else if ignition > 255 {
		ignition = 255
	}
	if ignition > n {
		ignition = n
	}

	cooling := ((20+speed/3)*10)/n + 2
	if cooling > 255 {
		cooling = 255
	}
	for i := 0; i < n; i++ {
		var cool uint8
		if tick {
			cool = util.Random8n(uint8(cooling))
		} else {
			cool = util.Random8n(4)
		}
		var minTemp uint8
		if i < ignition {
			minTemp = uint8((ignition-i)/4 + 16)
		}
		t := util.Qsub8(heat[i], cool)
		if t < minTemp {
			t = minTemp
		}
		heat[i] = t
	}

	if tick {
		for k := n - 1; k > 1; k-- {
			heat[k] = uint8((uint16(heat[k-1]) + uint16(heat[k-2])<<1) / 3)
		}

		if util.Random8() <= s.Intensity {
			y := int(util.Random8n(uint8(ignition)))
			boost := 17 * (ignition - y/2) / ignition
			heat[y] = util.Qadd8(heat[y], util.Random8Range(uint8(96+2*boost), uint8(207+boost)))
		}
		s.Step = it
	}

	for j := 0; j < n; j++ {
		c.Set(j, heatColor(heat[j]))
	}
	return FrameTime
}

// heatColor maps a temperature onto black, red, yellow and white.
func heatColor(temp uint8) pixel.Color {
	t := temp
	if t > 240 {
		t = 240
	}
	switch {
	case t <= 85:
		return pixel.RGB(t*3, 0, 0)
	case t <= 170:
		return pixel.RGB(255, (t-85)*3, 0)
	default:
		return pixel.RGB(255, 255, (t-170)*3)
	}
}
