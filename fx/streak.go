package fx

import (
	"container/list"
	"math"
	"math/rand"

	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/ledfx/pixel"
)

type streakParticle struct {
	colour    colorful.Color
	start     float64
	current   float64
	increment float64
	length    float64
	gainRate  float64
}

func newStreakParticle(colour colorful.Color, increment float64, length float64) *streakParticle {
	p := new(streakParticle)
	p.colour = colour
	p.start = 0
	p.current = 0
	p.increment = increment
	p.length = length
	p.gainRate = 0.05
	return p
}

func (p *streakParticle) incrementPosition(numPixels float64) bool {
	p.current += p.increment
	if p.current > numPixels {
		return false
	} else if p.current < 0-p.length {
		return false
	}

	return true
}

func (p *streakParticle) calcEaseDistance() float64 {
	return math.Abs(p.current-p.start) * p.gainRate
}

func (p *streakParticle) isLive(easeDistance float64) bool {
	return easeDistance <= 2
}

// overallGain eases in over the first unit of distance and back out over the second.
func (p *streakParticle) overallGain(easeDistance float64) float64 {
	if easeDistance > 2 {
		return 0
	} else if easeDistance > 1 {
		easeDistance = 1 - (easeDistance - 1)
	}

	return ease.InOutQuad(easeDistance)
}

func (p *streakParticle) addStreak(c *Context) bool {
	easeDistance := p.calcEaseDistance()
	live := p.isLive(easeDistance)
	bias := p.overallGain(easeDistance)
	if live {
		start := int(math.Ceil(p.current))
		end := int(math.Floor(p.current + p.length))
		for i := start; i <= end; i++ {
			if i < 0 || i >= c.Len() {
				continue
			}
			base := c.Get(i).Colorful()
			c.Set(i, pixel.FromColorful(base.BlendHcl(p.colour, bias).Clamped()))
		}
	}

	return live
}

type streakState struct {
	particles *list.List
}

// Streak sends streaks of palette color along the segment that fade in and then
// out over the background color. Speed sets how fast they travel, intensity how
// often a new one starts.
func Streak(c *Context) uint16 {
	s := c.Seg
	n := c.Len()
	if n == 0 {
		return FrameTime
	}
	st, ok := segmentState[streakState](c, 256)
	if !ok {
		return Static(c)
	}
	if st.particles == nil {
		st.particles = list.New()
	}

	c.Fill(s.Colors[1])

	numPixels := float64(n)
	toDelete := make([]*list.Element, 0, st.particles.Len())
	for e := st.particles.Front(); e != nil; e = e.Next() {
		particle, _ := e.Value.(*streakParticle)
		more := particle.incrementPosition(numPixels)
		if more {
			more = particle.addStreak(c)
		}

		if !more {
			toDelete = append(toDelete, e)
		}
	}
	for _, e := range toDelete {
		st.particles.Remove(e)
	}

	// Intensity 255 starts a streak about every 4 frames, 0 about every 260.
	chance := int32(260 - int(s.Intensity))
	if rand.Int31n(chance) < 4 {
		colour := c.ColorFromPalette(uint8(rand.Intn(256)), 255)
		if c.SolidMode() {
			colour = c.Primary()
		}
		increment := 0.05 + float64(s.Speed)/255.0*0.6
		length := math.Max(3, numPixels/20)
		st.particles.PushBack(newStreakParticle(colour.Colorful(), increment, length))
	}

	return FrameTime
}
