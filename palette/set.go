package palette

import (
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/matt-g-everett/ledfx/pixel"
)

// Set resolves palette ids for one runner. It owns the runtime filled tables,
// the solid mirror of the primary color and the generated smart random table.
type Set struct {
	solid    Palette
	smart    Palette
	hasSmart bool
	strategy Strategy
	rng      *rand.Rand
}

// seeds keeps sets created in the same clock tick apart.
var seeds int64

// NewSet creates an instance of a Set using the given random source. A nil source
// is seeded from the clock, so each process and each set generates its own
// smart random tables.
func NewSet(rng *rand.Rand) *Set {
	s := new(Set)
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano() + atomic.AddInt64(&seeds, 1)))
	}
	s.rng = rng
	return s
}

// Resolve returns the table for id. The natural id replaces Default, and the
// solid table is refreshed from primary on every call.
func (s *Set) Resolve(id uint8, natural uint8, primary pixel.Color) *Palette {
	if id == Default {
		id = natural
	}
	if IsSolid(id) {
		s.solid = SolidPalette(primary)
		return &s.solid
	}
	if id == SmartRandom {
		if !s.hasSmart {
			s.Regenerate()
		}
		return &s.smart
	}
	if p := Fixed(id); p != nil {
		return p
	}
	return &rainbow
}

// Regenerate builds a new smart random table with a randomly chosen strategy.
func (s *Set) Regenerate() Strategy {
	s.strategy = Strategy(s.rng.Intn(int(strategyCount)))
	s.smart = Generate(s.strategy, s.rng)
	s.hasSmart = true
	return s.strategy
}

// Strategy reports the strategy behind the current smart random table.
func (s *Set) Strategy() Strategy {
	return s.strategy
}
