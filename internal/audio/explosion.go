package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const explosionDuration = 250 * time.Millisecond

// explosion is a noise burst over a falling low thump with a fast
// exponential decay.
type explosion struct {
	rate  beep.SampleRate
	pos   int
	total int
	rng   *rand.Rand
	pitch float64
}

// newExplosion creates one explosion. The seed varies pitch and noise so
// consecutive explosions do not sound identical.
func newExplosion(rate beep.SampleRate, seed int64) *explosion {
	rng := rand.New(rand.NewSource(seed))
	return &explosion{
		rate:  rate,
		total: rate.N(explosionDuration),
		rng:   rng,
		pitch: 70 + rng.Float64()*40,
	}
}

func (e *explosion) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if e.pos >= e.total {
			return i, i > 0
		}
		t := float64(e.pos) / float64(e.rate)
		env := math.Exp(-t * 18)

		noise := e.rng.Float64()*2 - 1
		freq := e.pitch * (1 + 2*env)
		thump := math.Sin(2 * math.Pi * freq * t)

		v := env * (0.55*noise + 0.45*thump)
		samples[i][0] = v
		samples[i][1] = v
		e.pos++
	}
	return len(samples), true
}

func (e *explosion) Err() error { return nil }

// withVolume scales a streamer linearly; zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
