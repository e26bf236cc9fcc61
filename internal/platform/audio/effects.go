package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-frequency wave for a bounded duration.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a bounded wave generator. Frequency is ignored
// for WaveNoise.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// sweep generates a sine wave whose frequency glides linearly from
// fromFreq to toFreq over the duration.
type sweep struct {
	fromFreq float64
	toFreq   float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

// NewSweep creates a frequency glide, the backbone of jump and stomp
// effects.
func NewSweep(fromFreq, toFreq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		fromFreq: fromFreq,
		toFreq:   toFreq,
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, false
		}

		progress := float64(s.position) / float64(s.duration)
		freq := s.fromFreq + (s.toFreq-s.fromFreq)*progress

		val := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase = s.phase - math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope applies attack/release shaping to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps a streamer with linear attack and release ramps.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a streamer; math.Log2(0) is -Inf, so zero volume
// switches to silent instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// note builds one envelope-shaped tone, the building block for jingles.
func note(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, duration, wave, rate)
	return NewEnvelope(osc, duration, 5*time.Millisecond, duration/3, rate)
}

// jumpSound is a quick upward chirp.
func jumpSound(rate beep.SampleRate) beep.Streamer {
	s := NewSweep(320, 640, 90*time.Millisecond, rate)
	shaped := NewEnvelope(s, 90*time.Millisecond, 5*time.Millisecond, 40*time.Millisecond, rate)
	return newVolume(shaped, 0.35)
}

// stompSound is a falling thump for landing on the boss.
func stompSound(rate beep.SampleRate) beep.Streamer {
	s := NewSweep(440, 110, 140*time.Millisecond, rate)
	shaped := NewEnvelope(s, 140*time.Millisecond, 2*time.Millisecond, 80*time.Millisecond, rate)
	return newVolume(shaped, 0.5)
}

// damageSound is a harsh saw buzz.
func damageSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(120, 160*time.Millisecond, WaveSaw, rate)
	shaped := NewEnvelope(osc, 160*time.Millisecond, 2*time.Millisecond, 60*time.Millisecond, rate)
	return newVolume(shaped, 0.4)
}

// pickupSound is a two-harmonic ding, bright but short.
func pickupSound(rate beep.SampleRate) beep.Streamer {
	fund := note(880, 110*time.Millisecond, WaveSine, rate)
	over := note(1760, 110*time.Millisecond, WaveSine, rate)
	mixed := beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
	return newVolume(mixed, 0.4)
}

// shotSound is a short noise tick for boss projectiles.
func shotSound(rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, 45*time.Millisecond, WaveNoise, rate)
	shaped := NewEnvelope(noise, 45*time.Millisecond, time.Millisecond, 30*time.Millisecond, rate)
	return newVolume(shaped, 0.25)
}

// levelClearSound is a three-note ascending jingle.
func levelClearSound(rate beep.SampleRate) beep.Streamer {
	seq := beep.Seq(
		note(523.25, 120*time.Millisecond, WaveSquare, rate), // C5
		note(659.25, 120*time.Millisecond, WaveSquare, rate), // E5
		note(783.99, 200*time.Millisecond, WaveSquare, rate), // G5
	)
	return newVolume(seq, 0.35)
}

// bossDownSound is a longer four-note fanfare.
func bossDownSound(rate beep.SampleRate) beep.Streamer {
	seq := beep.Seq(
		note(392.00, 110*time.Millisecond, WaveSquare, rate),  // G4
		note(523.25, 110*time.Millisecond, WaveSquare, rate),  // C5
		note(659.25, 110*time.Millisecond, WaveSquare, rate),  // E5
		note(1046.50, 280*time.Millisecond, WaveSquare, rate), // C6
	)
	return newVolume(seq, 0.4)
}

// gameOverSound descends into a low rumble.
func gameOverSound(rate beep.SampleRate) beep.Streamer {
	seq := beep.Seq(
		note(440.00, 160*time.Millisecond, WaveSquare, rate), // A4
		note(349.23, 160*time.Millisecond, WaveSquare, rate), // F4
		note(261.63, 300*time.Millisecond, WaveSquare, rate), // C4
	)
	return newVolume(seq, 0.4)
}

// victorySound is the full campaign fanfare.
func victorySound(rate beep.SampleRate) beep.Streamer {
	seq := beep.Seq(
		note(523.25, 130*time.Millisecond, WaveSquare, rate),  // C5
		note(523.25, 130*time.Millisecond, WaveSquare, rate),  // C5
		note(659.25, 130*time.Millisecond, WaveSquare, rate),  // E5
		note(783.99, 130*time.Millisecond, WaveSquare, rate),  // G5
		note(1046.50, 400*time.Millisecond, WaveSquare, rate), // C6
	)
	return newVolume(seq, 0.45)
}
