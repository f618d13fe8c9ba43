package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/tui-flappy/internal/sim"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave, optionally sweeping its
// frequency linearly from freq to endFreq.
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a constant-frequency oscillator.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from freq to endFreq over its duration.
func NewSweep(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
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

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack ramp and a release fade ending at duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.totalSamples - e.releaseSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. math.Log2(0) is -Inf, so zero is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone returns a shaped note of the given wave.
func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, 5*time.Millisecond, d/2, rate)
}

// Synthesize builds the built-in sound for a cue. Returns nil for unknown cues.
func Synthesize(cue sim.Cue, rate beep.SampleRate) beep.Streamer {
	switch cue {
	case sim.CueStart:
		// Rising arpeggio
		return beep.Seq(
			tone(523.25, 70*time.Millisecond, WaveSquare, rate),
			tone(659.25, 70*time.Millisecond, WaveSquare, rate),
			tone(783.99, 110*time.Millisecond, WaveSquare, rate),
		)

	case sim.CueFlap:
		d := 90 * time.Millisecond
		whoosh := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 10*time.Millisecond, 60*time.Millisecond, rate)
		chirp := NewEnvelope(NewSweep(300, 700, d, WaveSine, rate), d, 5*time.Millisecond, 50*time.Millisecond, rate)
		return layer(rate, d, newVolume(whoosh, 0.3), newVolume(chirp, 0.6))

	case sim.CueScore:
		// Two-note coin chime
		return beep.Seq(
			tone(987.77, 60*time.Millisecond, WaveSquare, rate),
			tone(1318.51, 180*time.Millisecond, WaveSquare, rate),
		)

	case sim.CueHit:
		d := 150 * time.Millisecond
		crack := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 2*time.Millisecond, 120*time.Millisecond, rate)
		thud := sineThud(rate, 90, d)
		return layer(rate, d, newVolume(crack, 0.6), newVolume(thud, 0.8))

	case sim.CueDie:
		d := 450 * time.Millisecond
		return NewEnvelope(NewSweep(600, 120, d, WaveSaw, rate), d, 10*time.Millisecond, 200*time.Millisecond, rate)

	default:
		return nil
	}
}

// layer plays streams on top of each other for exactly d.
func layer(rate beep.SampleRate, d time.Duration, s ...beep.Streamer) beep.Streamer {
	m := &beep.Mixer{}
	m.Add(s...)
	return beep.Take(rate.N(d), m)
}

// sineThud returns a short low sine, falling back to an oscillator when the
// generator rejects the frequency.
func sineThud(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return tone(freq, d, WaveSine, rate)
	}
	return NewEnvelope(beep.Take(rate.N(d), sine), d, 2*time.Millisecond, d/2, rate)
}
