// Package sfx synthesizes the short jingles played when a game ends.
package sfx

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/meteor-dodge/internal/core"
)

// SampleRate is the rate every jingle is rendered at.
const SampleRate beep.SampleRate = 44100

// Kind identifies a jingle.
type Kind int

const (
	KindWon Kind = iota
	KindLost
)

// ForOutcome returns the jingle for a finished game. Quit has none.
func ForOutcome(o core.Outcome) (Kind, bool) {
	switch o {
	case core.OutcomeWon:
		return KindWon, true
	case core.OutcomeLost:
		return KindLost, true
	default:
		return 0, false
	}
}

// Wave defines oscillator wave shapes
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// oscillator generates a fixed-length tone
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     Wave
	rate     beep.SampleRate
}

// NewOscillator creates a tone of the given frequency and length.
func NewOscillator(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(d),
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
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in and out to avoid clicks
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope applies a linear attack and release to s.
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := range n {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Max(0, float64(remaining)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

type note struct {
	freq float64
	d    time.Duration
}

func sequence(notes []note, wave Wave, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		osc := NewOscillator(n.freq, n.d, wave, rate)
		parts = append(parts, NewEnvelope(osc, n.d, 5*time.Millisecond, n.d/3, rate))
	}
	return beep.Seq(parts...)
}

// Jingle builds the streamer for a jingle at the given volume (0..1).
func Jingle(kind Kind, volume float64) beep.Streamer {
	switch kind {
	case KindLost:
		// Falling minor line
		return newVolume(sequence([]note{
			{392.00, 180 * time.Millisecond}, // G4
			{311.13, 180 * time.Millisecond}, // Eb4
			{233.08, 420 * time.Millisecond}, // Bb3
		}, WaveSaw, SampleRate), volume*0.6)
	default:
		// Rising major arpeggio
		return newVolume(sequence([]note{
			{523.25, 110 * time.Millisecond},  // C5
			{659.25, 110 * time.Millisecond},  // E5
			{783.99, 110 * time.Millisecond},  // G5
			{1046.50, 320 * time.Millisecond}, // C6
		}, WaveSquare, SampleRate), volume*0.4)
	}
}

// Render drains s into signed 16-bit little-endian stereo PCM.
func Render(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				v = math.Max(-1, math.Min(1, v))
				out = binary.LittleEndian.AppendUint16(out, uint16(int16(v*math.MaxInt16)))
			}
		}
		if !ok || n == 0 {
			return out
		}
	}
}
