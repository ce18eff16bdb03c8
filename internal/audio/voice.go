package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// waveform is an oscillator shape.
type waveform int

const (
	waveSine waveform = iota
	waveSquare
	waveSaw
	waveNoise
)

// note is one tone of a phrase. A zero frequency is a rest.
type note struct {
	freq float64
	dur  time.Duration
	wave waveform
}

// phrase is a sequence of notes, optionally repeated forever.
type phrase struct {
	notes []note
	loop  bool
	gain  float64
}

// edge is the attack and release applied to every note so that note
// boundaries do not click.
const edge = 5 * time.Millisecond

// melody streams a phrase sample by sample.
type melody struct {
	sr     beep.SampleRate
	notes  []note
	loop   bool
	gain   float64
	index  int
	pos    int
	length int
	phase  float64
	seed   uint32
}

func newMelody(sr beep.SampleRate, p phrase) *melody {
	m := &melody{sr: sr, notes: p.notes, loop: p.loop, gain: p.gain, seed: 0x2545f491}
	if len(m.notes) > 0 {
		m.length = sr.N(m.notes[0].dur)
	}
	return m
}

func (m *melody) Stream(samples [][2]float64) (n int, ok bool) {
	if len(m.notes) == 0 {
		return 0, false
	}
	attack := m.sr.N(edge)
	for i := range samples {
		for m.pos >= m.length {
			m.index++
			if m.index >= len(m.notes) {
				if !m.loop {
					return i, i > 0
				}
				m.index = 0
			}
			m.pos = 0
			m.phase = 0
			m.length = m.sr.N(m.notes[m.index].dur)
		}

		nt := m.notes[m.index]
		val := 0.0
		if nt.freq > 0 || nt.wave == waveNoise {
			val = m.sample(nt.wave)
			env := 1.0
			if attack > 0 {
				env = math.Min(float64(m.pos)/float64(attack), 1)
				env = math.Min(env, float64(m.length-m.pos)/float64(attack))
			}
			val *= env * m.gain
		}
		samples[i][0] = val
		samples[i][1] = val

		m.phase += nt.freq / float64(m.sr)
		m.phase -= math.Floor(m.phase)
		m.pos++
	}
	return len(samples), true
}

func (m *melody) sample(w waveform) float64 {
	switch w {
	case waveSquare:
		if m.phase < 0.5 {
			return 1
		}
		return -1
	case waveSaw:
		return 2 * (m.phase - 0.5)
	case waveNoise:
		m.seed ^= m.seed << 13
		m.seed ^= m.seed >> 17
		m.seed ^= m.seed << 5
		return float64(m.seed)/float64(math.MaxUint32)*2 - 1
	default:
		return math.Sin(2 * math.Pi * m.phase)
	}
}

func (m *melody) Err() error { return nil }

// fader scales a stream by a gain that ramps down to zero once started,
// after which the stream ends.
type fader struct {
	streamer beep.Streamer
	total    int
	left     int
	fading   bool
}

func (f *fader) start(samples int) {
	if samples <= 0 {
		samples = 1
	}
	if f.fading && f.left <= samples {
		return
	}
	f.fading = true
	f.total = samples
	f.left = samples
}

func (f *fader) Stream(samples [][2]float64) (n int, ok bool) {
	if f.fading && f.left <= 0 {
		return 0, false
	}
	n, ok = f.streamer.Stream(samples)
	if !f.fading {
		return n, ok
	}
	for i := 0; i < n; i++ {
		if f.left <= 0 {
			return i, i > 0
		}
		g := float64(f.left) / float64(f.total)
		samples[i][0] *= g
		samples[i][1] *= g
		f.left--
	}
	return n, ok
}

func (f *fader) Err() error { return f.streamer.Err() }

// sustain keeps the output alive while the mixer is empty, padding with
// silence.
type sustain struct {
	streamer beep.Streamer
}

func (s sustain) Stream(samples [][2]float64) (int, bool) {
	n, _ := s.streamer.Stream(samples)
	for i := n; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	return len(samples), true
}

func (s sustain) Err() error { return nil }

// newVolume wraps s with a linear volume. Zero or less is silent.
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
