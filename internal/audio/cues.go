package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/juan-ignacio-sanchez/the-alchemist/internal/core"
)

const ms = time.Millisecond

// Note frequencies in Hz.
const (
	a2 = 110.00
	c3 = 130.81
	e3 = 164.81
	g3 = 196.00
	a3 = 220.00
	c4 = 261.63
	d4 = 293.66
	e4 = 329.63
	g4 = 392.00
	a4 = 440.00
	c5 = 523.25
	e5 = 659.25
	g5 = 783.99
	a5 = 880.00
)

func tones(wave waveform, dur time.Duration, freqs ...float64) []note {
	notes := make([]note, len(freqs))
	for i, f := range freqs {
		notes[i] = note{freq: f, dur: dur, wave: wave}
	}
	return notes
}

// phrases is the built-in sound design, one phrase per cue.
var phrases = map[core.Cue]phrase{
	core.CueBackground: {
		notes: tones(waveSine, 300*ms, a2, e3, a3, c4, a3, e3, g3, d4, g3, e3, a2, c3),
		loop:  true,
		gain:  0.35,
	},
	core.CueFootsteps: {
		notes: []note{{wave: waveNoise, dur: 35 * ms}, {dur: 165 * ms}},
		loop:  true,
		gain:  0.15,
	},
	core.CueKnock:  {notes: tones(waveSquare, 50*ms, 90), gain: 0.3},
	core.CueSword:  {notes: tones(waveSaw, 35*ms, a5, e5, c5), gain: 0.25},
	core.CueBanish: {notes: tones(waveSaw, 80*ms, e4, c4, a3, e3), gain: 0.3},
	core.CueSpawn:  {notes: tones(waveSquare, 90*ms, a2, c3, e3), gain: 0.25},
	core.CuePotion: {notes: tones(waveSine, 70*ms, c5, e5, g5), gain: 0.4},
	core.CueKilled: {notes: tones(waveSaw, 180*ms, e4, d4, c4, a3), gain: 0.35},
	core.CueEnding: {
		notes: tones(waveSine, 450*ms, a3, c4, e4, d4, c4, a3, g3, a3),
		loop:  true,
		gain:  0.3,
	},
	core.CueInterlude: {notes: tones(waveSine, 140*ms, c4, e4, g4, c5), gain: 0.4},
	core.CueWin:       {notes: tones(waveSine, 160*ms, c4, e4, g4, c5, g4, c5, e5), gain: 0.45},
}

// hitLength is the duration of the hit cue.
const hitLength = 120 * ms

// oneShot builds the streamer that plays c once. Looping cues play a
// single pass. It returns nil for cues without a sound.
func oneShot(sr beep.SampleRate, c core.Cue) beep.Streamer {
	if c == core.CueHit {
		return hit(sr)
	}
	p, ok := phrases[c]
	if !ok {
		return nil
	}
	p.loop = false
	return newMelody(sr, p)
}

// hit is a short low thud: a sine burst followed by a noise tail.
func hit(sr beep.SampleRate) beep.Streamer {
	tone, err := generators.SineTone(sr, a2)
	if err != nil {
		return nil
	}
	tail := newMelody(sr, phrase{notes: []note{{wave: waveNoise, dur: 40 * ms}}, gain: 0.2})
	return beep.Seq(newVolume(beep.Take(sr.N(hitLength), tone), 0.4), tail)
}

// looping builds the streamer of a looping cue, or nil if c does not loop.
func looping(sr beep.SampleRate, c core.Cue) beep.Streamer {
	p, ok := phrases[c]
	if !ok || !p.loop {
		return nil
	}
	return newMelody(sr, p)
}
