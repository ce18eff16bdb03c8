// Package audio renders the game's sound cues with a small software
// synthesizer played through the system speaker.
package audio

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/juan-ignacio-sanchez/the-alchemist/internal/config"
	"github.com/juan-ignacio-sanchez/the-alchemist/internal/core"
)

// ErrDisabled is returned by Open when sound is turned off.
var ErrDisabled = errors.New("audio: disabled")

// speakerBuffer is the playback latency.
const speakerBuffer = 100 * time.Millisecond

type voice struct {
	ctrl *beep.Ctrl
	fade *fader
}

// Synth implements core.Audio. All cues are synthesized on the fly and
// mixed into a single output stream.
type Synth struct {
	sr     beep.SampleRate
	mixer  *beep.Mixer
	master *beep.Ctrl
	loops  map[core.Cue]*voice
	log    *log.Logger

	// lock guards the mixer against the playback goroutine.
	lock   func()
	unlock func()

	closeOnce sync.Once
	device    bool
}

func newSynth(sr beep.SampleRate, volume float64, lock, unlock func()) *Synth {
	mixer := &beep.Mixer{}
	return &Synth{
		sr:     sr,
		mixer:  mixer,
		master: &beep.Ctrl{Streamer: newVolume(sustain{mixer}, volume)},
		loops:  make(map[core.Cue]*voice),
		log:    log.New(io.Discard),
		lock:   lock,
		unlock: unlock,
	}
}

// Open initializes the speaker and starts playback.
func Open(cfg config.AudioConfig, logger *log.Logger) (*Synth, error) {
	if !cfg.Enabled {
		return nil, ErrDisabled
	}
	if cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("audio: invalid sample rate %d", cfg.SampleRate)
	}
	sr := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(sr, sr.N(speakerBuffer)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}

	s := newSynth(sr, cfg.Volume, speaker.Lock, speaker.Unlock)
	s.device = true
	if logger != nil {
		s.log = logger
	}
	speaker.Play(s.master)
	s.log.Info("audio ready", "sample_rate", cfg.SampleRate, "volume", cfg.Volume)
	return s, nil
}

// New returns a Synth when the speaker can be opened and a silent
// implementation otherwise.
func New(cfg config.AudioConfig, logger *log.Logger) core.Audio {
	s, err := Open(cfg, logger)
	if err != nil {
		if logger != nil && !errors.Is(err, ErrDisabled) {
			logger.Warn("audio unavailable, playing silently", "error", err)
		}
		return core.NopAudio{}
	}
	return s
}

// Close stops playback and releases the speaker.
func Close(a core.Audio) {
	if s, ok := a.(*Synth); ok {
		s.Close()
	}
}

// Output returns the mixed stream.
func (s *Synth) Output() beep.Streamer { return s.master }

// Play starts a one-shot cue.
func (s *Synth) Play(c core.Cue) {
	st := oneShot(s.sr, c)
	if st == nil {
		return
	}
	s.lock()
	defer s.unlock()
	s.mixer.Add(st)
}

// Loop (re)starts a looping cue.
func (s *Synth) Loop(c core.Cue) {
	st := looping(s.sr, c)
	if st == nil {
		return
	}
	s.lock()
	defer s.unlock()
	s.drop(c)
	v := &voice{fade: &fader{streamer: st}}
	v.ctrl = &beep.Ctrl{Streamer: v.fade}
	s.loops[c] = v
	s.mixer.Add(v.ctrl)
}

// Stop silences a looping cue at once.
func (s *Synth) Stop(c core.Cue) {
	s.lock()
	defer s.unlock()
	s.drop(c)
}

// FadeOut ramps a looping cue down to silence over d.
func (s *Synth) FadeOut(c core.Cue, d time.Duration) {
	s.lock()
	defer s.unlock()
	if d <= 0 {
		s.drop(c)
		return
	}
	if v, ok := s.loops[c]; ok {
		v.fade.start(s.sr.N(d))
		delete(s.loops, c)
	}
}

// Pause silences the output until Resume.
func (s *Synth) Pause() {
	s.lock()
	defer s.unlock()
	s.master.Paused = true
}

// Resume undoes Pause.
func (s *Synth) Resume() {
	s.lock()
	defer s.unlock()
	s.master.Paused = false
}

// Looping reports whether c is currently looping.
func (s *Synth) Looping(c core.Cue) bool {
	s.lock()
	defer s.unlock()
	_, ok := s.loops[c]
	return ok
}

// Voices returns the number of streams in the mixer.
func (s *Synth) Voices() int {
	s.lock()
	defer s.unlock()
	return s.mixer.Len()
}

// Close stops every sound and, for a device-backed synth, closes the
// speaker.
func (s *Synth) Close() {
	s.closeOnce.Do(func() {
		s.lock()
		s.mixer.Clear()
		clear(s.loops)
		s.unlock()
		if s.device {
			speaker.Close()
		}
	})
}

// drop removes a looping cue. Callers hold the lock.
func (s *Synth) drop(c core.Cue) {
	if v, ok := s.loops[c]; ok {
		v.ctrl.Streamer = nil
		delete(s.loops, c)
	}
}
