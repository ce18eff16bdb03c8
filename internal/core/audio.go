package core

import "time"

// Cue names a sound the simulation wants played. Playback is fire-and-forget.
type Cue string

const (
	CueBackground Cue = "background"
	CueFootsteps  Cue = "footsteps"
	CueKnock      Cue = "knock"
	CueSword      Cue = "sword"
	CueHit        Cue = "hit"
	CueBanish     Cue = "banish"
	CueSpawn      Cue = "spawn"
	CuePotion     Cue = "potion"
	CueKilled     Cue = "killed"
	CueEnding     Cue = "ending"
	CueInterlude  Cue = "interlude"
	CueWin        Cue = "win"
)

// Cues lists every cue the game can request.
var Cues = []Cue{
	CueBackground, CueFootsteps, CueKnock, CueSword, CueHit, CueBanish,
	CueSpawn, CuePotion, CueKilled, CueEnding, CueInterlude, CueWin,
}

// Audio is the sound collaborator. Loop restarts a looping cue; Stop and
// FadeOut on a cue that is not playing are no-ops.
type Audio interface {
	Play(c Cue)
	Loop(c Cue)
	Stop(c Cue)
	FadeOut(c Cue, d time.Duration)
	Pause()
	Resume()
}

// NopAudio discards every request.
type NopAudio struct{}

func (NopAudio) Play(Cue)                   {}
func (NopAudio) Loop(Cue)                   {}
func (NopAudio) Stop(Cue)                   {}
func (NopAudio) FadeOut(Cue, time.Duration) {}
func (NopAudio) Pause()                     {}
func (NopAudio) Resume()                    {}
