// Package audio synthesizes retro sound effects for simulation events.
// Everything is generated from oscillators at runtime, no sample files.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-runner/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Player owns the speaker and plays one-shot effects for game events.
// All methods are safe to call before Init or after a failed Init; they
// just do nothing.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player. Call Init before use.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the audio device. Returns an error when no device is
// available; the player stays silent in that case.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences the mixer. The speaker itself has no close hook, so
// clearing pending streamers is the whole cleanup.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// HandleEvents plays the effect for each event of one simulation step.
func (p *Player) HandleEvents(events []core.Event) {
	if p == nil {
		return
	}
	for _, evt := range events {
		p.Play(evt)
	}
}

// Play queues the one-shot effect for a single event.
func (p *Player) Play(evt core.Event) {
	if p == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	streamer := effectFor(evt)
	if streamer == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

// effectFor maps a simulation event to its synthesized streamer.
func effectFor(evt core.Event) beep.Streamer {
	switch evt {
	case core.EventJump:
		return jumpSound(sampleRate)
	case core.EventStomp:
		return stompSound(sampleRate)
	case core.EventDamage:
		return damageSound(sampleRate)
	case core.EventPickup:
		return pickupSound(sampleRate)
	case core.EventShot:
		return shotSound(sampleRate)
	case core.EventLevelComplete:
		return levelClearSound(sampleRate)
	case core.EventBossDefeated:
		return bossDownSound(sampleRate)
	case core.EventGameOver:
		return gameOverSound(sampleRate)
	case core.EventVictory:
		return victorySound(sampleRate)
	default:
		return nil
	}
}
