// Package audio plays the defender sound effects through the system speaker.
// Every effect is synthesised, so there are no asset files to ship.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-defender/internal/games/defender"
)

const sampleRate = beep.SampleRate(44100)

// Speaker is a defender.SoundPlayer backed by beep. Effects are mixed into a
// single stream so overlapping shots never cut each other off.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	closed bool
}

// Open initialises the speaker. When the host has no audio device it logs a
// warning and returns defender.Silent, so callers never need to check.
func Open(volume float64, logger *log.Logger) defender.SoundPlayer {
	s, err := NewSpeaker(volume)
	if err != nil {
		if logger != nil {
			logger.Warn("audio disabled", "err", err)
		}
		return defender.Silent{}
	}
	return s
}

// NewSpeaker initialises the audio device and starts the mixer.
func NewSpeaker(volume float64) (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, err
	}
	s := &Speaker{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
	speaker.Play(s.mixer)
	return s, nil
}

// Play implements defender.SoundPlayer.
func (s *Speaker) Play(id defender.SoundID) {
	st := Effect(id, s.volume)
	if st == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close stops all sounds.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	speaker.Clear()
	s.closed = true
}

// Effect builds the streamer for one sound. It returns nil for unknown ids.
func Effect(id defender.SoundID, volume float64) beep.Streamer {
	var st beep.Streamer
	switch id {
	case defender.SoundGameStart:
		// rising arpeggio
		st = beep.Seq(
			tone(523.25, 90*time.Millisecond, WaveSquare),
			tone(659.25, 90*time.Millisecond, WaveSquare),
			tone(783.99, 160*time.Millisecond, WaveSquare),
		)
	case defender.SoundGameOver:
		st = beep.Seq(
			tone(392.00, 180*time.Millisecond, WaveSaw),
			tone(311.13, 180*time.Millisecond, WaveSaw),
			tone(196.00, 400*time.Millisecond, WaveSaw),
		)
	case defender.SoundPlayerShoot:
		st = NewSweep(1400, 500, 80*time.Millisecond, sampleRate)
	case defender.SoundOpponentExplode:
		noise := NewOscillator(0, 350*time.Millisecond, WaveNoise, sampleRate)
		st = NewEnvelope(noise, 350*time.Millisecond, 5*time.Millisecond, 300*time.Millisecond, sampleRate)
	default:
		return nil
	}
	return newVolume(st, volume)
}

func tone(freq float64, d time.Duration, wave WaveType) beep.Streamer {
	osc := NewOscillator(freq, d, wave, sampleRate)
	return NewEnvelope(osc, d, 5*time.Millisecond, d/3, sampleRate)
}

// newVolume maps a linear volume onto beep's log2 scale. Zero is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
