package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog/log"
)

type soundBoard struct {
	sr beep.SampleRate
}

// newSoundBoard returns nil when no audio device is available.
func newSoundBoard() *soundBoard {
	sr := beep.SampleRate(sampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		log.Warn().Err(err).Msg("Audio unavailable, running silent")
		return nil
	}
	return &soundBoard{sr: sr}
}

func (s *soundBoard) beep(freq float64, d time.Duration) {
	if s == nil {
		return
	}
	sine, err := generators.SineTone(s.sr, freq)
	if err != nil {
		log.Error().Err(err).Float64("freq", freq).Msg("Sine tone")
		return
	}
	speaker.Play(&effects.Volume{
		Streamer: beep.Take(s.sr.N(d), sine),
		Base:     2,
		Volume:   beepVolume,
	})
}
