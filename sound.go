package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog/log"
)

// tone is a sine cue that decays exponentially and can glide in pitch.
type tone struct {
	freq    float64 // Hz at the start
	glide   float64 // Hz added by the end
	seconds float64
	amp     float64 // peak 16-bit amplitude
	decay   float64 // e-folds per second
}

var (
	eatTone      = tone{freq: 880, glide: 220, seconds: 0.1, amp: 4000, decay: 3}
	gameOverTone = tone{freq: 330, glide: -110, seconds: 0.4, amp: 5000, decay: 2}
)

type sounds struct {
	eat      *audio.Player
	gameOver *audio.Player
}

func newSounds() *sounds {
	ctx := audio.NewContext(sampleRate)
	return &sounds{
		eat:      newTonePlayer(ctx, eatTone),
		gameOver: newTonePlayer(ctx, gameOverTone),
	}
}

// pcm renders t as interleaved little-endian 16-bit stereo.
func (t tone) pcm() []byte {
	n := int(sampleRate * t.seconds)
	buf := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		sec := float64(i) / sampleRate
		phase += 2 * math.Pi * (t.freq + t.glide*float64(i)/float64(n)) / sampleRate
		v := int16(math.Sin(phase) * t.amp * math.Exp(-t.decay*sec))
		for ch := 0; ch < 2; ch++ {
			idx := i*4 + ch*2
			buf[idx] = byte(v)
			buf[idx+1] = byte(v >> 8)
		}
	}
	return buf
}

func newTonePlayer(ctx *audio.Context, t tone) *audio.Player {
	return ctx.NewPlayerFromBytes(t.pcm())
}

func (s *sounds) play(p *audio.Player) {
	if s == nil || p == nil {
		return
	}
	if err := p.Rewind(); err != nil {
		log.Warn().Err(err).Msg("Rewind sound")
		return
	}
	p.Play()
}
