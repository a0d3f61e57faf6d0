package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"

	"touchsnake/internal/gesture"
	"touchsnake/internal/snake"
)

// Game adapts a snake.Session to ebiten. Each Update is one frame: poll the
// pointer and hand it to the driver.
type Game struct {
	session *snake.Session
	driver  gesture.Driver
	pointer pointer
	overlay *gesture.Overlay
	sounds  *sounds

	textBuf    *ebiten.Image
	whitePixel *ebiten.Image
}

func NewGame() *Game {
	g := &Game{
		session: snake.NewSession(snake.SystemClock{}, snake.NewRand()),
		sounds:  newSounds(),
	}
	log.Info().
		Int("grid", snake.GridSize).
		Dur("interval", g.session.Interval()).
		Msg("Session started")
	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	if d, ok := keyIntent(); ok {
		g.session.Steer(d)
	}
	if g.session.Mode == snake.GameOver && restartPressed() {
		g.session.Restart()
		log.Info().Msg("Session restarted")
	}

	touch, touched := g.pointer.poll()
	f := g.driver.Frame(g.session, touch, touched)
	if f.Restarted {
		log.Info().Msg("Session restarted")
	}
	g.overlay = nil
	if f.Touched {
		o := gesture.NewOverlay(f.Reading)
		g.overlay = &o
	}

	out := f.Outcome
	if out.Ate {
		log.Debug().
			Int("score", g.session.Score).
			Float64("speed", g.session.Speed).
			Msg("Fruit eaten")
		g.sounds.play(g.sounds.eat)
	}
	if out.Died {
		log.Info().
			Int("score", g.session.Score).
			Int("length", g.session.Snake.Len()).
			Msg("Game over")
		g.sounds.play(g.sounds.gameOver)
	}
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return outsideWidth, outsideHeight
}
