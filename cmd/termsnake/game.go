package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"touchsnake/internal/gesture"
	"touchsnake/internal/snake"
)

type game struct {
	screen  tcell.Screen
	session *snake.Session
	driver  gesture.Driver
	pointer gesture.Pointer
	sound   *soundBoard

	reading *gesture.Reading
	best    int
	games   int
	quit    bool
}

func newGame() (*game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()

	return &game{
		screen:  screen,
		session: snake.NewSession(snake.SystemClock{}, snake.NewRand()),
		sound:   newSoundBoard(),
		games:   1,
	}, nil
}

// run owns the session; the event pump only forwards raw events.
func (g *game) run() {
	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for !g.quit {
		<-ticker.C
	drain:
		for {
			select {
			case ev := <-events:
				g.handleEvent(ev)
			default:
				break drain
			}
		}
		g.frame()
		g.draw()
	}
}

func (g *game) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKey(ev)
	case *tcell.EventMouse:
		x, y := ev.Position()
		g.pointer.Set(ev.Buttons()&tcell.Button1 != 0, toVec(x, y))
	case *tcell.EventResize:
		g.pointer.Cancel()
		g.screen.Sync()
	}
}

func (g *game) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.quit = true
	case tcell.KeyUp:
		g.session.Steer(snake.Up)
	case tcell.KeyDown:
		g.session.Steer(snake.Down)
	case tcell.KeyLeft:
		g.session.Steer(snake.Left)
	case tcell.KeyRight:
		g.session.Steer(snake.Right)
	case tcell.KeyEnter:
		g.restartIfOver()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			g.quit = true
		case 'w':
			g.session.Steer(snake.Up)
		case 's':
			g.session.Steer(snake.Down)
		case 'a':
			g.session.Steer(snake.Left)
		case 'd':
			g.session.Steer(snake.Right)
		case 'r':
			g.restartIfOver()
		}
	}
}

func (g *game) restartIfOver() {
	if g.session.Mode != snake.GameOver {
		return
	}
	g.session.Restart()
	g.games++
	log.Info().Int("game", g.games).Msg("Session restarted")
}

// frame samples the pointer once and hands it to the driver.
func (g *game) frame() {
	g.reading = nil
	touch, ok := g.pointer.Poll()
	f := g.driver.Frame(g.session, touch, ok)
	if f.Restarted {
		g.games++
		log.Info().Int("game", g.games).Msg("Session restarted")
	}
	if f.Touched {
		g.reading = &f.Reading
	}

	out := f.Outcome
	if out.Ate {
		g.sound.beep(eatFreq, eatDur)
	}
	if out.Died {
		g.best = max(g.best, g.session.Score)
		log.Info().Int("score", g.session.Score).Msg("Game over")
		g.sound.beep(overFreq, overDur)
	}
}

func (g *game) draw() {
	g.screen.Clear()
	w, h := g.screen.Size()
	s := g.session

	if s.Mode == snake.Playing {
		ox := (w - snake.GridSize*cellW) / 2
		oy := (h - snake.GridSize) / 2
		cell := func(p snake.Position, st tcell.Style) {
			for i := 0; i < cellW; i++ {
				g.screen.SetContent(ox+p.X*cellW+i, oy+p.Y, ' ', nil, st)
			}
		}
		for y := 0; y < snake.GridSize; y++ {
			for x := 0; x < snake.GridSize; x++ {
				cell(snake.Position{X: x, Y: y}, styleBoard)
			}
		}
		for _, p := range s.Snake.Body {
			cell(p, styleBody)
		}
		cell(s.Snake.Head, styleHead)
		cell(s.Fruit, styleFruit)
		g.text(0, 0, fmt.Sprintf("SCORE: %d", s.Score), styleText)
	} else {
		const msg = "Game Over. Touch screen to play again."
		g.text((w-len(msg))/2, h/2, msg, styleText)
	}

	if r := g.reading; r != nil {
		g.drawGesture(r)
	}
	g.screen.Show()
}

var arrows = map[snake.Direction]rune{
	snake.Up:    '↑',
	snake.Down:  '↓',
	snake.Left:  '←',
	snake.Right: '→',
}

func (g *game) drawGesture(r *gesture.Reading) {
	c, _ := gesture.Style(r.Touch.Phase)
	st := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	sx, sy := fromVec(r.Start)
	cx, cy := fromVec(r.Touch.Pos)
	g.screen.SetContent(cx, cy, '●', nil, st)
	if r.Classified {
		g.screen.SetContent(sx, sy, arrows[r.Direction], nil, styleWedge)
	} else {
		g.screen.SetContent(sx, sy, '○', nil, st)
	}
	g.text(0, 1, fmt.Sprintf("ANGLE: %v", r.Angle), styleText)
}

func (g *game) text(x, y int, s string, st tcell.Style) {
	for _, r := range s {
		g.screen.SetContent(x, y, r, nil, st)
		x++
	}
}

// toVec maps a terminal cell to gesture space, stretching rows so a drag's
// angle matches its on-screen shape.
func toVec(x, y int) gesture.Vec {
	return gesture.Vec{X: float64(x), Y: float64(y) * rowAspect}
}

func fromVec(v gesture.Vec) (int, int) {
	return int(v.X), int(v.Y / rowAspect)
}
