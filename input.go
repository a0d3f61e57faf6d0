package main

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"touchsnake/internal/gesture"
	"touchsnake/internal/snake"
)

// pointer follows the first touch, or the left mouse button when no touch is
// down, and feeds it to a gesture.Pointer once per tick.
type pointer struct {
	gesture.Pointer
	tracking bool
	mouse    bool
	id       ebiten.TouchID
	ids      []ebiten.TouchID
}

func (p *pointer) poll() (gesture.Touch, bool) {
	if !p.tracking {
		p.ids = inpututil.AppendJustPressedTouchIDs(p.ids[:0])
		switch {
		case len(p.ids) > 0:
			p.tracking, p.mouse, p.id = true, false, p.ids[0]
		case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
			p.tracking, p.mouse = true, true
		}
	}
	if p.tracking {
		p.sample()
	}

	t, ok := p.Pointer.Poll()
	if ok && (t.Phase == gesture.Ended || t.Phase == gesture.Cancelled) {
		p.tracking = false
	}
	return t, ok
}

func (p *pointer) sample() {
	if p.mouse {
		x, y := ebiten.CursorPosition()
		p.Set(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), toVec(x, y))
		return
	}
	if inpututil.IsTouchJustReleased(p.id) {
		p.Set(false, gesture.Vec{})
		return
	}
	// A touch that disappears without a release has been taken by the system.
	p.ids = ebiten.AppendTouchIDs(p.ids[:0])
	if !slices.Contains(p.ids, p.id) {
		p.Cancel()
		return
	}
	x, y := ebiten.TouchPosition(p.id)
	p.Set(true, toVec(x, y))
}

func toVec(x, y int) gesture.Vec {
	return gesture.Vec{X: float64(x), Y: float64(y)}
}

var steerKeys = []struct {
	keys []ebiten.Key
	dir  snake.Direction
}{
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, snake.Up},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, snake.Down},
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, snake.Left},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, snake.Right},
}

// keyIntent returns the last steering key pressed this tick.
func keyIntent() (snake.Direction, bool) {
	var dir snake.Direction
	for _, sk := range steerKeys {
		for _, k := range sk.keys {
			if inpututil.IsKeyJustPressed(k) {
				dir = sk.dir
			}
		}
	}
	return dir, dir != 0
}

func restartPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyR)
}
