// Package gesture turns a single dragged touch into one of four directional
// intents and computes the overlay drawn around it.
package gesture

import (
	"math"

	"github.com/rs/zerolog/log"

	"touchsnake/internal/snake"
)

type Vec struct{ X, Y float64 }

func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

type Phase uint8

const (
	Started Phase = iota
	Stationary
	Moved
	Ended
	Cancelled
)

func (p Phase) String() string {
	switch p {
	case Started:
		return "Started"
	case Stationary:
		return "Stationary"
	case Moved:
		return "Moved"
	case Ended:
		return "Ended"
	case Cancelled:
		return "Cancelled"
	}
	return "Unknown"
}

// Touch is the first tracked pointer for one frame.
type Touch struct {
	Phase Phase
	Pos   Vec
}

// Angle returns the direction from current back to start in degrees, in
// (-180, 180]. Identical points yield 0.
func Angle(start, current Vec) float64 {
	d := start.Sub(current)
	return math.Atan2(d.Y, d.X) * 180 / math.Pi
}

// Classify maps a drag to a direction. ok is false when the pointer has not
// left its start point.
func Classify(start, current Vec) (dir snake.Direction, ok bool) {
	if start == current {
		return 0, false
	}
	return classifyAngle(Angle(start, current)), true
}

// Left owns two 45° bands on either side of 0°; the other directions own one
// contiguous 90° band each.
func classifyAngle(a float64) snake.Direction {
	switch {
	case a >= 0 && a < 45:
		return snake.Left
	case a >= 45 && a < 135:
		return snake.Up
	case a >= 135 && a <= 180:
		return snake.Right
	case a >= -180 && a <= -135:
		return snake.Right
	case a > -135 && a <= -45:
		return snake.Down
	case a > -45 && a < 0:
		return snake.Left
	}
	log.Panic().Float64("angle", a).Msg("gesture angle outside every band")
	return 0
}

// IndicatorAngle is the rotation, in degrees, of the wedge drawn for d.
func IndicatorAngle(d snake.Direction) float64 {
	switch d {
	case snake.Left:
		return 135
	case snake.Up:
		return 225
	case snake.Right:
		return 315
	case snake.Down:
		return 45
	}
	return 0
}

// Reading is the classifier output for one frame.
type Reading struct {
	Touch     Touch
	Start     Vec
	Angle     float64
	Direction snake.Direction
	// Classified is false when the pointer sits on its start point.
	Classified bool
}

// Tracker latches the start point of a gesture. The start survives across
// frames until the next Started phase.
type Tracker struct {
	start Vec
}

func (tr *Tracker) Start() Vec { return tr.start }

func (tr *Tracker) Observe(t Touch) Reading {
	if t.Phase == Started {
		tr.start = t.Pos
	}
	r := Reading{
		Touch: t,
		Start: tr.start,
		Angle: Angle(tr.start, t.Pos),
	}
	r.Direction, r.Classified = Classify(tr.start, t.Pos)
	return r
}
