package gesture

import (
	"image/color"
	"math"
)

var (
	colorStarted    = color.RGBA{0, 228, 48, 255}
	colorStationary = color.RGBA{230, 41, 55, 255}
	colorMoved      = color.RGBA{255, 161, 0, 255}
	colorEnded      = color.RGBA{0, 121, 241, 255}
	colorCancelled  = color.RGBA{0, 0, 0, 255}

	WedgePrimary   = color.RGBA{102, 191, 255, 255}
	WedgeSecondary = color.RGBA{255, 0, 255, 255}
)

const (
	wedgeSteps    = 5
	wedgeDivision = 20
)

// Style returns the fill colour and radius used for a phase.
func Style(p Phase) (color.RGBA, float64) {
	switch p {
	case Started:
		return colorStarted, 80
	case Stationary:
		return colorStationary, 60
	case Moved:
		return colorMoved, 60
	case Ended:
		return colorEnded, 80
	}
	return colorCancelled, 80
}

type Line struct{ From, To Vec }

type Circle struct {
	Center Vec
	Radius float64
}

type Triangle struct {
	A, B, C Vec
	Color   color.RGBA
}

// Overlay is everything drawn for the tracked touch in one frame.
type Overlay struct {
	Color  color.RGBA
	Trail  Line
	Guides [4]Line
	Wedge  []Triangle
	Ring   Circle
	Dot    Circle
	Angle  float64
}

func NewOverlay(r Reading) Overlay {
	c, size := Style(r.Touch.Phase)
	o := Overlay{
		Color: c,
		Trail: Line{r.Start, r.Touch.Pos},
		Ring:  Circle{r.Start, size},
		Dot:   Circle{r.Touch.Pos, size},
		Angle: r.Angle,
	}
	end := Vec{r.Start.X, r.Start.Y - size}
	for i := range o.Guides {
		o.Guides[i] = Line{r.Start, Rotate(end, r.Start, 90*float64(i)+45)}
	}
	if r.Classified {
		o.Wedge = Wedge(r.Start, size, IndicatorAngle(r.Direction))
	}
	return o
}

// Rotate turns p around c by deg degrees.
func Rotate(p, c Vec, deg float64) Vec {
	a := deg * math.Pi / 180
	sin, cos := math.Sincos(a)
	d := p.Sub(c)
	return Vec{cos*d.X - sin*d.Y + c.X, sin*d.X + cos*d.Y + c.Y}
}

// Wedge fans a quarter disc of the given radius out from center, starting at
// deg and alternating colours per slice.
func Wedge(center Vec, radius, deg float64) []Triangle {
	rot := deg * math.Pi / 180
	tris := make([]Triangle, 0, wedgeSteps)
	var prev Vec
	for i := 0; i <= wedgeSteps; i++ {
		sin, cos := math.Sincos(float64(i)*math.Pi*2/wedgeDivision + rot)
		p := Vec{center.X + radius*cos, center.Y + radius*sin}
		if i != 0 {
			c := WedgeSecondary
			if i%2 == 0 {
				c = WedgePrimary
			}
			tris = append(tris, Triangle{center, prev, p, c})
		}
		prev = p
	}
	return tris
}
