package gesture

import (
	"math"
	"testing"

	"touchsnake/internal/snake"
)

func near(a, b Vec) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestRotate(t *testing.T) {
	c := Vec{10, 10}
	p := Vec{10, -70}
	tests := []struct {
		deg  float64
		want Vec
	}{
		{0, Vec{10, -70}},
		{90, Vec{90, 10}},
		{180, Vec{10, 90}},
		{270, Vec{-70, 10}},
	}
	for _, tc := range tests {
		if got := Rotate(p, c, tc.deg); !near(got, tc.want) {
			t.Errorf("Rotate(%v°) = %v, want %v", tc.deg, got, tc.want)
		}
	}
}

func TestStyle(t *testing.T) {
	tests := []struct {
		phase  Phase
		radius float64
	}{
		{Started, 80},
		{Stationary, 60},
		{Moved, 60},
		{Ended, 80},
		{Cancelled, 80},
	}
	seen := map[[4]uint8]bool{}
	for _, tc := range tests {
		c, r := Style(tc.phase)
		if r != tc.radius {
			t.Errorf("%s radius = %v, want %v", tc.phase, r, tc.radius)
		}
		seen[[4]uint8{c.R, c.G, c.B, c.A}] = true
	}
	if len(seen) != len(tests) {
		t.Errorf("phases share colours: %d distinct", len(seen))
	}
}

func TestWedgeGeometry(t *testing.T) {
	center := Vec{100, 100}
	tris := Wedge(center, 80, 45)
	if len(tris) != 5 {
		t.Fatalf("got %d triangles, want 5", len(tris))
	}
	for i, tri := range tris {
		if tri.A != center {
			t.Errorf("triangle %d not anchored at center", i)
		}
		for _, v := range []Vec{tri.B, tri.C} {
			d := v.Sub(center)
			if r := math.Hypot(d.X, d.Y); math.Abs(r-80) > 1e-9 {
				t.Errorf("triangle %d vertex at radius %v", i, r)
			}
		}
		if i > 0 && tri.B != tris[i-1].C {
			t.Errorf("triangle %d does not continue the fan", i)
		}
	}
	if tris[0].Color != WedgeSecondary || tris[1].Color != WedgePrimary {
		t.Error("slices do not alternate starting with the secondary colour")
	}
	// Fan starts at the given angle and spans a quarter turn.
	if !near(tris[0].B, Vec{100 + 80*math.Cos(math.Pi/4), 100 + 80*math.Sin(math.Pi/4)}) {
		t.Errorf("fan start = %v", tris[0].B)
	}
	if !near(tris[4].C, Vec{100 + 80*math.Cos(3*math.Pi/4), 100 + 80*math.Sin(3*math.Pi/4)}) {
		t.Errorf("fan end = %v", tris[4].C)
	}
}

func TestNewOverlay(t *testing.T) {
	var tr Tracker
	tr.Observe(Touch{Started, Vec{200, 200}})
	o := NewOverlay(tr.Observe(Touch{Moved, Vec{200, 120}}))

	if o.Trail != (Line{Vec{200, 200}, Vec{200, 120}}) {
		t.Errorf("trail = %v", o.Trail)
	}
	if o.Ring.Radius != 60 || o.Ring.Center != (Vec{200, 200}) || o.Dot.Center != (Vec{200, 120}) {
		t.Errorf("ring/dot = %v/%v", o.Ring, o.Dot)
	}
	for i, g := range o.Guides {
		d := g.To.Sub(g.From)
		if r := math.Hypot(d.X, d.Y); math.Abs(r-60) > 1e-9 {
			t.Errorf("guide %d length %v", i, r)
		}
	}
	// First guide points up and to the right.
	if d := o.Guides[0].To.Sub(o.Guides[0].From); !(d.X > 0 && d.Y < 0) {
		t.Errorf("guide 0 direction %v", d)
	}
	if len(o.Wedge) != 5 {
		t.Errorf("wedge has %d triangles", len(o.Wedge))
	}
	if want := Wedge(Vec{200, 200}, 60, IndicatorAngle(snake.Up)); o.Wedge[0] != want[0] {
		t.Errorf("wedge not oriented for Up")
	}
	if math.Abs(o.Angle-90) > 1e-9 {
		t.Errorf("angle = %v", o.Angle)
	}
}

func TestNewOverlayWithoutDirection(t *testing.T) {
	var tr Tracker
	o := NewOverlay(tr.Observe(Touch{Started, Vec{5, 5}}))
	if o.Wedge != nil {
		t.Error("wedge drawn for a zero-length drag")
	}
}
