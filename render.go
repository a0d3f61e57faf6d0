package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"touchsnake/internal/gesture"
	"touchsnake/internal/snake"
)

func (g *Game) Draw(screen *ebiten.Image) {
	if g.session.Mode == snake.Playing {
		g.drawBoard(screen)
	} else {
		g.drawGameOver(screen)
	}
	if g.overlay != nil {
		g.drawOverlay(screen, g.overlay)
	}
}

// boardGeometry centres a square board with a fixed margin and returns its
// origin and cell size.
func boardGeometry(w, h float32) (ox, oy, size, cell float32) {
	side := min(w, h)
	ox = (w-side)/2 + boardMargin
	oy = (h-side)/2 + boardMargin
	size = side - 2*boardMargin
	cell = size / snake.GridSize
	return ox, oy, size, cell
}

func (g *Game) drawBoard(screen *ebiten.Image) {
	b := screen.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	screen.Fill(bgColor)

	ox, oy, size, cell := boardGeometry(w, h)
	vector.DrawFilledRect(screen, ox, oy, size, size, boardColor, false)
	for i := 1; i < snake.GridSize; i++ {
		off := cell * float32(i)
		vector.StrokeLine(screen, ox, oy+off, ox+size, oy+off, gridLineW, gridColor, false)
		vector.StrokeLine(screen, ox+off, oy, ox+off, oy+size, gridLineW, gridColor, false)
	}

	drawCell := func(p snake.Position, c color.Color) {
		vector.DrawFilledRect(screen, ox+float32(p.X)*cell, oy+float32(p.Y)*cell, cell, cell, c, false)
	}
	s := g.session
	drawCell(s.Snake.Head, headColor)
	for _, p := range s.Snake.Body {
		drawCell(p, bodyColor)
	}
	drawCell(s.Fruit, fruitColor)

	g.drawText(screen, fmt.Sprintf("SCORE: %d", s.Score), boardMargin, boardMargin, textColor)
}

func (g *Game) drawGameOver(screen *ebiten.Image) {
	screen.Fill(overColor)
	const msg = "Game Over. Touch screen to play again."
	b := screen.Bounds()
	tw := float64(len(msg) * debugGlyphW * textScale)
	th := float64(debugGlyphH * textScale)
	g.drawText(screen, msg, (float64(b.Dx())-tw)/2, (float64(b.Dy())-th)/2, textColor)
}

func (g *Game) drawOverlay(screen *ebiten.Image, o *gesture.Overlay) {
	line := func(l gesture.Line) {
		vector.StrokeLine(screen, float32(l.From.X), float32(l.From.Y), float32(l.To.X), float32(l.To.Y), trailLineW, o.Color, true)
	}
	line(o.Trail)
	for _, l := range o.Guides {
		line(l)
	}
	for _, t := range o.Wedge {
		g.fillTriangle(screen, t)
	}
	vector.StrokeCircle(screen, float32(o.Ring.Center.X), float32(o.Ring.Center.Y), float32(o.Ring.Radius), trailLineW, o.Color, true)
	vector.DrawFilledCircle(screen, float32(o.Dot.Center.X), float32(o.Dot.Center.Y), float32(o.Dot.Radius), o.Color, true)

	g.drawText(screen, fmt.Sprintf("ANGLE: %v", o.Angle), boardMargin, boardMargin+debugGlyphH*textScale, textColor)
}

func (g *Game) fillTriangle(dst *ebiten.Image, t gesture.Triangle) {
	if g.whitePixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		g.whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	r, gr, b, a := float32(t.Color.R)/255, float32(t.Color.G)/255, float32(t.Color.B)/255, float32(t.Color.A)/255
	vs := make([]ebiten.Vertex, 0, 3)
	for _, v := range []gesture.Vec{t.A, t.B, t.C} {
		vs = append(vs, ebiten.Vertex{
			DstX: float32(v.X), DstY: float32(v.Y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: gr, ColorB: b, ColorA: a,
		})
	}
	dst.DrawTriangles(vs, []uint16{0, 1, 2}, g.whitePixel, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// drawText prints with the debug font into a scratch image, then scales and
// tints it onto dst.
func (g *Game) drawText(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	w := len(s) * debugGlyphW
	if g.textBuf == nil || g.textBuf.Bounds().Dx() < w {
		g.textBuf = ebiten.NewImage(max(w, 256), debugGlyphH)
	}
	g.textBuf.Clear()
	ebitenutil.DebugPrintAt(g.textBuf, s, 0, 0)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(g.textBuf, op)
}
