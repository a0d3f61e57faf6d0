package main

import (
	"image/color"
)

// Window defaults.
const (
	windowWidth  = 1280
	windowHeight = 720
)

// Board layout (in screen pixels).
const (
	boardMargin = 10
	gridLineW   = 2
	trailLineW  = 2
)

// Text is the ebitenutil debug font scaled up.
const (
	debugGlyphW = 6
	debugGlyphH = 16
	textScale   = 2
)

// Audio.
const (
	sampleRate = 44100
)

var (
	bgColor    = color.RGBA{200, 200, 200, 255}
	boardColor = color.RGBA{255, 255, 255, 255}
	gridColor  = color.RGBA{200, 200, 200, 255}
	headColor  = color.RGBA{0, 117, 44, 255}
	bodyColor  = color.RGBA{0, 158, 47, 255}
	fruitColor = color.RGBA{255, 203, 0, 255}
	textColor  = color.RGBA{80, 80, 80, 255}
	overColor  = color.RGBA{255, 255, 255, 255}
)
