package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

const (
	frameInterval = 16 * time.Millisecond
	cellW         = 2 // terminal columns per board cell
	// Terminal cells are roughly twice as tall as wide; rows are stretched so
	// drag angles match what the eye sees.
	rowAspect = 2.0
)

const (
	sampleRate = 44100
	eatFreq    = 880
	eatDur     = 100 * time.Millisecond
	overFreq   = 220
	overDur    = 400 * time.Millisecond
	beepVolume = -3 // log2 gain
)

var (
	styleBoard = tcell.StyleDefault.Background(tcell.NewRGBColor(255, 255, 255))
	styleHead  = tcell.StyleDefault.Background(tcell.NewRGBColor(0, 117, 44))
	styleBody  = tcell.StyleDefault.Background(tcell.NewRGBColor(0, 158, 47))
	styleFruit = tcell.StyleDefault.Background(tcell.NewRGBColor(255, 203, 0))
	styleText  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(200, 200, 200))
	styleWedge = tcell.StyleDefault.Foreground(tcell.NewRGBColor(102, 191, 255))
)
