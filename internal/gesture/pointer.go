package gesture

type edge uint8

const (
	edgePress edge = iota
	edgeRelease
	edgeCancel
)

type transition struct {
	edge edge
	pos  Vec
}

// Pointer turns raw pressed/position samples into per-frame phases. Frontends
// Set the latest state as often as they like and Poll once per frame. Presses,
// releases and cancels between two polls are queued and reported one per
// Poll, in order.
type Pointer struct {
	down    bool
	pos     Vec
	pending []transition
	active  bool
	last    Vec
}

// Set records the current state. The position of a released pointer is ignored.
func (p *Pointer) Set(down bool, pos Vec) {
	switch {
	case down && !p.down:
		p.pending = append(p.pending, transition{edgePress, pos})
	case !down && p.down:
		p.pending = append(p.pending, transition{edgeRelease, p.pos})
	}
	if down {
		p.pos = pos
	}
	p.down = down
}

// Cancel aborts the press in progress, if any.
func (p *Pointer) Cancel() {
	if !p.down {
		return
	}
	p.pending = append(p.pending, transition{edgeCancel, p.pos})
	p.down = false
}

func (p *Pointer) Active() bool { return p.active }

// Poll returns the phase for this frame.
func (p *Pointer) Poll() (Touch, bool) {
	for len(p.pending) > 0 {
		tr := p.pending[0]
		p.pending = p.pending[1:]
		switch tr.edge {
		case edgePress:
			p.active = true
			p.last = tr.pos
			return Touch{Phase: Started, Pos: tr.pos}, true
		case edgeRelease:
			if p.active {
				p.active = false
				return Touch{Phase: Ended, Pos: tr.pos}, true
			}
		case edgeCancel:
			if p.active {
				p.active = false
				return Touch{Phase: Cancelled, Pos: tr.pos}, true
			}
		}
	}
	if !p.active {
		return Touch{}, false
	}

	phase := Stationary
	if p.pos != p.last {
		phase = Moved
	}
	p.last = p.pos
	return Touch{Phase: phase, Pos: p.pos}, true
}
