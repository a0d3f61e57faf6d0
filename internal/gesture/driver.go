package gesture

import "touchsnake/internal/snake"

// Frame is what one Driver.Frame call did.
type Frame struct {
	Touched   bool
	Reading   Reading
	Restarted bool
	Outcome   snake.Outcome
}

// Driver runs one loop iteration against a session: a touch that ends while
// the game is over restarts it, the touch is classified and steers, then the
// session ticks at most once.
type Driver struct {
	Tracker Tracker
}

func (d *Driver) Frame(s *snake.Session, t Touch, touched bool) Frame {
	f := Frame{Touched: touched}
	if touched && t.Phase == Ended && s.Mode == snake.GameOver {
		s.Restart()
		f.Restarted = true
	}
	if touched {
		f.Reading = d.Tracker.Observe(t)
		if f.Reading.Classified {
			s.Steer(f.Reading.Direction)
		}
	}
	f.Outcome = s.Update()
	return f
}
