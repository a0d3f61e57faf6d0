package snake

import "time"

// Snake is the head, the trailing body and the heading. Body[0] is the cell the
// head left most recently; the last element is the tail.
type Snake struct {
	Head      Position
	Body      []Position
	Direction Direction
}

// Occupies reports whether any body segment sits on p. The head is not checked.
func (s *Snake) Occupies(p Position) bool {
	for _, b := range s.Body {
		if b == p {
			return true
		}
	}
	return false
}

// Len is the number of cells including the head.
func (s *Snake) Len() int { return len(s.Body) + 1 }

// Outcome describes what a single Update did.
type Outcome struct {
	Ticked bool
	Ate    bool
	Died   bool
}

// Session owns all mutable game state. It is driven by exactly one loop and is
// not safe for concurrent use.
type Session struct {
	Snake      Snake
	Fruit      Position
	Score      int
	Speed      float64 // seconds between ticks
	Mode       Mode
	LastUpdate time.Time

	// Pending is the buffered intent, zero when none.
	Pending Direction

	clock Clock
	rng   Rand
}

func NewSession(clock Clock, rng Rand) *Session {
	s := &Session{clock: clock, rng: rng}
	s.Restart()
	return s
}

// Restart discards the current game and starts a fresh one.
func (s *Session) Restart() {
	s.Snake = Snake{
		Head:      Position{StartHeadX, StartHeadY},
		Direction: StartHeading,
	}
	s.Fruit = s.randomCell()
	s.Score = 0
	s.Speed = StartSpeed
	s.Mode = Playing
	s.Pending = 0
	s.LastUpdate = s.clock.Now()
}

// Steer buffers d as the next intent, replacing any earlier one. It is ignored
// once the game is over.
func (s *Session) Steer(d Direction) {
	if s.Mode != Playing || !d.Valid() {
		return
	}
	s.Pending = d
}

// Interval is Speed as a duration.
func (s *Session) Interval() time.Duration {
	return time.Duration(s.Speed * float64(time.Second))
}

// Update reads the clock once and advances at most one tick, however much time
// has passed since the last one.
func (s *Session) Update() Outcome {
	if s.Mode != Playing {
		return Outcome{}
	}
	now := s.clock.Now()
	if now.Sub(s.LastUpdate).Seconds() <= s.Speed {
		return Outcome{}
	}
	s.LastUpdate = now
	return s.Tick()
}

// Tick advances the snake by one cell regardless of timing.
func (s *Session) Tick() Outcome {
	if s.Mode != Playing {
		return Outcome{}
	}
	out := Outcome{Ticked: true}

	if s.Pending != 0 {
		if s.Pending != s.Snake.Direction.Opposite() {
			s.Snake.Direction = s.Pending
		}
		s.Pending = 0
	}

	sn := &s.Snake
	sn.Body = append(sn.Body, Position{})
	copy(sn.Body[1:], sn.Body)
	sn.Body[0] = sn.Head
	sn.Head = sn.Head.Add(sn.Direction)

	if sn.Head == s.Fruit {
		s.Fruit = s.randomCell()
		s.Score += FruitPoints
		s.Speed *= SpeedFactor
		out.Ate = true
	} else {
		sn.Body = sn.Body[:len(sn.Body)-1]
	}

	if !sn.Head.InBounds(GridSize) || sn.Occupies(sn.Head) {
		s.Mode = GameOver
		out.Died = true
	}
	return out
}

// Fruit may land on the snake; occupancy is deliberately not excluded.
func (s *Session) randomCell() Position {
	return Position{s.rng.Intn(GridSize), s.rng.Intn(GridSize)}
}
