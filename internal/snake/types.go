package snake

// Position is a cell on the board. Coordinates may leave [0, GridSize) for the
// single tick that ends the game.
type Position struct{ X, Y int }

// Add returns p moved one step in direction d.
func (p Position) Add(d Direction) Position {
	v := d.Vector()
	return Position{p.X + v.X, p.Y + v.Y}
}

// InBounds reports whether p lies on an n×n board.
func (p Position) InBounds(n int) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < n && p.Y < n
}

type Direction uint8

const (
	Up Direction = iota + 1
	Down
	Left
	Right
)

var directionVectors = [...]Position{
	Up:    {0, -1},
	Down:  {0, 1},
	Left:  {-1, 0},
	Right: {1, 0},
}

var directionNames = [...]string{
	Up:    "Up",
	Down:  "Down",
	Left:  "Left",
	Right: "Right",
}

func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// Vector returns the unit step for d. The zero Direction has a zero vector.
func (d Direction) Vector() Position {
	if !d.Valid() {
		return Position{}
	}
	return directionVectors[d]
}

func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return 0
}

func (d Direction) String() string {
	if !d.Valid() {
		return "None"
	}
	return directionNames[d]
}

// Mode is the coarse state of a session.
type Mode uint8

const (
	Playing Mode = iota
	GameOver
)

func (m Mode) String() string {
	switch m {
	case Playing:
		return "Playing"
	case GameOver:
		return "GameOver"
	}
	return "Unknown"
}
