package snake

// Board and pacing.
const (
	GridSize     = 16
	StartSpeed   = 0.5 // seconds per tick
	SpeedFactor  = 0.9
	FruitPoints  = 100
	StartHeadX   = 0
	StartHeadY   = 0
	StartHeading = Right
)
