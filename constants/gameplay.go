package constants

import "time"

// Level Scaling
const (
	// BaseCount is the number of creatures spawned at level 1; each level adds one
	BaseCount = 3

	// BaseSpeed is the homing speed at level 1 in board units per second
	BaseSpeed = 3.0

	// SpeedPerLevel is added to BaseSpeed for every level past the first
	SpeedPerLevel = 0.5
)

// Collision Geometry (board units)
const (
	HeroRadius  = 2.0
	EnemyRadius = 2.0
)

// Frame Timing
const (
	// TickRate is the number of frames per second of the game loop
	TickRate = 60

	// MaxFrameDelta bounds the simulated time of a single frame after stalls
	MaxFrameDelta = 50 * time.Millisecond

	// CaptureRemoveDelay is how long a caught creature stays visible for its capture effect
	CaptureRemoveDelay = 250 * time.Millisecond
)

// Board
const (
	// RowUnits is the number of board units one terminal row spans
	// Terminal cells are about twice as tall as wide
	RowUnits = 2.0

	// MinBoardRows keeps the board playable on tiny terminals
	MinBoardRows = 10
)
