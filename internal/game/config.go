package game

// Grid dimensions (in cells). The grid is toroidal: movement wraps at
// every edge.
const (
	GridWidth  = 20
	GridHeight = 20
)

// Window defaults.
const (
	WindowWidth  = 800
	WindowHeight = 800
)

// Snake constants.
const InitialSnakeLen = 10

// TickIntervalMS is the fixed simulation step length: the snake moves
// exactly once per interval regardless of frame rate.
const TickIntervalMS = 50.0
