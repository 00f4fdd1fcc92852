package game

// Loop is the fixed-timestep driver. Wall-clock time accumulates across
// frames; whenever more than Target milliseconds have piled up one
// simulation step is taken. At most one direction change is accepted per
// tick: without the gate, two quick presses inside one tick (left then
// up then right) could chain into a net reversal the single-step
// collision check cannot catch.
type Loop struct {
	Target float64 // ms per simulation tick
	Paused bool

	accumulated float64
	turnAllowed bool
}

func NewLoop(targetMS float64) *Loop {
	return &Loop{Target: targetMS, turnAllowed: true}
}

// RequestTurn applies a direction change immediately, unless a change was
// already accepted this tick or the request would reverse the snake into
// its own neck. Reports whether the change was applied.
func (l *Loop) RequestTurn(g *Game, dir Direction) bool {
	if !l.turnAllowed || dir == g.Dir.Opposite() {
		return false
	}
	l.turnAllowed = false
	g.Dir = dir
	return true
}

// Frame runs one frame of the loop: take a simulation step if enough time
// has accumulated, then add this frame's delta. The delta is added after
// the step check, and not at all while paused, so time never piles up
// during a pause and unpausing does not fast-forward the snake.
func (l *Loop) Frame(g *Game, dtMS float64) (stepped, ate bool) {
	if !l.Paused && l.accumulated > l.Target {
		l.accumulated -= l.Target
		l.turnAllowed = true
		ate = g.Step()
		stepped = true
	}
	if !l.Paused {
		l.accumulated += dtMS
	}
	return stepped, ate
}
