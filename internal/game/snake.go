package game

// Cell is an integer coordinate on the toroidal grid.
type Cell struct {
	X, Y int
}

// Direction is one of the four cardinal unit vectors.
type Direction struct {
	X, Y int
}

var (
	DirUp    = Direction{0, -1}
	DirDown  = Direction{0, 1}
	DirLeft  = Direction{-1, 0}
	DirRight = Direction{1, 0}
)

var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

func (d Direction) Opposite() Direction {
	return Direction{-d.X, -d.Y}
}

// Advance moves pos one step along dir, wrapping at the grid edges.
// Direction components are in {-1, 0, 1}, so a single wrap per axis
// is always enough.
func Advance(pos Cell, dir Direction, width, height int) Cell {
	next := Cell{X: pos.X + dir.X, Y: pos.Y + dir.Y}
	if next.X < 0 {
		next.X += width
	} else if next.X >= width {
		next.X -= width
	}
	if next.Y < 0 {
		next.Y += height
	} else if next.Y >= height {
		next.Y -= height
	}
	return next
}

// Game holds the whole simulation state: the body, direction of travel,
// grid bounds, food cell, score, and the terminal died flag. It is
// mutated only by Step and owns its random source.
type Game struct {
	Width, Height int

	Body bodyRing
	Dir  Direction
	Food Cell

	Score int
	Died  bool

	rng *Rand
}

// NewGame creates a fresh game: a random travel direction, an initial
// body laid out as a contiguous straight line extending opposite the
// direction of travel from a random anchor cell, and a random food cell.
// The initial food placement is not checked against the body; with the
// grid far larger than the starting snake an overlap is vanishingly rare
// and resolves itself on the first bite.
func NewGame(width, height, initialLen int, rng *Rand) *Game {
	g := &Game{
		Width:  width,
		Height: height,
		Body:   newBodyRing(initialLen * 2),
		Dir:    Directions[rng.Intn(4)],
		rng:    rng,
	}

	anchor := Cell{X: rng.Intn(width), Y: rng.Intn(height)}
	g.Body.PushHead(anchor)
	tailDir := g.Dir.Opposite()
	for i := 1; i < initialLen; i++ {
		g.Body.PushTail(Advance(g.Body.Tail(), tailDir, width, height))
	}

	g.Food = Cell{X: rng.Intn(width), Y: rng.Intn(height)}
	return g
}

// nextFoodPos samples random cells until one misses the body. Terminates
// as long as free cells exist; the grid is always far larger than any
// reachable snake length.
func (g *Game) nextFoodPos() Cell {
	for {
		c := Cell{X: g.rng.Intn(g.Width), Y: g.rng.Intn(g.Height)}
		if !g.Body.Contains(c) {
			return c
		}
	}
}

// Step advances the simulation by one tick and reports whether food was
// eaten. Hitting any body cell sets Died and leaves the body untouched:
// the new head is never linked in on death. Eating keeps the tail for
// one tick (net growth of 1); otherwise the oldest cell is removed.
// The loop controller never steps a dead game; the guard here just makes
// that a no-op instead of corruption.
func (g *Game) Step() (ate bool) {
	if g.Died {
		return false
	}

	newHead := Advance(g.Body.Head(), g.Dir, g.Width, g.Height)
	if g.Body.Contains(newHead) {
		g.Died = true
		return false
	}
	g.Body.PushHead(newHead)

	if newHead == g.Food {
		g.Score++
		g.Food = g.nextFoodPos()
		return true
	}
	g.Body.PopTail()
	return false
}
