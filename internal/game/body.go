package game

// bodyRing stores the snake's body as a double-ended ring buffer of cells
// ordered tail to head. New head cells are pushed at the head end each
// step; the oldest cell is popped from the tail end unless the snake just
// ate. The buffer grows when full, so the snake has no fixed length cap.
type bodyRing struct {
	cells []Cell
	tail  int // index of the oldest cell
	n     int
}

func newBodyRing(capacity int) bodyRing {
	if capacity < 8 {
		capacity = 8
	}
	return bodyRing{cells: make([]Cell, capacity)}
}

func (b *bodyRing) Len() int { return b.n }

// At returns the i-th cell counting from the tail (0 = oldest).
func (b *bodyRing) At(i int) Cell {
	return b.cells[(b.tail+i)%len(b.cells)]
}

// Head returns the newest cell. The body always has at least one cell
// while the game is alive.
func (b *bodyRing) Head() Cell {
	return b.At(b.n - 1)
}

// Tail returns the oldest cell.
func (b *bodyRing) Tail() Cell {
	return b.cells[b.tail]
}

// PushHead appends a new head cell, growing the backing array if full.
func (b *bodyRing) PushHead(c Cell) {
	if b.n == len(b.cells) {
		b.grow()
	}
	b.cells[(b.tail+b.n)%len(b.cells)] = c
	b.n++
}

// PushTail prepends a cell at the tail end. Used only while laying out the
// initial body.
func (b *bodyRing) PushTail(c Cell) {
	if b.n == len(b.cells) {
		b.grow()
	}
	b.tail = (b.tail - 1 + len(b.cells)) % len(b.cells)
	b.cells[b.tail] = c
	b.n++
}

// PopTail removes and returns the oldest cell.
func (b *bodyRing) PopTail() Cell {
	c := b.cells[b.tail]
	b.tail = (b.tail + 1) % len(b.cells)
	b.n--
	return c
}

// Contains reports whether any body cell equals c.
func (b *bodyRing) Contains(c Cell) bool {
	for i := 0; i < b.n; i++ {
		if b.At(i) == c {
			return true
		}
	}
	return false
}

func (b *bodyRing) grow() {
	next := make([]Cell, len(b.cells)*2)
	for i := 0; i < b.n; i++ {
		next[i] = b.At(i)
	}
	b.cells = next
	b.tail = 0
}
