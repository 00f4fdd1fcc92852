package game

import "testing"

func TestBodyRingOrder(t *testing.T) {
	b := newBodyRing(8)
	for i := 0; i < 20; i++ {
		b.PushHead(Cell{X: i, Y: 0})
	}
	if b.Len() != 20 {
		t.Fatalf("len = %d, want 20", b.Len())
	}
	if b.Tail() != (Cell{0, 0}) || b.Head() != (Cell{19, 0}) {
		t.Fatalf("tail=%v head=%v", b.Tail(), b.Head())
	}
	for i := 0; i < 20; i++ {
		if got := b.At(i); got != (Cell{X: i, Y: 0}) {
			t.Fatalf("At(%d) = %v, want {%d 0}", i, got, i)
		}
	}
}

func TestBodyRingPushTail(t *testing.T) {
	b := newBodyRing(8)
	b.PushHead(Cell{5, 5})
	for i := 1; i <= 4; i++ {
		b.PushTail(Cell{5 - i, 5})
	}
	for i := 0; i < 5; i++ {
		if got := b.At(i); got != (Cell{X: 1 + i, Y: 5}) {
			t.Fatalf("At(%d) = %v, want {%d 5}", i, got, 1+i)
		}
	}
}

func TestBodyRingPopTail(t *testing.T) {
	b := newBodyRing(8)
	for i := 0; i < 6; i++ {
		b.PushHead(Cell{X: i, Y: 1})
	}
	for i := 0; i < 6; i++ {
		if got := b.PopTail(); got != (Cell{X: i, Y: 1}) {
			t.Fatalf("PopTail #%d = %v, want {%d 1}", i, got, i)
		}
	}
	if b.Len() != 0 {
		t.Fatalf("len after draining = %d", b.Len())
	}
}

func TestBodyRingContains(t *testing.T) {
	b := newBodyRing(8)
	b.PushHead(Cell{1, 2})
	b.PushHead(Cell{2, 2})
	if !b.Contains(Cell{1, 2}) || !b.Contains(Cell{2, 2}) {
		t.Fatal("Contains misses present cells")
	}
	if b.Contains(Cell{3, 2}) {
		t.Fatal("Contains reports an absent cell")
	}
}

// Exercises wrap-around and growth against a naive slice model.
func TestBodyRingGrowthMatchesModel(t *testing.T) {
	b := newBodyRing(8)
	var model []Cell
	rng := NewRand(42)

	for i := 0; i < 500; i++ {
		if len(model) > 0 && rng.Intn(3) == 0 {
			want := model[0]
			model = model[1:]
			if got := b.PopTail(); got != want {
				t.Fatalf("op %d: PopTail = %v, want %v", i, got, want)
			}
			continue
		}
		c := Cell{X: rng.Intn(GridWidth), Y: rng.Intn(GridHeight)}
		model = append(model, c)
		b.PushHead(c)
	}

	if b.Len() != len(model) {
		t.Fatalf("len = %d, model %d", b.Len(), len(model))
	}
	for i, want := range model {
		if got := b.At(i); got != want {
			t.Fatalf("At(%d) = %v, want %v", i, got, want)
		}
	}
}
