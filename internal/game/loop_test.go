package game

import "testing"

// tick drives the loop through exactly one simulation step.
func tick(t *testing.T, l *Loop, g *Game) {
	t.Helper()
	l.Frame(g, l.Target+1)
	if stepped, _ := l.Frame(g, 0); !stepped {
		t.Fatal("loop did not step after charging the accumulator")
	}
}

func TestSingleTurnPerTick(t *testing.T) {
	g := makeGame(straightBody(2, 5, 5), DirRight, Cell{0, 0})
	l := NewLoop(TickIntervalMS)

	if !l.RequestTurn(g, DirUp) {
		t.Fatal("first turn of the tick was rejected")
	}
	if l.RequestTurn(g, DirLeft) {
		t.Fatal("second turn within the same tick was accepted")
	}
	if g.Dir != DirUp {
		t.Fatalf("direction = %v, want %v", g.Dir, DirUp)
	}

	tick(t, l, g)

	if !l.RequestTurn(g, DirLeft) {
		t.Fatal("turn after a tick was rejected")
	}
	if g.Dir != DirLeft {
		t.Fatalf("direction after tick = %v, want %v", g.Dir, DirLeft)
	}
}

func TestTurnReversalRejected(t *testing.T) {
	g := makeGame(straightBody(2, 5, 5), DirRight, Cell{0, 0})
	l := NewLoop(TickIntervalMS)

	if l.RequestTurn(g, DirLeft) {
		t.Fatal("reversal into the neck was accepted")
	}
	if g.Dir != DirRight {
		t.Fatalf("direction changed on rejected reversal: %v", g.Dir)
	}
	// A rejected reversal must not consume the per-tick gate.
	if !l.RequestTurn(g, DirUp) {
		t.Fatal("gate was consumed by a rejected reversal")
	}
}

func TestSameDirectionConsumesGate(t *testing.T) {
	g := makeGame(straightBody(2, 5, 5), DirRight, Cell{0, 0})
	l := NewLoop(TickIntervalMS)

	if !l.RequestTurn(g, DirRight) {
		t.Fatal("repeating the current direction was rejected")
	}
	if l.RequestTurn(g, DirUp) {
		t.Fatal("gate survived a same-direction press")
	}
}

func TestAccumulatorOrdering(t *testing.T) {
	g := makeGame(straightBody(2, 5, 5), DirRight, Cell{0, 0})
	l := NewLoop(50)

	// Time is added after the step check: a large first delta does not
	// step on the frame it arrives.
	if stepped, _ := l.Frame(g, 60); stepped {
		t.Fatal("stepped on the frame the time arrived")
	}
	if stepped, _ := l.Frame(g, 0); !stepped {
		t.Fatal("did not step once accumulated time exceeded the target")
	}
	// 10 ms of excess remains; no second step yet.
	if stepped, _ := l.Frame(g, 0); stepped {
		t.Fatal("stepped twice off a single 60 ms delta")
	}
}

func TestPauseStopsAccumulation(t *testing.T) {
	g := makeGame(straightBody(2, 5, 5), DirRight, Cell{0, 0})
	l := NewLoop(50)

	l.Paused = true
	for i := 0; i < 5; i++ {
		if stepped, _ := l.Frame(g, 1000); stepped {
			t.Fatal("stepped while paused")
		}
	}
	l.Paused = false
	// Nothing piled up during the pause.
	if stepped, _ := l.Frame(g, 0); stepped {
		t.Fatal("paused time leaked into the accumulator")
	}
}

func TestPauseHoldsChargedAccumulator(t *testing.T) {
	g := makeGame(straightBody(2, 5, 5), DirRight, Cell{0, 0})
	l := NewLoop(50)

	l.Frame(g, 60) // charge
	l.Paused = true
	if stepped, _ := l.Frame(g, 0); stepped {
		t.Fatal("stepped while paused with a charged accumulator")
	}
	l.Paused = false
	if stepped, _ := l.Frame(g, 0); !stepped {
		t.Fatal("charged step lost across a pause")
	}
}

func TestFrameReportsEating(t *testing.T) {
	g := makeGame(straightBody(2, 5, 5), DirRight, Cell{7, 5})
	l := NewLoop(50)

	l.Frame(g, 60)
	stepped, ate := l.Frame(g, 0)
	if !stepped || !ate {
		t.Fatalf("stepped=%v ate=%v, want both true", stepped, ate)
	}
	if g.Score != 1 {
		t.Fatalf("score = %d, want 1", g.Score)
	}
}
