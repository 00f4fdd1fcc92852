package game

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func RunDesktop() {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	// Audio is best-effort: the game runs fine silent.
	if err := InitAudio(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	} else {
		go func() {
			time.Sleep(100 * time.Millisecond) // let audio context initialize
			StartBackgroundMusic()
		}()
	}

	rng := NewRand(uint64(time.Now().UnixNano()))
	g := NewGame(GridWidth, GridHeight, InitialSnakeLen, rng)

	rend, err := NewRenderer(g.Width, g.Height)
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()

	gl.ClearColor(1, 1, 1, 1)

	loop := NewLoop(TickIntervalMS)
	input := NewInput()

	died := false
	bus := NewEventBus()
	bus.Subscribe(EventDied, func(e Event) {
		died = true
		fmt.Printf("You died! Score: %d\n", e.Score)
		window.SetShouldClose(true)
	})
	bus.Subscribe(EventFoodEaten, func(e Event) {
		window.SetTitle(fmt.Sprintf("Snake: %d", e.Score))
	})

	rend.UploadGrid(g)

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := (now - last) * 1000 // ms
		last = now
		if dt > 100 {
			dt = 100
		}

		glfw.PollEvents()
		if input.JustPressed(window, glfw.KeyEscape) {
			window.SetShouldClose(true)
			continue
		}
		if input.JustPressed(window, glfw.KeySpace) {
			loop.Paused = !loop.Paused
		}
		if dir, ok := input.DirectionIntent(window); ok {
			loop.RequestTurn(g, dir)
		}

		stepped, ate := loop.Frame(g, dt)
		if stepped {
			if g.Died {
				bus.Emit(Event{Type: EventDied, Score: g.Score})
				continue
			}
			if ate {
				bus.Emit(Event{Type: EventFoodEaten, Score: g.Score})
			}
			rend.UploadGrid(g)
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		rend.Draw(fbW, fbH)
		window.SwapBuffers()
	}

	if !died {
		fmt.Printf("Score: %d\n", g.Score)
	}
}
