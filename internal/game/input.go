package game

import "github.com/go-gl/glfw/v3.3/glfw"

type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevKeys: make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

var steerKeys = [...]struct {
	key glfw.Key
	dir Direction
}{
	{glfw.KeyUp, DirUp},
	{glfw.KeyW, DirUp},
	{glfw.KeyDown, DirDown},
	{glfw.KeyS, DirDown},
	{glfw.KeyLeft, DirLeft},
	{glfw.KeyA, DirLeft},
	{glfw.KeyRight, DirRight},
	{glfw.KeyD, DirRight},
}

// DirectionIntent returns the direction for a steering key newly pressed
// this frame. Every binding is sampled on every call so edge tracking
// stays correct even after an earlier key already matched.
func (in *Input) DirectionIntent(window *glfw.Window) (Direction, bool) {
	var dir Direction
	found := false
	for _, b := range steerKeys {
		if in.JustPressed(window, b.key) && !found {
			dir = b.dir
			found = true
		}
	}
	return dir, found
}
