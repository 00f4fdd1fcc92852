package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Grid cell colors (RGBA).
var (
	colorEmpty = [4]byte{235, 235, 235, 255}
	colorBody  = [4]byte{40, 200, 26, 255}
	colorFood  = [4]byte{220, 50, 47, 255}
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer draws the logical grid: one texel per cell, uploaded on each
// simulation tick and stretched over the window by a fullscreen quad with
// nearest filtering. It knows only the grid dimensions, never the snake.
type Renderer struct {
	prog uint32
	vao  uint32
	vbo  uint32
	tex  uint32
	uTex int32

	gridW, gridH int
	frame        []byte // gridW*gridH RGBA pixels, row-major
}

func NewRenderer(gridW, gridH int) (*Renderer, error) {
	prog, err := linkProgram(gridVertSrc, gridFragSrc)
	if err != nil {
		return nil, fmt.Errorf("grid program: %w", err)
	}

	r := &Renderer{
		prog:  prog,
		gridW: gridW,
		gridH: gridH,
		frame: make([]byte, gridW*gridH*4),
	}

	// Fullscreen quad (6 vertices, 2 triangles).
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	quadVerts := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	r.vao = vao
	r.vbo = vbo

	gl.UseProgram(prog)
	r.uTex = gl.GetUniformLocation(prog, gl.Str("uTex\x00"))
	gl.Uniform1i(r.uTex, 0)

	// Grid texture: one texel per cell, nearest so cells stay crisp at
	// any window size.
	gl.GenTextures(1, &r.tex)
	gl.BindTexture(gl.TEXTURE_2D, r.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(gridW), int32(gridH), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(r.frame),
	)

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
	if r.tex != 0 {
		gl.DeleteTextures(1, &r.tex)
	}
}

// UploadGrid rebuilds the cell pixel buffer from the game state and
// re-uploads it. Called once per simulation tick, not per frame.
func (r *Renderer) UploadGrid(g *Game) {
	for i := 0; i < r.gridW*r.gridH; i++ {
		copy(r.frame[i*4:], colorEmpty[:])
	}
	for i := 0; i < g.Body.Len(); i++ {
		c := g.Body.At(i)
		copy(r.frame[(c.Y*r.gridW+c.X)*4:], colorBody[:])
	}
	copy(r.frame[(g.Food.Y*r.gridW+g.Food.X)*4:], colorFood[:])

	gl.BindTexture(gl.TEXTURE_2D, r.tex)
	gl.TexSubImage2D(
		gl.TEXTURE_2D, 0, 0, 0,
		int32(r.gridW), int32(r.gridH),
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(r.frame),
	)
}

// Draw renders the current grid texture to the framebuffer.
func (r *Renderer) Draw(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.prog)
	gl.BindVertexArray(r.vao)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.tex)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}
