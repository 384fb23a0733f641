package desktop

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"curve/internal/game"
	"curve/internal/render"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Presenter shows a canvas as one full-window textured quad.
type Presenter struct {
	prog uint32
	vao  uint32
	vbo  uint32
	tex  uint32
	uTex int32

	width, height int
}

func NewPresenter(width, height int) (*Presenter, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}
	prog, err := linkProgram(screenVertSrc, screenFragSrc)
	if err != nil {
		return nil, fmt.Errorf("screen program: %w", err)
	}
	p := &Presenter{prog: prog, width: width, height: height}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	bg := game.Palette.Background
	gl.ClearColor(float32(bg.R)/255.0, float32(bg.G)/255.0, float32(bg.B)/255.0, 1.0)

	// Unit quad (6 vertices, 2 triangles).
	gl.GenVertexArrays(1, &p.vao)
	gl.GenBuffers(1, &p.vbo)
	gl.BindVertexArray(p.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	quadVerts := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))

	gl.UseProgram(prog)
	p.uTex = gl.GetUniformLocation(prog, gl.Str("uTex\x00"))
	gl.Uniform1i(p.uTex, 0)

	gl.GenTextures(1, &p.tex)
	gl.BindTexture(gl.TEXTURE_2D, p.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(width), int32(height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, nil,
	)
	return p, nil
}

// Upload re-sends the canvas pixels when they changed.
func (p *Presenter) Upload(c *render.Canvas) {
	if !c.NeedsUpload || c.Width != p.width || c.Height != p.height {
		return
	}
	gl.BindTexture(gl.TEXTURE_2D, p.tex)
	gl.TexSubImage2D(
		gl.TEXTURE_2D, 0, 0, 0,
		int32(c.Width), int32(c.Height),
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(c.Pixels),
	)
	c.NeedsUpload = false
}

// Draw fills the framebuffer with the last uploaded canvas.
func (p *Presenter) Draw(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.UseProgram(p.prog)
	gl.BindVertexArray(p.vao)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, p.tex)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

func (p *Presenter) Destroy() {
	gl.DeleteTextures(1, &p.tex)
	gl.DeleteBuffers(1, &p.vbo)
	gl.DeleteVertexArrays(1, &p.vao)
	gl.DeleteProgram(p.prog)
}
