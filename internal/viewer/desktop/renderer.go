package desktop

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"glsnake/internal/viewer"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer draws a viewer.Mesh with one program and one streaming buffer.
type Renderer struct {
	prog uint32
	vao  uint32
	vbo  uint32
	uMVP int32
}

func NewRenderer() (*Renderer, error) {
	prog, err := linkProgram(prismVertSrc, prismFragSrc)
	if err != nil {
		return nil, fmt.Errorf("prism program: %w", err)
	}
	r := &Renderer{prog: prog}

	// Each vertex: 7 floats (x, y, z, r, g, b, a).
	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	stride := int32(viewer.VertexFloats * 4)
	// aPos (vec3)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	// aColor (vec4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, glOffset(3*4))

	gl.UseProgram(prog)
	r.uMVP = gl.GetUniformLocation(prog, gl.Str("uMVP\x00"))

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
}

func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw streams the mesh and draws solids first, then outlines on top.
func (r *Renderer) Draw(mesh *viewer.Mesh, mvp viewer.Mat4) {
	gl.UseProgram(r.prog)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	m := mvp.Float32()
	gl.UniformMatrix4fv(r.uMVP, 1, false, &m[0])

	if n := viewer.Vertices(mesh.Solid); n > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Solid)*4, gl.Ptr(mesh.Solid), gl.STREAM_DRAW)
		gl.DrawArrays(gl.TRIANGLES, 0, n)
	}
	if n := viewer.Vertices(mesh.Lines); n > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Lines)*4, gl.Ptr(mesh.Lines), gl.STREAM_DRAW)
		gl.DrawArrays(gl.LINES, 0, n)
	}
	gl.BindVertexArray(0)
}
