package viewer

import (
	"math"

	"glsnake/internal/morph"
	"glsnake/internal/snake"
)

type Vec3 [3]float64

func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]} }

func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }

func (a Vec3) Scale(k float64) Vec3 { return Vec3{a[0] * k, a[1] * k, a[2] * k} }

func (a Vec3) Dot(b Vec3) float64 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (a Vec3) Len() float64 { return math.Sqrt(a.Dot(a)) }

func (a Vec3) Normalize() Vec3 {
	l := a.Len()
	if l == 0 {
		return a
	}
	return a.Scale(1 / l)
}

// Mat4 is a column-major 4x4 matrix, laid out the way GL uniforms expect.
type Mat4 [16]float64

func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func Translate(x, y, z float64) Mat4 {
	m := Identity()
	m[12], m[13], m[14] = x, y, z
	return m
}

// Rotate returns a rotation of deg degrees about the axis (x, y, z).
func Rotate(deg, x, y, z float64) Mat4 {
	ax := Vec3{x, y, z}.Normalize()
	x, y, z = ax[0], ax[1], ax[2]
	rad := deg * math.Pi / 180
	c, s := math.Cos(rad), math.Sin(rad)
	k := 1 - c
	return Mat4{
		x*x*k + c, y*x*k + z*s, z*x*k - y*s, 0,
		x*y*k - z*s, y*y*k + c, z*y*k + x*s, 0,
		x*z*k + y*s, y*z*k - x*s, z*z*k + c, 0,
		0, 0, 0, 1,
	}
}

// Perspective builds a right-handed projection with a vertical field of view in degrees.
func Perspective(fovy, aspect, near, far float64) Mat4 {
	f := 1 / math.Tan(fovy*math.Pi/360)
	var m Mat4
	m[0] = f / aspect
	m[5] = f
	m[10] = (far + near) / (near - far)
	m[11] = -1
	m[14] = 2 * far * near / (near - far)
	return m
}

// Mul returns a*b, so b is applied first.
func (a Mat4) Mul(b Mat4) Mat4 {
	var r Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += a[k*4+row] * b[col*4+k]
			}
			r[col*4+row] = sum
		}
	}
	return r
}

// Apply transforms the point v.
func (m Mat4) Apply(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[4]*v[1] + m[8]*v[2] + m[12],
		m[1]*v[0] + m[5]*v[1] + m[9]*v[2] + m[13],
		m[2]*v[0] + m[6]*v[1] + m[10]*v[2] + m[14],
	}
}

func (m Mat4) Float32() [16]float32 {
	var r [16]float32
	for i, v := range m {
		r[i] = float32(v)
	}
	return r
}

// Unit right triangular prism. Vertices 0-2 are the z=1 end, 3-5 the z=0 end.
var prismVertices = [6]Vec3{
	{0, 0, 1},
	{1, 0, 1},
	{0, 1, 1},
	{0, 0, 0},
	{1, 0, 0},
	{0, 1, 0},
}

var prismTriangles = [8][3]int{
	{0, 1, 2},
	{3, 5, 4},
	{1, 0, 3}, {1, 3, 4},
	{2, 1, 4}, {2, 4, 5},
	{0, 2, 5}, {0, 5, 3},
}

var prismEdges = [9][2]int{
	{0, 1}, {1, 2}, {2, 0},
	{3, 5}, {5, 4}, {4, 3},
	{0, 3}, {1, 4}, {2, 5},
}

// NodeTransforms places each prism of the chain. Node 0 sits at the origin;
// every following node is flipped half a turn about Z, stepped one unit off the
// previous node (with an extra explode gap), and hinged by the joint angle about
// the shared square face. Hinges alternate between the Y and X axes.
func NodeTransforms(angles [snake.NodeCount]float64, explode float64) [snake.NodeCount]Mat4 {
	var out [snake.NodeCount]Mat4
	m := Identity()
	for i := range out {
		out[i] = m
		m = m.Mul(Rotate(180, 0, 0, 1))
		if i%2 == 1 {
			m = m.Mul(Translate(-1, explode, 0)).
				Mul(Translate(0.5, 0, 0.5)).
				Mul(Rotate(angles[i], 0, 1, 0)).
				Mul(Translate(-0.5, 0, -0.5))
		} else {
			m = m.Mul(Translate(explode, -1, 0)).
				Mul(Translate(0, 0.5, 0.5)).
				Mul(Rotate(angles[i], 1, 0, 0)).
				Mul(Translate(0, -0.5, -0.5))
		}
	}
	return out
}

// PrismCorners returns the six corners of a node placed by m.
func PrismCorners(m Mat4) [6]Vec3 {
	var out [6]Vec3
	for i, v := range prismVertices {
		out[i] = m.Apply(v)
	}
	return out
}

// NodeCentres returns the centroid of every node.
func NodeCentres(ts [snake.NodeCount]Mat4) [snake.NodeCount]Vec3 {
	var out [snake.NodeCount]Vec3
	for i, m := range ts {
		var sum Vec3
		for _, p := range PrismCorners(m) {
			sum = sum.Add(p)
		}
		out[i] = sum.Scale(1.0 / 6)
	}
	return out
}

// VertexFloats is the stride of a mesh vertex: x, y, z, r, g, b, a.
const VertexFloats = 7

// Mesh holds interleaved vertices ready to stream into a VBO.
type Mesh struct {
	Solid []float32 // triangles
	Lines []float32 // line segments
}

// Vertices reports the number of vertices in a buffer of interleaved floats.
func Vertices(buf []float32) int32 { return int32(len(buf) / VertexFloats) }

var lightDir = Vec3{0.3, 0.5, 1}.Normalize()

// BuildMesh fills dst with the snake posed by angles, centred on the origin.
// Even nodes take the face colour and odd nodes the edge colour. Solid prisms
// get black outlines; in wireframe mode only the outlines are drawn, in the
// node colour.
func BuildMesh(dst *Mesh, angles [snake.NodeCount]float64, colours morph.ColourPair, explode float64, wireframe bool) {
	ts := NodeTransforms(angles, explode)

	var centre Vec3
	for _, c := range NodeCentres(ts) {
		centre = centre.Add(c)
	}
	centre = centre.Scale(1.0 / snake.NodeCount)

	dst.Solid = dst.Solid[:0]
	dst.Lines = dst.Lines[:0]
	outline := Colours.Outline.RGBA(1)
	for i, m := range ts {
		col := colours.Face
		if i%2 == 1 {
			col = colours.Edge
		}
		corners := PrismCorners(m)
		for k := range corners {
			corners[k] = corners[k].Sub(centre)
		}

		if !wireframe {
			for _, tri := range prismTriangles {
				a, b, c := corners[tri[0]], corners[tri[1]], corners[tri[2]]
				n := b.Sub(a).Cross(c.Sub(a)).Normalize()
				shade := float32(0.55 + 0.45*math.Abs(n.Dot(lightDir)))
				shaded := morph.RGBA{R: col.R * shade, G: col.G * shade, B: col.B * shade, A: col.A}
				dst.Solid = appendVertex(dst.Solid, a, shaded)
				dst.Solid = appendVertex(dst.Solid, b, shaded)
				dst.Solid = appendVertex(dst.Solid, c, shaded)
			}
		}

		lc := outline
		if wireframe {
			lc = col
			lc.A = 1
		}
		for _, e := range prismEdges {
			dst.Lines = appendVertex(dst.Lines, corners[e[0]], lc)
			dst.Lines = appendVertex(dst.Lines, corners[e[1]], lc)
		}
	}
}

func appendVertex(buf []float32, p Vec3, c morph.RGBA) []float32 {
	return append(buf, float32(p[0]), float32(p[1]), float32(p[2]), c.R, c.G, c.B, c.A)
}
