package snake

const (
	gridSize   = 25
	gridCenter = gridSize / 2
)

// Classification describes a shape as a whole.
type Classification struct {
	// Legal is false when two prisms occupy the same space.
	Legal bool
	// Cyclic is true when a 24th joint would close the chain into a loop.
	Cyclic bool
	// LastTurn is the angle of that closing joint. Only meaningful when
	// HasLastTurn is set, which happens exactly when Cyclic is.
	LastTurn    Angle
	HasLastTurn bool
}

type cellState uint8

const (
	cellFree cellState = iota
	cellHalf
	cellFull
)

// cell is one cube of the occupancy grid. A cube holds at most two prisms,
// split along a diagonal; sum is src+dst of the first prism to enter it.
type cell struct {
	state cellState
	sum   [3]int8
}

type grid [gridSize][gridSize][gridSize]cell

// occupy records a prism entering (x,y,z) through src and leaving through
// dst. It returns false when the prism collides with what is already there.
func (g *grid) occupy(x, y, z int, src, dst Direction) bool {
	sx, sy, sz := src.Vector()
	dx, dy, dz := dst.Vector()
	sum := [3]int8{int8(sx + dx), int8(sy + dy), int8(sz + dz)}

	c := &g[x][y][z]
	switch c.state {
	case cellFree:
		c.state = cellHalf
		c.sum = sum
		return true
	case cellHalf:
		// The other half of the cube is free only for the mirrored prism.
		if c.sum[0]+sum[0] == 0 && c.sum[1]+sum[1] == 0 && c.sum[2]+sum[2] == 0 {
			c.state = cellFull
			return true
		}
	}
	return false
}

// Classify walks the chain through the direction lattice and reports
// whether it intersects itself and whether it closes into a loop.
func Classify(s Shape) Classification {
	var g grid
	out := Classification{Legal: true}

	prevSrc, prevDst := NegY, PosZ
	src, dst := prevSrc, prevDst
	x, y, z := gridCenter, gridCenter, gridCenter

	for _, a := range s {
		src = prevDst.Neg()
		dx, dy, dz := prevDst.Vector()
		x, y, z = x+dx, y+dy, z+dz

		switch a {
		case Zero:
			dst = prevSrc.Neg()
		case Pin:
			dst = prevSrc
		case Left:
			dst = Cross(prevSrc, prevDst)
		case Right:
			dst = Cross(prevSrc, prevDst).Neg()
		}

		if !g.occupy(x, y, z, src, dst) {
			out.Legal = false
		}
		prevSrc, prevDst = src, dst
	}

	out.Cyclic = dst == PosY && x == gridCenter && y == gridCenter-1 && z == gridCenter
	if out.Cyclic {
		switch src {
		case NegZ:
			out.LastTurn, out.HasLastTurn = Zero, true
		case PosZ:
			out.LastTurn, out.HasLastTurn = Pin, true
		case PosX:
			out.LastTurn, out.HasLastTurn = Left, true
		case NegX:
			out.LastTurn, out.HasLastTurn = Right, true
		}
	}
	return out
}
