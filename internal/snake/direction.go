package snake

import "fmt"

// Axis selects one of the three lattice axes.
type Axis int8

const (
	AxisX Axis = 1
	AxisY Axis = 2
	AxisZ Axis = 3
)

// Direction is a unit step along one lattice axis. The magnitude names the
// axis and the sign the orientation, so negation is plain unary minus.
type Direction int8

const (
	NegZ Direction = -3
	NegY Direction = -2
	NegX Direction = -1
	PosX Direction = 1
	PosY Direction = 2
	PosZ Direction = 3
)

// Valid reports whether d is one of the six lattice directions.
func (d Direction) Valid() bool {
	return d != 0 && d >= NegZ && d <= PosZ
}

func (d Direction) Neg() Direction { return -d }

// Component returns the signed component of d along axis: 1, -1 or 0.
func (d Direction) Component(axis Axis) int {
	switch d {
	case Direction(axis):
		return 1
	case -Direction(axis):
		return -1
	}
	return 0
}

// Vector returns d as an integer unit vector.
func (d Direction) Vector() (x, y, z int) {
	return d.Component(AxisX), d.Component(AxisY), d.Component(AxisZ)
}

func (d Direction) String() string {
	names := [...]string{"-Z", "-Y", "-X", "0", "+X", "+Y", "+Z"}
	if d < NegZ || d > PosZ {
		return fmt.Sprintf("Direction(%d)", int8(d))
	}
	return names[d+3]
}

// directionOf maps a unit vector back onto the lattice. ok is false for the
// zero vector or anything that is not axis aligned.
func directionOf(x, y, z int) (Direction, bool) {
	switch {
	case x == 1 && y == 0 && z == 0:
		return PosX, true
	case x == -1 && y == 0 && z == 0:
		return NegX, true
	case x == 0 && y == 1 && z == 0:
		return PosY, true
	case x == 0 && y == -1 && z == 0:
		return NegY, true
	case x == 0 && y == 0 && z == 1:
		return PosZ, true
	case x == 0 && y == 0 && z == -1:
		return NegZ, true
	}
	return 0, false
}

// Cross returns src x dst, the direction orthogonal to both under the
// right-hand rule. src and dst must be orthogonal; parallel or invalid
// inputs are a programming error and panic.
func Cross(src, dst Direction) Direction {
	sx, sy, sz := src.Vector()
	dx, dy, dz := dst.Vector()
	d, ok := directionOf(sy*dz-sz*dy, sz*dx-sx*dz, sx*dy-sy*dx)
	if !ok {
		panic(fmt.Sprintf("snake: cross of non-orthogonal directions %v and %v", src, dst))
	}
	return d
}
