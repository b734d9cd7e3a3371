package snake

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

const (
	// JointCount is the number of hinges between the 24 prisms.
	JointCount = 23
	// NodeCount is the number of prisms. The node slot past the last joint
	// is kept for display symmetry and is always zero.
	NodeCount = 24
)

var (
	ErrJointCount = errors.New("wrong number of joints")
	ErrJointChar  = errors.New("invalid joint character")
)

// Shape assigns an angle to every joint.
type Shape [JointCount]Angle

// ParseShape reads joint characters (see AngleFromRune), ignoring
// whitespace. Exactly JointCount or NodeCount characters are accepted; a
// trailing 24th joint is dropped.
func ParseShape(s string) (Shape, error) {
	var shape Shape
	n := 0
	for i, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		a, ok := AngleFromRune(r)
		if !ok {
			return Shape{}, fmt.Errorf("%w %q at offset %d", ErrJointChar, r, i)
		}
		if n < JointCount {
			shape[n] = a
		}
		n++
	}
	if n != JointCount && n != NodeCount {
		return Shape{}, fmt.Errorf("%w: got %d, want %d", ErrJointCount, n, JointCount)
	}
	return shape, nil
}

// MustParseShape is ParseShape for literals known to be valid.
func MustParseShape(s string) Shape {
	shape, err := ParseShape(s)
	if err != nil {
		panic(err)
	}
	return shape
}

// String renders the shape as catalog letters.
func (s Shape) String() string {
	var b strings.Builder
	b.Grow(JointCount)
	for _, a := range s {
		b.WriteRune(a.Rune())
	}
	return b.String()
}

// Degrees expands the shape into per-node degrees for presentation.
func (s Shape) Degrees() [NodeCount]float64 {
	var out [NodeCount]float64
	for i, a := range s {
		out[i] = a.Degrees()
	}
	return out
}

// Nudge returns a copy of s with joint i turned by deltaDeg, which must be a
// multiple of 90. Out of range joints leave the shape unchanged.
func (s Shape) Nudge(i, deltaDeg int) Shape {
	if i < 0 || i >= JointCount {
		return s
	}
	s[i] = s[i].Rotate(deltaDeg / 90)
	return s
}
