package snake

import (
	"fmt"
	"math"
)

// Angle is the rotation of one joint in quarter turns.
// Convention: Left is 90 degrees, Pin 180, Right 270.
type Angle uint8

const (
	Zero Angle = iota
	Left
	Pin
	Right
)

// Degrees converts a to degrees for the presentation boundary.
func (a Angle) Degrees() float64 { return float64(a%4) * 90 }

// Rotate adds quarter turns to a, wrapping modulo 360 degrees.
func (a Angle) Rotate(quarters int) Angle {
	q := (int(a) + quarters) % 4
	if q < 0 {
		q += 4
	}
	return Angle(q)
}

// Rune returns the catalog letter for a.
func (a Angle) Rune() rune {
	return [...]rune{'Z', 'L', 'P', 'R'}[a%4]
}

func (a Angle) String() string {
	switch a {
	case Zero:
		return "ZERO"
	case Left:
		return "LEFT"
	case Pin:
		return "PIN"
	case Right:
		return "RIGHT"
	}
	return fmt.Sprintf("Angle(%d)", uint8(a))
}

// AngleFromRune parses a catalog character: 0-3 or Z, L, P, R in either case.
func AngleFromRune(r rune) (Angle, bool) {
	switch r {
	case '0', 'Z', 'z':
		return Zero, true
	case '1', 'L', 'l':
		return Left, true
	case '2', 'P', 'p':
		return Pin, true
	case '3', 'R', 'r':
		return Right, true
	}
	return 0, false
}

// AngleFromDegrees maps an exact multiple of 90 degrees (any sign) onto an
// Angle. Anything in between is rejected.
func AngleFromDegrees(deg float64) (Angle, bool) {
	q := deg / 90
	if q != math.Trunc(q) || math.IsInf(q, 0) {
		return 0, false
	}
	return Zero.Rotate(int(math.Mod(q, 4))), true
}
