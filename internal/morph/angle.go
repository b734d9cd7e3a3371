package morph

import "math"

// angDiff returns the signed shortest turn from a to b in degrees, in
// (-180, 180].
func angDiff(a, b float64) float64 {
	d := b - a
	for d <= -180 {
		d += 360
	}
	for d > 180 {
		d -= 360
	}
	return d
}

// approach turns cur toward target by at most maxDelta degrees the short
// way round, landing exactly on target once it is within reach. The result
// stays in [0, 360).
func approach(cur, target, maxDelta float64) float64 {
	d := angDiff(cur, target)
	if math.Abs(d) <= maxDelta {
		return target
	}
	cur += math.Copysign(maxDelta, d)
	if cur < 0 {
		cur += 360
	} else if cur >= 360 {
		cur -= 360
	}
	return cur
}
