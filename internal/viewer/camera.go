package viewer

import (
	"math"
)

// Camera orbits the snake. All angles are in degrees.
type Camera struct {
	Yaw, Pitch float64 // user orbit
	Spin       float64 // automatic rotation about (1,1,1)
	Distance   float64
}

func NewCamera() Camera {
	return Camera{Distance: ViewDistance}
}

// Update advances the automatic spin.
func (c *Camera) Update(dt float64) {
	c.Spin = math.Mod(c.Spin+SpinRate*dt, 360)
}

// Orbit turns the camera by the given yaw and pitch deltas.
func (c *Camera) Orbit(dyaw, dpitch float64) {
	c.Yaw = math.Mod(c.Yaw+dyaw, 360)
	c.Pitch += dpitch
	c.Clamp()
}

// Zoom scales the viewing distance; factors above 1 move away.
func (c *Camera) Zoom(factor float64) {
	c.Distance *= factor
	c.Clamp()
}

func (c *Camera) Clamp() {
	if c.Pitch < -MaxPitch {
		c.Pitch = -MaxPitch
	}
	if c.Pitch > MaxPitch {
		c.Pitch = MaxPitch
	}
	if c.Distance < MinDistance {
		c.Distance = MinDistance
	}
	if c.Distance > MaxDistance {
		c.Distance = MaxDistance
	}
}

// View maps snake space to eye space. The 45 degree twist about Z sets the
// chain's resting orientation.
func (c Camera) View() Mat4 {
	return Translate(0, 0, -c.Distance).
		Mul(Rotate(c.Pitch, 1, 0, 0)).
		Mul(Rotate(c.Yaw, 0, 1, 0)).
		Mul(Rotate(c.Spin, 1, 1, 1)).
		Mul(Rotate(45, 0, 0, 1))
}

// ViewProjection combines View with a perspective projection for a
// framebuffer of the given size.
func (c Camera) ViewProjection(fbW, fbH int) Mat4 {
	aspect := 1.0
	if fbH > 0 {
		aspect = float64(fbW) / float64(fbH)
	}
	return Perspective(FieldOfView, aspect, 0.1, 100).Mul(c.View())
}
