package viewer

import "glsnake/internal/morph"

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Mul scales every channel by k/255.
func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

// RGBA widens c to float channels with the given alpha.
func (c RGB) RGBA(alpha float32) morph.RGBA {
	return morph.RGBA{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: alpha,
	}
}

// FromRGBA quantizes c, premultiplying by its alpha over black.
func FromRGBA(c morph.RGBA) RGB {
	return RGB{
		R: unit8(c.R * c.A),
		G: unit8(c.G * c.A),
		B: unit8(c.B * c.A),
	}
}

func unit8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

var Colours = struct {
	Background RGB
	Outline    RGB
	Text       RGB
	Muted      RGB
	Highlight  RGB
	Bar        RGB
}{
	Background: RGB{R: 0, G: 0, B: 0},
	Outline:    RGB{R: 0, G: 0, B: 0},
	Text:       RGB{R: 220, G: 220, B: 220},
	Muted:      RGB{R: 120, G: 120, B: 125},
	Highlight:  RGB{R: 255, G: 200, B: 90},
	Bar:        RGB{R: 90, G: 170, B: 60},
}
