package morph

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"glsnake/internal/snake"
)

// RGBA is a colour with float channels in [0, 1].
type RGBA struct {
	R, G, B, A float32
}

// ColourPair is the two-tone colouring of the snake: alternate prisms take
// Edge and Face.
type ColourPair struct {
	Edge, Face RGBA
}

// Scheme selects how classifications map onto palettes.
type Scheme int

const (
	// SchemeClassified colours by legality and cyclicity.
	SchemeClassified Scheme = iota
	// SchemeAuthentic uses the purple and green of the physical toy.
	SchemeAuthentic
	// SchemeLogo uses the colours of the toy's box logo.
	SchemeLogo
)

var ErrUnknownScheme = errors.New("unknown colour scheme")

func (s Scheme) String() string {
	switch s {
	case SchemeClassified:
		return "classified"
	case SchemeAuthentic:
		return "authentic"
	case SchemeLogo:
		return "logo"
	}
	return fmt.Sprintf("Scheme(%d)", int(s))
}

func ParseScheme(name string) (Scheme, error) {
	switch strings.ToLower(name) {
	case "classified":
		return SchemeClassified, nil
	case "authentic":
		return SchemeAuthentic, nil
	case "logo":
		return SchemeLogo, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
}

var Palette = struct {
	Cyclic    ColourPair
	Acyclic   ColourPair
	Invalid   ColourPair
	Authentic ColourPair
	Logo      ColourPair
}{
	Cyclic: ColourPair{
		Edge: RGBA{R: 0.4, G: 0.8, B: 0.2, A: 0.6},
		Face: RGBA{R: 1.0, G: 1.0, B: 1.0, A: 0.6},
	},
	Acyclic: ColourPair{
		Edge: RGBA{R: 0.3, G: 0.1, B: 0.9, A: 0.6},
		Face: RGBA{R: 1.0, G: 1.0, B: 1.0, A: 0.6},
	},
	Invalid: ColourPair{
		Edge: RGBA{R: 0.3, G: 0.1, B: 0.1, A: 0.6},
		Face: RGBA{R: 0.5, G: 0.5, B: 0.5, A: 0.6},
	},
	Authentic: ColourPair{
		Edge: RGBA{R: 0.38, G: 0.0, B: 0.55, A: 0.7},
		Face: RGBA{R: 0.0, G: 0.5, B: 0.34, A: 0.7},
	},
	Logo: ColourPair{
		Edge: RGBA{R: 171.0 / 255, G: 0, B: 1.0, A: 1.0},
		Face: RGBA{R: 46.0 / 255, G: 205.0 / 255, B: 227.0 / 255, A: 1.0},
	},
}

// ColourFor returns the palette for a classification under scheme.
func ColourFor(c snake.Classification, scheme Scheme) ColourPair {
	switch scheme {
	case SchemeAuthentic:
		return Palette.Authentic
	case SchemeLogo:
		return Palette.Logo
	}
	switch {
	case !c.Legal:
		return Palette.Invalid
	case c.Cyclic:
		return Palette.Cyclic
	}
	return Palette.Acyclic
}

// SchemeForDate swaps in the logo colours on the first of April.
func SchemeForDate(base Scheme, now time.Time) Scheme {
	if now.Month() == time.April && now.Day() == 1 {
		return SchemeLogo
	}
	return base
}

func lerpF(a, b float32, t float64) float32 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return a + (b-a)*float32(t)
}

func lerpRGBA(a, b RGBA, t float64) RGBA {
	return RGBA{
		R: lerpF(a.R, b.R, t),
		G: lerpF(a.G, b.G, t),
		B: lerpF(a.B, b.B, t),
		A: lerpF(a.A, b.A, t),
	}
}

// Blend mixes two pairs channel by channel; t=0 gives from, t=1 gives to.
func Blend(from, to ColourPair, t float64) ColourPair {
	return ColourPair{
		Edge: lerpRGBA(from.Edge, to.Edge, t),
		Face: lerpRGBA(from.Face, to.Face, t),
	}
}
