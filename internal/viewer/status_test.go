package viewer

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"glsnake/internal/morph"
	"glsnake/internal/snake"
)

func TestClassText(t *testing.T) {
	tests := []struct {
		class snake.Classification
		want  string
	}{
		{snake.Classification{}, "illegal"},
		{snake.Classification{Cyclic: true, HasLastTurn: true, LastTurn: snake.Pin}, "illegal"},
		{snake.Classification{Legal: true}, "open"},
		{snake.Classification{Legal: true, Cyclic: true}, "cyclic"},
		{snake.Classification{Legal: true, Cyclic: true, HasLastTurn: true, LastTurn: snake.Right}, "cyclic, closes R"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassText(tt.class))
	}
}

func TestPercentAndProgressBar(t *testing.T) {
	assert.Equal(t, "0%", Percent(0))
	assert.Equal(t, "46%", Percent(0.456))
	assert.Equal(t, "100%", Percent(1))

	assert.Equal(t, "#####.....", ProgressBar(0.5, 10))
	assert.Equal(t, "....", ProgressBar(-1, 4))
	assert.Equal(t, "####", ProgressBar(2, 4))
	assert.Empty(t, ProgressBar(0.5, 0))
}

func TestStatus(t *testing.T) {
	c := newController(t)
	assert.Equal(t, "ball | cyclic, closes R | 100%", Status(c))

	c.Next()
	c.SetPaused(true)
	c.SetAutoCycle(true)
	assert.Equal(t, "cat | open | 0% | paused | auto", Status(c))
}

func TestPaletteConversions(t *testing.T) {
	assert.Equal(t, RGB{R: 100, G: 50, B: 0}, RGB{R: 200, G: 100, B: 0}.Mul(128))
	assert.Equal(t, morph.RGBA{R: 1, G: 0, B: 0, A: 0.5}, RGB{R: 255}.RGBA(0.5))
	assert.Equal(t, RGB{R: 255, G: 128, B: 0}, FromRGBA(morph.RGBA{R: 1, G: 0.5, B: -1, A: 1}))
	assert.Equal(t, RGB{R: 128, G: 128, B: 128}, FromRGBA(morph.RGBA{R: 1, G: 1, B: 1, A: 0.5}))
}

func TestChimeFor(t *testing.T) {
	assert.Equal(t, ChimeIllegal, ChimeFor(snake.Classification{Cyclic: true}))
	assert.Equal(t, ChimeCyclic, ChimeFor(snake.Classification{Legal: true, Cyclic: true}))
	assert.Equal(t, ChimeOpen, ChimeFor(snake.Classification{Legal: true}))
}

func TestChimeSamples(t *testing.T) {
	for _, c := range []Chime{ChimeCyclic, ChimeOpen, ChimeIllegal} {
		buf := c.Samples()
		if !assert.NotEmpty(t, buf) {
			continue
		}
		assert.Zero(t, len(buf)%frameBytes)
		loud := false
		for i := 0; i < len(buf); i += frameBytes {
			l := math.Float32frombits(binary.LittleEndian.Uint32(buf[i:]))
			r := math.Float32frombits(binary.LittleEndian.Uint32(buf[i+4:]))
			assert.Equal(t, l, r)
			if math.Abs(float64(l)) > 1 {
				t.Fatalf("chime %d: sample %d out of range: %v", c, i/frameBytes, l)
			}
			if math.Abs(float64(l)) > 0.05 {
				loud = true
			}
		}
		assert.True(t, loud, "chime %d is silent", c)
	}
	assert.Greater(t, len(ChimeCyclic.Samples()), len(ChimeIllegal.Samples()))
}

func TestEnvelope(t *testing.T) {
	assert.InDelta(t, 0, adsr(0, 0.1, 0.2, 0.5, 0.2), eps)
	assert.InDelta(t, 1, adsr(0.1, 0.1, 0.2, 0.5, 0.2), eps)
	assert.InDelta(t, 0.5, adsr(0.5, 0.1, 0.2, 0.5, 0.2), eps)
	assert.InDelta(t, 0, adsr(1, 0.1, 0.2, 0.5, 0.2), eps)
	assert.InDelta(t, 0, softSat(0), eps)
	assert.Less(t, softSat(10), 1.0)
}
