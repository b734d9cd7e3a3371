package viewer

import (
	"math"

	"glsnake/internal/snake"
)

// Audio format shared with the desktop player: stereo float32 little endian.
const (
	SampleRate   = 44100
	ChannelCount = 2
	frameBytes   = 8
)

// Chime is the cue played when a morph settles.
type Chime int

const (
	ChimeCyclic Chime = iota
	ChimeOpen
	ChimeIllegal
)

// ChimeFor picks the cue for a settled shape.
func ChimeFor(cl snake.Classification) Chime {
	switch {
	case !cl.Legal:
		return ChimeIllegal
	case cl.Cyclic:
		return ChimeCyclic
	}
	return ChimeOpen
}

// Samples synthesizes the chime as interleaved stereo float32 frames.
func (c Chime) Samples() []byte {
	switch c {
	case ChimeCyclic:
		return genCyclic()
	case ChimeIllegal:
		return genIllegal()
	}
	return genOpen()
}

// genCyclic: rising major arpeggio, each note ringing over the next.
func genCyclic() []byte {
	notes := []float64{523.25, 659.25, 783.99, 1046.5} // C5 E5 G5 C6
	noteStep := int(0.08 * SampleRate)
	total := len(notes)*noteStep + int(0.25*SampleRate)
	mix := make([]float64, total)

	for fi, freq := range notes {
		start := fi * noteStep
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.004, 0.55, 0.05, 0.35)
			s := fm(t, freq, 2.756, 4.0*env) * env * 0.3
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.07
			mix[start+j] += s
		}
	}
	return render(mix)
}

// genOpen: a single soft bell.
func genOpen() []byte {
	n := int(0.3 * SampleRate)
	mix := make([]float64, n)
	for i := range mix {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.4, 0.2, 0.4)
		mix[i] = fm(t, 659.25, 3.5, 2.5*env) * env * 0.3
	}
	return render(mix)
}

// genIllegal: short falling buzz.
func genIllegal() []byte {
	n := int(0.22 * SampleRate)
	mix := make([]float64, n)
	for i := range mix {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.015, 0.5, 0.15, 0.3)
		freq := 220 - 90*p
		s := fm(t, freq, 1.5, 2.8*(1-p)) * env * 0.45
		s += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.1
		mix[i] = s
	}
	return render(mix)
}

func render(mix []float64) []byte {
	buf := make([]byte, len(mix)*frameBytes)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat applies gentle saturation instead of hard clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}
