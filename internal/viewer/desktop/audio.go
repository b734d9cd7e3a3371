package desktop

import (
	"io"
	"sync"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"glsnake/internal/snake"
	"glsnake/internal/viewer"
)

const (
	BitDepth  = 0 // 32-bit float (oto.FormatFloat32LE)
	sfxVolume = 0.6
)

// Audio plays the settle chimes.
type Audio struct {
	ctx   *oto.Context
	ready chan struct{}

	mu    sync.Mutex
	cache map[viewer.Chime][]byte
}

func NewAudio() (*Audio, error) {
	ctx, ready, err := oto.NewContext(viewer.SampleRate, viewer.ChannelCount, BitDepth)
	if err != nil {
		return nil, err
	}
	return &Audio{ctx: ctx, ready: ready, cache: make(map[viewer.Chime][]byte)}, nil
}

// Settled plays the chime for a shape the snake just reached. It returns
// immediately; playback runs on its own goroutine.
func (a *Audio) Settled(cl snake.Classification) {
	if a == nil {
		return
	}
	select {
	case <-a.ready:
	default:
		return
	}
	samples := a.samples(viewer.ChimeFor(cl))
	go func() {
		player := a.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

func (a *Audio) samples(c viewer.Chime) []byte {
	a.mu.Lock()
	defer a.mu.Unlock()
	buf, ok := a.cache[c]
	if !ok {
		buf = c.Samples()
		a.cache[c] = buf
	}
	return buf
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
