package desktop

import (
	"math"
	"unicode"

	"github.com/go-gl/glfw/v3.3/glfw"

	"glsnake/internal/viewer"
)

type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{prevKeys: make(map[glfw.Key]bool)}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// Commands returns the commands whose keys went down since the last call,
// in key order. glfw key codes for letters and space match their upper case
// ASCII.
func (in *Input) Commands(window *glfw.Window) []viewer.Command {
	var out []viewer.Command
	if in.JustPressed(window, glfw.KeyEscape) {
		out = append(out, viewer.CmdQuit)
	}
	for _, r := range viewer.Keys() {
		if in.JustPressed(window, glfw.Key(unicode.ToUpper(r))) {
			out = append(out, viewer.Keymap[r])
		}
	}
	return out
}

// UpdateCamera orbits with the arrow keys and zooms with '=' and '-' while held.
func UpdateCamera(cam *viewer.Camera, window *glfw.Window, dt float64) {
	step := viewer.OrbitRate * dt
	var dyaw, dpitch float64
	if window.GetKey(glfw.KeyLeft) == glfw.Press {
		dyaw -= step
	}
	if window.GetKey(glfw.KeyRight) == glfw.Press {
		dyaw += step
	}
	if window.GetKey(glfw.KeyUp) == glfw.Press {
		dpitch -= step
	}
	if window.GetKey(glfw.KeyDown) == glfw.Press {
		dpitch += step
	}
	if dyaw != 0 || dpitch != 0 {
		cam.Orbit(dyaw, dpitch)
	}

	zoomRate := 1.4
	if window.GetKey(glfw.KeyMinus) == glfw.Press {
		cam.Zoom(math.Exp(zoomRate * dt))
	}
	if window.GetKey(glfw.KeyEqual) == glfw.Press {
		cam.Zoom(math.Exp(-zoomRate * dt))
	}
}
