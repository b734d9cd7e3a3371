// Package desktop is the OpenGL front end: a glfw window drawing the snake
// as shaded prisms, with chimes when a morph settles.
package desktop

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/sirupsen/logrus"

	"glsnake/internal/morph"
	"glsnake/internal/viewer"
)

const windowTitle = "glsnake"

// Run opens the window and drives ctrl until the window closes or the user
// quits. It must be called from the main goroutine.
func Run(cfg viewer.Config, ctrl *morph.Controller, view *viewer.View, log logrus.FieldLogger) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	window, err := initWindow(cfg.Width, cfg.Height, windowTitle)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.WithField("gl", gl.GoStr(gl.GetString(gl.VERSION))).Debug("context ready")

	audio, err := NewAudio()
	if err != nil {
		log.WithError(err).Warn("audio init failed, continuing without sound")
		audio = nil
	}
	ctrl.OnSettle(audio.Settled)

	// GL state.
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.POLYGON_OFFSET_FILL)
	gl.PolygonOffset(1, 1)
	bg := viewer.Colours.Background.RGBA(1)
	gl.ClearColor(bg.R, bg.G, bg.B, bg.A)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	input := NewInput()
	var mesh viewer.Mesh
	title := ""

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()
		for _, cmd := range input.Commands(window) {
			if !viewer.Apply(ctrl, view, cmd) {
				window.SetShouldClose(true)
			}
		}
		UpdateCamera(&view.Camera, window, dt)
		view.Camera.Update(dt)
		ctrl.Tick(time.Duration(dt * float64(time.Second)))

		if s := viewer.Status(ctrl); s != title {
			title = s
			window.SetTitle(windowTitle + ": " + s)
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		viewer.BuildMesh(&mesh, ctrl.CurrentShape(), ctrl.Colour(), view.Explode, view.Wireframe)
		rend.BeginFrame(fbW, fbH)
		rend.Draw(&mesh, view.Camera.ViewProjection(fbW, fbH))
		window.SwapBuffers()
	}
	return nil
}
