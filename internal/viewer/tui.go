package viewer

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"glsnake/internal/morph"
)

// Terminal is the text front end: the joint strip of the target, the live
// angle of the selected joint, the classification, a swatch of the blended
// colours and a progress bar.
type Terminal struct {
	screen tcell.Screen
	ctrl   *morph.Controller
	view   *View
	sink   *lineSink
}

// NewTerminal draws onto an initialised screen. The caller owns the screen
// and must Fini it.
func NewTerminal(screen tcell.Screen, ctrl *morph.Controller, view *View) *Terminal {
	return &Terminal{screen: screen, ctrl: ctrl, view: view, sink: &lineSink{}}
}

// Run ticks the controller at TerminalHz and handles keys until the user
// quits. While it runs, log output is captured and the latest line is shown
// at the bottom of the screen.
func (t *Terminal) Run(log *logrus.Logger) error {
	if log != nil {
		prev := log.Out
		log.SetOutput(t.sink)
		defer log.SetOutput(prev)
	}

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / TerminalHz)
	defer ticker.Stop()

	last := time.Now()
	t.Draw()
	for {
		select {
		case ev := <-events:
			if !t.HandleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			t.ctrl.Tick(now.Sub(last))
			last = now
		}
		t.Draw()
	}
}

// HandleEvent applies a key press. It returns false once the user quits.
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventKey:
		cmd := CmdNone
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			cmd = CmdQuit
		case tcell.KeyLeft:
			cmd = CmdJointLeft
		case tcell.KeyRight:
			cmd = CmdJointRight
		case tcell.KeyUp:
			cmd = CmdNudgeUp
		case tcell.KeyDown:
			cmd = CmdNudgeDown
		case tcell.KeyRune:
			cmd = CommandForRune(ev.Rune())
		}
		return Apply(t.ctrl, t.view, cmd)
	}
	return true
}

const (
	labelWidth = 8
	// pausedDim darkens the colour swatch while the morph is paused.
	pausedDim uint8 = 128
)

// Draw renders one frame.
func (t *Terminal) Draw() {
	s := t.screen
	s.Clear()
	w, h := s.Size()

	text := tcell.StyleDefault.Foreground(tcellColor(Colours.Text))
	muted := tcell.StyleDefault.Foreground(tcellColor(Colours.Muted))
	bold := text.Bold(true)

	t.print(0, 0, bold, "glsnake  "+t.ctrl.ModelName())

	sel := t.ctrl.SelectedJoint()
	target := t.ctrl.Target()
	t.print(0, 2, muted, "joints")
	for i, a := range target {
		st := text
		if i == sel {
			st = tcell.StyleDefault.
				Foreground(tcellColor(Colours.Background)).
				Background(tcellColor(Colours.Highlight))
		}
		s.SetContent(labelWidth+i, 2, a.Rune(), nil, st)
	}
	s.SetContent(labelWidth+sel, 3, '^', nil, muted)

	live := t.ctrl.CurrentShape()[sel]
	t.print(0, 4, muted, "joint")
	t.print(labelWidth, 4, text, fmt.Sprintf("%02d  live %3.0f  target %s", sel, live, target[sel]))

	t.print(0, 5, muted, "shape")
	t.print(labelWidth, 5, text, ClassText(t.ctrl.Classification()))

	t.print(0, 6, muted, "colour")
	cp := t.ctrl.Colour()
	faceRGB, edgeRGB := FromRGBA(cp.Face), FromRGBA(cp.Edge)
	if t.ctrl.Paused() {
		faceRGB, edgeRGB = faceRGB.Mul(pausedDim), edgeRGB.Mul(pausedDim)
	}
	face := tcell.StyleDefault.Background(tcellColor(faceRGB))
	edge := tcell.StyleDefault.Background(tcellColor(edgeRGB))
	t.print(labelWidth, 6, face, "    ")
	t.print(labelWidth+4, 6, edge, "    ")

	p := t.ctrl.Progress()
	t.print(0, 7, muted, "morph")
	x := t.print(labelWidth, 7, tcell.StyleDefault.Foreground(tcellColor(Colours.Bar)), "["+ProgressBar(p, BarWidth)+"]")
	t.print(x+1, 7, text, strings.Join(t.flags(p), " "))

	t.print(0, 9, muted, Help())
	if line := t.sink.Last(); line != "" && h > 11 {
		t.print(0, h-1, muted, truncate(line, w))
	}
	s.Show()
}

func (t *Terminal) flags(p float64) []string {
	out := []string{Percent(p)}
	if t.ctrl.Paused() {
		out = append(out, "paused")
	}
	if t.ctrl.AutoCycle() {
		out = append(out, "auto")
	}
	if t.view.Explode > 0 {
		out = append(out, "explode")
	}
	if t.view.Wireframe {
		out = append(out, "wireframe")
	}
	return out
}

// print writes str at (x, y) and returns the column after it.
func (t *Terminal) print(x, y int, style tcell.Style, str string) int {
	for _, r := range str {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

func tcellColor(c RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}

// lineSink keeps the most recent complete line written to it.
type lineSink struct {
	mu   sync.Mutex
	last string
}

func (l *lineSink) Write(p []byte) (int, error) {
	line := strings.TrimRight(string(p), "\n")
	if i := strings.LastIndexByte(line, '\n'); i >= 0 {
		line = line[i+1:]
	}
	l.mu.Lock()
	l.last = line
	l.mu.Unlock()
	return len(p), nil
}

func (l *lineSink) Last() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.last
}
