package viewer

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTerminal(t *testing.T) (*Terminal, tcell.Screen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)
	return NewTerminal(screen, newController(t), NewView(DefaultConfig())), screen
}

func row(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func TestTerminalDraw(t *testing.T) {
	term, screen := newTerminal(t)
	term.Draw()

	assert.Equal(t, "glsnake  ball", row(screen, 0))
	assert.Equal(t, "joints  RLLRLRRLRLLRRLLRLRRLRLL", row(screen, 2))
	assert.Equal(t, "        ^", row(screen, 3))
	assert.Contains(t, row(screen, 4), "00  live 270  target RIGHT")
	assert.Equal(t, "shape   cyclic, closes R", row(screen, 5))
	assert.Contains(t, row(screen, 7), "["+strings.Repeat("#", BarWidth)+"] 100%")
	assert.True(t, strings.HasPrefix(row(screen, 9), "space: pause  a: auto cycle"))

	_, _, style, _ := screen.GetContent(labelWidth, 2)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, tcellColor(Colours.Highlight), bg)
	assert.Equal(t, tcellColor(Colours.Background), fg)
}

func TestTerminalKeys(t *testing.T) {
	term, screen := newTerminal(t)

	assert.True(t, term.HandleEvent(key(tcell.KeyRune, 'n')))
	assert.Equal(t, "cat", term.ctrl.ModelName())

	assert.True(t, term.HandleEvent(key(tcell.KeyRight, 0)))
	assert.True(t, term.HandleEvent(key(tcell.KeyRight, 0)))
	assert.Equal(t, 2, term.ctrl.SelectedJoint())
	assert.True(t, term.HandleEvent(key(tcell.KeyLeft, 0)))
	assert.Equal(t, 1, term.ctrl.SelectedJoint())

	assert.True(t, term.HandleEvent(key(tcell.KeyUp, 0)))
	assert.Equal(t, "cat*", term.ctrl.ModelName())
	assert.True(t, term.HandleEvent(key(tcell.KeyRune, 'u')))
	assert.Equal(t, "cat", term.ctrl.ModelName())

	assert.True(t, term.HandleEvent(key(tcell.KeyRune, ' ')))
	assert.True(t, term.HandleEvent(key(tcell.KeyRune, 'e')))
	term.Draw()
	assert.Equal(t, "         ^", row(screen, 3))
	assert.Contains(t, row(screen, 7), "paused explode")

	assert.True(t, term.HandleEvent(tcell.NewEventResize(100, 30)))
	assert.False(t, term.HandleEvent(key(tcell.KeyEscape, 0)))
	assert.False(t, term.HandleEvent(key(tcell.KeyRune, 'Q')))
}

func swatch(s tcell.Screen, x int) tcell.Color {
	_, _, style, _ := s.GetContent(x, 6)
	_, bg, _ := style.Decompose()
	return bg
}

func TestTerminalDimsSwatchWhilePaused(t *testing.T) {
	term, screen := newTerminal(t)
	cp := term.ctrl.Colour()
	term.Draw()
	assert.Equal(t, tcellColor(FromRGBA(cp.Face)), swatch(screen, labelWidth))
	assert.Equal(t, tcellColor(FromRGBA(cp.Edge)), swatch(screen, labelWidth+4))

	term.ctrl.SetPaused(true)
	term.Draw()
	assert.Equal(t, tcellColor(FromRGBA(cp.Face).Mul(pausedDim)), swatch(screen, labelWidth))
	assert.Equal(t, tcellColor(FromRGBA(cp.Edge).Mul(pausedDim)), swatch(screen, labelWidth+4))
	assert.NotEqual(t, swatch(screen, labelWidth), tcellColor(FromRGBA(cp.Face)))
}

func TestTerminalShowsLastLogLine(t *testing.T) {
	term, screen := newTerminal(t)
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	log.SetOutput(term.sink)

	log.Info("first")
	log.WithField("model", "cat").Warn("second")
	term.Draw()
	assert.Equal(t, `level=warning msg=second model=cat`, row(screen, 23))
}

func TestLineSink(t *testing.T) {
	var s lineSink
	_, err := s.Write([]byte("a\nb\n"))
	require.NoError(t, err)
	assert.Equal(t, "b", s.Last())
	n, _ := s.Write([]byte("c"))
	assert.Equal(t, 1, n)
	assert.Equal(t, "c", s.Last())
}
