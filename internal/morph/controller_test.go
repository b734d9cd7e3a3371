package morph

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glsnake/internal/catalog"
	"glsnake/internal/snake"
)

func newController(t *testing.T, opts Options) *Controller {
	t.Helper()
	c, err := NewController(catalog.Builtin(), opts)
	require.NoError(t, err)
	return c
}

func settle(t *testing.T, c *Controller) {
	t.Helper()
	for i := 0; c.IsMorphing(); i++ {
		require.Less(t, i, 10000)
		c.Tick(50 * time.Millisecond)
	}
}

func TestNewControllerEmptyCatalog(t *testing.T) {
	_, err := NewController(catalog.New(), Options{})
	assert.ErrorIs(t, err, catalog.ErrEmpty)
	_, err = NewController(nil, Options{})
	assert.ErrorIs(t, err, catalog.ErrEmpty)
}

func TestControllerStartsOnFirstModel(t *testing.T) {
	c := newController(t, Options{})
	assert.Equal(t, "ball", c.ModelName())
	assert.False(t, c.IsMorphing())
	assert.Equal(t, Palette.Cyclic, c.Colour())
	assert.Equal(t, 1.0, c.Progress())
	assert.Equal(t, ball.Degrees(), c.CurrentShape())
}

func TestControllerNextBlendsColour(t *testing.T) {
	c := newController(t, Options{})
	c.Next()
	assert.Equal(t, "cat", c.ModelName())
	assert.True(t, c.IsMorphing())
	assert.False(t, c.Classification().Cyclic, "classification follows the target at once")
	assert.Equal(t, Palette.Cyclic, c.Colour(), "blend starts from the shown colour")

	c.Tick(200 * time.Millisecond)
	assert.NotEqual(t, Palette.Cyclic, c.Colour())
	assert.NotEqual(t, Palette.Acyclic, c.Colour())

	settle(t, c)
	assert.Equal(t, Palette.Acyclic, c.Colour())
	assert.Equal(t, c.Target().Degrees(), c.CurrentShape())
}

func TestControllerPrevWraps(t *testing.T) {
	c := newController(t, Options{})
	c.Prev()
	assert.Equal(t, "right spiral", c.ModelName())
	c.Next()
	assert.Equal(t, "ball", c.ModelName())
}

func TestControllerInterruptKeepsShownColour(t *testing.T) {
	c := newController(t, Options{})
	c.Next()
	c.Tick(300 * time.Millisecond)
	shown := c.Colour()
	shape := c.CurrentShape()

	c.Select(3)
	assert.Equal(t, shown, c.Colour())
	assert.Equal(t, shape, c.CurrentShape())
	settle(t, c)
	assert.Equal(t, ColourFor(c.Classification(), SchemeClassified), c.Colour())
}

func TestControllerNudgeJoint(t *testing.T) {
	c := newController(t, Options{})
	require.Equal(t, snake.Right, c.Target()[0])

	c.NudgeJoint(0, 90)
	assert.Equal(t, snake.Zero, c.Target()[0], "270 + 90 wraps to 0")
	assert.Equal(t, "ball*", c.ModelName())
	assert.Equal(t, snake.Classify(c.Target()), c.Classification())
	assert.False(t, c.Classification().Cyclic)

	c.NudgeJoint(0, -90)
	assert.Equal(t, snake.Right, c.Target()[0])
	assert.True(t, c.Classification().Cyclic)
}

func TestControllerNudgeIgnoresBadInput(t *testing.T) {
	c := newController(t, Options{})
	before := c.Target()
	c.NudgeJoint(-1, 90)
	c.NudgeJoint(snake.JointCount, 90)
	c.NudgeJoint(3, 45)
	c.NudgeJoint(3, 0)
	c.NudgeJoint(3, 180)
	c.NudgeJoint(3, -270)
	assert.Equal(t, before, c.Target())
	assert.False(t, c.Undo())
}

func TestControllerUndo(t *testing.T) {
	c := newController(t, Options{})
	c.SelectJoint(4)
	c.NudgeSelected(90)
	c.Next()
	assert.Equal(t, "cat", c.ModelName())

	require.True(t, c.Undo())
	assert.Equal(t, "ball*", c.ModelName())
	assert.Equal(t, ball.Nudge(4, 90), c.Target())

	require.True(t, c.Undo())
	assert.Equal(t, "ball", c.ModelName())
	assert.Equal(t, ball, c.Target())
	assert.False(t, c.Undo())
}

func TestControllerHistoryIsBounded(t *testing.T) {
	c := newController(t, Options{})
	for i := 0; i < historyLimit+10; i++ {
		c.Next()
	}
	assert.Len(t, c.history, historyLimit)
}

func TestControllerPause(t *testing.T) {
	c := newController(t, Options{})
	c.Next()
	c.SetPaused(true)
	assert.True(t, c.Paused())
	before := c.CurrentShape()
	c.Tick(time.Second)
	assert.Equal(t, before, c.CurrentShape())

	c.SetPaused(false)
	c.Tick(time.Second)
	assert.NotEqual(t, before, c.CurrentShape())
}

func TestControllerAutoCycle(t *testing.T) {
	c := newController(t, Options{AutoCycle: true, StaticTime: time.Second, Seed: 3})
	assert.True(t, c.AutoCycle())

	c.Tick(600 * time.Millisecond)
	assert.False(t, c.IsMorphing())
	c.Tick(600 * time.Millisecond)
	assert.True(t, c.IsMorphing())
	assert.NotEqual(t, "ball", c.ModelName())

	c.SetAutoCycle(false)
	settle(t, c)
	c.Tick(10 * time.Second)
	assert.False(t, c.IsMorphing())
}

func TestControllerRandomAvoidsCurrent(t *testing.T) {
	c := newController(t, Options{Seed: 11})
	for i := 0; i < 50; i++ {
		prev := c.ModelName()
		c.Random()
		assert.NotEqual(t, prev, c.ModelName())
	}

	single, err := NewController(catalog.New(catalog.Model{Name: "only"}), Options{})
	require.NoError(t, err)
	single.Random()
	assert.Equal(t, "only", single.ModelName())
}

func TestControllerOnSettle(t *testing.T) {
	c := newController(t, Options{})
	var got []snake.Classification
	c.OnSettle(func(cl snake.Classification) { got = append(got, cl) })

	c.Select(7) // snowflake
	settle(t, c)
	require.Len(t, got, 1)
	assert.True(t, got[0].Cyclic)
}

func TestControllerSelectJointClamps(t *testing.T) {
	c := newController(t, Options{})
	c.SelectJoint(-4)
	assert.Equal(t, 0, c.SelectedJoint())
	c.SelectJoint(99)
	assert.Equal(t, snake.JointCount-1, c.SelectedJoint())
}

func TestControllerLogsMorphs(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	c := newController(t, Options{Log: logger})
	c.Next()

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "morph", entry.Message)
	assert.Equal(t, "cat", entry.Data["model"])
	assert.Equal(t, false, entry.Data["cyclic"])
}

func TestControllerImmediateStartMorph(t *testing.T) {
	c := newController(t, Options{Scheme: SchemeAuthentic})
	c.StartMorph(zigzag, true)
	assert.False(t, c.IsMorphing())
	assert.Equal(t, zigzag.Degrees(), c.CurrentShape())
	assert.Equal(t, Palette.Authentic, c.Colour())
}

func TestControllerStartMorphNamesShape(t *testing.T) {
	c := newController(t, Options{})
	c.StartMorph(zigzag, false)
	assert.Equal(t, "zigzag1", c.ModelName())

	c.Next()
	assert.Equal(t, "zigzag2", c.ModelName())

	edited := ball.Nudge(5, 90)
	c.StartMorph(edited, false)
	assert.Equal(t, "zigzag2*", c.ModelName())
	assert.Equal(t, edited, c.Target())

	c.StartMorph(snake.MustParseShape("PZPZPZPZPZPZPZPZPZPZPZP"), false)
	assert.Equal(t, "zigzag2", c.ModelName())
}

func TestControllerNudgeBackRestoresName(t *testing.T) {
	c := newController(t, Options{})
	c.NudgeJoint(7, 90)
	assert.Equal(t, "ball*", c.ModelName())
	c.NudgeJoint(7, -90)
	assert.Equal(t, "ball", c.ModelName())
}
