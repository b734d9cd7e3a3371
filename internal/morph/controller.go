package morph

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"glsnake/internal/catalog"
	"glsnake/internal/snake"
)

// Default timings.
const (
	DefaultStaticTime = 5 * time.Second
	historyLimit      = 64
)

// Options configures a Controller.
type Options struct {
	Strategy Strategy
	Velocity float64
	Scheme   Scheme
	// StaticTime is how long a finished shape is held before auto-cycle
	// picks the next one.
	StaticTime time.Duration
	AutoCycle  bool
	Seed       uint64
	Log        logrus.FieldLogger
}

type historyEntry struct {
	name  string
	model int
	shape snake.Shape
}

// Controller is the single owner of the snake state. Presentation code
// feeds it commands and elapsed time and reads shape and colour back.
type Controller struct {
	cat    *catalog.Catalog
	engine *Engine
	scheme Scheme
	log    logrus.FieldLogger
	rng    *Rand

	model int
	name  string

	// Colour blend endpoints captured when the morph started.
	from, to ColourPair
	colour   ColourPair

	history  []historyEntry
	selected int

	paused     bool
	auto       bool
	staticTime time.Duration
	held       time.Duration

	onSettle func(snake.Classification)
}

// NewController starts resting on the first catalog model.
func NewController(cat *catalog.Catalog, opts Options) (*Controller, error) {
	if cat == nil || cat.Len() == 0 {
		return nil, catalog.ErrEmpty
	}
	if opts.Log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		opts.Log = l
	}
	if opts.StaticTime <= 0 {
		opts.StaticTime = DefaultStaticTime
	}

	first := cat.At(0)
	c := &Controller{
		cat:        cat,
		engine:     NewEngine(first.Shape, opts.Strategy, opts.Velocity, opts.Seed),
		scheme:     opts.Scheme,
		log:        opts.Log,
		rng:        NewRand(opts.Seed ^ 0x5EED),
		name:       first.Name,
		auto:       opts.AutoCycle,
		staticTime: opts.StaticTime,
	}
	c.to = ColourFor(c.engine.Classification(), c.scheme)
	c.from = c.to
	c.colour = c.to
	return c, nil
}

// OnSettle registers fn to run whenever a morph reaches its target.
func (c *Controller) OnSettle(fn func(snake.Classification)) { c.onSettle = fn }

// StartMorph morphs toward shape, recording the old target for Undo.
// A shape found in the catalog takes that model's name; any other shape is
// shown as an edit of the current model.
func (c *Controller) StartMorph(shape snake.Shape, immediate bool) {
	name, model := c.nameFor(shape)
	c.morphTo(name, model, shape, immediate, true)
}

func (c *Controller) nameFor(shape snake.Shape) (string, int) {
	cur := c.cat.At(c.model)
	if cur.Shape == shape {
		return cur.Name, c.model
	}
	if i, ok := c.cat.Find(shape); ok {
		return c.cat.At(i).Name, i
	}
	return cur.Name + "*", c.model
}

func (c *Controller) morphTo(name string, model int, shape snake.Shape, immediate, record bool) {
	if record {
		c.history = append(c.history, historyEntry{name: c.name, model: c.model, shape: c.engine.Target()})
		if len(c.history) > historyLimit {
			c.history = c.history[len(c.history)-historyLimit:]
		}
	}
	c.name = name
	c.model = model
	c.held = 0

	c.engine.StartMorph(shape, immediate)
	c.from = c.colour
	c.to = ColourFor(c.engine.Classification(), c.scheme)
	c.colour = Blend(c.from, c.to, c.engine.Progress())

	cl := c.engine.Classification()
	c.log.WithFields(logrus.Fields{
		"model":    name,
		"legal":    cl.Legal,
		"cyclic":   cl.Cyclic,
		"strategy": c.engine.Strategy(),
	}).Debug("morph")
}

// Tick advances the morph and the colour blend. Nothing happens while
// paused or for non-positive elapsed time.
func (c *Controller) Tick(elapsed time.Duration) {
	if c.paused || elapsed <= 0 {
		return
	}
	if c.engine.IsMorphing() {
		settled := c.engine.Tick(float64(elapsed) / float64(time.Millisecond))
		c.colour = Blend(c.from, c.to, c.engine.Progress())
		if settled {
			c.held = 0
			if c.onSettle != nil {
				c.onSettle(c.engine.Classification())
			}
		}
		return
	}
	if !c.auto {
		return
	}
	c.held += elapsed
	if c.held >= c.staticTime {
		c.Random()
	}
}

// Select morphs to catalog model i, wrapping out of range indices.
func (c *Controller) Select(i int) {
	n := c.cat.Len()
	i %= n
	if i < 0 {
		i += n
	}
	m := c.cat.At(i)
	c.morphTo(m.Name, i, m.Shape, false, true)
}

func (c *Controller) Next() { c.Select(c.model + 1) }

func (c *Controller) Prev() { c.Select(c.model - 1) }

// Random morphs to a catalog model other than the current one.
func (c *Controller) Random() {
	n := c.cat.Len()
	if n < 2 {
		c.Select(0)
		return
	}
	i := c.rng.Intn(n - 1)
	if i >= c.model {
		i++
	}
	c.Select(i)
}

// NudgeJoint turns one joint of the target by +90 or -90 degrees and morphs
// toward the edited shape. Anything else is ignored.
func (c *Controller) NudgeJoint(index, delta int) {
	if index < 0 || index >= snake.JointCount || (delta != 90 && delta != -90) {
		return
	}
	c.StartMorph(c.engine.Target().Nudge(index, delta), false)
}

// NudgeSelected nudges the selected joint.
func (c *Controller) NudgeSelected(delta int) { c.NudgeJoint(c.selected, delta) }

// Undo returns to the target before the last change. It reports false when
// there is nothing to undo.
func (c *Controller) Undo() bool {
	if len(c.history) == 0 {
		return false
	}
	h := c.history[len(c.history)-1]
	c.history = c.history[:len(c.history)-1]
	c.morphTo(h.name, h.model, h.shape, false, false)
	return true
}

// SelectJoint moves the joint cursor, clamped to the valid range.
func (c *Controller) SelectJoint(i int) {
	if i < 0 {
		i = 0
	}
	if i >= snake.JointCount {
		i = snake.JointCount - 1
	}
	c.selected = i
}

func (c *Controller) SelectedJoint() int { return c.selected }

func (c *Controller) SetPaused(p bool) { c.paused = p }

func (c *Controller) Paused() bool { return c.paused }

func (c *Controller) SetAutoCycle(on bool) {
	c.auto = on
	c.held = 0
}

func (c *Controller) AutoCycle() bool { return c.auto }

// CurrentShape returns the live per-node angles in degrees.
func (c *Controller) CurrentShape() [snake.NodeCount]float64 { return c.engine.Current() }

func (c *Controller) Target() snake.Shape { return c.engine.Target() }

func (c *Controller) Classification() snake.Classification { return c.engine.Classification() }

func (c *Controller) Colour() ColourPair { return c.colour }

func (c *Controller) Progress() float64 { return c.engine.Progress() }

func (c *Controller) IsMorphing() bool { return c.engine.IsMorphing() }

// ModelName is the catalog name of the target, starred when the target is
// not a catalog shape.
func (c *Controller) ModelName() string { return c.name }
