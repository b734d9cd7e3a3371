// Package morph drives a snake from one shape to another over time and
// derives the colour shown for it.
package morph

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"glsnake/internal/snake"
)

// Strategy decides which joints move on a tick.
type Strategy int

const (
	// AllAtOnce turns every joint simultaneously.
	AllAtOnce Strategy = iota
	// OneAtATime turns a single joint at a time, lowest index first.
	OneAtATime
	// StrategyRandom picks AllAtOnce or OneAtATime afresh for every morph.
	StrategyRandom
)

var ErrUnknownStrategy = errors.New("unknown morph strategy")

func (s Strategy) String() string {
	switch s {
	case AllAtOnce:
		return "all"
	case OneAtATime:
		return "one"
	case StrategyRandom:
		return "random"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy accepts the names produced by Strategy.String.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(name) {
	case "all":
		return AllAtOnce, nil
	case "one":
		return OneAtATime, nil
	case "random":
		return StrategyRandom, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// DefaultVelocity turns a joint through 90 degrees in one second.
const DefaultVelocity = 1.0

// Engine holds the morph state. The zero value is not usable; see NewEngine.
type Engine struct {
	current    [snake.NodeCount]float64
	prevTarget snake.Shape
	nextTarget snake.Shape
	class      snake.Classification

	morphing bool
	policy   Strategy
	strategy Strategy
	cursor   int
	// initial is the remaining-angle measure when the morph started.
	initial float64

	velocity float64
	rng      *Rand
}

// NewEngine returns an idle engine resting on start.
func NewEngine(start snake.Shape, policy Strategy, velocity float64, seed uint64) *Engine {
	if velocity <= 0 {
		velocity = DefaultVelocity
	}
	e := &Engine{
		policy:   policy,
		velocity: velocity,
		rng:      NewRand(seed),
	}
	e.StartMorph(start, true)
	e.prevTarget = start
	return e
}

func (e *Engine) pick() Strategy {
	if e.policy == StrategyRandom {
		return Strategy(e.rng.Intn(2))
	}
	return e.policy
}

// StartMorph makes target the new destination. The in-flight target, if
// any, is dropped and motion continues from the current angles. The
// classification switches to the target's at once. With immediate set the
// current angles jump straight to target.
func (e *Engine) StartMorph(target snake.Shape, immediate bool) {
	e.prevTarget = e.nextTarget
	e.nextTarget = target
	e.class = snake.Classify(target)
	e.cursor = 0
	e.strategy = e.pick()

	if immediate {
		e.current = target.Degrees()
		e.morphing = false
		e.initial = 0
		return
	}
	e.initial = e.remaining()
	e.morphing = e.initial > 0
}

// Tick advances the morph by elapsedMs milliseconds. It reports whether the
// morph finished on this tick. Elapsed time that is not a positive finite
// number is a no-op.
func (e *Engine) Tick(elapsedMs float64) bool {
	if !e.morphing || !(elapsedMs > 0) || math.IsInf(elapsedMs, 1) {
		return false
	}
	maxStep := 90 * e.velocity * elapsedMs / 1000

	switch e.strategy {
	case OneAtATime:
		e.tickOne(maxStep)
	default:
		e.tickAll(maxStep)
	}

	if e.remaining() == 0 {
		e.morphing = false
		return true
	}
	return false
}

func (e *Engine) tickAll(maxStep float64) {
	for i, a := range e.nextTarget {
		e.current[i] = approach(e.current[i], a.Degrees(), maxStep)
	}
}

func (e *Engine) tickOne(maxStep float64) {
	for e.cursor < snake.JointCount && e.current[e.cursor] == e.nextTarget[e.cursor].Degrees() {
		e.cursor++
	}
	if e.cursor == snake.JointCount {
		return
	}
	e.current[e.cursor] = approach(e.current[e.cursor], e.nextTarget[e.cursor].Degrees(), maxStep)
}

// remaining measures the distance left to the target: the largest joint
// distance for AllAtOnce, the sum of joint distances for OneAtATime.
func (e *Engine) remaining() float64 {
	var m float64
	for i, a := range e.nextTarget {
		d := math.Abs(angDiff(e.current[i], a.Degrees()))
		if e.strategy == OneAtATime {
			m += d
		} else if d > m {
			m = d
		}
	}
	return m
}

// Progress reports how far the current morph has got, from 0 to 1. It
// never decreases during a morph and is exactly 1 once the engine is idle.
func (e *Engine) Progress() float64 {
	if !e.morphing || e.initial == 0 {
		return 1
	}
	p := 1 - e.remaining()/e.initial
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

func (e *Engine) IsMorphing() bool { return e.morphing }

// Current returns the live per-node angles in degrees, each in [0, 360).
func (e *Engine) Current() [snake.NodeCount]float64 { return e.current }

func (e *Engine) Target() snake.Shape { return e.nextTarget }

func (e *Engine) PreviousTarget() snake.Shape { return e.prevTarget }

// Classification describes the target shape, not the in-flight one.
func (e *Engine) Classification() snake.Classification { return e.class }

// Strategy is the strategy of the current (or last) morph.
func (e *Engine) Strategy() Strategy { return e.strategy }
