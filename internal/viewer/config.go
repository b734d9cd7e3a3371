package viewer

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"glsnake/internal/morph"
)

// Window defaults.
const (
	WindowWidth  = 800
	WindowHeight = 600
	FieldOfView  = 40.0 // degrees
	ViewDistance = 20.0
	MinDistance  = 8.0
	MaxDistance  = 40.0
)

// Scene motion.
const (
	SpinRate    = 10.0 // degrees per second about (1,1,1)
	OrbitRate   = 90.0 // degrees per second while an arrow key is held
	MaxPitch    = 85.0
	ExplodeStep = 0.2
)

// Terminal front end.
const (
	TerminalHz = 30
	BarWidth   = 23
)

// Front ends.
const (
	FrontendGL  = "gl"
	FrontendTUI = "tui"
)

// Environment overrides.
const (
	EnvSeed   = "GLSNAKE_SEED"
	EnvModels = "GLSNAKE_MODELS"
)

var (
	ErrUnknownFrontend = errors.New("viewer: unknown frontend")
	ErrInvalidConfig   = errors.New("viewer: invalid config")
)

// Config is everything a front end needs to start.
type Config struct {
	Frontend   string
	ModelFile  string
	Velocity   float64
	Strategy   string
	Scheme     string
	StaticTime time.Duration
	AutoCycle  bool
	Explode    bool
	Wireframe  bool
	Seed       uint64
	LogLevel   string
	Width      int
	Height     int
}

func DefaultConfig() Config {
	return Config{
		Frontend:   FrontendGL,
		Velocity:   morph.DefaultVelocity,
		Strategy:   morph.AllAtOnce.String(),
		Scheme:     morph.SchemeClassified.String(),
		StaticTime: morph.DefaultStaticTime,
		Seed:       uint64(time.Now().UnixNano()),
		LogLevel:   logrus.InfoLevel.String(),
		Width:      WindowWidth,
		Height:     WindowHeight,
	}
}

// ApplyEnv overrides the seed and model file from the environment.
// Unparseable values are ignored.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if s, ok := lookup(EnvSeed); ok && s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			c.Seed = v
		}
	}
	if s, ok := lookup(EnvModels); ok && s != "" {
		c.ModelFile = s
	}
}

func (c Config) Validate() error {
	switch c.Frontend {
	case FrontendGL, FrontendTUI:
	default:
		return fmt.Errorf("%w %q", ErrUnknownFrontend, c.Frontend)
	}
	if _, err := morph.ParseStrategy(c.Strategy); err != nil {
		return err
	}
	if _, err := morph.ParseScheme(c.Scheme); err != nil {
		return err
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level: %v", ErrInvalidConfig, err)
	}
	if c.Velocity <= 0 {
		return fmt.Errorf("%w: velocity must be positive, got %v", ErrInvalidConfig, c.Velocity)
	}
	if c.StaticTime < 0 {
		return fmt.Errorf("%w: static time must not be negative, got %v", ErrInvalidConfig, c.StaticTime)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	return nil
}

// Options converts the config into controller options. Call Validate first.
func (c Config) Options(log logrus.FieldLogger) morph.Options {
	strategy, _ := morph.ParseStrategy(c.Strategy)
	scheme, _ := morph.ParseScheme(c.Scheme)
	return morph.Options{
		Strategy:   strategy,
		Velocity:   c.Velocity,
		Scheme:     morph.SchemeForDate(scheme, time.Now()),
		StaticTime: c.StaticTime,
		AutoCycle:  c.AutoCycle,
		Seed:       c.Seed,
		Log:        log,
	}
}
