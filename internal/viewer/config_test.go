package viewer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glsnake/internal/catalog"
	"glsnake/internal/morph"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, FrontendGL, cfg.Frontend)
	assert.Equal(t, morph.DefaultVelocity, cfg.Velocity)
	assert.Equal(t, morph.DefaultStaticTime, cfg.StaticTime)
	assert.Equal(t, "all", cfg.Strategy)
	assert.Equal(t, "classified", cfg.Scheme)
	assert.Empty(t, cfg.ModelFile)
}

func TestApplyEnv(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ApplyEnv(env(map[string]string{EnvSeed: "42", EnvModels: "/tmp/models.txt"}))
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, "/tmp/models.txt", cfg.ModelFile)

	cfg = DefaultConfig()
	cfg.Seed = 7
	cfg.ApplyEnv(env(map[string]string{EnvSeed: "not a number", EnvModels: ""}))
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Empty(t, cfg.ModelFile)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		target error
	}{
		{"frontend", func(c *Config) { c.Frontend = "vr" }, ErrUnknownFrontend},
		{"strategy", func(c *Config) { c.Strategy = "sideways" }, morph.ErrUnknownStrategy},
		{"scheme", func(c *Config) { c.Scheme = "neon" }, morph.ErrUnknownScheme},
		{"log level", func(c *Config) { c.LogLevel = "loud" }, ErrInvalidConfig},
		{"velocity", func(c *Config) { c.Velocity = 0 }, ErrInvalidConfig},
		{"static time", func(c *Config) { c.StaticTime = -time.Second }, ErrInvalidConfig},
		{"size", func(c *Config) { c.Width = 0 }, ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.target)
		})
	}

	cfg := DefaultConfig()
	cfg.Frontend = FrontendTUI
	cfg.Strategy = "RANDOM"
	assert.NoError(t, cfg.Validate())
}

func TestOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Strategy = "one"
	cfg.Velocity = 2
	cfg.AutoCycle = true
	cfg.Seed = 99
	opts := cfg.Options(nil)
	assert.Equal(t, morph.OneAtATime, opts.Strategy)
	assert.Equal(t, 2.0, opts.Velocity)
	assert.True(t, opts.AutoCycle)
	assert.Equal(t, uint64(99), opts.Seed)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLogger("warn", &buf)
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, log.Level)

	log.Info("hidden")
	log.WithField("model", "ball").Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "model=ball")

	_, err = NewLogger("chatty", nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadCatalog(t *testing.T) {
	log, err := NewLogger("error", &bytes.Buffer{})
	require.NoError(t, err)

	cat, err := LoadCatalog(DefaultConfig(), log)
	require.NoError(t, err)
	assert.Equal(t, catalog.Builtin().Len(), cat.Len())

	dir := t.TempDir()
	path := filepath.Join(dir, "models.txt")
	require.NoError(t, os.WriteFile(path, []byte("ring: RLLRLRRLRLLRRLLRLRRLRLL\n"), 0o644))
	cfg := DefaultConfig()
	cfg.ModelFile = path
	cat, err = LoadCatalog(cfg, log)
	require.NoError(t, err)
	assert.Equal(t, 1, cat.Len())
	assert.Equal(t, "ring", cat.At(0).Name)

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, []byte("# nothing here\n"), 0o644))
	cfg.ModelFile = empty
	_, err = LoadCatalog(cfg, log)
	assert.ErrorIs(t, err, catalog.ErrEmpty)

	cfg.ModelFile = filepath.Join(dir, "missing.txt")
	_, err = LoadCatalog(cfg, log)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewController(t *testing.T) {
	log, err := NewLogger("error", &bytes.Buffer{})
	require.NoError(t, err)

	ctrl, err := NewController(DefaultConfig(), log)
	require.NoError(t, err)
	assert.Equal(t, "ball", ctrl.ModelName())

	cfg := DefaultConfig()
	cfg.Frontend = "vr"
	_, err = NewController(cfg, log)
	assert.ErrorIs(t, err, ErrUnknownFrontend)
}
