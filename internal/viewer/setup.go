package viewer

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"glsnake/internal/catalog"
	"glsnake/internal/morph"
)

// LoadCatalog reads cfg.ModelFile, or returns the built-in models when no
// file is configured.
func LoadCatalog(cfg Config, log logrus.FieldLogger) (*catalog.Catalog, error) {
	if cfg.ModelFile == "" {
		return catalog.Builtin(), nil
	}
	cat, err := catalog.Load(cfg.ModelFile, log)
	if err != nil {
		return nil, err
	}
	if cat.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", cfg.ModelFile, catalog.ErrEmpty)
	}
	log.WithField("models", cat.Len()).Info("loaded model file")
	return cat, nil
}

// NewController validates cfg and builds a controller over its catalog.
func NewController(cfg Config, log logrus.FieldLogger) (*morph.Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cat, err := LoadCatalog(cfg, log)
	if err != nil {
		return nil, err
	}
	return morph.NewController(cat, cfg.Options(log))
}
