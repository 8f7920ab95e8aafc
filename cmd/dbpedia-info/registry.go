// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"

	"github.com/pdiddy/dbpedia-info/internal/detect"
	"github.com/pdiddy/dbpedia-info/internal/registry"
	"github.com/pdiddy/dbpedia-info/pkg/types"
)

// hintsRegistry is a registry the CLI can both submit to and list.
type hintsRegistry interface {
	detect.HintsRegistry
	Hints(ctx context.Context, pluginID string) ([]registry.Entry, error)
}

// openRegistry opens the SQLite registry at cfg.Path, or an in-memory one
// when the path is empty. The returned func releases it.
func openRegistry(cfg types.RegistryConfig) (hintsRegistry, func(), error) {
	if cfg.Path == "" {
		return registry.NewMemory(), func() {}, nil
	}
	store, err := registry.NewStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	return store, func() { store.Close() }, nil
}
