package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"github.com/trackhaus/trackhaus"
	"github.com/trackhaus/trackhaus/config"
	"github.com/trackhaus/trackhaus/errors"
)

// OpenFn is a function that returns a StorageService configured with the config given
type OpenFn func(context.Context, config.Config) (trackhaus.StorageService, error)

var providersMu sync.RWMutex
var providers = map[string]OpenFn{}

// Register registers an OpenFn under the name given, it is meant to be called
// from an init function
//
// Register will panic if the name already exists
func Register(name string, fn OpenFn) {
	providersMu.Lock()
	defer providersMu.Unlock()

	if _, ok := providers[name]; ok {
		panic("storage already exists with name: " + name)
	}
	providers[name] = fn
}

// Providers returns the names of all registered providers
func Providers() []string {
	providersMu.RLock()
	defer providersMu.RUnlock()

	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open returns a trackhaus.StorageService as configured by the config given, the
// caller owns the returned service and should Close it when done
func Open(ctx context.Context, cfg config.Config) (trackhaus.StorageService, error) {
	const op errors.Op = "storage/Open"

	name := cfg.Conf().Providers.Storage

	providersMu.RLock()
	fn, ok := providers[name]
	providersMu.RUnlock()
	if !ok {
		return nil, errors.E(op, errors.ProviderUnknown, errors.Info(name))
	}

	zerolog.Ctx(ctx).Info().Ctx(ctx).Str("provider", name).Msg("creating new StorageService instance")
	store, err := fn(ctx, cfg)
	if err != nil {
		return nil, errors.E(op, err)
	}

	return store, nil
}
