// Package pizzeria registers every pizza store under a short key so callers
// can pick a creational strategy and region by name.
package pizzeria

import (
	"fmt"
	"sort"

	"github.com/franciscosanchezn/pizza-factory/internal/abstractfactory"
	"github.com/franciscosanchezn/pizza-factory/internal/factorymethod"
	"github.com/franciscosanchezn/pizza-factory/internal/models"
	"github.com/franciscosanchezn/pizza-factory/internal/services"
	"github.com/franciscosanchezn/pizza-factory/internal/simplefactory"
)

// Store keys
const (
	KeySimple               = "simple"
	KeyNYFactoryMethod      = "ny-factory-method"
	KeyChicagoFactoryMethod = "chicago-factory-method"
	KeyNY                   = "ny"
	KeyChicago              = "chicago"
)

// Entry describes one registered store
type Entry struct {
	Key      string
	Strategy models.Strategy
	Region   models.Region
	New      func(opts ...services.StoreOption) services.PizzaStore
}

var registry = map[string]Entry{
	KeySimple: {
		Key:      KeySimple,
		Strategy: models.StrategySimpleFactory,
		New: func(opts ...services.StoreOption) services.PizzaStore {
			return simplefactory.NewPizzaStore(simplefactory.NewSimplePizzaFactory(), opts...)
		},
	},
	KeyNYFactoryMethod: {
		Key:      KeyNYFactoryMethod,
		Strategy: models.StrategyFactoryMethod,
		Region:   models.RegionNY,
		New:      factorymethod.NewNYPizzaStore,
	},
	KeyChicagoFactoryMethod: {
		Key:      KeyChicagoFactoryMethod,
		Strategy: models.StrategyFactoryMethod,
		Region:   models.RegionChicago,
		New:      factorymethod.NewChicagoPizzaStore,
	},
	KeyNY: {
		Key:      KeyNY,
		Strategy: models.StrategyAbstractFactory,
		Region:   models.RegionNY,
		New:      abstractfactory.NewNYPizzaStore,
	},
	KeyChicago: {
		Key:      KeyChicago,
		Strategy: models.StrategyAbstractFactory,
		Region:   models.RegionChicago,
		New:      abstractfactory.NewChicagoPizzaStore,
	},
}

// Keys returns every registered store key in sorted order
func Keys() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Lookup returns the registry entry for key
func Lookup(key string) (Entry, error) {
	entry, ok := registry[key]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q (available: %v)", models.ErrUnknownStore, key, Keys())
	}
	return entry, nil
}

// Open builds the store registered under key
func Open(key string, opts ...services.StoreOption) (services.PizzaStore, error) {
	entry, err := Lookup(key)
	if err != nil {
		return nil, err
	}
	return entry.New(opts...), nil
}
