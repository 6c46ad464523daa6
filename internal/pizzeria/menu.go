package pizzeria

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/franciscosanchezn/pizza-factory/internal/models"
	"github.com/franciscosanchezn/pizza-factory/internal/services"
	"gopkg.in/yaml.v3"
)

// MenuItem lists what one store can make
type MenuItem struct {
	Key      string   `json:"key" yaml:"key"`
	Store    string   `json:"store" yaml:"store"`
	Strategy string   `json:"strategy" yaml:"strategy"`
	Region   string   `json:"region,omitempty" yaml:"region,omitempty"`
	Pizzas   []string `json:"pizzas" yaml:"pizzas"`
}

// Menu returns one item per registered store, sorted by key
func Menu() []MenuItem {
	items := make([]MenuItem, 0, len(registry))
	for _, key := range Keys() {
		entry := registry[key]
		store := entry.New()
		item := MenuItem{
			Key:      key,
			Store:    store.Name(),
			Strategy: entry.Strategy.String(),
			Region:   entry.Region.String(),
		}
		for _, t := range store.SupportedTypes() {
			item.Pizzas = append(item.Pizzas, t.String())
		}
		items = append(items, item)
	}
	return items
}

// WriteMenu renders the menu to w as "text" or "yaml"
func WriteMenu(w io.Writer, format string) error {
	items := Menu()
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(items); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		for _, item := range items {
			if _, err := fmt.Fprintf(w, "%-24s %-40s %s\n", item.Key, item.Store, strings.Join(item.Pizzas, ", ")); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported menu format: %s (supported: text, yaml)", format)
	}
}

// ingredientLister is implemented by pizzas that model their ingredients
type ingredientLister interface {
	Ingredients() (models.IngredientSet, bool)
}

// Order opens the store registered under key, orders one pizza of type t
// and summarizes the result
func Order(ctx context.Context, key string, t models.PizzaType, opts ...services.StoreOption) (models.PizzaSummary, error) {
	rec := services.NewRecorder()
	store, err := Open(key, append(opts, services.WithObserver(rec))...)
	if err != nil {
		return models.PizzaSummary{}, err
	}

	pizza, err := store.OrderPizza(ctx, t)
	if err != nil {
		return models.PizzaSummary{}, err
	}

	summary := models.PizzaSummary{
		Name:  pizza.Name(),
		Type:  t.String(),
		Store: store.Name(),
	}
	if events := rec.Events(); len(events) > 0 {
		summary.OrderID = events[0].OrderID.String()
	}
	if lister, ok := pizza.(ingredientLister); ok {
		if set, prepared := lister.Ingredients(); prepared {
			summary.Ingredients = set.Names()
		}
	}
	return summary, nil
}
