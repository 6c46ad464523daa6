package abstractfactory

import (
	"fmt"

	"github.com/franciscosanchezn/pizza-factory/internal/ingredients"
	"github.com/franciscosanchezn/pizza-factory/internal/models"
	"github.com/franciscosanchezn/pizza-factory/internal/services"
)

const (
	NYStoreName      = "NY Pizza Store"
	ChicagoStoreName = "Chicago Pizza Store"
)

// SupportedTypes lists the types every ingredient-driven store can make
var SupportedTypes = []models.PizzaType{
	models.PizzaTypeCheese,
	models.PizzaTypePepperoni,
	models.PizzaTypeClam,
}

// regionalCreator builds pizzas from a single ingredient factory and
// brands them with that factory's region
type regionalCreator struct {
	storeName string
	factory   ingredients.Factory
}

func (c regionalCreator) CreatePizza(t models.PizzaType) (services.Pizza, error) {
	switch t {
	case models.PizzaTypeCheese, models.PizzaTypePepperoni, models.PizzaTypeClam:
	default:
		return nil, models.NewUnsupportedPizzaTypeError(t, c.storeName)
	}
	pizza, err := NewPizza(t, c.factory)
	if err != nil {
		return nil, err
	}
	pizza.SetName(fmt.Sprintf("%s %s pizza", c.factory.Region().Style(), t))
	return pizza, nil
}

// NewNYPizzaStore creates the New York store using NY ingredients
func NewNYPizzaStore(opts ...services.StoreOption) services.PizzaStore {
	return newRegionalStore(NYStoreName, models.RegionNY, opts...)
}

// NewChicagoPizzaStore creates the Chicago store using Chicago ingredients
func NewChicagoPizzaStore(opts ...services.StoreOption) services.PizzaStore {
	return newRegionalStore(ChicagoStoreName, models.RegionChicago, opts...)
}

func newRegionalStore(name string, region models.Region, opts ...services.StoreOption) services.PizzaStore {
	factory, ok := ingredients.ForRegion(region)
	if !ok {
		panic(fmt.Sprintf("%s: no ingredient factory for region %q", name, region))
	}
	creator := regionalCreator{storeName: name, factory: factory}
	return services.NewPizzaStore(name, SupportedTypes, creator, opts...)
}
