package simplefactory

import (
	"github.com/franciscosanchezn/pizza-factory/internal/models"
	"github.com/franciscosanchezn/pizza-factory/internal/services"
)

// FactoryName identifies the simple factory in errors
const FactoryName = "Simple Pizza Factory"

// StoreName identifies the store built around a SimplePizzaFactory
const StoreName = "Pizza Store"

// SupportedTypes lists every type the simple factory can make
var SupportedTypes = []models.PizzaType{
	models.PizzaTypeCheese,
	models.PizzaTypeVeggie,
	models.PizzaTypeClam,
	models.PizzaTypePepperoni,
}

// SimplePizzaFactory maps a pizza type to a concrete pizza
type SimplePizzaFactory struct{}

// NewSimplePizzaFactory creates a new SimplePizzaFactory
func NewSimplePizzaFactory() *SimplePizzaFactory {
	return &SimplePizzaFactory{}
}

// CreatePizza returns a new pizza for t or an UnsupportedPizzaTypeError
func (f *SimplePizzaFactory) CreatePizza(t models.PizzaType) (services.Pizza, error) {
	switch t {
	case models.PizzaTypeCheese:
		return NewCheesePizza(), nil
	case models.PizzaTypeVeggie:
		return NewVeggiePizza(), nil
	case models.PizzaTypeClam:
		return NewClamPizza(), nil
	case models.PizzaTypePepperoni:
		return NewPepperoniPizza(), nil
	default:
		return nil, models.NewUnsupportedPizzaTypeError(t, FactoryName)
	}
}

// NewPizzaStore creates a store that delegates creation to the given factory
func NewPizzaStore(factory *SimplePizzaFactory, opts ...services.StoreOption) services.PizzaStore {
	return services.NewPizzaStore(StoreName, SupportedTypes, factory, opts...)
}
