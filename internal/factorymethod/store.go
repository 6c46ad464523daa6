package factorymethod

import (
	"github.com/franciscosanchezn/pizza-factory/internal/models"
	"github.com/franciscosanchezn/pizza-factory/internal/services"
)

const (
	NYStoreName      = "NY Pizza Store (factory method)"
	ChicagoStoreName = "Chicago Pizza Store (factory method)"
)

// SupportedTypes lists the types both regional stores can make
var SupportedTypes = []models.PizzaType{
	models.PizzaTypeCheese,
	models.PizzaTypePepperoni,
}

// nyCreator is the New York factory method
type nyCreator struct{}

func (nyCreator) CreatePizza(t models.PizzaType) (services.Pizza, error) {
	switch t {
	case models.PizzaTypeCheese:
		return NewNYStyleCheesePizza(), nil
	case models.PizzaTypePepperoni:
		return NewNYStylePepperoniPizza(), nil
	default:
		return nil, models.NewUnsupportedPizzaTypeError(t, NYStoreName)
	}
}

// chicagoCreator is the Chicago factory method
type chicagoCreator struct{}

func (chicagoCreator) CreatePizza(t models.PizzaType) (services.Pizza, error) {
	switch t {
	case models.PizzaTypeCheese:
		return NewChicagoStyleCheesePizza(), nil
	case models.PizzaTypePepperoni:
		return NewChicagoStylePepperoniPizza(), nil
	default:
		return nil, models.NewUnsupportedPizzaTypeError(t, ChicagoStoreName)
	}
}

// NewNYPizzaStore creates the New York store
func NewNYPizzaStore(opts ...services.StoreOption) services.PizzaStore {
	return services.NewPizzaStore(NYStoreName, SupportedTypes, nyCreator{}, opts...)
}

// NewChicagoPizzaStore creates the Chicago store
func NewChicagoPizzaStore(opts ...services.StoreOption) services.PizzaStore {
	return services.NewPizzaStore(ChicagoStoreName, SupportedTypes, chicagoCreator{}, opts...)
}
