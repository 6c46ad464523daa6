package ingredients

import (
	"github.com/franciscosanchezn/pizza-factory/internal/models"
)

// Factory provides one regionally consistent ingredient per category.
// Implementations are stateless: every call returns the same variant.
type Factory interface {
	// Region returns the region whose ingredients the factory produces
	Region() models.Region
	CreateDough() models.Dough
	CreateSauce() models.Sauce
	CreateCheese() models.Cheese
	// CreateVeggies returns a fresh slice on every call, in a fixed order
	CreateVeggies() []models.Veggie
	CreatePepperoni() models.Pepperoni
	CreateClam() models.Clams
}

type nyFactory struct{}

// NY is the shared New York ingredient factory
var NY Factory = nyFactory{}

func (nyFactory) Region() models.Region             { return models.RegionNY }
func (nyFactory) CreateDough() models.Dough         { return models.ThinCrustDough }
func (nyFactory) CreateSauce() models.Sauce         { return models.MarinaraSauce }
func (nyFactory) CreateCheese() models.Cheese       { return models.ReggianoCheese }
func (nyFactory) CreatePepperoni() models.Pepperoni { return models.SlicedPepperoni }
func (nyFactory) CreateClam() models.Clams          { return models.FreshClams }

func (nyFactory) CreateVeggies() []models.Veggie {
	return []models.Veggie{models.Garlic, models.Onion, models.Mushroom, models.RedPepper}
}

type chicagoFactory struct{}

// Chicago is the shared Chicago ingredient factory
var Chicago Factory = chicagoFactory{}

func (chicagoFactory) Region() models.Region             { return models.RegionChicago }
func (chicagoFactory) CreateDough() models.Dough         { return models.ThickCrustDough }
func (chicagoFactory) CreateSauce() models.Sauce         { return models.PlumTomatoSauce }
func (chicagoFactory) CreateCheese() models.Cheese       { return models.MozzarellaCheese }
func (chicagoFactory) CreatePepperoni() models.Pepperoni { return models.SlicedPepperoni }
func (chicagoFactory) CreateClam() models.Clams          { return models.FrozenClams }

func (chicagoFactory) CreateVeggies() []models.Veggie {
	return []models.Veggie{models.Spinach, models.BlackOlives, models.EggPlant}
}

// ForRegion returns the ingredient factory for a region, or false if there is none
func ForRegion(region models.Region) (Factory, bool) {
	switch region {
	case models.RegionNY:
		return NY, true
	case models.RegionChicago:
		return Chicago, true
	}
	return nil, false
}
