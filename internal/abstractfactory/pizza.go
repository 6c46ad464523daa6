// Package abstractfactory shares one pizza type across regions and varies
// the ingredient family injected into it.
package abstractfactory

import (
	"fmt"
	"strings"

	"github.com/franciscosanchezn/pizza-factory/internal/ingredients"
	"github.com/franciscosanchezn/pizza-factory/internal/models"
)

// Pizza is a pizza whose ingredients come from exactly one ingredient factory.
// Its kind decides which ingredient categories Prepare pulls. Use NewPizza;
// the zero value has no factory. A prepared pizza no longer changes.
type Pizza struct {
	kind        models.PizzaType
	name        string
	factory     ingredients.Factory
	ingredients *models.IngredientSet
}

// NewPizza creates an unprepared pizza of the given kind bound to factory
func NewPizza(kind models.PizzaType, factory ingredients.Factory) (*Pizza, error) {
	if factory == nil {
		return nil, fmt.Errorf("%s pizza needs an ingredient factory", kind)
	}
	switch kind {
	case models.PizzaTypeCheese, models.PizzaTypePepperoni, models.PizzaTypeClam:
	default:
		return nil, models.NewUnsupportedPizzaTypeError(kind, "abstract factory pizza")
	}
	return &Pizza{kind: kind, name: "Pizza", factory: factory}, nil
}

func (p *Pizza) Name() string { return p.name }

// SetName assigns the branded name. It has no effect once the pizza is prepared.
func (p *Pizza) SetName(name string) {
	if p.ingredients == nil {
		p.name = name
	}
}

// Prepare pulls the ingredients this kind of pizza needs, one call per category.
// Later calls keep the first ingredient set.
func (p *Pizza) Prepare() error {
	if p.ingredients != nil {
		return nil
	}
	set := models.IngredientSet{
		Dough:  p.factory.CreateDough(),
		Sauce:  p.factory.CreateSauce(),
		Cheese: p.factory.CreateCheese(),
	}
	switch p.kind {
	case models.PizzaTypeCheese:
		set.Veggies = p.factory.CreateVeggies()
	case models.PizzaTypePepperoni:
		set.Pepperoni = p.factory.CreatePepperoni()
	case models.PizzaTypeClam:
		set.Clams = p.factory.CreateClam()
	}
	p.ingredients = &set
	return nil
}

func (p *Pizza) Bake() error { return nil }
func (p *Pizza) Cut() error  { return nil }
func (p *Pizza) Box() error  { return nil }

// Ingredients returns a copy of the prepared ingredients, or false before Prepare
func (p *Pizza) Ingredients() (models.IngredientSet, bool) {
	if p.ingredients == nil {
		return models.IngredientSet{}, false
	}
	set := *p.ingredients
	set.Veggies = append([]models.Veggie(nil), set.Veggies...)
	return set, true
}

func (p *Pizza) String() string {
	return "Pizza: " + p.name
}

// Describe renders the name followed by one line per ingredient
func (p *Pizza) Describe() string {
	var b strings.Builder
	b.WriteString(p.String())
	if set, ok := p.Ingredients(); ok {
		for _, n := range set.Names() {
			b.WriteString("\n  ")
			b.WriteString(n)
		}
	}
	return b.String()
}
