// Package simplefactory builds pizzas through one centralized switch.
// Pizzas here carry no ingredients; their behavior is fixed by their type.
package simplefactory

// pizza holds the behavior shared by every simple-factory pizza
type pizza struct {
	name string
}

func (p *pizza) Name() string   { return p.name }
func (p *pizza) Prepare() error { return nil }
func (p *pizza) Bake() error    { return nil }
func (p *pizza) Cut() error     { return nil }
func (p *pizza) Box() error     { return nil }

func (p *pizza) String() string {
	return "Pizza: " + p.name
}

type CheesePizza struct{ pizza }

type VeggiePizza struct{ pizza }

type ClamPizza struct{ pizza }

type PepperoniPizza struct{ pizza }

func NewCheesePizza() *CheesePizza {
	return &CheesePizza{pizza{name: "cheese pizza"}}
}

func NewVeggiePizza() *VeggiePizza {
	return &VeggiePizza{pizza{name: "veggie pizza"}}
}

func NewClamPizza() *ClamPizza {
	return &ClamPizza{pizza{name: "clam pizza"}}
}

func NewPepperoniPizza() *PepperoniPizza {
	return &PepperoniPizza{pizza{name: "pepperoni pizza"}}
}
