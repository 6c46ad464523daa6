// Package factorymethod lets each regional store decide which concrete
// pizza to build. Every region has its own pizza types and no ingredients
// are modeled.
package factorymethod

// stylePizza holds the behavior shared by every regional pizza
type stylePizza struct {
	name string
}

func (p *stylePizza) Name() string   { return p.name }
func (p *stylePizza) Prepare() error { return nil }
func (p *stylePizza) Bake() error    { return nil }
func (p *stylePizza) Cut() error     { return nil }
func (p *stylePizza) Box() error     { return nil }

func (p *stylePizza) String() string {
	return "Pizza: " + p.name
}

type NYStyleCheesePizza struct{ stylePizza }

type NYStylePepperoniPizza struct{ stylePizza }

type ChicagoStyleCheesePizza struct{ stylePizza }

type ChicagoStylePepperoniPizza struct{ stylePizza }

func NewNYStyleCheesePizza() *NYStyleCheesePizza {
	return &NYStyleCheesePizza{stylePizza{name: "NY style cheese pizza"}}
}

func NewNYStylePepperoniPizza() *NYStylePepperoniPizza {
	return &NYStylePepperoniPizza{stylePizza{name: "NY style pepperoni pizza"}}
}

func NewChicagoStyleCheesePizza() *ChicagoStyleCheesePizza {
	return &ChicagoStyleCheesePizza{stylePizza{name: "Chicago style cheese pizza"}}
}

func NewChicagoStylePepperoniPizza() *ChicagoStylePepperoniPizza {
	return &ChicagoStylePepperoniPizza{stylePizza{name: "Chicago style pepperoni pizza"}}
}
