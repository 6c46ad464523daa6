package models

// Region identifies a regional pizza style. It selects both the ingredient
// family and the naming convention used by a store.
type Region string

const (
	RegionNY      Region = "NY"
	RegionChicago Region = "Chicago"
)

// String returns the string representation of the Region
func (r Region) String() string {
	return string(r)
}

// Style returns the branding prefix used in pizza names, e.g. "NY style"
func (r Region) Style() string {
	return string(r) + " style"
}

// Dough is the crust variant of a pizza
type Dough string

const (
	ThinCrustDough  Dough = "thin-crust"
	ThickCrustDough Dough = "thick-crust"
)

// Region returns the region the dough belongs to
func (d Dough) Region() Region {
	switch d {
	case ThinCrustDough:
		return RegionNY
	case ThickCrustDough:
		return RegionChicago
	}
	return ""
}

// Sauce is the sauce variant of a pizza
type Sauce string

const (
	MarinaraSauce   Sauce = "marinara"
	PlumTomatoSauce Sauce = "plum-tomato"
)

// Region returns the region the sauce belongs to
func (s Sauce) Region() Region {
	switch s {
	case MarinaraSauce:
		return RegionNY
	case PlumTomatoSauce:
		return RegionChicago
	}
	return ""
}

// Cheese is the cheese variant of a pizza
type Cheese string

const (
	ReggianoCheese   Cheese = "reggiano"
	MozzarellaCheese Cheese = "mozzarella"
)

// Region returns the region the cheese belongs to
func (c Cheese) Region() Region {
	switch c {
	case ReggianoCheese:
		return RegionNY
	case MozzarellaCheese:
		return RegionChicago
	}
	return ""
}

// Veggie is one vegetable topping drawn from a fixed vocabulary
type Veggie string

const (
	Garlic      Veggie = "garlic"
	Onion       Veggie = "onion"
	Mushroom    Veggie = "mushroom"
	RedPepper   Veggie = "red-pepper"
	Spinach     Veggie = "spinach"
	BlackOlives Veggie = "black-olives"
	EggPlant    Veggie = "eggplant"
)

// Region returns the region the veggie belongs to
func (v Veggie) Region() Region {
	switch v {
	case Garlic, Onion, Mushroom, RedPepper:
		return RegionNY
	case Spinach, BlackOlives, EggPlant:
		return RegionChicago
	}
	return ""
}

// Pepperoni is the pepperoni variant of a pizza.
// Sliced pepperoni is shared by every region, so it carries no region tag.
type Pepperoni string

const SlicedPepperoni Pepperoni = "sliced"

// Clams is the clam variant of a pizza
type Clams string

const (
	FreshClams  Clams = "fresh"
	FrozenClams Clams = "frozen"
)

// Region returns the region the clams belong to
func (c Clams) Region() Region {
	switch c {
	case FreshClams:
		return RegionNY
	case FrozenClams:
		return RegionChicago
	}
	return ""
}

// IngredientSet holds the ingredients pulled by a pizza during prepare.
// Dough, Sauce and Cheese are always present; Pepperoni and Clams are only
// set for the kinds of pizza that request them.
type IngredientSet struct {
	Dough     Dough     `json:"dough" yaml:"dough"`
	Sauce     Sauce     `json:"sauce" yaml:"sauce"`
	Cheese    Cheese    `json:"cheese" yaml:"cheese"`
	Veggies   []Veggie  `json:"veggies,omitempty" yaml:"veggies,omitempty"`
	Pepperoni Pepperoni `json:"pepperoni,omitempty" yaml:"pepperoni,omitempty"`
	Clams     Clams     `json:"clams,omitempty" yaml:"clams,omitempty"`
}

// Regions returns every distinct region tag found in the set, in field order
func (s IngredientSet) Regions() []Region {
	tags := []Region{s.Dough.Region(), s.Sauce.Region(), s.Cheese.Region()}
	for _, v := range s.Veggies {
		tags = append(tags, v.Region())
	}
	if s.Clams != "" {
		tags = append(tags, s.Clams.Region())
	}

	var regions []Region
	seen := make(map[Region]bool)
	for _, r := range tags {
		if r == "" || seen[r] {
			continue
		}
		seen[r] = true
		regions = append(regions, r)
	}
	return regions
}

// ConsistentWith reports whether the set is complete and every region-tagged
// ingredient in it comes from the given region. Dough, sauce and cheese are
// required; a missing or unknown variant fails the check.
func (s IngredientSet) ConsistentWith(region Region) bool {
	if s.Dough.Region() != region || s.Sauce.Region() != region || s.Cheese.Region() != region {
		return false
	}
	for _, v := range s.Veggies {
		if v.Region() != region {
			return false
		}
	}
	return s.Clams == "" || s.Clams.Region() == region
}

// Names lists the ingredients as display strings, e.g. "dough: thin-crust"
func (s IngredientSet) Names() []string {
	names := []string{
		"dough: " + string(s.Dough),
		"sauce: " + string(s.Sauce),
		"cheese: " + string(s.Cheese),
	}
	for _, v := range s.Veggies {
		names = append(names, "veggie: "+string(v))
	}
	if s.Pepperoni != "" {
		names = append(names, "pepperoni: "+string(s.Pepperoni))
	}
	if s.Clams != "" {
		names = append(names, "clams: "+string(s.Clams))
	}
	return names
}
