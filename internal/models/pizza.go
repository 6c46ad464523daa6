package models

import (
	"fmt"
	"strings"
)

// PizzaType is the dispatch key a store uses to decide which pizza to build
type PizzaType string

const (
	PizzaTypeCheese    PizzaType = "cheese"
	PizzaTypePepperoni PizzaType = "pepperoni"
	PizzaTypeClam      PizzaType = "clam"
	PizzaTypeVeggie    PizzaType = "veggie"
)

// AllPizzaTypes lists every declared pizza type in menu order
var AllPizzaTypes = []PizzaType{
	PizzaTypeCheese,
	PizzaTypePepperoni,
	PizzaTypeClam,
	PizzaTypeVeggie,
}

// String returns the string representation of the PizzaType
func (t PizzaType) String() string {
	return string(t)
}

// ParsePizzaType converts user input such as "Cheese" or "CLAM" into a PizzaType
func ParsePizzaType(s string) (PizzaType, error) {
	normalized := PizzaType(strings.ToLower(strings.TrimSpace(s)))
	for _, t := range AllPizzaTypes {
		if t == normalized {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPizzaType, s)
}

// Strategy names the creational policy a store uses
type Strategy string

const (
	StrategySimpleFactory   Strategy = "simple-factory"
	StrategyFactoryMethod   Strategy = "factory-method"
	StrategyAbstractFactory Strategy = "abstract-factory"
)

// String returns the string representation of the Strategy
func (s Strategy) String() string {
	return string(s)
}

// PizzaSummary is the printable result of a finished order
type PizzaSummary struct {
	OrderID     string   `json:"order_id" yaml:"order_id"`
	Name        string   `json:"name" yaml:"name"`
	Type        string   `json:"type" yaml:"type"`
	Store       string   `json:"store" yaml:"store"`
	Ingredients []string `json:"ingredients,omitempty" yaml:"ingredients,omitempty"`
}
