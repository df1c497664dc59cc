// Package pizza defines pizzas and the factory registry used to build them.
package pizza

import "strings"

// Pizza is a named pizza with an ordered list of toppings.
type Pizza struct {
	Name     string   `json:"name"`
	Toppings []string `json:"toppings"`
}

// New returns a pizza with the given toppings. The initial list is taken
// as-is; duplicates are only rejected by AddTopping.
func New(name string, toppings ...string) *Pizza {
	return &Pizza{Name: name, Toppings: toppings}
}

// String renders the pizza as "<Name> with <t1> and <t2> ...".
func (p *Pizza) String() string {
	return p.Name + " with " + strings.Join(p.Toppings, " and ")
}

// AddTopping appends t unless the pizza already has it.
func (p *Pizza) AddTopping(t string) {
	if p.HasTopping(t) {
		return
	}
	p.Toppings = append(p.Toppings, t)
}

// HasTopping reports whether t is on the pizza.
func (p *Pizza) HasTopping(t string) bool {
	for _, have := range p.Toppings {
		if have == t {
			return true
		}
	}
	return false
}
