package pizza

import (
	"errors"
	"reflect"
	"testing"
)

func TestFactoryCreateMenu(t *testing.T) {
	t.Parallel()

	f := NewFactory()
	RegisterMenu(f)

	tests := []struct {
		key          string
		args         []any
		wantName     string
		wantToppings []string
	}{
		{key: "margherita", wantName: "Margherita", wantToppings: []string{"tomato sauce", "mozzarella"}},
		{key: "pepperoni", wantName: "Pepperoni", wantToppings: []string{"tomato sauce", "mozzarella", "pepperoni"}},
		{key: "hawaiian", wantName: "Hawaiian", wantToppings: []string{"tomato sauce", "mozzarella", "pineapple", "ham"}},
		{key: "vegan", wantName: "Vegan", wantToppings: []string{"tomato sauce", "vegan cheese"}},
		{key: "custom", args: []any{[]string{"onion", "bell peppers"}}, wantName: "Custom", wantToppings: []string{"onion", "bell peppers"}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()

			p, err := f.Create(tt.key, tt.args...)
			if err != nil {
				t.Fatalf("create: %v", err)
			}
			if p.Name != tt.wantName {
				t.Fatalf("expected name %q, got %q", tt.wantName, p.Name)
			}
			if !reflect.DeepEqual(p.Toppings, tt.wantToppings) {
				t.Fatalf("expected toppings %v, got %v", tt.wantToppings, p.Toppings)
			}
		})
	}
}

func TestFactoryMargheritaScenario(t *testing.T) {
	f := NewFactory()
	f.Register("margherita", Fixed("Margherita", "tomato sauce", "mozzarella"))

	p, err := f.Create("margherita")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !reflect.DeepEqual(p.Toppings, []string{"tomato sauce", "mozzarella"}) {
		t.Fatalf("unexpected toppings: %v", p.Toppings)
	}
	if got := p.String(); got != "Margherita with tomato sauce and mozzarella" {
		t.Fatalf("unexpected display string: %q", got)
	}
}

func TestFactoryUnknownType(t *testing.T) {
	f := NewFactory()
	RegisterMenu(f)

	_, err := f.Create("nonexistent-key")
	if !errors.Is(err, ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}
	if err.Error() != "unknown pizza type: nonexistent-key" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestFactoryRegisterOverwrites(t *testing.T) {
	f := NewFactory()
	f.Register("house", Fixed("Old", "cheese"))
	f.Register("house", Fixed("New", "basil"))

	p, err := f.Create("house")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.Name != "New" {
		t.Fatalf("expected overwritten constructor, got %q", p.Name)
	}
	if got := f.Types(); !reflect.DeepEqual(got, []string{"house"}) {
		t.Fatalf("unexpected types: %v", got)
	}
}

func TestFactoryConstructorErrors(t *testing.T) {
	t.Parallel()

	f := NewFactory()
	RegisterMenu(f)

	tests := []struct {
		name    string
		key     string
		args    []any
		wantErr error
	}{
		{name: "fixed_with_arg", key: "margherita", args: []any{[]string{"ham"}}, wantErr: ErrArity},
		{name: "custom_without_arg", key: "custom", wantErr: ErrArity},
		{name: "custom_two_args", key: "custom", args: []any{[]string{"a"}, []string{"b"}}, wantErr: ErrArity},
		{name: "custom_wrong_type", key: "custom", args: []any{"onion"}, wantErr: ErrArgType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := f.Create(tt.key, tt.args...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestFixedReturnsFreshPizzas(t *testing.T) {
	f := NewFactory()
	RegisterMenu(f)

	a, _ := f.Create("margherita")
	a.AddTopping("basil")
	b, _ := f.Create("margherita")

	if len(b.Toppings) != 2 {
		t.Fatalf("mutation leaked between pizzas: %v", b.Toppings)
	}
}

func TestFactoryTypes(t *testing.T) {
	f := NewFactory()
	RegisterMenu(f)

	want := []string{"custom", "hawaiian", "margherita", "pepperoni", "vegan"}
	if got := f.Types(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFactoryZeroValue(t *testing.T) {
	var f Factory
	if _, err := f.Create("margherita"); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType on empty factory, got %v", err)
	}
	if got := f.Types(); len(got) != 0 {
		t.Fatalf("expected no types, got %v", got)
	}

	f.Register("margherita", Fixed("Margherita", "tomato sauce", "mozzarella"))
	p, err := f.Create("margherita")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.Name != "Margherita" {
		t.Fatalf("unexpected name %q", p.Name)
	}
}
