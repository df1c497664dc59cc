package pizza

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrUnknownType is returned by Create when no constructor is registered
	// for the requested key.
	ErrUnknownType = errors.New("unknown pizza type")
	// ErrArity is returned when a constructor gets the wrong number of arguments.
	ErrArity = errors.New("wrong number of arguments")
	// ErrArgType is returned when a constructor argument has the wrong type.
	ErrArgType = errors.New("wrong argument type")
)

// Constructor builds a pizza from zero or one argument.
type Constructor func(args ...any) (*Pizza, error)

// Factory maps pizza type keys to constructors. The zero value is an empty
// registry ready to use.
type Factory struct {
	mu    sync.RWMutex
	ctors map[string]Constructor
}

// NewFactory returns an empty registry.
func NewFactory() *Factory {
	return &Factory{ctors: make(map[string]Constructor)}
}

// Register stores ctor under typeKey, replacing any previous entry.
func (f *Factory) Register(typeKey string, ctor Constructor) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ctors == nil {
		f.ctors = make(map[string]Constructor)
	}
	f.ctors[typeKey] = ctor
}

// Create builds a pizza of the given type. Constructor errors are returned
// unchanged.
func (f *Factory) Create(typeKey string, args ...any) (*Pizza, error) {
	f.mu.RLock()
	ctor, ok := f.ctors[typeKey]
	f.mu.RUnlock()
	if !ok || ctor == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, typeKey)
	}
	return ctor(args...)
}

// Types returns the registered type keys in sorted order.
func (f *Factory) Types() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]string, 0, len(f.ctors))
	for k := range f.ctors {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Fixed returns a zero-argument constructor. Every call yields a new pizza
// with its own copy of toppings.
func Fixed(name string, toppings ...string) Constructor {
	return func(args ...any) (*Pizza, error) {
		if len(args) != 0 {
			return nil, fmt.Errorf("%s: %w: want 0, got %d", name, ErrArity, len(args))
		}
		return New(name, append([]string(nil), toppings...)...), nil
	}
}

// Custom returns a one-argument constructor that takes the topping list.
func Custom(name string) Constructor {
	return func(args ...any) (*Pizza, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%s: %w: want 1, got %d", name, ErrArity, len(args))
		}
		toppings, ok := args[0].([]string)
		if !ok {
			return nil, fmt.Errorf("%s: %w: want []string, got %T", name, ErrArgType, args[0])
		}
		return New(name, append([]string(nil), toppings...)...), nil
	}
}

// RegisterMenu adds the house pizzas to f.
func RegisterMenu(f *Factory) {
	f.Register("margherita", Fixed("Margherita", "tomato sauce", "mozzarella"))
	f.Register("pepperoni", Fixed("Pepperoni", "tomato sauce", "mozzarella", "pepperoni"))
	f.Register("hawaiian", Fixed("Hawaiian", "tomato sauce", "mozzarella", "pineapple", "ham"))
	f.Register("vegan", Fixed("Vegan", "tomato sauce", "vegan cheese"))
	f.Register("custom", Custom("Custom"))
}
