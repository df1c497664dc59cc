package order

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"

	"pizzaflow/pkg/otel"
	"pizzaflow/pkg/pizza"
)

// PricePerPizza is the flat price charged for every pizza in an order.
var PricePerPizza = decimal.NewFromInt(10)

// PaymentMethod settles the amount due for an order.
type PaymentMethod interface {
	Pay(ctx context.Context, amount decimal.Decimal) error
}

// Logger records the pizzas of a checked-out order.
type Logger interface {
	Log(ctx context.Context, pizzas []*pizza.Pizza) error
}

var (
	// ErrNoPayment indicates an order was built without a payment method.
	ErrNoPayment = errors.New("order: payment method is required")
	// ErrNoLogger indicates an order was built without a logger.
	ErrNoLogger = errors.New("order: logger is required")
)

// Order collects pizzas and checks them out with the payment method and
// logger it was given. Both are borrowed and may be shared between orders.
type Order struct {
	ID string

	pizzas  []*pizza.Pizza
	payment PaymentMethod
	logger  Logger
	out     io.Writer
}

// Option configures an Order.
type Option func(*Order)

// WithOutput sets where checkout prints the pizzas. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(o *Order) { o.out = w }
}

// WithID overrides the generated order ID.
func WithID(id string) Option {
	return func(o *Order) { o.ID = id }
}

// New creates an empty order.
func New(payment PaymentMethod, logger Logger, opts ...Option) (*Order, error) {
	if payment == nil {
		return nil, ErrNoPayment
	}
	if logger == nil {
		return nil, ErrNoLogger
	}
	o := &Order{
		ID:      uuid.NewString(),
		payment: payment,
		logger:  logger,
		out:     os.Stdout,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

// AddPizza appends p to the order.
func (o *Order) AddPizza(p *pizza.Pizza) {
	o.pizzas = append(o.pizzas, p)
}

// Pizzas returns the pizzas in the order they were added.
func (o *Order) Pizzas() []*pizza.Pizza {
	return append([]*pizza.Pizza(nil), o.pizzas...)
}

// Total returns the amount due.
func (o *Order) Total() decimal.Decimal {
	return PricePerPizza.Mul(decimal.NewFromInt(int64(len(o.pizzas))))
}

type idKey struct{}

// ContextWithID returns a copy of ctx carrying an order ID.
func ContextWithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, idKey{}, id)
}

// IDFromContext returns the order ID stored by ContextWithID, or "".
func IDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(idKey{}).(string)
	return id
}

// Checkout pays, prints each pizza and logs the order, in that order.
// A failing step stops the sequence; earlier steps are not undone.
func (o *Order) Checkout(ctx context.Context) error {
	ctx = ContextWithID(ctx, o.ID)
	ctx, span := otel.AddSpan(ctx, "order.checkout",
		attribute.String("order.id", o.ID),
		attribute.Int("order.pizzas", len(o.pizzas)),
	)
	defer span.End()

	total := o.Total()
	if err := o.payment.Pay(ctx, total); err != nil {
		span.RecordError(err)
		return fmt.Errorf("order %s: pay: %w", o.ID, err)
	}
	for _, p := range o.pizzas {
		if _, err := fmt.Fprintln(o.out, p); err != nil {
			span.RecordError(err)
			return fmt.Errorf("order %s: display: %w", o.ID, err)
		}
	}
	if err := o.logger.Log(ctx, o.Pizzas()); err != nil {
		span.RecordError(err)
		return fmt.Errorf("order %s: log: %w", o.ID, err)
	}
	return nil
}

// MultiLogger logs to every wrapped logger in turn and stops at the first error.
type MultiLogger []Logger

// Log implements Logger.
func (m MultiLogger) Log(ctx context.Context, pizzas []*pizza.Pizza) error {
	for _, l := range m {
		if err := l.Log(ctx, pizzas); err != nil {
			return err
		}
	}
	return nil
}
