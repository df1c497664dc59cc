// Package payment provides the payment methods an order can check out with.
//
// Both methods always succeed: they print a confirmation and record it in the
// application log.
package payment

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"

	"pizzaflow/pkg/logger"
	"pizzaflow/pkg/order"
)

// ErrUnknownMethod is returned by ByName for unsupported method names.
var ErrUnknownMethod = errors.New("unknown payment method")

var (
	_ order.PaymentMethod = (*Cash)(nil)
	_ order.PaymentMethod = (*Card)(nil)
)

// Cash settles an order in cash.
type Cash struct {
	Out io.Writer
	Log *logger.Logger
}

// Pay prints "Paid <amount> in cash.".
func (c *Cash) Pay(ctx context.Context, amount decimal.Decimal) error {
	return confirm(ctx, c.Out, c.Log, "cash", fmt.Sprintf("Paid %s in cash.", amount))
}

// Card settles an order by card.
type Card struct {
	Out io.Writer
	Log *logger.Logger
}

// Pay prints "Paid <amount> by card.".
func (c *Card) Pay(ctx context.Context, amount decimal.Decimal) error {
	return confirm(ctx, c.Out, c.Log, "card", fmt.Sprintf("Paid %s by card.", amount))
}

// ByName returns the payment method registered under name ("cash" or "card").
func ByName(name string, out io.Writer, log *logger.Logger) (order.PaymentMethod, error) {
	switch name {
	case "cash":
		return &Cash{Out: out, Log: log}, nil
	case "card":
		return &Card{Out: out, Log: log}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
}

func confirm(ctx context.Context, out io.Writer, log *logger.Logger, method, msg string) error {
	if out == nil {
		out = os.Stdout
	}
	if log != nil {
		log.Info(ctx, "payment accepted", "method", method, "order_id", order.IDFromContext(ctx))
	}
	_, err := fmt.Fprintln(out, msg)
	return err
}
