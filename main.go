package main

import (
	"context"
	"os"

	"pizzaflow/pkg/logger"
	"pizzaflow/pkg/order"
	"pizzaflow/pkg/order/file"
	"pizzaflow/pkg/otel"
	"pizzaflow/pkg/payment"
	"pizzaflow/pkg/pizza"
)

// Orders a margherita and a custom pizza by card and appends them to
// orders.txt in the working directory.
func main() {
	log := logger.New(os.Stderr, logger.LevelWarn, "pizzaflow-demo", otel.GetTraceID)
	defer log.Sync()
	ctx := context.Background()

	factory := pizza.NewFactory()
	pizza.RegisterMenu(factory)

	o, err := order.New(&payment.Card{Out: os.Stdout, Log: log}, file.New(file.DefaultPath))
	if err != nil {
		log.Error(ctx, "new order", "error", err)
		os.Exit(1)
	}

	margherita, err := factory.Create("margherita")
	if err != nil {
		log.Error(ctx, "create pizza", "type", "margherita", "error", err)
		os.Exit(1)
	}
	custom, err := factory.Create("custom", []string{"onion", "bell peppers"})
	if err != nil {
		log.Error(ctx, "create pizza", "type", "custom", "error", err)
		os.Exit(1)
	}
	o.AddPizza(margherita)
	o.AddPizza(custom)

	if err := o.Checkout(ctx); err != nil {
		log.Error(ctx, "checkout", "order_id", o.ID, "error", err)
		os.Exit(1)
	}
}
