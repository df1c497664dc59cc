// Package redis implements an order logger that pushes lines onto a Redis list.
package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"pizzaflow/pkg/order"
	"pizzaflow/pkg/pizza"
)

// DefaultKey is the list key used when none is configured.
const DefaultKey = "pizzaflow:orders"

var _ order.Logger = (*Logger)(nil)

// Logger appends logged pizza lines to a Redis list.
type Logger struct {
	client goredis.UniversalClient
	key    string
}

// New returns a logger writing to key. An empty key means DefaultKey.
func New(client goredis.UniversalClient, key string) *Logger {
	if key == "" {
		key = DefaultKey
	}
	return &Logger{client: client, key: key}
}

// Log pushes one line per pizza in a single pipeline.
func (l *Logger) Log(ctx context.Context, pizzas []*pizza.Pizza) error {
	if len(pizzas) == 0 {
		return nil
	}
	lines := make([]any, 0, len(pizzas))
	for _, p := range pizzas {
		lines = append(lines, p.String())
	}
	_, err := l.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.RPush(ctx, l.key, lines...)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis logger: rpush %s: %w", l.key, err)
	}
	return nil
}

// Lines returns everything logged under the key.
func (l *Logger) Lines(ctx context.Context) ([]string, error) {
	return l.client.LRange(ctx, l.key, 0, -1).Result()
}
