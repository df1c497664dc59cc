// Package memory implements an in-memory order logger.
package memory

import (
	"context"
	"sync"

	"pizzaflow/pkg/order"
	"pizzaflow/pkg/pizza"
)

var _ order.Logger = (*Logger)(nil)

// Logger keeps logged pizza lines in memory.
type Logger struct {
	mu    sync.RWMutex
	lines []string
	calls int
}

// New creates an empty in-memory logger.
func New() *Logger {
	return &Logger{}
}

// Log records one line per pizza.
func (l *Logger) Log(ctx context.Context, pizzas []*pizza.Pizza) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls++
	for _, p := range pizzas {
		l.lines = append(l.lines, p.String())
	}
	return nil
}

// Lines returns every line logged so far.
func (l *Logger) Lines() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]string(nil), l.lines...)
}

// Calls returns how many times Log was called.
func (l *Logger) Calls() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.calls
}
