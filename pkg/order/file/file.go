// Package file implements an order logger that appends to a text file.
package file

import (
	"context"
	"fmt"
	"os"

	"pizzaflow/pkg/order"
	"pizzaflow/pkg/pizza"
)

// DefaultPath is the file used when none is configured, relative to the
// working directory.
const DefaultPath = "orders.txt"

var _ order.Logger = (*Logger)(nil)

// Logger appends one line per pizza to a file.
type Logger struct {
	path string
}

// New returns a logger for path. An empty path means DefaultPath.
func New(path string) *Logger {
	if path == "" {
		path = DefaultPath
	}
	return &Logger{path: path}
}

// Path returns the file the logger appends to.
func (l *Logger) Path() string { return l.path }

// Log opens the file in append mode, writes the pizzas and closes it.
func (l *Logger) Log(ctx context.Context, pizzas []*pizza.Pizza) (err error) {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("file logger: open %s: %w", l.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("file logger: close %s: %w", l.path, cerr)
		}
	}()

	for _, p := range pizzas {
		if _, err := fmt.Fprintln(f, p.String()); err != nil {
			return fmt.Errorf("file logger: write %s: %w", l.path, err)
		}
	}
	return nil
}
