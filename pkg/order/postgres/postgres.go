// Package postgres implements an order logger backed by a SQL table.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"pizzaflow/pkg/order"
	"pizzaflow/pkg/pizza"
)

// Schema creates the table Logger writes to. seq records insertion order.
const Schema = `CREATE TABLE IF NOT EXISTS order_log (
	seq       BIGSERIAL PRIMARY KEY,
	order_id  TEXT NOT NULL,
	position  INT NOT NULL,
	line      TEXT NOT NULL,
	logged_at TIMESTAMP NOT NULL
)`

// Entry is a single logged pizza line.
type Entry struct {
	Seq      int64
	OrderID  string
	Position int
	Line     string
	LoggedAt time.Time
}

var _ order.Logger = (*Logger)(nil)

// Logger persists logged pizzas in PostgreSQL.
type Logger struct {
	db  *sql.DB
	now func() time.Time
}

// New creates a SQL-backed logger. The caller must ensure the database has
// the table described by Schema.
func New(db *sql.DB) *Logger {
	return &Logger{db: db, now: time.Now}
}

// Log inserts one row per pizza in a single transaction. The order ID is
// taken from the context when present.
func (l *Logger) Log(ctx context.Context, pizzas []*pizza.Pizza) error {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("postgres logger: begin: %w", err)
	}
	defer tx.Rollback()

	id := order.IDFromContext(ctx)
	at := l.now().UTC()
	for i, p := range pizzas {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO order_log (order_id,position,line,logged_at) VALUES ($1,$2,$3,$4)",
			id, i, p.String(), at); err != nil {
			return fmt.Errorf("postgres logger: insert: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("postgres logger: commit: %w", err)
	}
	return nil
}

// List fetches all logged entries in insertion order.
func (l *Logger) List(ctx context.Context) ([]Entry, error) {
	rows, err := l.db.QueryContext(ctx, "SELECT seq,order_id,position,line,logged_at FROM order_log ORDER BY seq")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Seq, &e.OrderID, &e.Position, &e.Line, &e.LoggedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Lines returns the logged pizza lines in insertion order.
func (l *Logger) Lines(ctx context.Context) ([]string, error) {
	entries, err := l.List(ctx)
	if err != nil {
		return nil, err
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.Line)
	}
	return lines, nil
}
