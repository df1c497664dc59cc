package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	_ "pizzaflow/docs"
	"pizzaflow/pkg/logger"
	"pizzaflow/pkg/order"
	"pizzaflow/pkg/order/file"
	"pizzaflow/pkg/order/memory"
	pg "pizzaflow/pkg/order/postgres"
	redislog "pizzaflow/pkg/order/redis"
	"pizzaflow/pkg/otel"
	"pizzaflow/pkg/pizza"
)

// @title Pizzaflow API
// @version 1.0
// @description API for ordering pizzas
// @host localhost:8080
// @BasePath /
func main() {
	log := logger.New(os.Stdout, logger.ParseLevel(os.Getenv("LOG_LEVEL")), "pizzaflow", otel.GetTraceID)
	defer log.Sync()

	if err := run(log); err != nil {
		log.Error(context.Background(), "server stopped", "error", err)
		os.Exit(1)
	}
}

func run(log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tp, shutdown, err := otel.InitTracing(log, otel.Config{ServiceName: "pizzaflow", Host: os.Getenv("OTEL_HOST"), Probability: 1.0})
	if err != nil {
		return err
	}
	defer shutdown(context.Background())

	rdb := redis.NewClient(&redis.Options{Addr: getenv("REDIS_ADDR", "localhost:6379")})
	defer rdb.Close()

	mem := memory.New()
	history := memoryHistory(mem)
	journal := order.MultiLogger{file.New(os.Getenv("ORDER_LOG_PATH")), mem}
	if os.Getenv("REDIS_ADDR") != "" {
		rl := redislog.New(rdb, "")
		journal = append(journal, rl)
		history = rl.Lines
	}
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			return err
		}
		defer db.Close()
		if _, err := db.ExecContext(ctx, pg.Schema); err != nil {
			return err
		}
		pl := pg.New(db)
		journal = append(journal, pl)
		history = pl.Lines
	}

	factory := pizza.NewFactory()
	pizza.RegisterMenu(factory)

	s := &server{
		log:      log,
		tracer:   tp.Tracer("pizzaflow"),
		sessions: rdb,
		factory:  factory,
		journal:  journal,
		history:  history,
	}

	srv := &http.Server{
		Addr:              getenv("HTTP_ADDR", ":8080"),
		Handler:           s.routes(),
		ReadHeaderTimeout: 3 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info(gctx, "listening", "addr", srv.Addr)
		var err error
		if cert, key := os.Getenv("TLS_CERT"), os.Getenv("TLS_KEY"); cert != "" && key != "" {
			err = srv.ListenAndServeTLS(cert, key)
		} else {
			err = srv.ListenAndServe()
		}
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
