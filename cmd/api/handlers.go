package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/otel/trace"

	"pizzaflow/pkg/logger"
	"pizzaflow/pkg/order"
	"pizzaflow/pkg/order/memory"
	"pizzaflow/pkg/otel"
	"pizzaflow/pkg/payment"
	"pizzaflow/pkg/pizza"
)

const sessionTTL = time.Hour

type userKey struct{}

// historyFunc returns every pizza line logged so far, oldest first.
type historyFunc func(ctx context.Context) ([]string, error)

func memoryHistory(l *memory.Logger) historyFunc {
	return func(context.Context) ([]string, error) { return l.Lines(), nil }
}

type server struct {
	log      *logger.Logger
	tracer   trace.Tracer
	sessions redis.UniversalClient
	factory  *pizza.Factory
	journal  order.Logger
	history  historyFunc
}

func (s *server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.traceMiddleware)
	r.HandleFunc("/login", s.loginHandler).Methods(http.MethodPost)
	r.HandleFunc("/menu", s.menuHandler).Methods(http.MethodGet)

	api := r.PathPrefix("/orders").Subrouter()
	api.Use(s.authMiddleware)
	api.HandleFunc("", s.createOrderHandler).Methods(http.MethodPost)
	api.HandleFunc("", s.listOrdersHandler).Methods(http.MethodGet)

	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	return r
}

// loginHandler handles user login and session creation.
// @Summary Login
// @Description Authenticates user and sets session cookie
// @Accept json
// @Produce json
// @Param creds body loginRequest true "Credentials"
// @Success 200
// @Router /login [post]
func (s *server) loginHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "loginHandler")
	defer span.End()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" {
		http.Error(w, "invalid credentials", http.StatusBadRequest)
		return
	}
	sid := uuid.NewString()
	if err := s.sessions.Set(ctx, "session:"+sid, req.Username, sessionTTL).Err(); err != nil {
		s.log.Error(ctx, "store session", "error", err)
		http.Error(w, "session error", http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, &http.Cookie{Name: "session_id", Value: sid, Path: "/", Expires: time.Now().Add(sessionTTL), HttpOnly: true})
	w.WriteHeader(http.StatusOK)
}

// authMiddleware ensures a valid session exists.
func (s *server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie("session_id")
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		user, err := s.sessions.Get(r.Context(), "session:"+c.Value).Result()
		if err != nil || user == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), userKey{}, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// menuHandler lists the pizza types that can be ordered.
// @Summary Menu
// @Produce json
// @Success 200 {object} menuResponse
// @Router /menu [get]
func (s *server) menuHandler(w http.ResponseWriter, r *http.Request) {
	_, span := otel.AddSpan(r.Context(), "menuHandler")
	defer span.End()

	writeJSON(w, http.StatusOK, menuResponse{Types: s.factory.Types()})
}

// createOrderHandler builds the requested pizzas and checks the order out.
// @Summary Create order
// @Accept json
// @Produce json
// @Param order body orderRequest true "Order"
// @Success 201 {object} orderResponse
// @Failure 400 {string} string
// @Security ApiKeyAuth
// @Router /orders [post]
func (s *server) createOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "createOrderHandler")
	defer span.End()

	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var receipt bytes.Buffer
	pm, err := payment.ByName(req.Payment, &receipt, s.log)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	o, err := order.New(pm, s.journal, order.WithOutput(&receipt))
	if err != nil {
		s.log.Error(ctx, "new order", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	for _, pr := range req.Pizzas {
		p, err := s.build(pr)
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		o.AddPizza(p)
	}

	if err := o.Checkout(ctx); err != nil {
		s.log.Error(ctx, "checkout", "order_id", o.ID, "error", err)
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	user, _ := ctx.Value(userKey{}).(string)
	s.log.Info(ctx, "order checked out", "order_id", o.ID, "user", user, "pizzas", len(req.Pizzas), "total", o.Total().String())

	writeJSON(w, http.StatusCreated, orderResponse{
		ID:      o.ID,
		Total:   o.Total().String(),
		Receipt: strings.Split(strings.TrimSuffix(receipt.String(), "\n"), "\n"),
	})
}

// listOrdersHandler lists every logged pizza line.
// @Summary List logged pizzas
// @Produce json
// @Success 200 {array} string
// @Security ApiKeyAuth
// @Router /orders [get]
func (s *server) listOrdersHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "listOrdersHandler")
	defer span.End()

	lines, err := s.history(ctx)
	if err != nil {
		s.log.Error(ctx, "list orders", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, lines)
}

func (s *server) build(pr pizzaRequest) (*pizza.Pizza, error) {
	var args []any
	if pr.Toppings != nil {
		args = append(args, pr.Toppings)
	}
	p, err := s.factory.Create(pr.Type, args...)
	if err != nil {
		return nil, err
	}
	for _, t := range pr.Extra {
		p.AddTopping(t)
	}
	return p, nil
}

func (s *server) traceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := otel.InjectTracing(r.Context(), s.tracer)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, pizza.ErrUnknownType),
		errors.Is(err, pizza.ErrArity),
		errors.Is(err, pizza.ErrArgType),
		errors.Is(err, payment.ErrUnknownMethod):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
