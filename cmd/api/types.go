package main

// loginRequest represents login credentials.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// pizzaRequest selects a pizza type. Toppings is passed to one-argument
// constructors such as "custom"; Extra is added afterwards one by one.
type pizzaRequest struct {
	Type     string   `json:"type"`
	Toppings []string `json:"toppings,omitempty"`
	Extra    []string `json:"extra,omitempty"`
}

// orderRequest is the body of POST /orders.
type orderRequest struct {
	Payment string         `json:"payment"` // "cash" | "card"
	Pizzas  []pizzaRequest `json:"pizzas"`
}

// orderResponse describes a checked-out order.
type orderResponse struct {
	ID      string   `json:"id"`
	Total   string   `json:"total"`
	Receipt []string `json:"receipt"`
}

type menuResponse struct {
	Types []string `json:"types"`
}
