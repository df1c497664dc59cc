// Package order implements pizza orders and the payment and logging
// capabilities they check out with.
package order
