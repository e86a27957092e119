// Package ports defines the outbound contracts of the order alerting core.
// Adapters in internal/adapters/out implement them; the command handlers depend
// only on these interfaces.
package ports

import (
	"context"

	"orderalerts/internal/core/domain/model/order"
)

// OrderSource supplies the batch of orders to reconcile and accepts updated orders.
type OrderSource interface {
	// FetchOrders returns the current batch in the order the API lists it.
	// Fails with errs.TransportError when the API cannot be reached and with
	// errs.ParseError when its answer cannot be decoded.
	FetchOrders(ctx context.Context) ([]*order.Order, error)

	// UpdateOrder persists the full order, including its item counters.
	// Fails with errs.TransportError.
	UpdateOrder(ctx context.Context, o *order.Order) error
}
