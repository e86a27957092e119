package ports

import (
	"context"

	"orderalerts/internal/core/domain/model/order"
)

// AlertSink accepts one delivery notification for one item.
type AlertSink interface {
	// SendAlert notifies that item of order orderID was delivered.
	// Fails with errs.TransportError.
	SendAlert(ctx context.Context, orderID string, item *order.Item) error
}
