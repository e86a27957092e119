package order

import (
	"errors"
	"strings"

	"orderalerts/internal/pkg/errs"
	"orderalerts/internal/pkg/guard"
)

// DeliveredStatus is the status value that marks an item as delivered.
// Comparison is case-insensitive and does not trim whitespace.
const DeliveredStatus = "delivered"

var (
	// ErrItemIsNotConstructed is returned when an Item was not created through NewItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item is one line of an order. It has no identity of its own; it is addressed by
// its position inside the parent order.
type Item struct {
	description          string
	status               string
	deliveryNotification int

	guard guard.ConstructorGuard
}

// NewItem creates an Item. deliveryNotification is the counter value reported by the
// API and must not be negative.
func NewItem(description, status string, deliveryNotification int) (*Item, error) {
	if deliveryNotification < 0 {
		return nil, errs.NewValueIsOutOfRangeError("deliveryNotification", deliveryNotification, 0, "unbounded")
	}

	return &Item{
		description:          description,
		status:               status,
		deliveryNotification: deliveryNotification,
		guard:                guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the item was built by NewItem.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Description returns the display text of the item.
func (i *Item) Description() string {
	return i.description
}

// Status returns the raw status string as received from the API.
func (i *Item) Status() string {
	return i.status
}

// DeliveryNotification returns how many delivery alerts have succeeded for the item.
func (i *Item) DeliveryNotification() int {
	return i.deliveryNotification
}

// IsDelivered reports whether the status equals DeliveredStatus ignoring case.
func (i *Item) IsDelivered() bool {
	return strings.EqualFold(i.status, DeliveredStatus)
}

// IncrementDeliveryNotification records one more successful delivery alert.
// Callers must only invoke it after the alert call has succeeded.
func (i *Item) IncrementDeliveryNotification() {
	i.deliveryNotification++
}
