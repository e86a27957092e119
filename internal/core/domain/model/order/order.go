package order

import (
	"errors"
	"fmt"
	"slices"

	"orderalerts/internal/pkg/errs"
	"orderalerts/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a medical-equipment order as known by the order-management API.
// It owns its items exclusively; the items keep the sequence the API returned,
// which is also the sequence alerts are sent in.
type Order struct {
	id    string
	items []*Item

	guard guard.ConstructorGuard
}

// NewOrder creates an Order with the given identifier and items.
//
// Returns a ValueIsRequiredError when id is empty and a ValueIsInvalidError
// for every nil or unconstructed item, joined together.
//
// Example:
//
//	item, _ := order.NewItem("Infusion pump", "Delivered", 0)
//	o, err := order.NewOrder("123", []*order.Item{item})
//	if err != nil {
//	    // reject the payload
//	}
func NewOrder(id string, items []*Item) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate reports whether the order was built by NewOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order identifier used for correlation and logging.
func (o *Order) ID() string {
	return o.id
}

// Items returns the order's items in sequence. The slice is a copy, the items are not:
// mutating an item mutates the order.
func (o *Order) Items() []*Item {
	return slices.Clone(o.items)
}

// DeliveredItems returns the delivered items in sequence.
func (o *Order) DeliveredItems() []*Item {
	delivered := make([]*Item, 0, len(o.items))
	for _, item := range o.items {
		if item.IsDelivered() {
			delivered = append(delivered, item)
		}
	}
	return delivered
}

func (o *Order) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("orderID")
	}
	o.id = id
	return nil
}

func (o *Order) setItems(items []*Item) error {
	var problems []error
	for i, item := range items {
		if err := item.Validate(); err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", i), err))
		}
	}
	if len(problems) > 0 {
		return errors.Join(problems...)
	}

	o.items = slices.Clone(items)
	return nil
}
