// Package order provides the domain model for medical-equipment orders fetched from
// the order-management API.
//
// The package includes:
//   - Order: the aggregate root, an identifier plus an ordered list of items
//   - Item: a positional record with description, status and delivery-notification counter
//
// Key business rules:
//   - An order must have a non-empty identifier
//   - An item is delivered when its status equals "delivered" ignoring case
//   - The delivery-notification counter is never negative and only grows by one per
//     successful alert
package order
