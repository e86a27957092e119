// Package alertapi implements ports.AlertSink against the alerting HTTP API.
package alertapi

import (
	"fmt"

	"orderalerts/internal/core/domain/model/order"
)

// AlertDTO is the body posted to the alerts endpoint.
type AlertDTO struct {
	Message string `json:"Message"`
}

// newAlertDTO renders the alert text. The counter is the value before this alert
// is counted.
func newAlertDTO(orderID string, item *order.Item) AlertDTO {
	return AlertDTO{
		Message: fmt.Sprintf(
			"Alert for delivered item: Order %s, Item: %s, Delivery Notifications: %d",
			orderID, item.Description(), item.DeliveryNotification(),
		),
	}
}
