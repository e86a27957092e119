// Package orderapi implements ports.OrderSource against the order-management HTTP API.
package orderapi

import (
	"errors"
	"fmt"

	"orderalerts/internal/core/domain/model/order"
)

// OrderDTO is the wire representation of an order. Field names follow the existing
// API; decoding is case-insensitive, so camelCase payloads are accepted too.
type OrderDTO struct {
	OrderID string    `json:"OrderId"`
	Items   []ItemDTO `json:"Items"`
}

// ItemDTO is the wire representation of an order item.
type ItemDTO struct {
	Description          string `json:"Description"`
	Status               string `json:"Status"`
	DeliveryNotification int    `json:"DeliveryNotification"`
}

func fromDomain(o *order.Order) OrderDTO {
	items := o.Items()
	dto := OrderDTO{
		OrderID: o.ID(),
		Items:   make([]ItemDTO, 0, len(items)),
	}
	for _, item := range items {
		dto.Items = append(dto.Items, ItemDTO{
			Description:          item.Description(),
			Status:               item.Status(),
			DeliveryNotification: item.DeliveryNotification(),
		})
	}
	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, err := order.NewItem(itemDTO.Description, itemDTO.Status, itemDTO.DeliveryNotification)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.NewOrder(dto.OrderID, items)
}

func toDomainBatch(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	var problems []error
	for i, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			problems = append(problems, fmt.Errorf("orders[%d]: %w", i, err))
			continue
		}
		orders = append(orders, o)
	}
	if len(problems) > 0 {
		return nil, errors.Join(problems...)
	}
	return orders, nil
}
