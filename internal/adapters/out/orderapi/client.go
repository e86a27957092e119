package orderapi

import (
	"context"
	"log/slog"

	"orderalerts/internal/core/domain/model/order"
	"orderalerts/internal/pkg/errs"
	"orderalerts/internal/pkg/httpclient"
)

const (
	opFetchOrders = "fetch orders"
	opUpdateOrder = "update order"
)

// Client talks to the order-management API.
type Client struct {
	http      *httpclient.Client
	ordersURL string
	updateURL string
	logger    *slog.Logger
}

// NewClient creates an order API client. ordersURL answers GET with the batch,
// updateURL accepts POST with one order.
func NewClient(httpClient *httpclient.Client, ordersURL, updateURL string, logger *slog.Logger) *Client {
	return &Client{
		http:      httpClient,
		ordersURL: ordersURL,
		updateURL: updateURL,
		logger:    logger.With("component", "order_api"),
	}
}

// FetchOrders returns the current batch. A JSON null body is an empty batch.
// A batch containing an order that fails domain validation is rejected as a whole
// with errs.ParseError.
func (c *Client) FetchOrders(ctx context.Context) ([]*order.Order, error) {
	c.logger.InfoContext(ctx, "Fetching orders", "url", c.ordersURL)

	var dtos []OrderDTO
	if err := c.http.GetJSON(ctx, opFetchOrders, c.ordersURL, &dtos); err != nil {
		c.logger.ErrorContext(ctx, "Failed to fetch orders", "error", err)
		return nil, err
	}

	orders, err := toDomainBatch(dtos)
	if err != nil {
		parseErr := errs.NewParseErrorWithCause(opFetchOrders, err)
		c.logger.ErrorContext(ctx, "Failed to parse orders response", "error", parseErr)
		return nil, parseErr
	}

	c.logger.InfoContext(ctx, "Successfully fetched orders", "count", len(orders))
	return orders, nil
}

// UpdateOrder posts the full order back to the API.
func (c *Client) UpdateOrder(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	c.logger.InfoContext(ctx, "Updating order", "order_id", o.ID())

	if err := c.http.PostJSON(ctx, opUpdateOrder, c.updateURL, fromDomain(o)); err != nil {
		c.logger.ErrorContext(ctx, "Failed to update order", "order_id", o.ID(), "error", err)
		return err
	}

	c.logger.InfoContext(ctx, "Successfully updated order", "order_id", o.ID())
	return nil
}
