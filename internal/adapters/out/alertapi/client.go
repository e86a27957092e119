package alertapi

import (
	"context"
	"log/slog"

	"orderalerts/internal/core/domain/model/order"
	"orderalerts/internal/pkg/httpclient"
)

const opSendAlert = "send alert"

// Client posts delivery alerts.
type Client struct {
	http      *httpclient.Client
	alertsURL string
	logger    *slog.Logger
}

// NewClient creates an alert API client posting to alertsURL.
func NewClient(httpClient *httpclient.Client, alertsURL string, logger *slog.Logger) *Client {
	return &Client{
		http:      httpClient,
		alertsURL: alertsURL,
		logger:    logger.With("component", "alert_api"),
	}
}

// SendAlert posts one alert for item of order orderID.
func (c *Client) SendAlert(ctx context.Context, orderID string, item *order.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	c.logger.InfoContext(ctx, "Sending alert", "order_id", orderID, "item", item.Description())

	if err := c.http.PostJSON(ctx, opSendAlert, c.alertsURL, newAlertDTO(orderID, item)); err != nil {
		c.logger.ErrorContext(ctx, "Failed to send alert", "order_id", orderID, "item", item.Description(), "error", err)
		return err
	}

	c.logger.InfoContext(ctx, "Successfully sent alert", "order_id", orderID, "item", item.Description())
	return nil
}
