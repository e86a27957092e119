package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"orderalerts/internal/core/domain/model/order"
	"orderalerts/internal/core/ports"
)

// ProcessOrdersCommandHandler reconciles delivered items with the alert sink.
//
// A pass fetches the batch once and walks the orders in sequence. Within one order a
// failed alert does not stop the remaining items, but it does prevent the order update
// and is returned once the items are exhausted. Across orders nothing is isolated: the
// first order that returns an error ends the pass.
//
// Example:
//
//	handler := NewProcessOrdersCommandHandler(orderSource, alertSink, recorder, logger)
//	if err := handler.Handle(ctx, NewProcessOrdersCommand()); err != nil {
//	    os.Exit(1)
//	}
type ProcessOrdersCommandHandler struct {
	source   ports.OrderSource
	sink     ports.AlertSink
	recorder Recorder
	logger   *slog.Logger
}

// NewProcessOrdersCommandHandler creates a handler. A nil recorder is replaced with NopRecorder.
func NewProcessOrdersCommandHandler(
	source ports.OrderSource,
	sink ports.AlertSink,
	recorder Recorder,
	logger *slog.Logger,
) ProcessOrdersCommandHandler {
	if recorder == nil {
		recorder = NopRecorder{}
	}
	return ProcessOrdersCommandHandler{
		source:   source,
		sink:     sink,
		recorder: recorder,
		logger:   logger.With("component", "order_processor"),
	}
}

// Handle runs one pass. Errors from the order source and from ProcessOrder are
// returned unchanged.
func (h *ProcessOrdersCommandHandler) Handle(ctx context.Context, cmd ProcessOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	logger := h.logger.With("run_id", cmd.RunID().String())
	logger.InfoContext(ctx, "Starting order processing")

	orders, err := h.source.FetchOrders(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to fetch orders", "error", err)
		h.recorder.RunFinished(runOutcome(ctx, err, RunOutcomeFetchFailed))
		return err
	}

	for _, o := range orders {
		if err = h.processOrder(ctx, logger, o); err != nil {
			logger.ErrorContext(ctx, "Error processing order", "order_id", o.ID(), "error", err)
			h.recorder.RunFinished(runOutcome(ctx, err, RunOutcomeOrderFailed))
			return err
		}
	}

	logger.InfoContext(ctx, "Completed order processing", "orders", len(orders))
	h.recorder.RunFinished(RunOutcomeSucceeded)
	return nil
}

// ProcessOrder alerts every delivered item of o and persists o when at least one
// alert succeeded and none failed. It returns the first alert failure, or the update
// failure, unchanged. Cancellation is returned as soon as it is observed.
func (h *ProcessOrdersCommandHandler) ProcessOrder(ctx context.Context, o *order.Order) error {
	return h.processOrder(ctx, h.logger, o)
}

func (h *ProcessOrdersCommandHandler) processOrder(ctx context.Context, logger *slog.Logger, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	logger = logger.With("order_id", o.ID())

	var (
		touched bool
		failure error
	)

	for _, item := range o.DeliveredItems() {
		err := h.sink.SendAlert(ctx, o.ID(), item)
		if err == nil {
			item.IncrementDeliveryNotification()
			h.recorder.AlertSent()
			touched = true
			continue
		}

		if cancelErr := cancellation(ctx, err); cancelErr != nil {
			return cancelErr
		}

		h.recorder.AlertFailed()
		logger.ErrorContext(ctx, "Failed to send alert", "item", item.Description(), "error", err)
		if failure == nil {
			failure = err
		}
	}

	if failure != nil {
		logger.WarnContext(ctx, "Skipping order update after alert failure")
		return failure
	}

	if !touched {
		return nil
	}

	if err := h.source.UpdateOrder(ctx, o); err != nil {
		if cancellation(ctx, err) == nil {
			h.recorder.OrderUpdateFailed()
		}
		return err
	}

	h.recorder.OrderUpdated()
	logger.InfoContext(ctx, "Order updated")
	return nil
}

// cancellation returns a non-nil error when err must not be treated as an ordinary
// per-item failure because the pass was canceled or timed out.
func cancellation(ctx context.Context, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%w: %w", ctxErr, err)
	}
	return nil
}

func runOutcome(ctx context.Context, err error, fallback string) string {
	if cancellation(ctx, err) != nil {
		return RunOutcomeCanceled
	}
	return fallback
}
