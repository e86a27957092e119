package orderapi_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"orderalerts/internal/adapters/out/orderapi"
	"orderalerts/internal/core/domain/model/order"
	"orderalerts/internal/pkg/errs"
	"orderalerts/internal/pkg/httpclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

func newClient(ordersURL, updateURL string) *orderapi.Client {
	hc := httpclient.NewClient(noop.NewTracerProvider().Tracer("test"), nil)
	return orderapi.NewClient(hc, ordersURL, updateURL, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func serveBody(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestClient_FetchOrders(t *testing.T) {
	t.Run("maps orders and keeps item sequence", func(t *testing.T) {
		server := serveBody(t, http.StatusOK, `[
			{"OrderId": "123", "Items": [
				{"Description": "Item1", "Status": "Delivered", "DeliveryNotification": 0},
				{"Description": "Item2", "Status": "InProgress", "DeliveryNotification": 2}
			]},
			{"orderId": "456", "items": [{"description": "Item3", "status": "delivered", "deliveryNotification": 1}]}
		]`)

		orders, err := newClient(server.URL, "").FetchOrders(context.Background())

		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, "123", orders[0].ID())
		items := orders[0].Items()
		require.Len(t, items, 2)
		assert.Equal(t, "Item1", items[0].Description())
		assert.True(t, items[0].IsDelivered())
		assert.Equal(t, "Item2", items[1].Description())
		assert.Equal(t, 2, items[1].DeliveryNotification())
		assert.Equal(t, "456", orders[1].ID())
		assert.Equal(t, 1, orders[1].Items()[0].DeliveryNotification())
	})

	t.Run("null body is an empty batch", func(t *testing.T) {
		server := serveBody(t, http.StatusOK, `null`)

		orders, err := newClient(server.URL, "").FetchOrders(context.Background())

		require.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("non-2xx is a transport error", func(t *testing.T) {
		server := serveBody(t, http.StatusInternalServerError, `boom`)

		orders, err := newClient(server.URL, "").FetchOrders(context.Background())

		require.ErrorIs(t, err, errs.ErrTransport)
		assert.Nil(t, orders)
	})

	t.Run("malformed JSON is a parse error", func(t *testing.T) {
		server := serveBody(t, http.StatusOK, `[{"OrderId": `)

		_, err := newClient(server.URL, "").FetchOrders(context.Background())

		require.ErrorIs(t, err, errs.ErrParse)
	})

	t.Run("order without id is a parse error", func(t *testing.T) {
		server := serveBody(t, http.StatusOK, `[{"OrderId": "123", "Items": []}, {"Items": []}]`)

		_, err := newClient(server.URL, "").FetchOrders(context.Background())

		require.ErrorIs(t, err, errs.ErrParse)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "orders[1]")
	})

	t.Run("negative counter is a parse error", func(t *testing.T) {
		server := serveBody(t, http.StatusOK,
			`[{"OrderId": "123", "Items": [{"Description": "Item1", "Status": "Delivered", "DeliveryNotification": -1}]}]`)

		_, err := newClient(server.URL, "").FetchOrders(context.Background())

		require.ErrorIs(t, err, errs.ErrParse)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestClient_UpdateOrder(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		item, err := order.NewItem("Item1", "Delivered", 1)
		require.NoError(t, err)
		o, err := order.NewOrder("123", []*order.Item{item})
		require.NoError(t, err)
		return o
	}

	t.Run("posts full order", func(t *testing.T) {
		var received map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		err := newClient("", server.URL).UpdateOrder(context.Background(), newOrder(t))

		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"OrderId": "123",
			"Items": []any{
				map[string]any{"Description": "Item1", "Status": "Delivered", "DeliveryNotification": float64(1)},
			},
		}, received)
	})

	t.Run("non-2xx is a transport error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusConflict)
		}))
		defer server.Close()

		err := newClient("", server.URL).UpdateOrder(context.Background(), newOrder(t))

		var transportErr *errs.TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, http.StatusConflict, transportErr.StatusCode)
	})

	t.Run("unconstructed order is rejected without a request", func(t *testing.T) {
		err := newClient("", "http://127.0.0.1:0").UpdateOrder(context.Background(), &order.Order{})

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}
