// Package httpclient provides the traced JSON HTTP client used by the outbound adapters.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"orderalerts/internal/pkg/errs"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// maxErrorBody bounds how much of a failed response ends up in the error message.
const maxErrorBody = 512

// Client issues JSON requests and opens a client span for each of them.
// It sets no timeout of its own; every request is bound to the caller's context.
type Client struct {
	tracer     trace.Tracer
	httpClient *http.Client
}

// NewClient creates a client. A nil httpClient gets a pooled default transport.
func NewClient(tracer trace.Tracer, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
			},
		}
	}
	return &Client{
		tracer:     tracer,
		httpClient: httpClient,
	}
}

// GetJSON sends a GET to rawURL and decodes the response body into out.
// Network failures and non-2xx answers are errs.TransportError, undecodable
// bodies are errs.ParseError.
func (c *Client) GetJSON(ctx context.Context, operation, rawURL string, out any) error {
	body, err := c.do(ctx, operation, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	if err = json.Unmarshal(body, out); err != nil {
		return errs.NewParseErrorWithCause(operation, err)
	}
	return nil
}

// PostJSON sends in as a JSON body to rawURL. The response body is discarded.
func (c *Client) PostJSON(ctx context.Context, operation, rawURL string, in any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}

	_, err = c.do(ctx, operation, http.MethodPost, rawURL, payload)
	return err
}

func (c *Client) do(ctx context.Context, operation, method, rawURL string, payload []byte) ([]byte, error) {
	ctx, span := c.tracer.Start(ctx, operation, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	span.SetAttributes(
		attribute.String("http.request.method", method),
		attribute.String("url.full", rawURL),
	)

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reqBody)
	if err != nil {
		return nil, fail(span, errs.NewValueIsInvalidErrorWithCause("url", err))
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fail(span, errs.NewTransportErrorWithCause(operation, 0, unwrapURLError(err)))
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fail(span, errs.NewTransportErrorWithCause(operation, resp.StatusCode, err))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fail(span, errs.NewTransportErrorWithCause(operation, resp.StatusCode, bodyExcerpt(body)))
	}

	return body, nil
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

// unwrapURLError drops the *url.Error envelope so the message does not repeat the URL
// the caller already logs; the wrapped error, including context errors, is kept.
func unwrapURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}

func bodyExcerpt(body []byte) error {
	text := strings.TrimSpace(string(body))
	if len(text) > maxErrorBody {
		text = text[:maxErrorBody] + "..."
	}
	if text == "" {
		text = "empty response body"
	}
	return fmt.Errorf("response: %s", text)
}
