// Package api is the HTTP client for the remote "clientes" collection.
//
// Four operations map onto a single resource path:
//
//	GET    /clientes       list
//	POST   /clientes       create
//	PUT    /clientes/{id}  update
//	DELETE /clientes/{id}  remove
//
// There are no retries, no caching and no client-side timeout; every call
// hits the network and can only be abandoned through its context.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"clientes/internal/cliente"
	"clientes/internal/jsonutil"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// DefaultBaseURL is the collection host the UI was built against.
const DefaultBaseURL = "https://bd-back.onrender.com"

// RequestIDHeader carries a per-request id that also appears in the log.
const RequestIDHeader = "X-Request-ID"

const (
	collectionPath = "/clientes"
	maxBodyBytes   = 1 << 20
)

// Client talks to the remote collection.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
	tracer  oteltrace.Tracer
	newID   func() string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the logger used for per-request events.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithTracer sets the tracer used for per-request spans.
func WithTracer(t oteltrace.Tracer) Option {
	return func(c *Client) {
		if t != nil {
			c.tracer = t
		}
	}
}

// NewClient creates a client rooted at baseURL (trailing slashes are ignored).
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     zerolog.Nop(),
		tracer:  noop.NewTracerProvider().Tracer(""),
		newID:   uuid.NewString,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// List fetches the whole collection in server order.
func (c *Client) List(ctx context.Context) ([]cliente.Cliente, error) {
	status, body, err := c.do(ctx, OpList, http.MethodGet, collectionPath, nil)
	if err != nil {
		return nil, err
	}
	if !isSuccess(status) {
		return nil, &NetworkError{Op: OpList, Status: status, Message: OpList.defaultMessage()}
	}
	list, err := jsonutil.UnmarshalArrayAllowEmpty[cliente.Cliente](body, "decode clientes")
	if err != nil {
		return nil, &NetworkError{Op: OpList, Status: status, Message: OpList.defaultMessage(), Err: err}
	}
	return list, nil
}

// Create posts a new record and returns it with its server-assigned id.
func (c *Client) Create(ctx context.Context, p cliente.Payload) (cliente.Cliente, error) {
	return c.save(ctx, OpCreate, http.MethodPost, collectionPath, p)
}

// Update replaces the record with the given id and returns the server's copy.
func (c *Client) Update(ctx context.Context, id string, p cliente.Payload) (cliente.Cliente, error) {
	return c.save(ctx, OpUpdate, http.MethodPut, resourcePath(id), p)
}

// Remove deletes the record with the given id. The response body is ignored.
func (c *Client) Remove(ctx context.Context, id string) error {
	status, _, err := c.do(ctx, OpRemove, http.MethodDelete, resourcePath(id), nil)
	if err != nil {
		return err
	}
	if !isSuccess(status) {
		return &NetworkError{Op: OpRemove, Status: status, Message: OpRemove.defaultMessage()}
	}
	return nil
}

func (c *Client) save(ctx context.Context, op Op, method, path string, p cliente.Payload) (cliente.Cliente, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return cliente.Cliente{}, fmt.Errorf("marshal cliente: %w", err)
	}
	status, body, err := c.do(ctx, op, method, path, payload)
	if err != nil {
		return cliente.Cliente{}, err
	}
	if !isSuccess(status) {
		if msg, ok := jsonutil.ErrorMessage(body); ok {
			return cliente.Cliente{}, &ValidationError{Op: op, Status: status, Message: msg}
		}
		return cliente.Cliente{}, &NetworkError{Op: op, Status: status, Message: op.defaultMessage()}
	}
	var result cliente.Cliente
	if err := jsonutil.UnmarshalWithContext(body, &result, "decode cliente"); err != nil {
		return cliente.Cliente{}, &NetworkError{Op: op, Status: status, Message: op.defaultMessage(), Err: err}
	}
	return result, nil
}

// do issues one request and returns the status and body. A non-nil error means
// no usable response arrived; status checks are left to the caller.
func (c *Client) do(ctx context.Context, op Op, method, path string, payload []byte) (int, []byte, error) {
	reqID := c.newID()
	ctx, span := c.tracer.Start(ctx, "clientes."+string(op),
		oteltrace.WithSpanKind(oteltrace.SpanKindClient),
		oteltrace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", path),
			attribute.String("clientes.request_id", reqID),
		),
	)
	defer span.End()

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, nil, fmt.Errorf("build %s request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, reqID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport")
		c.log.Warn().Err(err).
			Str("request_id", reqID).
			Str("op", string(op)).
			Str("method", method).
			Str("path", path).
			Msg("request failed")
		return 0, nil, &NetworkError{Op: op, Message: op.defaultMessage(), Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read body")
		return resp.StatusCode, nil, &NetworkError{Op: op, Status: resp.StatusCode, Message: op.defaultMessage(), Err: err}
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	ev := c.log.Debug()
	if !isSuccess(resp.StatusCode) {
		span.SetStatus(codes.Error, resp.Status)
		ev = c.log.Warn()
	}
	ev.Str("request_id", reqID).
		Str("op", string(op)).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("request completed")

	return resp.StatusCode, respBody, nil
}

func resourcePath(id string) string {
	return collectionPath + "/" + url.PathEscape(id)
}

func isSuccess(status int) bool {
	return status >= 200 && status <= 299
}
