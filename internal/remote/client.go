// Package remote talks to the fuel station's REST backend.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"fuel-console/internal/config"
	"fuel-console/internal/metrics"
)

const maxErrorBody = 4 << 10

// Client is the single configured connection to the backend. Calls are made
// once: there is no retry, queueing or caching.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for baseURL (for example http://localhost:5000/api).
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// NewFromConfig creates a client from the backend configuration.
func NewFromConfig(cfg config.BackendConfig) *Client {
	return New(cfg.ResolveBaseURL(), time.Duration(cfg.TimeoutSeconds)*time.Second)
}

// BaseURL returns the resolved backend URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Error is a failed backend call: either the request never completed
// (Status 0, Err set) or the backend answered with a non-2xx status.
type Error struct {
	Method string
	Path   string
	Status int
	Body   string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("backend %s %s: %v", e.Method, e.Path, e.Err)
	}
	if e.Body != "" {
		return fmt.Sprintf("backend %s %s: status %d: %s", e.Method, e.Path, e.Status, e.Body)
	}
	return fmt.Sprintf("backend %s %s: status %d", e.Method, e.Path, e.Status)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var rerr *Error
	return errors.As(err, &rerr) && rerr.Status == http.StatusNotFound
}

// do sends one request. route is the path template used as the metrics
// label; path is the concrete path. in is encoded as the JSON body when not
// nil and out, when not nil, receives the decoded response.
func (c *Client) do(ctx context.Context, method, route, path string, query url.Values, in, out interface{}) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.BackendRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(method, route, "error").Inc()
		rerr := &Error{Method: method, Path: path, Err: err}
		log.Printf("[Remote] %v", rerr)
		return rerr
	}
	defer resp.Body.Close()
	metrics.BackendRequestsTotal.WithLabelValues(method, route, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		rerr := &Error{
			Method: method,
			Path:   path,
			Status: resp.StatusCode,
			Body:   errorMessage(raw),
		}
		if resp.StatusCode != http.StatusNotFound {
			log.Printf("[Remote] %v", rerr)
		}
		return rerr
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Method: method, Path: path, Status: resp.StatusCode, Err: err}
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		rerr := &Error{Method: method, Path: path, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
		log.Printf("[Remote] %v", rerr)
		return rerr
	}
	return nil
}

// errorMessage pulls the message out of the backend's {"message": ...} or
// {"error": ...} bodies, falling back to the raw text.
func errorMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(raw, &body) == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return strings.TrimSpace(string(raw))
}

func (c *Client) get(ctx context.Context, route, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, route, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, route, path string, in, out interface{}) error {
	return c.do(ctx, http.MethodPost, route, path, nil, in, out)
}

func (c *Client) put(ctx context.Context, route, path string, in, out interface{}) error {
	return c.do(ctx, http.MethodPut, route, path, nil, in, out)
}

func (c *Client) delete(ctx context.Context, route, path string) error {
	return c.do(ctx, http.MethodDelete, route, path, nil, nil, nil)
}

func byID(prefix, id string) string {
	return prefix + "/" + url.PathEscape(id)
}

// Ping checks that the backend answers. Any HTTP status counts as up; only
// a transport failure is returned.
func (c *Client) Ping(ctx context.Context) error {
	err := c.get(ctx, "/fuel-rates", "/fuel-rates", nil, nil)
	var rerr *Error
	if errors.As(err, &rerr) && rerr.Status != 0 {
		return nil
	}
	return err
}
