// Package rest implements the client for the community events REST API.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ubatuba-events/events-client/internal/core/domain"
	"github.com/ubatuba-events/events-client/internal/core/ports"
	"github.com/ubatuba-events/events-client/internal/metrics"
)

const defaultTimeout = 15 * time.Second

// Client talks to the remote events API. It implements ports.EventsAPI and
// ports.AuthAPI.
//
// Transport failures and non-2xx responses both collapse into a
// domain.ErrRequestFailed chain; callers do not distinguish them. The one
// exception is 404 on the event resource, which maps to
// domain.ErrEventNotFound.
type Client struct {
	baseURL string
	http    *http.Client
	headers *HeaderBuilder
	log     zerolog.Logger
}

// NewClient returns a Client for the API at baseURL. A non-positive timeout
// falls back to defaultTimeout.
func NewClient(baseURL string, timeout time.Duration, session ports.SessionStore, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/") + "/",
		http:    &http.Client{Timeout: timeout},
		headers: NewHeaderBuilder(session),
		log:     log,
	}
}

// FetchAll retrieves the full event collection.
func (c *Client) FetchAll(ctx context.Context) ([]domain.Event, error) {
	var events []domain.Event
	if err := c.do(ctx, http.MethodGet, "events", c.baseURL+"events", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// FetchOne retrieves a single event by ID.
func (c *Client) FetchOne(ctx context.Context, id string) (*domain.Event, error) {
	var event domain.Event
	if err := c.do(ctx, http.MethodGet, "event", c.baseURL+"events/"+id, nil, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// Create submits a new event and returns it with the server-assigned ID.
func (c *Client) Create(ctx context.Context, input domain.EventInput) (*domain.Event, error) {
	var created domain.Event
	if err := c.do(ctx, http.MethodPost, "events", c.baseURL+"events", input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces the stored event with the given full entity.
func (c *Client) Update(ctx context.Context, event domain.Event) error {
	return c.do(ctx, http.MethodPut, "event", c.baseURL+"events/"+event.ID, event, nil)
}

// Delete removes the event with the given ID.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "event", c.baseURL+"events/"+id, nil, nil)
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp tokenResponse
	err := c.do(ctx, http.MethodPost, "login", c.baseURL+"auth/login", credentialsRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Signup registers a new account and returns the issued token.
func (c *Client) Signup(ctx context.Context, email, password string) (string, error) {
	var resp tokenResponse
	err := c.do(ctx, http.MethodPost, "signup", c.baseURL+"auth/signup", credentialsRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Ping checks that the API is reachable. Used by the readiness probe.
func (c *Client) Ping(ctx context.Context) error {
	var events []domain.Event
	return c.do(ctx, http.MethodGet, "events", c.baseURL+"events", nil, &events)
}

// do issues one request and decodes the JSON response into out when out is
// non-nil. Headers come from the builder on every call so a token stored
// mid-session takes effect immediately.
func (c *Client) do(ctx context.Context, method, endpoint, url string, body, out any) error {
	start := time.Now()
	outcome := "failure"
	defer func() {
		metrics.APIRequestsTotal.WithLabelValues(endpoint, method, outcome).Inc()
		metrics.APIRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header = c.headers.Headers()

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("method", method).Str("url", url).Msg("request transport failure")
		return fmt.Errorf("%w: %v", domain.ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Debug().Int("status", resp.StatusCode).Str("method", method).Str("url", url).Msg("request rejected")
		if resp.StatusCode == http.StatusNotFound && endpoint == "event" {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("%w: %s %s returned %d", domain.ErrRequestFailed, method, endpoint, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: decode response: %v", domain.ErrRequestFailed, err)
		}
	}

	outcome = "success"
	return nil
}
