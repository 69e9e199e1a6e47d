package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/volunteerhub/volunteerhub-cli/pkg/localstore"
	"github.com/volunteerhub/volunteerhub-cli/pkg/session"
)

// ErrUnauthorized signals a missing or rejected bearer token. The role
// router treats it as "not authenticated" and redirects to login.
var ErrUnauthorized = errors.New("apiclient: unauthorized")

// APIError is a response the backend rejected, either with a non-2xx
// status or with success:false and a message
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error (status %d)", e.StatusCode)
}

// envelope is the uniform response shape of every backend endpoint
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

const (
	maxGetAttempts  = 3
	retryBaseDelay  = 200 * time.Millisecond
	idempotencyName = "Idempotency-Key"
)

// Client is the shared request-issuing layer: one base address, JSON
// bodies, bearer injection, and envelope decoding, so the stores above
// it never duplicate transport concerns.
//
// Bearer tokens are read from durable storage at call time through an
// oauth2.TokenSource, independent of session-store hydration timing.
// Volunteer/admin calls and organization calls use their respective
// storage namespaces.
type Client struct {
	baseURL string
	public  *http.Client
	user    *http.Client
	org     *http.Client
	logger  *zap.Logger
}

// New creates a client against baseURL, reading bearer tokens from the
// given durable storage
func New(ctx context.Context, baseURL string, storage *localstore.Store, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		public:  &http.Client{},
		user:    oauth2.NewClient(ctx, &storeTokenSource{storage: storage, key: session.KeyToken}),
		org:     oauth2.NewClient(ctx, &storeTokenSource{storage: storage, key: session.KeyOrganizationToken}),
		logger:  logger,
	}
}

// storeTokenSource reads a bearer token from durable storage on every
// request. A missing token surfaces as ErrUnauthorized before the
// request leaves the process.
type storeTokenSource struct {
	storage *localstore.Store
	key     string
}

func (s *storeTokenSource) Token() (*oauth2.Token, error) {
	value, err := s.storage.Get(s.key)
	if err != nil {
		if errors.Is(err, localstore.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to read stored token: %w", err)
	}
	if value == "" {
		return nil, ErrUnauthorized
	}
	return &oauth2.Token{AccessToken: value, TokenType: "Bearer"}, nil
}

// postJSON issues a single-attempt JSON mutation and decodes the
// envelope. Mutations are never retried; the caller re-triggers
// manually on failure.
func postJSON[T any](ctx context.Context, c *Client, httpc *http.Client, method, path string, body any, headers map[string]string) (T, error) {
	var zero T

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return zero, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return zero, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for name, value := range headers {
		req.Header.Set(name, value)
	}

	return send[T](c, httpc, req)
}

// getJSON issues an idempotent read with bounded retry and backoff.
// Transport failures and 5xx responses are retried; anything the
// backend decided (4xx, success:false) is not.
func getJSON[T any](ctx context.Context, c *Client, httpc *http.Client, path string) (T, error) {
	var zero T
	var lastErr error

	for attempt := 0; attempt < maxGetAttempts; attempt++ {
		if attempt > 0 {
			delay := retryBaseDelay << (attempt - 1)
			c.logger.Debug("Retrying request",
				zap.String("path", path),
				zap.Int("attempt", attempt+1),
				zap.Duration("delay", delay))
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return zero, ctx.Err()
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return zero, fmt.Errorf("failed to build request: %w", err)
		}

		result, err := send[T](c, httpc, req)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !retryable(err) {
			break
		}
	}

	return zero, lastErr
}

// send executes the request and decodes the uniform envelope
func send[T any](c *Client, httpc *http.Client, req *http.Request) (T, error) {
	var zero T

	resp, err := httpc.Do(req)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			return zero, ErrUnauthorized
		}
		return zero, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return zero, ErrUnauthorized
	}

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return zero, fmt.Errorf("failed to decode response: %w", err)
			}
			// Non-2xx with an unreadable body still carries the status
			env.Message = strings.TrimSpace(string(raw))
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return zero, &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}
	if !env.Success {
		return zero, &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	var data T
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return zero, fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return data, nil
}

// retryable reports whether a failed read is worth another attempt
func retryable(err error) bool {
	if errors.Is(err, ErrUnauthorized) {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	// Transport-level failure
	return true
}
