// Package client is the typed HTTP client for the remote booking API. Every
// method performs exactly one request-response round trip and either returns
// the decoded payload or propagates the failure; there are no retries.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Client talks to the booking API at a configurable base URL.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *zap.Logger
}

// New returns a client rooted at baseURL (e.g. "http://localhost:5000/api").
func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// APIError is a server-reported failure: a non-2xx status or a response
// envelope with success=false. Message carries the server's message when the
// server sent one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("booking api: %s (status %d)", e.Message, e.Status)
}

// envelope is the common {success, data, message} response shape.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
	Count   int             `json:"count"`
}

func (env *envelope) failureMessage(status int) string {
	if env.Message != "" {
		return env.Message
	}
	if env.Error != "" {
		return env.Error
	}
	return http.StatusText(status)
}

// do issues one request and unwraps the envelope into out. A transport
// failure comes back wrapped; a server-reported failure comes back as
// *APIError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("booking api: encode %s %s: %w", method, path, err)
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("booking api: build %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Warn("booking api request failed",
			zap.String("method", method), zap.String("path", path), zap.Error(err))
		return fmt.Errorf("booking api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= 400 {
			return &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return fmt.Errorf("booking api: decode %s %s: %w", method, path, err)
	}

	if !env.Success || resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode, Message: env.failureMessage(resp.StatusCode)}
		c.logger.Warn("booking api rejected request",
			zap.String("method", method), zap.String("path", path),
			zap.Int("status", resp.StatusCode), zap.String("message", apiErr.Message))
		return apiErr
	}

	if out != nil {
		if len(env.Data) == 0 {
			return fmt.Errorf("booking api: %s %s: response carried no data", method, path)
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("booking api: decode %s %s data: %w", method, path, err)
		}
	}
	return nil
}
