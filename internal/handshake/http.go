package handshake

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/fzdarsky/srp6a/pkg/protocol"
)

const (
	defaultTimeout  = 30 * time.Second
	contentTypeJSON = "application/json"
	maxRetries      = 3
	initialBackoff  = 500 * time.Millisecond
	maxBackoff      = 5 * time.Second

	initPath   = "/auth/srp/init"
	verifyPath = "/auth/srp/verify"
)

// HTTPTransport sends handshake messages as JSON over HTTP.
//
// Requests that never reached the server are retried for both steps.
// Server errors (5xx) are retried only for Init, since a verify request
// carries M1 and the server may already have consumed the session.
type HTTPTransport struct {
	baseURL    string
	httpClient *http.Client
	backoff    time.Duration
}

// NewHTTPTransport creates a transport for the server at baseURL.
// A nil client selects one with a 30 second timeout.
func NewHTTPTransport(baseURL string, client *http.Client) *HTTPTransport {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &HTTPTransport{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: client,
		backoff:    initialBackoff,
	}
}

// Init posts the init request.
func (t *HTTPTransport) Init(ctx context.Context, req protocol.SRPInitRequest) (*protocol.SRPInitResponse, error) {
	var resp protocol.SRPInitResponse
	if err := t.post(ctx, initPath, req, &resp, true); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Verify posts the verify request.
func (t *HTTPTransport) Verify(ctx context.Context, req protocol.SRPVerifyRequest) (*protocol.SRPVerifyResponse, error) {
	var resp protocol.SRPVerifyResponse
	if err := t.post(ctx, verifyPath, req, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

// post sends body to path and decodes the reply into response, retrying
// transient failures with exponential backoff. Server errors are retried
// only when retryServerErrors is set.
func (t *HTTPTransport) post(ctx context.Context, path string, body, response any, retryServerErrors bool) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	var lastErr error
	backoff := t.backoff

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			if err := sleep(ctx, backoff); err != nil {
				return err
			}
			backoff = min(backoff*2, maxBackoff)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+path, bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", contentTypeJSON)

		resp, err := t.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if isRetryable(err) && attempt < maxRetries {
				lastErr = fmt.Errorf("request failed (attempt %d/%d): %w", attempt+1, maxRetries+1, err)
				continue
			}
			return protocol.NewTransportError(err.Error())
		}

		respBytes, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			return protocol.NewTransportError(fmt.Sprintf("failed to read response body: %v", err))
		}

		if resp.StatusCode >= 400 {
			if retryServerErrors && resp.StatusCode >= 500 && attempt < maxRetries {
				lastErr = fmt.Errorf("server error (HTTP %d, attempt %d/%d)", resp.StatusCode, attempt+1, maxRetries+1)
				continue
			}
			return errorFromResponse(resp.StatusCode, respBytes)
		}

		if err := json.Unmarshal(respBytes, response); err != nil {
			return protocol.NewInvalidRequestError(fmt.Sprintf("failed to parse response: %v", err))
		}
		return nil
	}

	return protocol.NewTransportError(fmt.Sprint(lastErr))
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// isRetryable checks if an error is transient and should be retried.
func isRetryable(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) && dnsErr.IsTemporary {
		return true
	}

	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}

// errorFromResponse converts an HTTP error reply into an ErrorResponse.
// Bodies that already carry an ErrorResponse are returned as sent.
func errorFromResponse(statusCode int, body []byte) error {
	var apiErr protocol.ErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Code != "" {
		return &apiErr
	}

	details := fmt.Sprintf("HTTP %d", statusCode)
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return protocol.NewAuthenticationFailedError(details)
	case http.StatusBadRequest:
		return protocol.NewInvalidRequestError(details)
	default:
		return protocol.NewTransportError(fmt.Sprintf("%s: %s", details, strings.TrimSpace(string(body))))
	}
}
