// Package webhook delivers composed final reports to caller-provided
// callback URLs.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Dispatcher posts final output documents to callback URLs. Delivery failures
// never fail the analysis; the request completes regardless.
type Dispatcher struct {
	httpClient      *http.Client
	maxRetries      int
	initialInterval time.Duration
	logger          *slog.Logger
}

// NewDispatcher creates a webhook dispatcher. maxRetries bounds re-delivery
// attempts after the first.
func NewDispatcher(maxRetries int) *Dispatcher {
	return &Dispatcher{
		httpClient:      &http.Client{Timeout: 30 * time.Second},
		maxRetries:      maxRetries,
		initialInterval: 2 * time.Second,
		logger:          slog.With("component", "webhook"),
	}
}

// Deliver posts the document to url as JSON. Retries on network errors and
// 5xx responses; 4xx responses are terminal.
func (d *Dispatcher) Deliver(ctx context.Context, url string, document map[string]any) error {
	payload, err := json.Marshal(document)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	attempt := 0
	operation := func() error {
		attempt++
		if err := d.post(ctx, url, payload); err != nil {
			if permanent(err) {
				return backoff.Permanent(err)
			}
			d.logger.Warn("Webhook delivery failed", "url", url, "attempt", attempt, "error", err)
			return err
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = d.initialInterval
	bo.MaxInterval = 30 * time.Second
	bo.MaxElapsedTime = 0

	err = backoff.Retry(operation, backoff.WithContext(
		backoff.WithMaxRetries(bo, uint64(d.maxRetries)), ctx))
	if err != nil {
		return fmt.Errorf("webhook delivery to %s failed after %d attempts: %w", url, attempt, err)
	}

	d.logger.Info("Webhook delivered", "url", url, "attempts", attempt)
	return nil
}

func (d *Dispatcher) post(ctx context.Context, url string, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return backoff.Permanent(fmt.Errorf("failed to build webhook request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return &statusError{status: resp.StatusCode}
}

type statusError struct {
	status int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("webhook endpoint returned status %d", e.status)
}

// permanent reports whether the error should not be retried: 4xx responses
// mean the endpoint rejected the payload.
func permanent(err error) bool {
	if se, ok := err.(*statusError); ok {
		return se.status >= 400 && se.status < 500
	}
	return false
}
