// Package notify posts the completion payload to the evaluation URL a
// submission names. Delivery is best-effort with a few retries; the
// caller decides whether a lost notification matters.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

type Notifier struct {
	client     *http.Client
	maxRetries uint64
}

func NewNotifier(timeout time.Duration) *Notifier {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Notifier{
		client:     &http.Client{Timeout: timeout},
		maxRetries: 3,
	}
}

// Notify posts body as JSON to url, retrying transient failures with
// exponential backoff.
func (n *Notifier) Notify(ctx context.Context, url string, body any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := n.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("evaluation endpoint answered %d", resp.StatusCode)
		}
		if resp.StatusCode >= 400 {
			// client errors will not improve with retries
			return backoff.Permanent(fmt.Errorf("evaluation endpoint answered %d", resp.StatusCode))
		}
		return nil
	}

	bo := backoff.WithContext(
		backoff.WithMaxRetries(newExpBackOff(), n.maxRetries), ctx)
	return backoff.Retry(op, bo)
}

func newExpBackOff() *backoff.ExponentialBackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 200 * time.Millisecond
	bo.MaxInterval = 2 * time.Second
	return bo
}
