package worker

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPPusher delivers unsynced records as a JSON POST to
// {baseURL}/{collection}. The endpoint is expected to deduplicate by
// record id, so retries are safe.
type HTTPPusher struct {
	baseURL string
	client  *http.Client
}

func NewHTTPPusher(baseURL string) *HTTPPusher {
	return &HTTPPusher{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (p *HTTPPusher) Push(ctx context.Context, collection string, records []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/"+collection, bytes.NewReader(records))
	if err != nil {
		return fmt.Errorf("build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("push %s: %w", collection, err)
	}
	defer resp.Body.Close()
	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("push %s: remote returned %s", collection, resp.Status)
	}
	return nil
}
