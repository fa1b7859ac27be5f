// Package webhook posts ledger batches to an external HTTP endpoint.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/CuelloDiego/Cierre-de-caja/internal/core"
	"github.com/CuelloDiego/Cierre-de-caja/internal/ledger"
	"github.com/CuelloDiego/Cierre-de-caja/internal/log"
)

// Client is the default gateway: one JSON POST per submission.
type Client struct {
	url    string
	client *http.Client
	logger *log.Logger
}

var _ ledger.Poster = (*Client)(nil)

func New(url string, timeout time.Duration, logger *log.Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &Client{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger.WithComponent(log.ComponentWebhook),
	}
}

// Post sends the batch as a JSON array. A transport failure (no
// response at all) comes back as a wrapped error; a response outside
// 2xx comes back as a *ledger.StatusError carrying the code. Any 2xx
// is acceptance, whatever the body says.
func (c *Client) Post(ctx context.Context, batch []core.LogEntry) error {
	body, err := json.Marshal(batch)
	if err != nil {
		return fmt.Errorf("marshal ledger batch: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build ledger request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("post ledger batch: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.WarnContext(ctx, "Ledger batch rejected",
			log.FieldStatusCode, resp.StatusCode, log.FieldEntries, len(batch))
		return &ledger.StatusError{Code: resp.StatusCode}
	}

	c.logger.InfoContext(ctx, "Ledger batch accepted",
		log.FieldStatusCode, resp.StatusCode, log.FieldEntries, len(batch))
	return nil
}
