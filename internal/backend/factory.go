// Package backend assembles the ledger gateway and the optional event
// publisher from configuration.
package backend

import (
	"context"
	"fmt"

	"github.com/CuelloDiego/Cierre-de-caja/internal/amqp"
	"github.com/CuelloDiego/Cierre-de-caja/internal/config"
	"github.com/CuelloDiego/Cierre-de-caja/internal/ledger"
	"github.com/CuelloDiego/Cierre-de-caja/internal/ledger/memory"
	"github.com/CuelloDiego/Cierre-de-caja/internal/ledger/sheets"
	"github.com/CuelloDiego/Cierre-de-caja/internal/ledger/webhook"
	"github.com/CuelloDiego/Cierre-de-caja/internal/log"
)

// Result holds everything the backend wiring produced. Events is nil
// when AMQP is not configured or unreachable.
type Result struct {
	Poster ledger.Poster
	Events *amqp.Client
}

// Close releases what the factory opened.
func (r *Result) Close() error {
	if r.Events != nil {
		return r.Events.Close()
	}
	return nil
}

// New builds the configured ledger gateway. An unreachable AMQP broker
// only disables events; a broken gateway is fatal since closings would
// have nowhere to go.
func New(ctx context.Context, cfg *config.Config, logger *log.Logger) (*Result, error) {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	result := &Result{}

	switch cfg.LedgerBackend {
	case "sheets":
		client, err := sheets.NewFromEnv(ctx, logger)
		if err != nil {
			return nil, fmt.Errorf("initialize sheets gateway: %w", err)
		}
		result.Poster = client
	case "memory":
		result.Poster = memory.New()
	case "webhook":
		result.Poster = webhook.New(cfg.WebhookURL, cfg.SubmitTimeout, logger)
	default:
		return nil, fmt.Errorf("unknown ledger backend %q", cfg.LedgerBackend)
	}
	logger.Info("Initialized ledger gateway", log.FieldBackend, cfg.LedgerBackend)

	if cfg.AMQPURL != "" {
		client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue, logger)
		if err != nil {
			// Events are a convenience; the form still works without them.
			logger.Warn("AMQP unavailable, closing events disabled", log.FieldError, err)
		} else {
			result.Events = client
		}
	}

	return result, nil
}
