package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/CuelloDiego/Cierre-de-caja/internal/backend"
	"github.com/CuelloDiego/Cierre-de-caja/internal/cli"
	"github.com/CuelloDiego/Cierre-de-caja/internal/closing"
	"github.com/CuelloDiego/Cierre-de-caja/internal/form"
	apphttp "github.com/CuelloDiego/Cierre-de-caja/internal/http"
	"github.com/CuelloDiego/Cierre-de-caja/internal/ledger"
	"github.com/CuelloDiego/Cierre-de-caja/internal/log"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	ctx, bounded := cli.ShutdownContext(30 * time.Second)

	gateways, err := backend.New(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize ledger gateway", log.FieldError, err)
		os.Exit(1)
	}

	opts := []closing.Option{closing.WithIdleDelay(cfg.IdleDelay)}
	if gateways.Events != nil {
		opts = append(opts, closing.WithEvents(gateways.Events))
	}

	state := form.NewWithSeed(cfg.CashDenominations)
	history := ledger.NewHistory()
	svc := closing.New(state, gateways.Poster, history, logger, opts...)

	srv := apphttp.NewServer(":"+cfg.Port, state, svc, history, logger)
	srv.ReadTimeout = 10 * time.Second
	// Submit blocks on the gateway, so writes get headroom beyond it.
	srv.WriteTimeout = cfg.SubmitTimeout + 5*time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting cierre server", "port", cfg.Port, log.FieldBackend, cfg.LedgerBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := bounded()
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	_ = gateways.Close()
	if err != nil {
		logger.Error("Server error", log.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
