package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cardamom-auction/internal/server"
	"cardamom-auction/utils"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

var cmdServe = &cli.Command{
	Name:   "serve",
	Usage:  "Start the HTTP API",
	Flags:  configFlags,
	Action: serveAction,
}

func serveAction(cctx *cli.Context) error {
	cfg, err := loadConfig(cctx)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cctx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := newApplication(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	if cfg.SeedDemoLots {
		if err := seedDemoLots(ctx, app.repo); err != nil {
			return err
		}
	}

	router := server.SetupRouter(server.Services{
		Bidding:    app.bidding,
		Auction:    app.auction,
		Settlement: app.settlement,
		Approval:   app.approval,
		Feed:       app.hub,
	})
	srv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		utils.Info("Starting auction server", map[string]any{"address": cfg.ServerAddress, "store": cfg.StoreDriver})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if app.relay != nil {
		g.Go(func() error { return app.relay.Run(gctx) })
	}

	g.Go(func() error {
		<-gctx.Done()
		utils.Info("Shutting down auction server", nil)

		// pending countdowns are dropped; their lots stay open for a manual close
		app.auction.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
