package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cardamom-auction/internal/approval"
	"cardamom-auction/internal/auction"
	bidding "cardamom-auction/internal/biddingService"
	"cardamom-auction/internal/biddingerrors"
	"cardamom-auction/internal/config"
	"cardamom-auction/internal/feed"
	model "cardamom-auction/internal/models"
	"cardamom-auction/internal/repository"
	"cardamom-auction/internal/settlement"
	"cardamom-auction/utils"

	"github.com/go-redis/redis/v8"
	"github.com/urfave/cli/v2"
)

// application is the wired service graph shared by every command
type application struct {
	cfg   config.Config
	repo  repository.AuctionDB
	hub   *feed.Hub
	relay *feed.RedisRelay

	bidding    *bidding.BiddingService
	auction    *auction.Service
	settlement *settlement.Service
	approval   *approval.Service

	closers []func()
}

func loadConfig(cctx *cli.Context) (config.Config, error) {
	cfg, err := config.LoadConfig(cctx.String("config-dir"))
	if err != nil {
		return config.Config{}, err
	}
	if ll := cctx.String("log-level"); ll != "" {
		cfg.LogLevel = ll
	}
	if err := utils.SetLogLevel(cfg.LogLevel); err != nil {
		return config.Config{}, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	return cfg, nil
}

func openStore(ctx context.Context, cfg config.Config) (repository.AuctionDB, func(), error) {
	if cfg.StoreDriver == config.StoreMemory {
		utils.Warn("store: using in-memory store, data is lost on restart", nil)
		return repository.NewMemoryRepo(), func() {}, nil
	}

	if cfg.MigrateOnBoot {
		applied, err := repository.RunMigrations(cfg.MigrationURL, cfg.PostgresConn)
		if err != nil {
			return nil, nil, err
		}
		utils.Info("store: migrations checked", map[string]any{"applied": applied})
	}

	pool, err := repository.ConnectPostgres(ctx, cfg.PostgresConn)
	if err != nil {
		return nil, nil, err
	}
	return repository.NewPostgresRepo(pool), pool.Close, nil
}

func newApplication(ctx context.Context, cfg config.Config) (*application, error) {
	app := &application{cfg: cfg, hub: feed.NewHub()}

	repo, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	app.repo = repo
	app.closers = append(app.closers, closeStore)

	var notifier feed.Notifier = app.hub
	if cfg.RedisAddr != "" {
		client, err := feed.ConnectRedis(ctx, cfg.RedisAddr)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.closers = append(app.closers, func() { closeRedis(client) })
		app.relay = feed.NewRedisRelay(client, cfg.RedisChannel, app.hub)
		notifier = app.relay
	}

	verifier, err := settlement.NewVerifier(cfg.PaymentGateway, cfg.MercadoPagoAccessToken)
	if err != nil {
		app.Close()
		return nil, err
	}

	app.bidding = bidding.NewBiddingService(repo, notifier, cfg.HighestBidCacheSize, biddingOptions(cfg)...)
	app.auction = auction.NewService(repo, notifier, cfg.AuctionCountdown)
	app.settlement = settlement.NewService(repo, verifier, notifier, cfg.PaymentCurrency)
	app.approval = approval.NewService(repo, notifier)

	if app.relay != nil {
		// bids admitted on another instance invalidate the local highest-bid cache
		app.relay.OnRemote(func(ev feed.Event) { app.bidding.InvalidateLot(ev.LotID) })
	}
	return app, nil
}

// biddingOptions turns the highest-bid cache off when other instances can
// write the ledger without a relay to invalidate it
func biddingOptions(cfg config.Config) []bidding.Option {
	if cfg.SharedStoreWithoutRelay() {
		utils.Warn("bidding: highest-bid cache disabled, no relay for a shared store", map[string]any{"store": cfg.StoreDriver})
		return []bidding.Option{bidding.WithoutCache()}
	}
	return []bidding.Option{bidding.WithCacheTTL(cfg.HighestBidCacheTTL)}
}

// Close releases the store and the Redis client in reverse order of acquisition
func (a *application) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func closeRedis(client *redis.Client) {
	if err := client.Close(); err != nil {
		utils.Warn("feed: closing redis client", map[string]any{"error": err.Error()})
	}
}

// seedDemoLots publishes a few open lots for local development
func seedDemoLots(ctx context.Context, repo repository.AuctionDB) error {
	now := time.Now().UTC()
	demo := []model.Lot{
		{
			LotID:         "demo-lot-1",
			AuctionNumber: "1/" + now.Format("02-01-2006"),
			Minimum:       2650,
			Maximum:       3800,
			AuctionCenter: model.CenterPuttady,
			TotalQuantity: 500,
			Seller:        model.SellerDetails{GradeCode: "8MM", SellerName: "Demo Estate", NumberOfBags: 10, BagSize: 50},
			State:         model.StateBiddingOpen,
			BidValue1:     "50",
			BidValue2:     "100",
		},
		{
			LotID:         "demo-lot-2",
			AuctionNumber: "2/" + now.Format("02-01-2006"),
			Minimum:       1800,
			Maximum:       2400,
			AuctionCenter: model.CenterBodinayakanur,
			TotalQuantity: 250,
			Seller:        model.SellerDetails{GradeCode: "7MM", SellerName: "Demo Estate", NumberOfBags: 5, BagSize: 50},
			State:         model.StateNotStarted,
		},
	}

	for i, lot := range demo {
		lot.PublishedAt = now.Add(-time.Duration(i) * time.Minute)
		lot.LastUpdated = lot.PublishedAt
		if err := repo.CreateLot(ctx, lot); err != nil && !errors.Is(err, biddingerrors.ErrLotExists) {
			return fmt.Errorf("seed lot %s: %w", lot.LotID, err)
		}
	}
	utils.Info("seeded demo lots", map[string]any{"count": len(demo)})
	return nil
}
