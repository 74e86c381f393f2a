package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.ServerAddress)
	require.Equal(t, StoreMemory, cfg.StoreDriver)
	require.Equal(t, "auction-events", cfg.RedisChannel)
	require.Equal(t, 20*time.Second, cfg.AuctionCountdown)
	require.Equal(t, 1024, cfg.HighestBidCacheSize)
	require.Equal(t, 2*time.Second, cfg.HighestBidCacheTTL)
	require.Equal(t, GatewayMock, cfg.PaymentGateway)
	require.Equal(t, "INR", cfg.PaymentCurrency)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	content := "SERVER_ADDRESS=:9090\nAUCTION_COUNTDOWN=45s\nSEED_DEMO_LOTS=true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o600))

	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.ServerAddress)
	require.Equal(t, 45*time.Second, cfg.AuctionCountdown)
	require.True(t, cfg.SeedDemoLots)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		StoreDriver:         StoreMemory,
		PaymentGateway:      GatewayMock,
		AuctionCountdown:    time.Second,
		HighestBidCacheSize: 16,
		HighestBidCacheTTL:  time.Second,
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "postgres_without_dsn", mutate: func(c *Config) { c.StoreDriver = StorePostgres }, wantErr: true},
		{name: "postgres_with_dsn", mutate: func(c *Config) { c.StoreDriver = StorePostgres; c.PostgresConn = "postgres://x" }},
		{name: "unknown_store", mutate: func(c *Config) { c.StoreDriver = "mongo" }, wantErr: true},
		{name: "mercadopago_without_token", mutate: func(c *Config) { c.PaymentGateway = GatewayMercadoPago }, wantErr: true},
		{name: "unknown_gateway", mutate: func(c *Config) { c.PaymentGateway = "paypal" }, wantErr: true},
		{name: "zero_countdown", mutate: func(c *Config) { c.AuctionCountdown = 0 }, wantErr: true},
		{name: "zero_cache", mutate: func(c *Config) { c.HighestBidCacheSize = 0 }, wantErr: true},
		{name: "zero_cache_ttl", mutate: func(c *Config) { c.HighestBidCacheTTL = 0 }, wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestConfig_SharedStoreWithoutRelay(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		shared bool
	}{
		{name: "memory", cfg: Config{StoreDriver: StoreMemory}},
		{name: "postgres_with_redis", cfg: Config{StoreDriver: StorePostgres, RedisAddr: "localhost:6379"}},
		{name: "postgres_alone", cfg: Config{StoreDriver: StorePostgres}, shared: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.shared, tc.cfg.SharedStoreWithoutRelay())
		})
	}
}
