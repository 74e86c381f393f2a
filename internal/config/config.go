package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"

	GatewayMock        = "mock"
	GatewayMercadoPago = "mercadopago"
)

// Config holds the application settings
type Config struct {
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	StoreDriver   string `mapstructure:"STORE_DRIVER"`
	PostgresConn  string `mapstructure:"POSTGRES_CONN"`
	MigrationURL  string `mapstructure:"MIGRATION_URL"`
	MigrateOnBoot bool   `mapstructure:"MIGRATE_ON_BOOT"`

	RedisAddr    string `mapstructure:"REDIS_ADDR"`
	RedisChannel string `mapstructure:"REDIS_CHANNEL"`

	LogLevel            string        `mapstructure:"LOG_LEVEL"`
	AuctionCountdown    time.Duration `mapstructure:"AUCTION_COUNTDOWN"`
	HighestBidCacheSize int           `mapstructure:"HIGHEST_BID_CACHE_SIZE"`
	HighestBidCacheTTL  time.Duration `mapstructure:"HIGHEST_BID_CACHE_TTL"`

	PaymentGateway         string `mapstructure:"PAYMENT_GATEWAY"`
	MercadoPagoAccessToken string `mapstructure:"MERCADOPAGO_ACCESS_TOKEN"`
	PaymentCurrency        string `mapstructure:"PAYMENT_CURRENCY"`

	SeedDemoLots bool `mapstructure:"SEED_DEMO_LOTS"`
}

var defaults = map[string]any{
	"SERVER_ADDRESS":           ":8080",
	"STORE_DRIVER":             StoreMemory,
	"POSTGRES_CONN":            "",
	"MIGRATION_URL":            "file://migrations",
	"MIGRATE_ON_BOOT":          false,
	"REDIS_ADDR":               "",
	"REDIS_CHANNEL":            "auction-events",
	"LOG_LEVEL":                "info",
	"AUCTION_COUNTDOWN":        "20s",
	"HIGHEST_BID_CACHE_SIZE":   1024,
	"HIGHEST_BID_CACHE_TTL":    "2s",
	"PAYMENT_GATEWAY":          GatewayMock,
	"MERCADOPAGO_ACCESS_TOKEN": "",
	"PAYMENT_CURRENCY":         "INR",
	"SEED_DEMO_LOTS":           false,
}

// LoadConfig reads app.env from path when present and lets environment variables override it
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: reading app.env: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SharedStoreWithoutRelay reports whether other instances can write the ledger
// without this instance hearing about it
func (c Config) SharedStoreWithoutRelay() bool {
	return c.StoreDriver == StorePostgres && c.RedisAddr == ""
}

// Validate rejects combinations the service cannot start with
func (c Config) Validate() error {
	switch c.StoreDriver {
	case StoreMemory:
	case StorePostgres:
		if c.PostgresConn == "" {
			return fmt.Errorf("config: POSTGRES_CONN is required when STORE_DRIVER=%s", StorePostgres)
		}
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q", c.StoreDriver)
	}

	switch c.PaymentGateway {
	case GatewayMock:
	case GatewayMercadoPago:
		if c.MercadoPagoAccessToken == "" {
			return fmt.Errorf("config: MERCADOPAGO_ACCESS_TOKEN is required when PAYMENT_GATEWAY=%s", GatewayMercadoPago)
		}
	default:
		return fmt.Errorf("config: unknown PAYMENT_GATEWAY %q", c.PaymentGateway)
	}

	if c.AuctionCountdown <= 0 {
		return fmt.Errorf("config: AUCTION_COUNTDOWN must be positive")
	}
	if c.HighestBidCacheSize <= 0 {
		return fmt.Errorf("config: HIGHEST_BID_CACHE_SIZE must be positive")
	}
	if c.HighestBidCacheTTL <= 0 {
		return fmt.Errorf("config: HIGHEST_BID_CACHE_TTL must be positive")
	}
	return nil
}
