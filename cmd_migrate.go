package main

import (
	"fmt"

	"cardamom-auction/internal/config"
	"cardamom-auction/internal/repository"
	"cardamom-auction/utils"

	"github.com/urfave/cli/v2"
)

var cmdMigrate = &cli.Command{
	Name:  "migrate",
	Usage: "Apply pending SQL migrations to the Postgres store",
	Flags: configFlags,
	Action: func(cctx *cli.Context) error {
		cfg, err := loadConfig(cctx)
		if err != nil {
			return err
		}
		if cfg.StoreDriver != config.StorePostgres {
			return fmt.Errorf("migrate: STORE_DRIVER is %q, nothing to migrate", cfg.StoreDriver)
		}

		applied, err := repository.RunMigrations(cfg.MigrationURL, cfg.PostgresConn)
		if err != nil {
			return err
		}
		utils.Info("migrate: done", map[string]any{"applied": applied, "source": cfg.MigrationURL})
		return nil
	},
}
