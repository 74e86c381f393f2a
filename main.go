package main

import (
	"os"

	"cardamom-auction/utils"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v2"
)

var configFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "config-dir",
		Value: ".",
		Usage: "directory holding an optional app.env",
	},
	&cli.StringFlag{
		Name:  "log-level",
		Usage: "overrides LOG_LEVEL",
	},
}

func main() {
	app := &cli.App{
		Name:   "cardamom-auction",
		Usage:  "live cardamom auction service",
		Flags:  configFlags,
		Action: serveAction,
		Commands: []*cli.Command{
			cmdServe,
			cmdMigrate,
			cmdReconcile,
		},
	}

	if err := app.Run(os.Args); err != nil {
		utils.Fatal("cardamom-auction: exiting", map[string]any{"error": err.Error()})
	}
}
