package main

import (
	"cardamom-auction/utils"

	"github.com/urfave/cli/v2"
)

var cmdReconcile = &cli.Command{
	Name:  "reconcile",
	Usage: "Re-derive the paid flag of every sold lot from its payment record and exit",
	Flags: configFlags,
	Action: func(cctx *cli.Context) error {
		cfg, err := loadConfig(cctx)
		if err != nil {
			return err
		}

		app, err := newApplication(cctx.Context, cfg)
		if err != nil {
			return err
		}
		defer app.Close()

		repaired, err := app.settlement.ReconcileAll(cctx.Context)
		for _, lotID := range repaired {
			utils.Info("reconcile: repaired lot", map[string]any{"lot_id": lotID})
		}
		return err
	},
}
