package cmd

import (
	"github.com/spf13/cobra"
)

// migrateCmd creates or updates the inventory tables.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the inventory tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}

		db, err := rt.connect()
		if err != nil {
			return err
		}

		if err := rt.inventoryService(db).Migrate(cmd.Context()); err != nil {
			return err
		}
		rt.logger.Info("Inventory tables are up to date.")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
