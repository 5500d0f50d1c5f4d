package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"inventory-manager/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	overrideFlag bool
	dryRunFlag   bool
)

// extensionsCmd is the parent command for extension operations.
var extensionsCmd = &cobra.Command{
	Use:   "extensions",
	Short: "Stage, load and list inventory extensions",
}

// stageCmd parses the definition files without touching the database.
var stageCmd = &cobra.Command{
	Use:   "stage",
	Short: "Parse definition files and list the staged extensions",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}

		staged, err := rt.inventoryService(nil).Stage(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tVERSION\tDEVICES")
		for _, ext := range staged {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", ext.Meta.ID, ext.Meta.DisplayName, ext.Meta.Version, len(ext.Devices))
		}
		return w.Flush()
	},
}

// loadCmd reconciles the staged extensions against the database.
var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load staged extensions into the database",
	Long: `Stages every definition file and loads it into the database.

Extensions already loaded are only replaced when --override is set and the
staged version is newer. A changed display name always blocks a reload.

Examples:
  # Load new extensions, report conflicts
  extensions load

  # Replace extensions with newer staged versions
  extensions load --override

  # Report what would happen without writing
  extensions load --override --dry-run`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}

		db, err := rt.connect()
		if err != nil {
			return err
		}

		svc := rt.inventoryService(db)
		if err := svc.Migrate(cmd.Context()); err != nil {
			return err
		}

		opts := svc.Defaults()
		if cmd.Flags().Changed("override") {
			opts.Override = overrideFlag
		}
		if cmd.Flags().Changed("dry-run") {
			opts.DryRun = dryRunFlag
		}

		report, err := svc.LoadExtensions(cmd.Context(), opts)
		if report != nil {
			printLoadReport(rt.logger, report)
		}
		if err != nil {
			return err
		}

		if report.DryRun {
			rt.logger.Info("Dry-run mode: No changes were made.")
		}
		return nil
	},
}

// listCmd prints the loaded extensions.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the extensions loaded in the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}

		db, err := rt.connect()
		if err != nil {
			return err
		}

		list, err := rt.inventoryService(db).ListExtensions(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tVERSION")
		for _, ext := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ext.ID, ext.DisplayName, ext.Version)
		}
		return w.Flush()
	},
}

func init() {
	loadCmd.Flags().BoolVar(&overrideFlag, "override", false, "Reload extensions whose staged version is newer")
	loadCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Report decisions without writing to the database")

	extensionsCmd.AddCommand(stageCmd, loadCmd, listCmd)
	RootCmd.AddCommand(extensionsCmd)
}

// printLoadReport logs every conflict followed by the summary.
func printLoadReport(l *zap.Logger, report *reconcile.Report) {
	for _, c := range report.Conflicts {
		fields := []zap.Field{zap.String("id", c.ID.String())}
		if c.NameChange != nil {
			fields = append(fields,
				zap.String("loaded_name", c.NameChange.LoadedName),
				zap.String("staged_name", c.NameChange.StagedName),
			)
		}
		if c.VersionChange != nil {
			fields = append(fields,
				zap.Stringer("loaded_version", c.VersionChange.LoadedVersion),
				zap.Stringer("staged_version", c.VersionChange.StagedVersion),
			)
		}
		l.Info("Conflict", fields...)
	}

	s := report.Summary
	l.Info("Load report",
		zap.Int("staged", s.Staged),
		zap.Int("loaded", s.Loaded),
		zap.Int("reloaded", s.Reloaded),
		zap.Int("skipped", s.Skipped),
		zap.Int("conflicts", s.Conflicts),
		zap.Bool("dry_run", report.DryRun),
	)
}
