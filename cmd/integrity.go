package cmd

import (
	"context"
	"sort"

	"inventory-manager/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on storage, database and definitions",
	Long:  `Checks the bucket layout, the inventory database schema and every extension definition file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cmd.Help()
		}
		return runIntegrityChecks(cmd.Context(), true, true, true)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix the bucket layout",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false, false)
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the inventory database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true, false)
	},
}

// definitionsCmd represents the integrity definitions command
var definitionsCmd = &cobra.Command{
	Use:   "definitions",
	Short: "Parse every extension definition file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, schemaCmd, definitionsCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the missing extension prefix")
}

func runIntegrityChecks(ctx context.Context, runStructure, runSchema, runDefinitions bool) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	logg := rt.logger

	// The database is only required by the schema check.
	var db *gorm.DB
	if conn, err := rt.connect(); err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
	} else {
		db = conn
	}

	svc := integrity.NewService(rt.client, rt.cfg.Storage.Bucket, rt.cfg.Source.Prefix, rt.source, db, logg)

	if runStructure {
		logg.Info("Checking bucket structure...")
		missing, err := svc.CheckStructure(ctx)
		if err != nil {
			return err
		}

		if len(missing) == 0 {
			logg.Info("Structure is intact.")
		} else {
			logg.Warn("Missing folders detected", zap.Strings("missing", missing))

			if fixFlag {
				logg.Info("Fixing missing folders...")
				if err := svc.FixStructure(ctx, missing); err != nil {
					return err
				}
				logg.Info("Structure fixed successfully.")
			} else {
				logg.Info("Run with --fix to create missing folders.")
			}
		}
	}

	if runSchema {
		logg.Info("Checking database schema...", zap.String("driver", rt.cfg.Database.Driver))
		report, err := svc.CheckSchema()
		if err != nil {
			logg.Error("Schema check failed", zap.Error(err))
		} else if report.Matched {
			logg.Info("Database schema matches expected definition.")
		} else {
			tables := make([]string, 0, len(report.Tables))
			for table := range report.Tables {
				tables = append(tables, table)
			}
			sort.Strings(tables)

			for _, table := range tables {
				tbl := report.Tables[table]
				switch {
				case !tbl.Exists:
					logg.Warn("Missing table", zap.String("table", table))
				case len(tbl.MissingColumns) > 0:
					logg.Warn("Missing columns", zap.String("table", table), zap.Strings("columns", tbl.MissingColumns))
				}
			}
			for _, e := range report.Errors {
				logg.Error("Inspection error", zap.String("error", e))
			}
		}
	}

	if runDefinitions {
		logg.Info("Checking definition files...")
		report, err := svc.CheckDefinitions(ctx)
		if err != nil {
			return err
		}

		for name, problem := range report.Invalid {
			logg.Warn("Invalid definition file", zap.String("file", name), zap.String("error", problem))
		}
		logg.Info("Definition files checked",
			zap.Int("total", report.Total),
			zap.Int("valid", len(report.Valid)),
			zap.Int("invalid", len(report.Invalid)),
		)
	}

	return nil
}
