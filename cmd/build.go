package cmd

import (
	"fmt"

	"hunterdb/core/config"
	"hunterdb/core/database"
	"hunterdb/core/gamecfg"
	"hunterdb/core/logger"
	"hunterdb/core/storage"
	"hunterdb/feature/artifacts"
	"hunterdb/feature/export"
	"hunterdb/feature/validate"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exportFlag bool
var publishFlag bool

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Assemble and validate the companion database",
	Long: `Assembles weapon trees and armor series from the decoded game records,
merges them with the curated collections, and cross-validates the result.
With --export the validated dataset is written to the database; with
--publish the run artifacts are uploaded to object storage.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		gc := gamecfg.Default()

		result, err := buildDataset(cfg, gc, logg)
		if err != nil {
			return fmt.Errorf("build failed: %w", err)
		}

		report := validate.NewRegistry(gc, logg).Run(result.Data)
		for _, line := range report.Lines() {
			fmt.Println(line)
		}
		errors, warnings := report.Counts()
		logg.Info("validation finished",
			zap.Int("errors", errors),
			zap.Int("warnings", warnings))

		if publishFlag {
			client, err := storage.NewClient(cfg.Storage)
			if err != nil {
				return fmt.Errorf("failed to create storage client: %w", err)
			}
			publisher := artifacts.NewPublisher(client, cfg.Storage.Bucket, logg)

			if err := publisher.WriteListing(ctx, "weapons_crafted.csv", result.CraftedLines); err != nil {
				return err
			}
			if err := publisher.WriteListing(ctx, "weapons_isolated.csv", result.IsolatedLines); err != nil {
				return err
			}
			runID, err := publisher.PublishReport(ctx, report)
			if err != nil {
				return err
			}
			logg.Info("artifacts published", zap.String("run_id", runID))
		}

		if report.Failed() {
			return fmt.Errorf("validation failed with %d error(s)", errors)
		}

		if exportFlag {
			db, err := database.Connect(cfg.Database)
			if err != nil {
				return fmt.Errorf("database connection required: %w", err)
			}
			if err := export.Migrate(db); err != nil {
				return fmt.Errorf("failed to migrate export schema: %w", err)
			}
			if err := export.Export(db, result.Data, logg); err != nil {
				return err
			}
			logg.Info("dataset exported")
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(buildCmd)

	buildCmd.Flags().BoolVar(&exportFlag, "export", false, "Write the validated dataset to the database")
	buildCmd.Flags().BoolVar(&publishFlag, "publish", false, "Upload run artifacts to object storage")
}
