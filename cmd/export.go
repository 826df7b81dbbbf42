package cmd

import (
	"fmt"

	"hunterdb/core/config"
	"hunterdb/core/database"
	"hunterdb/core/gamecfg"
	"hunterdb/core/logger"
	"hunterdb/feature/export"
	"hunterdb/feature/validate"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var skipValidation bool

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Assemble the dataset and write it to the database",
	Long: `Runs the full assembly pipeline and writes the dataset to the
configured database. Validation runs first and blocks the export on any
error unless --skip-validation is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
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

		if !skipValidation {
			report := validate.NewRegistry(gc, logg).Run(result.Data)
			for _, line := range report.Lines() {
				fmt.Println(line)
			}
			if report.Failed() {
				errors, _ := report.Counts()
				return fmt.Errorf("validation failed with %d error(s)", errors)
			}
		}

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

		logg.Info("dataset exported", zap.Int("weapons", result.Data.Weapons.Len()),
			zap.Int("armor_pieces", result.Data.Armor.Len()))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(exportCmd)

	exportCmd.Flags().BoolVar(&skipValidation, "skip-validation", false, "Export even if validation reports errors")
}
