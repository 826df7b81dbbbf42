package cmd

import (
	"fmt"

	"hunterdb/core/config"
	"hunterdb/core/gamecfg"
	"hunterdb/core/logger"
	"hunterdb/feature/validate"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Assemble the dataset and report validation issues",
	Long: `Runs the full assembly pipeline and the cross-entity validation rules
without writing anything. Exits nonzero if any rule reports an error;
warnings are printed but never fail the run.`,
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

		report := validate.NewRegistry(gc, logg).Run(result.Data)
		for _, line := range report.Lines() {
			fmt.Println(line)
		}

		errors, warnings := report.Counts()
		logg.Info("validation finished",
			zap.Int("errors", errors),
			zap.Int("warnings", warnings))

		if report.Failed() {
			return fmt.Errorf("validation failed with %d error(s)", errors)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}
