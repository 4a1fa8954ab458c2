package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/salaryboard/internal/site"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write a static snapshot of the dashboard",
	Long:  `Loads the dataset and writes index.html with its stylesheet, script, chart and a copy of the data. The snapshot shows the initial state; sorting and drill-down need "salaryboard serve".`,
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().String("output", "", "override output directory (defaults to output_dir from config)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Sync()

	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.OutputDir = out
	}

	board, err := loadBoard(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}

	n, err := site.NewSiteGenerator(cfg.OutputDir, logger).Generate(board)
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	logger.Info("snapshot written", zap.String("dir", cfg.OutputDir), zap.Int("files", n))
	fmt.Printf("Static snapshot generated: %s (%d files)\n", cfg.OutputDir, n)
	return nil
}
