package cmd

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"go.uber.org/zap"

	"github.com/ziadkadry99/salaryboard/internal/chart"
	"github.com/ziadkadry99/salaryboard/internal/config"
	"github.com/ziadkadry99/salaryboard/internal/dataset"
	"github.com/ziadkadry99/salaryboard/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `salaryboard init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger returns a development logger with --verbose and a production
// logger otherwise.
func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// chartOptions converts the chart section of the config.
func chartOptions(cfg *config.Config) (chart.Options, error) {
	stroke, err := chart.ParseHexColor(cfg.Chart.StrokeColor)
	if err != nil {
		return chart.Options{}, err
	}
	return chart.Options{
		XMin:        cfg.Chart.XMin,
		XMax:        cfg.Chart.XMax,
		Width:       cfg.Chart.Width,
		Height:      cfg.Chart.Height,
		StrokeColor: stroke,
		StrokeWidth: cfg.Chart.StrokeWidth,
	}, nil
}

// loadBoard fetches the dataset once and renders both views from it.
func loadBoard(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*site.Board, error) {
	ds, err := dataset.Load(ctx, cfg.DataPath)
	if err != nil {
		return nil, err
	}
	logger.Info("dataset loaded",
		zap.String("source", cfg.DataPath),
		zap.Int("records", len(ds)),
		zap.Ints("years", ds.Years()))

	opts, err := chartOptions(cfg)
	if err != nil {
		return nil, err
	}
	return site.NewBoard(ctx, ds, site.BoardOptions{
		Title:     cfg.Title,
		NotesFile: cfg.NotesFile,
		Chart:     opts,
		Logger:    logger,
	})
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
