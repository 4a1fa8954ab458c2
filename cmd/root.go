package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/salaryboard/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "salaryboard",
	Short: "Interactive salary and job-count dashboard",
	Long: `Salaryboard loads a per-year salary dataset and renders it as a sortable
summary table with a per-year job-title breakdown and a line chart of
total jobs by year. Render a static snapshot or serve it interactively.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
