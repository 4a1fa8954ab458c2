package config

import (
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/manifoldco/promptui"
)

// dataFileGlobs are tried in order when guessing the dataset location.
var dataFileGlobs = []string{
	"data/*salar*.json",
	"**/*salar*.json",
	"data/*.json",
	"*.json",
}

// detectDataFile returns the first JSON file under fsys that looks like a
// dataset, or the default data path when nothing matches.
func detectDataFile(fsys fs.FS) string {
	for _, pattern := range dataFileGlobs {
		matches, err := doublestar.Glob(fsys, pattern)
		if err == nil && len(matches) > 0 {
			return matches[0]
		}
	}
	return DefaultConfig().DataPath
}

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to salaryboard! Let's configure your dashboard.")
	fmt.Println()

	defaults := DefaultConfig()

	// 1. Dataset location.
	dataPrompt := promptui.Prompt{
		Label:   "Dataset (JSON file path or http(s) URL)",
		Default: detectDataFile(os.DirFS(".")),
	}
	dataPath, err := dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data path: %w", err)
	}

	// 2. Page title.
	titlePrompt := promptui.Prompt{
		Label:   "Page title",
		Default: defaults.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}

	// 3. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the static snapshot",
		Default: defaults.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	// 4. Server port.
	portPrompt := promptui.Prompt{
		Label:    "Port for salaryboard serve",
		Default:  strconv.Itoa(defaults.Server.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(portStr)

	cfg := defaults
	cfg.DataPath = dataPath
	cfg.Title = title
	cfg.OutputDir = outputDir
	cfg.Server.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	port, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}
