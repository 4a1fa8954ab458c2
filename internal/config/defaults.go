package config

// DefaultConfigFile is the config path used when --config is not given.
const DefaultConfigFile = ".salaryboard.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		DataPath:  "data/ml_engineer_salaries.json",
		OutputDir: "site",
		Title:     "ML Engineer Salaries",
		Server: ServerConfig{
			Port: 8080,
		},
		Chart: ChartConfig{
			XMin:        2020,
			XMax:        2024,
			Width:       800,
			Height:      400,
			StrokeColor: "#4682b4",
			StrokeWidth: 1.5,
		},
	}
}
