package config

// Config is the top-level salaryboard configuration, corresponding to .salaryboard.yml.
type Config struct {
	DataPath  string       `yaml:"data_path" koanf:"data_path"`
	OutputDir string       `yaml:"output_dir" koanf:"output_dir"`
	Title     string       `yaml:"title" koanf:"title"`
	NotesFile string       `yaml:"notes_file" koanf:"notes_file"`
	Server    ServerConfig `yaml:"server" koanf:"server"`
	Chart     ChartConfig  `yaml:"chart" koanf:"chart"`
}

// ServerConfig holds settings for `salaryboard serve`.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// ChartConfig holds the fixed layout of the line chart.
type ChartConfig struct {
	XMin        int     `yaml:"x_min" koanf:"x_min"`
	XMax        int     `yaml:"x_max" koanf:"x_max"`
	Width       float64 `yaml:"width" koanf:"width"`
	Height      float64 `yaml:"height" koanf:"height"`
	StrokeColor string  `yaml:"stroke_color" koanf:"stroke_color"`
	StrokeWidth float64 `yaml:"stroke_width" koanf:"stroke_width"`
}
