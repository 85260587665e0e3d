package config

// YAMLConfig mirrors draw.yaml.
type YAMLConfig struct {
	Draw YAMLDraw `yaml:"draw"`
}

type YAMLDraw struct {
	Symbols YAMLSymbols `yaml:"symbols"`
	Paths   YAMLPaths   `yaml:"paths"`
	Reports YAMLReports `yaml:"reports"`
}

type YAMLSymbols struct {
	HorizontalBorder string `yaml:"horizontal_border"`
	VerticalBorder   string `yaml:"vertical_border"`
	Stroke           string `yaml:"stroke"`
	Fill             string `yaml:"fill"`
}

type YAMLPaths struct {
	ScriptsDir string `yaml:"scripts_dir"`
	OutputDir  string `yaml:"output_dir"`
	ReportsDir string `yaml:"reports_dir"`
}

type YAMLReports struct {
	Enabled *bool `yaml:"enabled"`
}
