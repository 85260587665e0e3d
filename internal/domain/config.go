package domain

// Config represents the workspace configuration loaded from draw.yaml.
type Config struct {
	Symbols Symbols
	Paths   PathsConfig
	Reports ReportsConfig
}

// Symbols are the characters shapes draw with.
type Symbols struct {
	HorizontalBorder rune
	VerticalBorder   rune
	Stroke           rune
	Fill             rune
}

type PathsConfig struct {
	ScriptsDir string
	OutputDir  string
	ReportsDir string
}

type ReportsConfig struct {
	Enabled bool
}

// DefaultSymbols are the symbols used when draw.yaml does not override them.
func DefaultSymbols() Symbols {
	return Symbols{
		HorizontalBorder: '-',
		VerticalBorder:   '|',
		Stroke:           'x',
		Fill:             'o',
	}
}

// DefaultConfig provides sane defaults if draw.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Symbols: DefaultSymbols(),
		Paths: PathsConfig{
			ScriptsDir: "scripts",
			OutputDir:  "out",
			ReportsDir: "reports",
		},
		Reports: ReportsConfig{Enabled: true},
	}
}
