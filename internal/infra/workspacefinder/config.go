package workspacefinder

import (
	"path/filepath"

	"github.com/aalvaropc/draw/internal/domain"
	"github.com/aalvaropc/draw/internal/infra/config"
)

// LoadConfig loads draw.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	return config.Load(ConfigPath(root))
}

// ConfigPath is the draw.yaml location for a workspace root.
func ConfigPath(root string) string {
	return filepath.Join(root, ConfigFileName)
}
