package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/draw/internal/domain"
)

// MapConfig applies the values set in yc on top of the defaults.
func MapConfig(path string, yc YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	symbols := []struct {
		field string
		raw   string
		dst   *rune
	}{
		{"symbols.horizontal_border", yc.Draw.Symbols.HorizontalBorder, &cfg.Symbols.HorizontalBorder},
		{"symbols.vertical_border", yc.Draw.Symbols.VerticalBorder, &cfg.Symbols.VerticalBorder},
		{"symbols.stroke", yc.Draw.Symbols.Stroke, &cfg.Symbols.Stroke},
		{"symbols.fill", yc.Draw.Symbols.Fill, &cfg.Symbols.Fill},
	}
	for _, s := range symbols {
		if s.raw == "" {
			continue
		}
		r, err := domain.ParseSymbol(s.raw)
		if err != nil {
			return cfg, &domain.OpError{
				Op:   "config.map",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  fmt.Errorf("field %s: %w", s.field, err),
			}
		}
		*s.dst = r
	}

	dirs := []struct {
		field string
		raw   string
		dst   *string
	}{
		{"paths.scripts_dir", yc.Draw.Paths.ScriptsDir, &cfg.Paths.ScriptsDir},
		{"paths.output_dir", yc.Draw.Paths.OutputDir, &cfg.Paths.OutputDir},
		{"paths.reports_dir", yc.Draw.Paths.ReportsDir, &cfg.Paths.ReportsDir},
	}
	for _, d := range dirs {
		raw := strings.TrimSpace(d.raw)
		if raw == "" {
			continue
		}
		if err := checkRelative(raw); err != nil {
			return cfg, invalidField(path, d.field, err.Error())
		}
		*d.dst = filepath.Clean(raw)
	}

	if yc.Draw.Reports.Enabled != nil {
		cfg.Reports.Enabled = *yc.Draw.Reports.Enabled
	}

	return cfg, nil
}

// checkRelative rejects directories that leave the workspace root.
func checkRelative(dir string) error {
	if filepath.IsAbs(dir) {
		return fmt.Errorf("%q must be relative to the workspace root", dir)
	}
	clean := filepath.Clean(dir)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%q points outside the workspace", dir)
	}
	return nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
