package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/draw/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// userMessage turns err into a one-line message fit for the status bar.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var ce *domain.CommandError
	if errors.As(err, &ce) {
		return fmt.Sprintf("Line %d: %s", ce.Line, shapeMessage(ce.Err))
	}
	if msg := shapeMessage(err); msg != "" {
		return msg
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindNotFound:
			switch {
			case strings.HasPrefix(oe.Op, "scriptcatalog"), strings.HasPrefix(oe.Op, "linesource"):
				return "Script not found"
			case strings.HasPrefix(oe.Op, "workspacefinder.findroot"):
				return "Workspace not found"
			case strings.HasPrefix(oe.Op, "config.load"):
				return "draw.yaml not found"
			}
			return "Not found"

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}
			if line := extractLine(err.Error()); line != "" {
				return "Invalid YAML at " + base + " line " + line
			}
			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			if errors.Is(err, domain.ErrInvalidSymbol) {
				return "Invalid symbol in " + base
			}
			return "Invalid config"
		}
	}

	return "Unexpected error (see logs)"
}

// shapeMessage describes a drawing error, or returns "" for other errors.
func shapeMessage(err error) string {
	var (
		unknown *domain.UnknownShapeError
		arity   *domain.ArityError
		constr  *domain.ConstructionError
		noCanv  *domain.NoCanvasError
		outside *domain.OutOfCanvasError
	)
	switch {
	case errors.As(err, &unknown):
		if unknown.Key == "" {
			return "Empty command"
		}
		return fmt.Sprintf("Unknown command %q", unknown.Key)
	case errors.As(err, &arity):
		return arity.Error()
	case errors.As(err, &constr):
		return fmt.Sprintf("Invalid %s parameters: %v", constr.Shape, constr.Err)
	case errors.As(err, &noCanv):
		return "Create a canvas first (C <width> <height>)"
	case errors.As(err, &outside):
		return fmt.Sprintf("%s point %s is outside the canvas", outside.Shape, outside.Point)
	}
	return ""
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
