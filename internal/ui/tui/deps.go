package tui

import (
	"log/slog"

	"github.com/aalvaropc/draw/internal/domain"
	"github.com/aalvaropc/draw/internal/ports"
)

type Deps struct {
	WorkspaceLocator     ports.WorkspaceLocator
	WorkspaceInitializer ports.WorkspaceInitializer

	// WorkspaceRoot overrides workspace discovery when set.
	WorkspaceRoot string
	// Script, when set, is rendered on start and the viewer opens on its frames.
	Script *domain.ScriptRef

	Logger *slog.Logger
	Debug  bool
}
