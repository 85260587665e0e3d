package ports

import "github.com/aalvaropc/draw/internal/domain"

// ScriptCatalog lists command scripts available in a workspace.
type ScriptCatalog interface {
	ListScripts(root string) ([]domain.ScriptRef, error)
}
