package tui

import "github.com/aalvaropc/draw/internal/domain"

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

type scriptsLoadedMsg struct {
	root string
	refs []domain.ScriptRef
	err  error
}

type renderDoneMsg struct {
	script    domain.ScriptRef
	snapshots []domain.Snapshot
	report    domain.RenderReport
	err       error
}
