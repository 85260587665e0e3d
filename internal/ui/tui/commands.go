package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/draw/internal/domain"
	"github.com/aalvaropc/draw/internal/infra/linesource"
	"github.com/aalvaropc/draw/internal/infra/reportstore"
	"github.com/aalvaropc/draw/internal/infra/scriptcatalog"
	"github.com/aalvaropc/draw/internal/infra/snapshotsink"
	"github.com/aalvaropc/draw/internal/infra/workspacefinder"
	"github.com/aalvaropc/draw/internal/usecase"
)

const renderTimeout = time.Minute

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{found: false, err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: findErr}
		}
		return workspaceRefreshedMsg{cwd: wd, found: true, root: root}
	}
}

func cmdInitWorkspaceHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}

		err := deps.WorkspaceInitializer.Init(domain.WorkspaceSpec{Root: root}, false)
		return initWorkspaceDoneMsg{root: root, err: err}
	}
}

func cmdLoadScripts(root string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := workspacefinder.LoadConfig(root)
		if err != nil {
			return scriptsLoadedMsg{root: root, err: err}
		}

		catalog := scriptcatalog.New(scriptcatalog.WithScriptsDir(cfg.Paths.ScriptsDir))
		refs, err := catalog.ListScripts(root)
		return scriptsLoadedMsg{root: root, refs: refs, err: err}
	}
}

func listenRender(ch <-chan renderDoneMsg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return renderDoneMsg{err: errors.New("render channel closed")}
		}
		return msg
	}
}

// startRenderAsync renders script in the background, recording every
// snapshot. An empty root renders with default symbols and saves no report.
func startRenderAsync(root string, script domain.ScriptRef, log *slog.Logger) (chan renderDoneMsg, tea.Cmd) {
	ch := make(chan renderDoneMsg, 1)

	if log == nil {
		log = slog.Default()
	}

	go func() {
		defer close(ch)

		cfg := domain.DefaultConfig()
		if root != "" {
			loaded, err := workspacefinder.LoadConfig(root)
			if err != nil {
				log.Error("view.load_config.failed", "err", err)
				ch <- renderDoneMsg{script: script, err: err}
				return
			}
			cfg = loaded
		}

		src, err := linesource.Open(script.Path)
		if err != nil {
			ch <- renderDoneMsg{script: script, err: err}
			return
		}
		defer func() { _ = src.Close() }()

		opts := []usecase.RenderOption{usecase.WithLogger(log)}
		if root != "" && cfg.Reports.Enabled {
			opts = append(opts, usecase.WithReportStore(
				reportstore.NewJSONStore(root, cfg, reportstore.WithIndex(true), reportstore.WithLogger(log)),
			))
		}

		rec := &snapshotsink.Recorder{}
		d := domain.NewDispatcher(domain.WithSymbols(cfg.Symbols))
		uc := usecase.NewRenderScript(d, rec, opts...)

		ctx, cancel := context.WithTimeout(context.Background(), renderTimeout)
		defer cancel()

		report, execErr := uc.Execute(ctx, script, src)
		ch <- renderDoneMsg{script: script, snapshots: rec.Snapshots, report: report, err: execErr}
	}()

	return ch, listenRender(ch)
}
