package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/draw/internal/domain"
	"github.com/aalvaropc/draw/internal/infra/linesource"
	"github.com/aalvaropc/draw/internal/infra/logger"
	"github.com/aalvaropc/draw/internal/infra/reportstore"
	"github.com/aalvaropc/draw/internal/infra/scriptcatalog"
	"github.com/aalvaropc/draw/internal/infra/workspacefinder"
	"github.com/aalvaropc/draw/internal/ports"
)

// stdinScript is the script argument that reads commands from stdin.
const stdinScript = "-"

type workspaceCtx struct {
	// root is empty when running outside a workspace.
	root string
	cfg  domain.Config

	scripts *scriptcatalog.Catalog
	store   ports.ReportStore
}

// loadWorkspace resolves the workspace from the flag or the working
// directory. Without a flag and without an enclosing workspace, it falls
// back to defaults unless required is set.
func loadWorkspace(workspaceFlag string, required bool) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		if required || strings.TrimSpace(workspaceFlag) != "" {
			return nil, err
		}
		cfg := domain.DefaultConfig()
		return &workspaceCtx{
			cfg:     cfg,
			scripts: scriptcatalog.New(scriptcatalog.WithScriptsDir(cfg.Paths.ScriptsDir)),
		}, nil
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	ws := &workspaceCtx{
		root:    root,
		cfg:     cfg,
		scripts: scriptcatalog.New(scriptcatalog.WithScriptsDir(cfg.Paths.ScriptsDir)),
	}
	if cfg.Reports.Enabled {
		ws.store = reportstore.NewJSONStore(root, cfg,
			reportstore.WithIndex(true),
			reportstore.WithLogger(logger.L()),
		)
	}
	return ws, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	root, err := workspacefinder.NewFinder().FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `draw init`): %w", wd, err)
	}
	return root, nil
}

// resolveScript maps the script argument to a reference: "-" for stdin, an
// existing file path, a path relative to the workspace root, or a script
// name in the workspace scripts directory.
func resolveScript(ws *workspaceCtx, arg string) (domain.ScriptRef, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		return domain.ScriptRef{}, fmt.Errorf("script is required")
	}
	if in == stdinScript {
		return domain.ScriptRef{Name: "stdin", Path: stdinScript}, nil
	}

	if fileExists(in) {
		return scriptRef(in), nil
	}

	if looksLikePath(in) || (hasTextExt(in) && ws.root == "") {
		if ws.root != "" && !filepath.IsAbs(in) {
			p := filepath.Join(ws.root, in)
			if fileExists(p) {
				return scriptRef(p), nil
			}
		}
		return domain.ScriptRef{}, &domain.OpError{
			Op:   "cli.resolve_script",
			Kind: domain.KindNotFound,
			Path: in,
			Err:  domain.ErrNotFound,
		}
	}

	if ws.root == "" {
		return domain.ScriptRef{}, fmt.Errorf("script %q not found (no workspace; pass a file path or run `draw init`)", in)
	}

	ref, err := ws.scripts.Find(ws.root, in)
	if err != nil {
		return domain.ScriptRef{}, fmt.Errorf("script %q not found in %q: %w", in, ws.scripts.Dir(ws.root), err)
	}
	return ref, nil
}

func scriptRef(path string) domain.ScriptRef {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	base := filepath.Base(abs)
	return domain.ScriptRef{
		Name: strings.TrimSuffix(base, filepath.Ext(base)),
		Path: abs,
	}
}

// openSource opens the command lines of ref. The returned close func is
// never nil.
func openSource(ref domain.ScriptRef, stdin io.Reader) (ports.CommandSource, func() error, error) {
	if ref.Path == stdinScript {
		return linesource.NewReader(stdin), func() error { return nil }, nil
	}
	f, err := linesource.Open(ref.Path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func hasTextExt(s string) bool {
	return strings.EqualFold(filepath.Ext(s), scriptcatalog.ScriptExt)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
