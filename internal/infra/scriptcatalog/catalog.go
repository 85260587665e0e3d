package scriptcatalog

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aalvaropc/draw/internal/domain"
	"github.com/aalvaropc/draw/internal/ports"
)

// ScriptExt is the extension of command scripts.
const ScriptExt = ".txt"

type Catalog struct {
	scriptsDir string
}

type Option func(*Catalog)

func WithScriptsDir(dir string) Option {
	return func(c *Catalog) { c.scriptsDir = dir }
}

func New(opts ...Option) *Catalog {
	c := &Catalog{scriptsDir: "scripts"}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ ports.ScriptCatalog = (*Catalog)(nil)

// Dir returns the scripts directory under root.
func (c *Catalog) Dir(root string) string {
	return filepath.Join(root, c.scriptsDir)
}

// ListScripts returns the scripts directly inside the scripts directory,
// sorted by name.
func (c *Catalog) ListScripts(root string) ([]domain.ScriptRef, error) {
	dir := c.Dir(root)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "scriptcatalog.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.ScriptRef
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.EqualFold(filepath.Ext(name), ScriptExt) {
			continue
		}
		refs = append(refs, domain.ScriptRef{
			Name: strings.TrimSuffix(name, filepath.Ext(name)),
			Path: filepath.Join(dir, name),
		})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

// Find resolves a script by name (with or without extension).
func (c *Catalog) Find(root, name string) (domain.ScriptRef, error) {
	want := strings.TrimSuffix(strings.TrimSpace(name), ScriptExt)

	refs, err := c.ListScripts(root)
	if err != nil {
		return domain.ScriptRef{}, err
	}
	for _, r := range refs {
		if strings.EqualFold(r.Name, want) {
			return r, nil
		}
	}
	return domain.ScriptRef{}, &domain.OpError{
		Op:   "scriptcatalog.find",
		Kind: domain.KindNotFound,
		Path: c.Dir(root),
		Err:  domain.ErrNotFound,
	}
}
