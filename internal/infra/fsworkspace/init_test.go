package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/draw/internal/domain"
)

func TestInitializer_Init_CreatesWorkspaceFiles(t *testing.T) {
	tmp := t.TempDir()

	i := NewInitializer()
	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	assertFileExists(t, filepath.Join(tmp, "draw.yaml"))
	assertFileExists(t, filepath.Join(tmp, "scripts", "demo.txt"))
	assertFileExists(t, filepath.Join(tmp, "scripts", "house.txt"))
	assertFileExists(t, filepath.Join(tmp, ".gitignore"))

	for _, d := range []string{"out", "reports", filepath.Join(".draw", "logs")} {
		info, err := os.Stat(filepath.Join(tmp, d))
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s, err=%v", d, err)
		}
	}
}

func TestInitializer_Init_DemoScriptMatchesReference(t *testing.T) {
	tmp := t.TempDir()
	if err := NewInitializer().Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(tmp, "scripts", "demo.txt"))
	if err != nil {
		t.Fatalf("read demo: %v", err)
	}
	if !strings.HasPrefix(string(b), "C 20 4\n") {
		t.Fatalf("expected demo to start with a canvas, got %q", string(b))
	}
}

func TestInitializer_Init_SkipsExistingFilesUnlessForce(t *testing.T) {
	tmp := t.TempDir()

	drawYAML := filepath.Join(tmp, "draw.yaml")
	if err := os.WriteFile(drawYAML, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write existing draw.yaml: %v", err)
	}

	i := NewInitializer()

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init (force=false) error: %v", err)
	}

	b, err := os.ReadFile(drawYAML)
	if err != nil {
		t.Fatalf("read draw.yaml: %v", err)
	}
	if string(b) != "custom\n" {
		t.Fatalf("expected draw.yaml preserved, got %q", string(b))
	}

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, true); err != nil {
		t.Fatalf("Init (force=true) error: %v", err)
	}

	b, err = os.ReadFile(drawYAML)
	if err != nil {
		t.Fatalf("read draw.yaml after force: %v", err)
	}
	if !strings.Contains(string(b), "draw:") {
		t.Fatalf("expected draw.yaml overwritten with template, got %q", string(b))
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file %s, stat err=%v", path, err)
	}
}

func TestTemplateScriptsRender(t *testing.T) {
	entries, err := templatesFS.ReadDir("templates/scripts")
	if err != nil {
		t.Fatalf("read templates: %v", err)
	}

	d := domain.NewDispatcher()
	for _, e := range entries {
		b, err := templatesFS.ReadFile("templates/scripts/" + e.Name())
		if err != nil {
			t.Fatalf("read %s: %v", e.Name(), err)
		}

		var g *domain.Grid
		for n, line := range strings.Split(strings.TrimSuffix(string(b), "\n"), "\n") {
			g, err = d.Apply(g, line)
			if err != nil {
				t.Fatalf("%s line %d %q: %v", e.Name(), n+1, line, err)
			}
		}
	}
}
