package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup_WritesToWorkspaceLog(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(Config{Root: root})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}

	if err := IsReady(); err != nil {
		t.Fatalf("expected ready logger: %v", err)
	}
	want := filepath.Join(root, ".draw", "logs", "draw.log")
	if Path() != want {
		t.Fatalf("expected path %s, got %s", want, Path())
	}

	L().Info("render.start", "script", "demo")

	if err := cleanup(); err != nil {
		t.Fatalf("cleanup error: %v", err)
	}
	if err := IsReady(); err == nil {
		t.Fatalf("expected logger reset after cleanup")
	}

	b, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), `"msg":"render.start"`) {
		t.Fatalf("expected render.start entry, got:\n%s", b)
	}
}

func TestNew_DebugLevel(t *testing.T) {
	var buf bytes.Buffer

	New(&buf, false).Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected debug to be dropped, got %s", buf.String())
	}

	New(&buf, true).Debug("shown", "k", 1)
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if entry["msg"] != "shown" {
		t.Fatalf("unexpected entry %v", entry)
	}
	if _, ok := entry["source"]; !ok {
		t.Fatalf("expected source attribute in debug mode")
	}
	ts, _ := entry["time"].(string)
	if !strings.HasSuffix(ts, "Z") {
		t.Fatalf("expected UTC timestamp, got %q", ts)
	}
}
