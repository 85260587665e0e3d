package linesource

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/draw/internal/domain"
)

func readAll(t *testing.T, r *Reader) []string {
	t.Helper()
	var out []string
	for {
		line, err := r.Next(context.Background())
		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		out = append(out, line)
	}
}

func TestReaderTrimsTrailingWhitespace(t *testing.T) {
	r := NewReader(strings.NewReader("C 20 4  \r\nL 1 2 6 2\n\nB 10 3 o"))
	got := readAll(t, r)

	want := []string{"C 20 4", "L 1 2 6 2", "", "B 10 3 o"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestReaderNoExtraLineAfterTrailingNewline(t *testing.T) {
	got := readAll(t, NewReader(strings.NewReader("C 1 1\n")))
	if len(got) != 1 {
		t.Fatalf("expected 1 line, got %q", got)
	}
}

func TestReaderHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewReader(strings.NewReader("C 1 1\n")).Next(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestOpenFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(p, []byte("C 3 3\nR 1 1 2 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := Open(p)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	if got := readAll(t, f.Reader); len(got) != 2 || got[1] != "R 1 1 2 2" {
		t.Fatalf("unexpected lines %q", got)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.txt"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}
