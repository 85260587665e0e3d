package tui

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aalvaropc/draw/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

// clampLines crops text to at most maxRows lines of maxCols runes each.
func clampLines(text string, maxCols, maxRows int) string {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	cropped := false
	if maxRows > 0 && len(lines) > maxRows {
		lines = lines[:maxRows]
		cropped = true
	}
	if maxCols > 0 {
		for i, l := range lines {
			lines[i] = clampString(l, maxCols)
		}
	}
	out := strings.Join(lines, "\n")
	if cropped {
		out += "\n…"
	}
	return out
}

func frameTitle(s domain.Snapshot) string {
	return fmt.Sprintf("#%d  %s", s.Index, s.Command)
}

func frameDescription(s domain.Snapshot) string {
	return fmt.Sprintf("line %d", s.Line)
}

// renderReportSummary describes the outcome of a render for the status card.
func renderReportSummary(r domain.RenderReport, err error) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Script: %s\n", r.ScriptName)
	fmt.Fprintf(&b, "Commands applied: %d\n", len(r.Commands))
	if r.Cols > 0 {
		fmt.Fprintf(&b, "Canvas: %dx%d\n", r.Cols-2, r.Rows-2)
	}
	if !r.StartedAt.IsZero() && !r.EndedAt.IsZero() {
		fmt.Fprintf(&b, "Duration: %s\n", r.EndedAt.Sub(r.StartedAt).Round(time.Microsecond))
	}
	if r.ID != "" {
		fmt.Fprintf(&b, "Report: %s\n", r.ID)
	}
	if err != nil {
		b.WriteString("\nError:\n  ")
		b.WriteString(userMessage(err))
		if r.Error != nil && r.Error.Command != "" {
			fmt.Fprintf(&b, "\n  command: %s", r.Error.Command)
		}
		b.WriteString("\n")
	}
	return b.String()
}
