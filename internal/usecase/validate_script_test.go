package usecase

import (
	"context"
	"testing"

	"github.com/aalvaropc/draw/internal/domain"
)

func TestValidateScript_CountsAppliedCommands(t *testing.T) {
	n, err := NewValidateScript(nil).Execute(context.Background(),
		lines("C 20 4", "L 1 2 6 2", "R 16 1 20 3", "B 10 3 o"))
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if n != 4 {
		t.Fatalf("expected 4 commands, got %d", n)
	}
}

func TestValidateScript_ReportsFailingLine(t *testing.T) {
	n, err := NewValidateScript(nil).Execute(context.Background(),
		lines("C 5 5", "R 1 1 3 3", "B 9 9"))

	if n != 2 {
		t.Fatalf("expected 2 applied commands, got %d", n)
	}
	if !domain.IsKind(err, domain.KindOutOfCanvas) {
		t.Fatalf("expected out_of_canvas, got %v", err)
	}
}
