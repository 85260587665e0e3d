package usecase

import (
	"context"

	"github.com/aalvaropc/draw/internal/domain"
	"github.com/aalvaropc/draw/internal/infra/logger"
	"github.com/aalvaropc/draw/internal/ports"
)

type ValidateScript struct {
	dispatcher *domain.Dispatcher
}

func NewValidateScript(d *domain.Dispatcher) *ValidateScript {
	if d == nil {
		d = domain.NewDispatcher()
	}
	return &ValidateScript{dispatcher: d}
}

// Execute replays src without emitting snapshots and returns how many
// commands applied before the end of input or the first failure.
func (uc *ValidateScript) Execute(ctx context.Context, src ports.CommandSource) (int, error) {
	_, results, err := replay(ctx, uc.dispatcher, src, logger.Discard(), nil)
	return len(results), err
}
