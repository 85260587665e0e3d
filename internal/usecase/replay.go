package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/aalvaropc/draw/internal/domain"
	"github.com/aalvaropc/draw/internal/ports"
)

// replay feeds every line of src through d, calling emit after each
// successfully applied command. It stops on the first failure; shape
// errors come back wrapped in *domain.CommandError.
func replay(
	ctx context.Context,
	d *domain.Dispatcher,
	src ports.CommandSource,
	log *slog.Logger,
	emit func(domain.Snapshot) error,
) (*domain.Grid, []domain.CommandResult, error) {
	var (
		grid    *domain.Grid
		results []domain.CommandResult
	)

	for lineNo := 1; ; lineNo++ {
		if err := ctx.Err(); err != nil {
			return grid, results, err
		}

		line, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			return grid, results, nil
		}
		if err != nil {
			return grid, results, err
		}

		shape, err := d.Parse(line)
		if err == nil {
			var next *domain.Grid
			next, err = d.Draw(grid, shape)
			if err == nil {
				grid = next
			}
		}
		if err != nil {
			return grid, results, &domain.CommandError{Line: lineNo, Command: line, Err: err}
		}

		results = append(results, domain.CommandResult{
			Line:    lineNo,
			Command: line,
			Shape:   shape.Kind(),
		})
		log.Debug("render.command", "line", lineNo, "shape", string(shape.Kind()))

		if emit == nil {
			continue
		}
		snap := domain.Snapshot{
			Index:   len(results),
			Line:    lineNo,
			Command: line,
			Text:    grid.String(),
		}
		if err := emit(snap); err != nil {
			return grid, results, &domain.OpError{
				Op:   "render.emit",
				Kind: domain.KindExecution,
				Err:  err,
			}
		}
	}
}
