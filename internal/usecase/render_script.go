package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/aalvaropc/draw/internal/domain"
	"github.com/aalvaropc/draw/internal/infra/logger"
	"github.com/aalvaropc/draw/internal/ports"
)

type RenderScript struct {
	dispatcher *domain.Dispatcher
	sink       ports.SnapshotSink
	store      ports.ReportStore
	log        *slog.Logger
	now        func() time.Time
}

type RenderOption func(*RenderScript)

// WithReportStore persists a report after every run, failed or not.
func WithReportStore(s ports.ReportStore) RenderOption {
	return func(uc *RenderScript) { uc.store = s }
}

func WithLogger(l *slog.Logger) RenderOption {
	return func(uc *RenderScript) {
		if l != nil {
			uc.log = l
		}
	}
}

func WithClock(now func() time.Time) RenderOption {
	return func(uc *RenderScript) {
		if now != nil {
			uc.now = now
		}
	}
}

func NewRenderScript(d *domain.Dispatcher, sink ports.SnapshotSink, opts ...RenderOption) *RenderScript {
	if d == nil {
		d = domain.NewDispatcher()
	}
	uc := &RenderScript{
		dispatcher: d,
		sink:       sink,
		log:        logger.Discard(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute runs every command of src, emitting one snapshot per applied
// command. The first failing command stops the run and is returned as a
// *domain.CommandError. The report is returned in both cases.
func (uc *RenderScript) Execute(ctx context.Context, script domain.ScriptRef, src ports.CommandSource) (domain.RenderReport, error) {
	report := domain.RenderReport{
		ScriptName: script.Name,
		ScriptPath: script.Path,
		StartedAt:  uc.now(),
		Commands:   []domain.CommandResult{},
	}
	uc.log.Info("render.start", "script", script.Name, "path", script.Path)

	var emit func(domain.Snapshot) error
	if uc.sink != nil {
		emit = uc.sink.Emit
	}

	grid, results, runErr := replay(ctx, uc.dispatcher, src, uc.log, emit)

	report.EndedAt = uc.now()
	report.Commands = append(report.Commands, results...)
	if !grid.IsEmpty() {
		report.Cols = grid.Cols()
		report.Rows = grid.Rows()
		report.FinalSnapshot = grid.String()
	}
	report.Error = domain.NewRenderError(runErr)

	if runErr != nil {
		uc.log.Error("render.failed",
			"script", script.Name,
			"kind", string(report.Error.Kind),
			"line", report.Error.Line,
			"err", runErr.Error(),
		)
	} else {
		uc.log.Info("render.done",
			"script", script.Name,
			"commands", len(report.Commands),
			"duration_ms", report.EndedAt.Sub(report.StartedAt).Milliseconds(),
		)
	}

	if uc.store != nil {
		id, err := uc.store.SaveReport(report)
		if err != nil {
			uc.log.Error("report.save_failed", "script", script.Name, "err", err.Error())
			if runErr == nil {
				return report, err
			}
		} else {
			report.ID = id
			uc.log.Info("report.saved", "id", id)
		}
	}

	return report, runErr
}
