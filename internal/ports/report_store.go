package ports

import "github.com/aalvaropc/draw/internal/domain"

// ReportStore persists render reports.
type ReportStore interface {
	SaveReport(r domain.RenderReport) (id string, err error)
}
