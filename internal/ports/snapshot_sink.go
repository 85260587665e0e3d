package ports

import "github.com/aalvaropc/draw/internal/domain"

// SnapshotSink receives one snapshot per successfully applied command.
type SnapshotSink interface {
	Emit(s domain.Snapshot) error
}
