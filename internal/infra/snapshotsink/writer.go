package snapshotsink

import (
	"io"
	"os"
	"path/filepath"

	"github.com/aalvaropc/draw/internal/domain"
	"github.com/aalvaropc/draw/internal/ports"
)

// Writer writes every snapshot text to w, back to back.
type Writer struct {
	w io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

var _ ports.SnapshotSink = (*Writer)(nil)

func (s *Writer) Emit(snap domain.Snapshot) error {
	if _, err := io.WriteString(s.w, snap.Text); err != nil {
		return &domain.OpError{
			Op:   "snapshotsink.write",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}
	return nil
}

// File is a Writer over a created (truncated) output file.
type File struct {
	*Writer
	f    *os.File
	path string
}

// Create opens path for writing, creating parent directories as needed.
func Create(path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, &domain.OpError{
			Op:   "snapshotsink.mkdir",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "snapshotsink.create",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return &File{Writer: NewWriter(f), f: f, path: path}, nil
}

func (s *File) Path() string { return s.path }

func (s *File) Close() error { return s.f.Close() }

// Recorder keeps every snapshot in memory.
type Recorder struct {
	Snapshots []domain.Snapshot
}

var _ ports.SnapshotSink = (*Recorder)(nil)

func (r *Recorder) Emit(snap domain.Snapshot) error {
	r.Snapshots = append(r.Snapshots, snap)
	return nil
}

// Multi fans a snapshot out to several sinks, stopping at the first error.
type Multi []ports.SnapshotSink

var _ ports.SnapshotSink = Multi(nil)

func (m Multi) Emit(snap domain.Snapshot) error {
	for _, s := range m {
		if s == nil {
			continue
		}
		if err := s.Emit(snap); err != nil {
			return err
		}
	}
	return nil
}
