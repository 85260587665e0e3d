package reportstore

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/aalvaropc/draw/internal/domain"
	"github.com/aalvaropc/draw/internal/infra/logger"
	"github.com/aalvaropc/draw/internal/ports"
)

const defaultReportsDir = "reports"

type JSONStore struct {
	rootDir        string
	reportsDirName string
	writeIndex     bool
	now            func() time.Time
	entropy        io.Reader
	log            *slog.Logger
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: reports/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

// WithEntropy sets the randomness source for report IDs.
func WithEntropy(r io.Reader) Option {
	return func(s *JSONStore) { s.entropy = r }
}

// WithLogger receives index write failures, which do not fail SaveReport.
func WithLogger(l *slog.Logger) Option {
	return func(s *JSONStore) {
		if l != nil {
			s.log = l
		}
	}
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	reportsDir := cfg.Paths.ReportsDir
	if strings.TrimSpace(reportsDir) == "" {
		reportsDir = defaultReportsDir
	}

	s := &JSONStore{
		rootDir:        root,
		reportsDirName: reportsDir,
		writeIndex:     false,
		now:            time.Now,
		entropy:        ulid.DefaultEntropy(),
		log:            logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ReportStore = (*JSONStore)(nil)

// SaveReport writes the report as <ulid>_<script>.json and returns the ULID.
// A report that already carries an ID keeps it.
func (s *JSONStore) SaveReport(r domain.RenderReport) (string, error) {
	dir := filepath.Join(s.rootDir, s.reportsDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	ts := r.StartedAt
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()

	toSave := r
	if toSave.StartedAt.IsZero() {
		toSave.StartedAt = ts
	}
	if toSave.ID == "" {
		id, err := ulid.New(ulid.Timestamp(ts), s.entropy)
		if err != nil {
			return "", &domain.OpError{
				Op:   "reportstore.id",
				Kind: domain.KindExecution,
				Err:  err,
			}
		}
		toSave.ID = id.String()
	}

	scriptPart := r.ScriptName
	if strings.TrimSpace(scriptPart) == "" {
		scriptPart = strings.TrimSuffix(filepath.Base(r.ScriptPath), filepath.Ext(r.ScriptPath))
	}
	slug := Slugify(scriptPart)
	if slug == "" {
		slug = "render"
	}

	filename := fmt.Sprintf("%s_%s.json", toSave.ID, slug)
	path := filepath.Join(dir, filename)

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "reportstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		if err := s.appendIndex(dir, filename, toSave); err != nil {
			s.log.Warn("report.index_failed", "id", toSave.ID, "dir", dir, "error", err.Error())
		}
	}

	return toSave.ID, nil
}

// Load reads a report back by ID.
func (s *JSONStore) Load(id string) (domain.RenderReport, error) {
	dir := filepath.Join(s.rootDir, s.reportsDirName)
	matches, err := filepath.Glob(filepath.Join(dir, id+"_*.json"))
	if err != nil || len(matches) == 0 {
		return domain.RenderReport{}, &domain.OpError{
			Op:   "reportstore.load",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  fmt.Errorf("report %q: %w", id, domain.ErrNotFound),
		}
	}

	b, err := os.ReadFile(matches[0])
	if err != nil {
		return domain.RenderReport{}, &domain.OpError{
			Op:   "reportstore.load",
			Kind: domain.KindNotFound,
			Path: matches[0],
			Err:  err,
		}
	}

	var r domain.RenderReport
	if err := json.Unmarshal(b, &r); err != nil {
		return domain.RenderReport{}, &domain.OpError{
			Op:   "reportstore.load",
			Kind: domain.KindInvalidConfig,
			Path: matches[0],
			Err:  err,
		}
	}
	return r, nil
}

func (s *JSONStore) appendIndex(dir, filename string, r domain.RenderReport) error {
	type idx struct {
		ID        string    `json:"id"`
		File      string    `json:"file"`
		Script    string    `json:"script"`
		Commands  int       `json:"commands"`
		Failed    bool      `json:"failed"`
		StartedAt time.Time `json:"started_at"`
	}
	line, err := json.Marshal(idx{
		ID:        r.ID,
		File:      filename,
		Script:    r.ScriptName,
		Commands:  len(r.Commands),
		Failed:    r.Failed(),
		StartedAt: r.StartedAt,
	})
	if err != nil {
		return err
	}

	indexPath := filepath.Join(dir, "index.jsonl")
	f, err := os.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(append(line, '\n')); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Slugify produces a safe filename component.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
			lastDash = false
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			// any other char -> dash
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
