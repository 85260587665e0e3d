package domain

import (
	"errors"
	"time"
)

// Snapshot is the rendering of the grid right after one command applied.
type Snapshot struct {
	// Index counts applied commands, starting at 1.
	Index   int
	Line    int
	Command string
	Text    string
}

// ScriptRef identifies a command script.
type ScriptRef struct {
	Name string
	Path string
}

// WorkspaceSpec describes where a workspace is created.
type WorkspaceSpec struct {
	Root string
}

// CommandResult records one applied command.
type CommandResult struct {
	Line    int       `json:"line"`
	Command string    `json:"command"`
	Shape   ShapeKind `json:"shape"`
}

// RenderError is the serializable form of the error that stopped a run.
type RenderError struct {
	Kind    ErrorKind `json:"kind"`
	Line    int       `json:"line,omitempty"`
	Command string    `json:"command,omitempty"`
	Message string    `json:"message"`
}

// NewRenderError maps err into a RenderError. It returns nil for nil.
func NewRenderError(err error) *RenderError {
	if err == nil {
		return nil
	}
	re := &RenderError{Kind: ErrorKindOf(err), Message: err.Error()}
	var ce *CommandError
	if errors.As(err, &ce) {
		re.Line = ce.Line
		re.Command = ce.Command
		re.Message = ce.Err.Error()
	}
	return re
}

// RenderReport summarizes one script run.
type RenderReport struct {
	ID         string `json:"id"`
	ScriptName string `json:"script_name"`
	ScriptPath string `json:"script_path"`

	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`

	Commands []CommandResult `json:"commands"`

	// Cols and Rows describe the final grid, border included.
	Cols          int    `json:"cols"`
	Rows          int    `json:"rows"`
	FinalSnapshot string `json:"final_snapshot"`

	Error *RenderError `json:"error,omitempty"`
}

// Failed reports whether the run stopped on an error.
func (r RenderReport) Failed() bool { return r.Error != nil }
