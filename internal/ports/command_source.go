package ports

import "context"

// CommandSource yields command lines one at a time, trimmed of trailing
// whitespace. Next returns io.EOF once the source is exhausted.
type CommandSource interface {
	Next(ctx context.Context) (string, error)
}
