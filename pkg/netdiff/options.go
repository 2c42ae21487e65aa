package netdiff

import (
	"context"

	"github.com/rs/zerolog"
)

// PrimaryParser is the optional external structured CLI parser consulted
// before a command's own regex parser. It either returns structured plain
// data for the given command output or fails; any failure is recovered
// locally by falling back to the regex parser — the two never blend output
// for a single invocation.
type PrimaryParser interface {
	// Name identifies the parser in fallback warnings.
	Name() string

	// Parse parses the raw segment text for the named command.
	Parse(ctx context.Context, command string, seg Segment) (map[string]any, error)
}

// ParseOptions controls a single parse invocation.
type ParseOptions struct {
	Primary PrimaryParser   // optional; nil means regex parsing only
	Logger  *zerolog.Logger // optional; fallback warnings go here
}

// DiffOptions controls a single diff invocation.
type DiffOptions struct {
	Logger *zerolog.Logger // optional; duplicate-key warnings go here
}

// Log returns the configured logger or a disabled one.
func (o ParseOptions) Log() zerolog.Logger {
	if o.Logger == nil {
		return zerolog.Nop()
	}
	return *o.Logger
}

// Log returns the configured logger or a disabled one.
func (o DiffOptions) Log() zerolog.Logger {
	if o.Logger == nil {
		return zerolog.Nop()
	}
	return *o.Logger
}
