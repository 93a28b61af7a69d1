package settings

import (
	"context"
)

type contextKey string

const (
	runContextKey contextKey = "run"
)

// IntoContext stores a Run in the context.
func IntoContext(ctx context.Context, s *Run) context.Context {
	return context.WithValue(ctx, runContextKey, s)
}

// FromContext retrieves a Run from the context.
func FromContext(ctx context.Context) (*Run, bool) {
	s, ok := ctx.Value(runContextKey).(*Run)
	return s, ok
}

// FromContextOrDefault returns the Run stored in ctx, or fresh CLI defaults
// when none is present.
func FromContextOrDefault(ctx context.Context) *Run {
	if s, ok := FromContext(ctx); ok && s != nil {
		return s
	}
	return NewCliParams()
}
