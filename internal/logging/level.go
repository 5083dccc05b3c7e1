package logging

import (
	"context"
	"strings"
)

type debugKey struct{}

// WithLevel records the configured LOG_LEVEL on ctx.
func WithLevel(ctx context.Context, level string) context.Context {
	return context.WithValue(ctx, debugKey{}, strings.EqualFold(strings.TrimSpace(level), "debug"))
}

func debugEnabled(ctx context.Context) bool {
	v, _ := ctx.Value(debugKey{}).(bool)
	return v
}
