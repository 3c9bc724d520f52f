package logs

import (
	"context"
	"crypto/rand"
)

// Span identifies one toolchain operation in logs and errors.
type Span string

type spanKey struct{}

var SpanKey spanKey

func SpanOf(ctx context.Context) Span {
	if v := ctx.Value(SpanKey); v != nil {
		return v.(Span)
	}
	return ""
}

type NewSpan func(ctx context.Context, operation string) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, operation string) (context.Context, Span) {
		parent := SpanOf(ctx)
		span := Span(rand.Text())
		ctx = context.WithValue(ctx, SpanKey, span)

		args := []any{
			"operation", operation,
		}
		if parent != "" {
			args = append(args, "parent", parent)
		}
		logger.DebugContext(ctx, "new span", args...)

		return ctx, span
	}
}

type programKey struct{}

// WithProgram attaches a program ID to ctx; records logged under ctx carry it.
func WithProgram(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, programKey{}, id)
}

func ProgramOf(ctx context.Context) string {
	if v := ctx.Value(programKey{}); v != nil {
		return v.(string)
	}
	return ""
}
