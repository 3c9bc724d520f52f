package logs

import (
	"context"
	"fmt"
)

type SpanError struct {
	Span Span
	Err  error
}

func (s SpanError) Error() string {
	return fmt.Sprintf("%v (span %s)", s.Err, s.Span)
}

func (s SpanError) Unwrap() error {
	return s.Err
}

func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	span := SpanOf(ctx)
	if span == "" {
		return err
	}
	return SpanError{
		Span: span,
		Err:  err,
	}
}
