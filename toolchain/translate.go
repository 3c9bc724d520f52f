package toolchain

import (
	"context"
	"io"

	"github.com/reusee/bergen/bfvm"
	"github.com/reusee/bergen/logs"
	"github.com/reusee/bergen/synth"
)

// Translate writes program in the target syntax.
type Translate func(ctx context.Context, w io.Writer, program bfvm.Program, to Syntax) error

func (Module) Translate(
	logger logs.Logger,
	newSpan logs.NewSpan,
) Translate {
	return func(ctx context.Context, w io.Writer, program bfvm.Program, to Syntax) error {
		ctx, _ = newSpan(logs.WithProgram(ctx, program.ID()), "translate")
		if err := Emit(w, to, program); err != nil {
			return logs.WrapSpan(ctx, err)
		}
		logger.DebugContext(ctx, "translated",
			"to", to,
			"ops", len(program),
		)
		return nil
	}
}

// Say synthesizes a program printing text and writes it in the target syntax.
type Say func(ctx context.Context, w io.Writer, text []byte, to Syntax) error

func (Module) Say(
	logger logs.Logger,
	translate Translate,
) Say {
	return func(ctx context.Context, w io.Writer, text []byte, to Syntax) error {
		program := synth.Synthesize(text)
		logger.DebugContext(ctx, "synthesized",
			"bytes", len(text),
			"ops", len(program),
		)
		return translate(ctx, w, program, to)
	}
}

// OutputSyntax resolves the configured output syntax, or fallback when none is configured.
func OutputSyntax(configured string, fallback Syntax) (Syntax, error) {
	if configured == "" {
		return fallback, nil
	}
	return ParseSyntax(configured)
}
