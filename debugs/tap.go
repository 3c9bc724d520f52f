package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/bergen/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

func predeclared(globals map[string]any) starlark.StringDict {
	ret := make(starlark.StringDict, len(globals))
	for name, value := range globals {
		ret[name] = toStarlarkValue(value)
	}
	return ret
}

func newThread(ctx context.Context, logger logs.Logger, what string) *starlark.Thread {
	return &starlark.Thread{
		Name: what,
		Print: func(_ *starlark.Thread, msg string) {
			logger.InfoContext(ctx, "tap print", "what", what, "msg", msg)
		},
	}
}

// Tap opens an interactive starlark REPL on stdin with globals predeclared.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()
		thread := newThread(ctx, logger, what)
		repl.REPLOptions(fileOptions, thread, predeclared(globals))
	}
}

// TapScript runs src non-interactively against globals and returns the globals it defines.
type TapScript func(ctx context.Context, what string, src []byte, globals map[string]any) (starlark.StringDict, error)

func (Module) TapScript(
	logger logs.Logger,
) TapScript {
	return func(ctx context.Context, what string, src []byte, globals map[string]any) (starlark.StringDict, error) {
		logger.DebugContext(ctx, "tap script: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		thread := newThread(ctx, logger, what)
		ret, err := starlark.ExecFileOptions(fileOptions, thread, what, src, predeclared(globals))
		if err != nil {
			return nil, logs.WrapSpan(ctx, err)
		}
		return ret, nil
	}
}
