package main

import (
	"context"
	"os"

	"github.com/reusee/bergen/bergenconfigs"
	"github.com/reusee/bergen/cmds"
	"github.com/reusee/bergen/logs"
	"github.com/reusee/bergen/modes"
	"github.com/reusee/bergen/toolchain"
	"github.com/reusee/bergen/vars"
	"github.com/reusee/dscope"
)

var filePath = cmds.Var[string]("-file")

func init() {
	cmds.GlobalExecutor.Describe("-file", "bergen program to compile, - or absent for stdin")
}

func main() {
	cmds.Execute(os.Args[1:])

	scope := dscope.New(
		new(toolchain.Module),
		modes.ForProduction(),
	).Fork(
		func() bergenconfigs.DefaultSyntax {
			return bergenconfigs.DefaultSyntax(toolchain.SyntaxBergen)
		},
	)

	var err error
	scope.Call(func(
		logger logs.Logger,
		load toolchain.Load,
		translate toolchain.Translate,
	) {
		ctx := context.Background()
		defer func() {
			if err != nil {
				logger.ErrorContext(ctx, "compile", "error", err)
			}
		}()

		program, _, e := load(ctx, vars.FirstNonZero(*filePath, "-"))
		if e != nil {
			err = e
			return
		}
		err = translate(ctx, os.Stdout, program, toolchain.SyntaxBrainfuck)
	})

	if err != nil {
		os.Exit(1)
	}
}
