package main

import (
	"context"
	"io"
	"os"

	"github.com/reusee/bergen/bergenconfigs"
	"github.com/reusee/bergen/cmds"
	"github.com/reusee/bergen/configs"
	"github.com/reusee/bergen/logs"
	"github.com/reusee/bergen/modes"
	"github.com/reusee/bergen/toolchain"
	"github.com/reusee/dscope"
)

var sentence = cmds.Var[string]("-sentence")

func init() {
	cmds.GlobalExecutor.Describe("-sentence", "text the program prints; read from stdin when absent")
}

func main() {
	cmds.Execute(os.Args[1:])

	scope := dscope.New(
		new(toolchain.Module),
		modes.ForProduction(),
	)

	// settings read config values on first use
	if err := dscope.Get[configs.Loader](scope).Err(); err != nil {
		dscope.Get[logs.Logger](scope).Error("config", "error", err)
		os.Exit(1)
	}

	var err error
	scope.Call(func(
		logger logs.Logger,
		outputSyntax bergenconfigs.OutputSyntax,
		say toolchain.Say,
	) {
		ctx := context.Background()
		defer func() {
			if err != nil {
				logger.ErrorContext(ctx, "say", "error", err)
			}
		}()

		to, e := toolchain.OutputSyntax(string(outputSyntax), toolchain.SyntaxBergen)
		if e != nil {
			err = e
			return
		}

		text := []byte(*sentence)
		if *sentence == "" {
			text, err = io.ReadAll(os.Stdin)
			if err != nil {
				return
			}
		}
		err = say(ctx, os.Stdout, text, to)
	})

	if err != nil {
		os.Exit(1)
	}
}
