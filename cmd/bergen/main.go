package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/reusee/bergen/bfvm"
	"github.com/reusee/bergen/cmds"
	"github.com/reusee/bergen/configs"
	"github.com/reusee/bergen/debugs"
	"github.com/reusee/bergen/logs"
	"github.com/reusee/bergen/modes"
	"github.com/reusee/bergen/toolchain"
	"github.com/reusee/dscope"
)

var (
	filePath     = cmds.Var[string]("-file")
	snapshotPath = cmds.Var[string]("-snapshot")
	resumePath   = cmds.Var[string]("-resume")
	tapScript    = cmds.Var[string]("-tap-script")
	tap          = cmds.Switch("-tap")
)

func init() {
	cmds.GlobalExecutor.Describe("-file", "program to run, brainfuck (.b, .bf) or bergen")
	cmds.GlobalExecutor.Describe("-snapshot", "save the machine here when the step limit stops it")
	cmds.GlobalExecutor.Describe("-resume", "restore the machine from a snapshot before running")
	cmds.GlobalExecutor.Describe("-tap-script", "run a starlark script over the stopped machine")
	cmds.GlobalExecutor.Describe("-tap", "open a starlark REPL over the stopped machine")
}

func main() {
	cmds.Execute(os.Args[1:])

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "-file is required")
		os.Exit(2)
	}

	scope := dscope.New(
		new(toolchain.Module),
		modes.ForProduction(),
	)

	// settings read config values on first use
	if err := dscope.Get[configs.Loader](scope).Err(); err != nil {
		dscope.Get[logs.Logger](scope).Error("config", "error", err)
		os.Exit(1)
	}

	var failed bool
	scope.Call(func(
		logger logs.Logger,
		load toolchain.Load,
		execute toolchain.Execute,
		tapMachine debugs.Tap,
		runTapScript debugs.TapScript,
	) {
		ctx := context.Background()
		fail := func(what string, err error) {
			logger.ErrorContext(ctx, what, "error", err)
			failed = true
		}

		program, _, err := load(ctx, *filePath)
		if err != nil {
			fail("load", err)
			return
		}

		m := bfvm.WithIO(program, os.Stdin, os.Stdout)
		if *resumePath != "" {
			if err := restore(m, *resumePath); err != nil {
				fail("resume", err)
				return
			}
			logger.InfoContext(ctx, "resumed",
				"path", *resumePath,
				"ip", m.IP,
			)
		}

		err = execute(ctx, m)
		if errors.Is(err, toolchain.ErrStepLimit) && *snapshotPath != "" {
			if err := save(m, *snapshotPath); err != nil {
				fail("snapshot", err)
			} else {
				logger.InfoContext(ctx, "snapshot saved",
					"path", *snapshotPath,
					"ip", m.IP,
				)
			}
		}

		if *tapScript != "" {
			src, err := os.ReadFile(*tapScript)
			if err != nil {
				fail("tap script", err)
			} else if _, err := runTapScript(ctx, *tapScript, src, debugs.MachineGlobals(m)); err != nil {
				fail("tap script", err)
			}
		}
		if *tap {
			tapMachine(ctx, "machine", debugs.MachineGlobals(m))
		}

		if err != nil {
			fail("execute", err)
			return
		}
		logger.InfoContext(logs.WithProgram(ctx, program.ID()), "ran machine")
	})

	if failed {
		os.Exit(1)
	}
}

func restore(m *bfvm.Machine, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return m.Restore(f)
}

func save(m *bfvm.Machine, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := m.Snapshot(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
