package bergenconfigs

import (
	"slices"

	"github.com/reusee/bergen/cmds"
	"github.com/reusee/bergen/configs"
	"github.com/reusee/bergen/logs"
	"github.com/reusee/bergen/vars"
)

// MaxSteps bounds the number of executed instructions; 0 means unlimited.
type MaxSteps int

var maxStepsFlag = cmds.Var[int]("-max-steps")

func init() {
	cmds.GlobalExecutor.Describe("-max-steps", "stop execution after this many steps")
	cmds.GlobalExecutor.Describe("-syntax", "source syntax: brainfuck or bergen")
	cmds.GlobalExecutor.Describe("-to", "output syntax: brainfuck or bergen")
}

func (Module) MaxSteps(
	loader configs.Loader,
	logger logs.Logger,
) MaxSteps {
	var configured int
	values := slices.Collect(configs.All[int](loader, "max_steps"))
	if len(values) > 0 {
		configured = values[0]
	}
	if len(values) > 1 {
		logger.Info("max_steps set in several config files, the first one wins",
			"values", values,
		)
	}
	return MaxSteps(max(0, vars.FirstNonZero(
		*maxStepsFlag,
		configured,
	)))
}

// DefaultSyntax is the syntax assumed for sources whose file extension does not decide it.
type DefaultSyntax string

var syntaxFlag = cmds.Var[string]("-syntax")

func (Module) DefaultSyntax(
	loader configs.Loader,
) DefaultSyntax {
	return DefaultSyntax(vars.FirstNonZero(
		*syntaxFlag,
		configs.First[string](loader, "syntax"),
		"bergen",
	))
}

// OutputSyntax is the syntax translations and synthesized programs are written in.
// Empty means each binary picks its own.
type OutputSyntax string

var outputSyntaxFlag = cmds.Var[string]("-to")

func (Module) OutputSyntax(
	loader configs.Loader,
) OutputSyntax {
	return OutputSyntax(vars.FirstNonZero(
		*outputSyntaxFlag,
		configs.First[string](loader, "output_syntax"),
	))
}
