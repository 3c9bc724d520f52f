package toolchain

import (
	"context"
	"errors"
	"fmt"

	"github.com/reusee/bergen/bergenconfigs"
	"github.com/reusee/bergen/bfvm"
	"github.com/reusee/bergen/logs"
)

var ErrStepLimit = errors.New("step limit reached")

// steps between context checks
const checkInterval = 1 << 12

// Execute runs m until it halts, fails, hits MaxSteps, or ctx is done.
// A machine stopped by the step limit is left resumable.
type Execute func(ctx context.Context, m *bfvm.Machine) error

func (Module) Execute(
	logger logs.Logger,
	newSpan logs.NewSpan,
	maxSteps bergenconfigs.MaxSteps,
) Execute {
	return func(ctx context.Context, m *bfvm.Machine) (err error) {
		ctx, _ = newSpan(logs.WithProgram(ctx, m.Program.ID()), "execute")
		defer func() {
			err = logs.WrapSpan(ctx, err)
		}()

		steps := 0
		for _, err := range m.Trace {
			if err != nil {
				logger.ErrorContext(ctx, "runtime error",
					"steps", steps,
					"error", err,
				)
				return err
			}
			steps++
			if m.Halted() {
				break
			}
			if maxSteps > 0 && steps >= int(maxSteps) {
				logger.WarnContext(ctx, "step limit reached",
					"steps", steps,
					"ip", m.IP,
				)
				return fmt.Errorf("%w: %d", ErrStepLimit, steps)
			}
			if steps%checkInterval == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
		}

		logger.DebugContext(ctx, "halted",
			"steps", steps,
		)
		return nil
	}
}
