package toolchain

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/reusee/bergen/bergenconfigs"
	"github.com/reusee/bergen/bfvm"
	"github.com/reusee/bergen/logs"
)

// Load reads and parses the program at path. Path "-" reads Stdin.
type Load func(ctx context.Context, path string) (bfvm.Program, Syntax, error)

func (Module) Load(
	logger logs.Logger,
	newSpan logs.NewSpan,
	defaultSyntax bergenconfigs.DefaultSyntax,
	stdin Stdin,
) Load {
	return func(ctx context.Context, path string) (_ bfvm.Program, _ Syntax, err error) {
		ctx, _ = newSpan(ctx, "load")
		defer func() {
			err = logs.WrapSpan(ctx, err)
		}()

		fallback, err := ParseSyntax(string(defaultSyntax))
		if err != nil {
			return nil, "", err
		}
		syntax := SyntaxOf(path, fallback)

		var src []byte
		if path == "-" {
			src, err = io.ReadAll(stdin)
		} else {
			src, err = os.ReadFile(path)
		}
		if err != nil {
			return nil, "", fmt.Errorf("read %s: %w", path, err)
		}

		program, err := Parse(syntax, src)
		if err != nil {
			return nil, "", fmt.Errorf("parse %s as %s: %w", path, syntax, err)
		}

		logger.InfoContext(logs.WithProgram(ctx, program.ID()), "loaded",
			"path", path,
			"syntax", syntax,
			"ops", len(program),
		)
		return program, syntax, nil
	}
}
