// Package toolchain wires the parsers, emitters, tape machine and synthesizer into the operations the binaries run.
package toolchain

import (
	"io"
	"os"

	"github.com/reusee/bergen/bergenconfigs"
	"github.com/reusee/bergen/debugs"
	"github.com/reusee/bergen/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs bergenconfigs.Module
	Debugs  debugs.Module
}

// Stdin is read when a source path is "-".
type Stdin io.Reader

func (Module) Stdin() Stdin {
	return os.Stdin
}
