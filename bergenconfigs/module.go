// Package bergenconfigs provides the toolchain settings, read from the command line and from bergen.cue files.
package bergenconfigs

import "github.com/reusee/dscope"

// Module provides the configs.Loader and the typed settings. It needs a logs.Logger from the enclosing scope.
type Module struct {
	dscope.Module
}
