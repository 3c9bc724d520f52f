package debugs

import "github.com/reusee/dscope"

// Module provides Tap and TapScript. It needs a logs.Logger from the enclosing scope.
type Module struct {
	dscope.Module
}
