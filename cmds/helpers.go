package cmds

// Var defines name to set the returned value and name+"." to reset it to zero.
func Var[T any](name string) *T {
	value := new(T)
	Define(name, Func(func(v T) {
		*value = v
	}))
	Define(name+".", Func(func() {
		var zero T
		*value = zero
	}).Desc("reset "+name))
	return value
}

// Switch defines name to turn the returned flag on and "!"+name to turn it off.
func Switch(name string) *bool {
	value := new(bool)
	Define(name, Func(func() {
		*value = true
	}))
	Define("!"+name, Func(func() {
		*value = false
	}).Desc("turn off "+name))
	return value
}
