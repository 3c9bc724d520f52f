package cmds

import "testing"

func TestVar(t *testing.T) {
	a := Var[int]("-steps")
	b := Var[string]("-file")
	GlobalExecutor.MustExecute([]string{
		"-steps", "42",
		"-file", "hello.bergen",
	})
	if *a != 42 {
		t.Fatal()
	}
	if *b != "hello.bergen" {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{
		"-steps.",
	})
	if *a != 0 {
		t.Fatalf("got %v", *a)
	}
}

func TestSwitch(t *testing.T) {
	foo := Switch("TestSwitch")
	GlobalExecutor.MustExecute([]string{
		"TestSwitch",
	})
	if *foo != true {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{
		"!TestSwitch",
	})
	if *foo != false {
		t.Fatal()
	}
}

func TestTypedVar(t *testing.T) {
	type Foo string
	v := Var[Foo]("TestTypedVar")
	GlobalExecutor.MustExecute([]string{
		"TestTypedVar", "bar",
	})
	if *v != "bar" {
		t.Fatal()
	}
}

func TestDescribe(t *testing.T) {
	Var[int]("TestDescribe")
	GlobalExecutor.Describe("TestDescribe", "steps")
	if desc := GlobalExecutor.commands["TestDescribe"].Description; desc != "steps" {
		t.Fatalf("got %v", desc)
	}
}

func TestHelperDescriptions(t *testing.T) {
	Var[int]("TestHelperDescriptions")
	Switch("TestHelperDescriptionsSwitch")
	if desc := GlobalExecutor.commands["TestHelperDescriptions."].Description; desc != "reset TestHelperDescriptions" {
		t.Fatalf("got %v", desc)
	}
	if desc := GlobalExecutor.commands["!TestHelperDescriptionsSwitch"].Description; desc != "turn off TestHelperDescriptionsSwitch" {
		t.Fatalf("got %v", desc)
	}
}
