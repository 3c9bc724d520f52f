package cmds

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(os.Stderr)
}

func (p *Executor) WriteUsage(w io.Writer) {
	writeCommands(w, p.commands)
}

func writeCommands(w io.Writer, commands map[string]*Command) {
	// aliases are listed with their command
	seen := make(map[*Command]bool)
	var names []string
	for name, command := range commands {
		if slices.Contains(command.Aliases, name) {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		command := commands[name]
		if seen[command] {
			continue
		}
		seen[command] = true

		line := name
		if len(command.Aliases) > 0 {
			line += ", " + strings.Join(command.Aliases, ", ")
		}
		for i := range command.Func.Type().NumIn() {
			t := command.Func.Type().In(i)
			if t.Kind() == reflect.Pointer {
				line += " [" + t.Elem().Kind().String() + "]"
			} else {
				line += " <" + t.Kind().String() + ">"
			}
		}
		if command.Description != "" {
			line += "\t" + command.Description
		}
		fmt.Fprintln(w, line)
	}
}
