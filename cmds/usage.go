package cmds

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.Usage(os.Stderr)
}

// Usage writes one line per command, sub commands indented under their parent.
// Aliases are listed with the command they refer to.
func (p *Executor) Usage(w io.Writer) {
	writeUsage(w, p.commands, 0)
}

func writeUsage(w io.Writer, commands map[string]*Command, level int) {
	seen := make(map[*Command]bool)
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if command == nil || seen[command] || slices.Contains(command.Aliases, name) {
			// aliases are listed under the primary name
			continue
		}
		seen[command] = true

		names := append([]string{name}, command.Aliases...)

		head := strings.Repeat("  ", level) + strings.Join(names, ", ")
		for _, arg := range command.ArgNames {
			head += " <" + arg + ">"
		}
		if command.Description != "" {
			fmt.Fprintf(w, "%s\t%s\n", head, command.Description)
		} else {
			fmt.Fprintf(w, "%s\n", head)
		}
		if len(command.Subs) > 0 {
			writeUsage(w, command.Subs, level+1)
		}
	}
}
