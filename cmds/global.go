package cmds

import (
	"fmt"
	"os"
)

var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Execute runs args against the global executor. On error it prints the
// error and usage to stderr and exits.
func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		GlobalExecutor.PrintUsage()
		os.Exit(2)
	}
}

func PrintUsage() {
	GlobalExecutor.PrintUsage()
}

// Describe sets the usage description of a defined global command.
func Describe(name string, desc string) {
	command, ok := GlobalExecutor.commands[name]
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrUnknownCommand, name))
	}
	command.Desc(desc)
}
