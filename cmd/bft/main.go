package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/reusee/bft/bfgen"
	"github.com/reusee/bft/bftconfigs"
	"github.com/reusee/bft/cmds"
	"github.com/reusee/bft/drivers"
	"github.com/reusee/bft/logs"
	"github.com/reusee/bft/modes"
	"github.com/reusee/dscope"
	"github.com/tebeka/atexit"
)

var (
	action    string
	location  string
	genTarget string

	outputFlag   = cmds.Var[string]("-o")
	checkSources = cmds.Collect[string]("check")
)

func init() {
	for _, name := range []string{"run", "dump"} {
		cmds.Define(name, cmds.Func(func(loc string) {
			action = name
			location = loc
		}).Args("source"))
	}

	targets := make(map[string]*cmds.Command)
	for _, name := range bfgen.TargetNames() {
		targets[name] = cmds.Func(func() {
			genTarget = name
		}).Desc("generate " + name + " instead of the configured target")
	}
	cmds.Define("gen", cmds.Func(func(loc string) {
		action = "gen"
		location = loc
	}).Args("source").Sub(targets))

	cmds.Define("check-sources", cmds.Func(func() {
		action = "check"
	}).Desc("verify the programs listed in check_sources of the config files"))

	cmds.Describe("run", "interpret a program; source is a path, - for stdin, or an http(s) url")
	cmds.Describe("gen", "print the program as source of the configured target")
	cmds.Describe("dump", "print the parsed tree")
	cmds.Describe("check", "verify the interpreter and generated starlark agree; may repeat")
	cmds.Describe("-o", "write output to a file instead of stdout")
}

func main() {
	cmds.Execute(os.Args[1:])

	if action == "" && len(*checkSources) > 0 {
		action = "check"
	}
	if action == "" {
		fmt.Fprintln(os.Stderr, "no command given")
		cmds.PrintUsage()
		atexit.Exit(2)
	}

	var out io.Writer = os.Stdout
	if *outputFlag != "" {
		f, err := os.Create(*outputFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			atexit.Exit(1)
		}
		atexit.Register(func() {
			if err := f.Close(); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		})
		out = f
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	atexit.Register(stop)

	scope := dscope.New(
		new(drivers.Module),
		modes.ForProduction(),
	)
	if genTarget != "" {
		scope = scope.Fork(
			dscope.Provide(bftconfigs.Target(genTarget)),
		)
	}

	var err error
	scope.Call(func(
		run drivers.Run,
		generate drivers.Generate,
		dump drivers.Dump,
		check drivers.Check,
		logger logs.Logger,
	) {
		logger.DebugContext(ctx, "start",
			"action", action,
			"source", location,
			"check", *checkSources,
		)
		switch action {
		case "run":
			err = run(ctx, location, out)
		case "gen":
			err = generate(ctx, location, out)
		case "dump":
			err = dump(ctx, location, out)
		case "check":
			err = check(ctx, *checkSources)
		}
	})

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
