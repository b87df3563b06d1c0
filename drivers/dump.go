package drivers

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/reusee/bft/bfir"
	"github.com/reusee/bft/procs"
	"github.com/reusee/bft/sources"
)

// Dump prints the parsed tree of the program at location, then its stats on one line.
type Dump func(ctx context.Context, location string, out io.Writer) error

func (Module) Dump(
	load sources.Load,
	parse Parse,
) Dump {
	return func(ctx context.Context, location string, out io.Writer) error {
		dump := stepFunc(func(j *job) (step, error) {
			if err := bfir.Fprint(j.out, j.program); err != nil {
				return nil, err
			}
			_, err := fmt.Fprintln(j.out, formatStats(bfir.Collect(j.program)))
			return nil, err
		})
		return procs.RunAll(&job{
			ctx:      ctx,
			location: location,
			out:      out,
		}, pipeline(load, parse, dump))
	}
}

func formatStats(stats bfir.Stats) string {
	args := stats.LogArgs()
	fields := make([]string, 0, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		fields = append(fields, fmt.Sprintf("%v=%v", args[i], args[i+1]))
	}
	return "# " + strings.Join(fields, " ")
}
