package drivers

import (
	"context"
	"io"

	"github.com/reusee/bft/bfgen"
	"github.com/reusee/bft/bftconfigs"
	"github.com/reusee/bft/logs"
	"github.com/reusee/bft/procs"
	"github.com/reusee/bft/sources"
)

// Generate writes the program at location as source of the configured target.
type Generate func(ctx context.Context, location string, out io.Writer) error

func (Module) Generate(
	load sources.Load,
	parse Parse,
	targetName bftconfigs.Target,
	tapeSize bftconfigs.TapeSize,
	newSpan logs.NewSpan,
	logger logs.Logger,
) Generate {
	return func(ctx context.Context, location string, out io.Writer) (err error) {
		ctx, _ = newSpan(ctx, "", "generate")
		defer func() {
			err = logs.WrapSpan(ctx, err)
		}()

		target, err := bfgen.TargetByName(string(targetName))
		if err != nil {
			return err
		}

		gen := stepFunc(func(j *job) (step, error) {
			if err := bfgen.Generate(j.program, target, bfgen.Options{
				TapeSize: int(tapeSize),
			}, j.out); err != nil {
				return nil, err
			}
			logger.InfoContext(j.ctx, "generated",
				"source", j.source.Name,
				"target", target.Name(),
			)
			return nil, nil
		})

		return procs.RunAll(&job{
			ctx:      ctx,
			location: location,
			out:      out,
		}, pipeline(load, parse, gen))
	}
}
