package drivers

import (
	"context"

	"github.com/reusee/bft/bfir"
	"github.com/reusee/bft/bftconfigs"
	"github.com/reusee/bft/logs"
)

type Parse func(ctx context.Context, source *bfir.Source) (*bfir.Program, error)

func (Module) Parse(
	maxDepth bftconfigs.MaxDepth,
	logger logs.Logger,
) Parse {
	return func(ctx context.Context, source *bfir.Source) (*bfir.Program, error) {
		tokens := bfir.Filter(source.Content)
		program, err := bfir.ParseTokens(
			tokens,
			bfir.WithSource(source),
			bfir.WithMaxDepth(int(maxDepth)),
		)
		if err != nil {
			return nil, err
		}
		logger.InfoContext(ctx, "parsed",
			append([]any{
				"source", source.Name,
				"instructions", len(tokens),
			}, bfir.Collect(program).LogArgs()...)...,
		)
		return program, nil
	}
}
