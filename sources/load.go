package sources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/reusee/bft/bfir"
	"github.com/reusee/bft/logs"
	"github.com/reusee/bft/nets"
)

const MaxSize = 64 << 20

var ErrTooLarge = errors.New("program source too large")

type Stdin io.Reader

func (Module) Stdin() Stdin {
	return os.Stdin
}

// Load reads a program from a file path, "-" for stdin, or an http(s) URL.
type Load func(ctx context.Context, location string) (*bfir.Source, error)

func (Module) Load(
	client nets.HTTPClient,
	stdin Stdin,
	logger logs.Logger,
) Load {
	return func(ctx context.Context, location string) (_ *bfir.Source, err error) {
		defer func() {
			if err != nil {
				err = fmt.Errorf("load %s: %w", location, err)
			}
		}()

		var r io.Reader
		switch {

		case location == "-":
			r = stdin
			location = "<stdin>"

		case strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://"):
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
			if err != nil {
				return nil, err
			}
			resp, err := client.Do(req)
			if err != nil {
				return nil, err
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return nil, fmt.Errorf("http status: %s", resp.Status)
			}
			logger.InfoContext(ctx, "fetch source",
				"url", location,
				"length", resp.ContentLength,
			)
			r = resp.Body

		default:
			f, err := os.Open(location)
			if err != nil {
				return nil, err
			}
			defer f.Close()
			r = f

		}

		content, err := io.ReadAll(io.LimitReader(r, MaxSize+1))
		if err != nil {
			return nil, err
		}
		if len(content) > MaxSize {
			return nil, ErrTooLarge
		}

		return bfir.NewSource(location, string(content)), nil
	}
}
