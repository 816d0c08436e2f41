package request

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"isofields/chrono"
	"isofields/internal/diagnostic"
	"isofields/isoformat"
	"isofields/token"
)

var ErrInvalidRequest = errors.New("invalid request")

// Outcome is the result of one request. Err is set when the request failed;
// the other requests of the batch are not affected.
type Outcome struct {
	Name             string
	Pattern          string
	ReducedPrecision bool
	Leftover         []string
	Sample           string
	Diagnostics      diagnostic.Diagnostics
	Err              error
}

// Runner resolves the requests of a batch file concurrently.
type Runner struct {
	Logger *zap.Logger
	// Workers bounds the number of requests resolved at once. Zero means
	// GOMAXPROCS.
	Workers int
	// Sample is the instant printed with each resulting layout.
	Sample time.Time
}

func NewRunner(logger *zap.Logger, workers int, sample time.Time) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Runner{Logger: logger, Workers: workers, Sample: sample}
}

// Run resolves every request of f and returns outcomes in request order.
// The returned error is only set when ctx is done before all requests ran.
func (r *Runner) Run(ctx context.Context, f *File) ([]Outcome, error) {
	outcomes := make([]Outcome, len(f.Requests))
	sample := chrono.FromTime(r.Sample)

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, req := range f.Requests {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			out := resolveOne(req, f.Defaults, sample)
			outcomes[i] = out

			if out.Err != nil {
				r.Logger.Warn("request failed", zap.String("request", out.Name), zap.Error(out.Err))
			} else {
				r.Logger.Debug("request resolved",
					zap.String("request", out.Name),
					zap.String("pattern", out.Pattern),
					zap.Bool("reduced", out.ReducedPrecision),
					zap.Strings("leftover", out.Leftover))
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch interrupted: %w", err)
	}

	// gctx is always done once Wait returns; only the caller's ctx counts.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch interrupted: %w", err)
	}

	return outcomes, nil
}

func resolveOne(req Request, defaults Defaults, sample token.Values) Outcome {
	out := Outcome{Name: req.Name}

	var f *token.Formatter

	switch {
	case !req.Fields.IsEmpty() && req.Pattern != "":
		out.Err = fmt.Errorf("%w: %s sets both fields and pattern", ErrInvalidRequest, req.Name)
		return out
	case req.Pattern != "":
		found, ok := isoformat.Lookup(req.Pattern)
		if !ok {
			out.Err = fmt.Errorf("%w: no catalog layout named %q", ErrInvalidRequest, req.Pattern)
			return out
		}

		f = found
	case !req.Fields.IsEmpty():
		set, err := req.FieldSet()
		if err != nil {
			out.Err = fmt.Errorf("%w: %w", ErrInvalidRequest, err)
			return out
		}

		res, err := isoformat.Resolve(set, req.Options(defaults))
		if err != nil {
			out.Err = err
			return out
		}

		f = res.Formatter
		out.ReducedPrecision = res.ReducedPrecision
		out.Diagnostics = res.Diagnostics

		for _, t := range res.Leftover.Types() {
			out.Leftover = append(out.Leftover, t.String())
		}
	default:
		out.Err = fmt.Errorf("%w: %s sets neither fields nor pattern", ErrInvalidRequest, req.Name)
		return out
	}

	out.Pattern = f.Pattern()

	if f.CanPrint() {
		text, err := f.Print(sample)
		if err != nil {
			out.Err = fmt.Errorf("printing sample for %s: %w", req.Name, err)
			return out
		}

		out.Sample = text
	}

	return out
}
