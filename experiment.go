package disjointset

import (
	"context"
	"math/rand/v2"
	"runtime"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

// DefaultResultCacheSize is the number of (n, trials, seed) results an
// Experiment keeps when ExperimentConfig.CacheSize is zero.
const DefaultResultCacheSize = 128

// ExperimentConfig describes a doubling experiment: for n = From, 2·From,
// 4·From, ... while n < To, run Trials independent random-pair counts.
type ExperimentConfig struct {
	From   int
	To     int
	Trials int

	// Workers bounds the number of trials run at once. Zero means GOMAXPROCS.
	Workers int

	// Seed determines every trial's random source.
	Seed uint64

	// CacheSize bounds the memoized results. Zero means DefaultResultCacheSize.
	CacheSize int

	// Logger receives progress messages. Nil disables logging.
	Logger *logging.Logger
}

func (cfg *ExperimentConfig) validate() error {
	if cfg.From < 1 {
		return errors.Wrapf(ErrInvalidArgument, "from must be at least 1, got %d", cfg.From)
	}
	if cfg.To < cfg.From {
		return errors.Wrapf(ErrInvalidArgument, "to (%d) must not be less than from (%d)", cfg.To, cfg.From)
	}
	if cfg.Trials < 1 {
		return errors.Wrapf(ErrInvalidArgument, "trials must be at least 1, got %d", cfg.Trials)
	}
	if cfg.Workers < 0 || cfg.CacheSize < 0 {
		return errors.Wrap(ErrInvalidArgument, "workers and cache size must be non-negative")
	}
	return nil
}

// Result summarizes the trials run for one n.
type Result struct {
	N      int
	Trials int
	Mean   float64 // mean number of Connect calls
	StdDev float64
	Ratio  float64 // Mean / ExpectedPairs(N)
}

type resultKey struct {
	n      int
	trials int
	seed   uint64
}

// Experiment measures how the number of random pairs needed to connect n
// elements grows with n.
type Experiment struct {
	cfg   ExperimentConfig
	cache *lru.Cache[resultKey, Result]
}

// NewExperiment validates cfg and fills in defaults.
func NewExperiment(cfg ExperimentConfig) (*Experiment, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if cfg.CacheSize == 0 {
		cfg.CacheSize = DefaultResultCacheSize
	}

	cache, err := lru.New[resultKey, Result](cfg.CacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create result cache")
	}

	return &Experiment{cfg: cfg, cache: cache}, nil
}

// Run measures every n of the doubling sequence, in increasing order.
func (e *Experiment) Run(ctx context.Context) ([]Result, error) {
	var results []Result
	for n := e.cfg.From; n < e.cfg.To; n *= 2 {
		r, err := e.Measure(ctx, n)
		if err != nil {
			return results, err
		}
		results = append(results, r)
	}
	return results, nil
}

// Measure runs the configured number of trials for a single n.
// Results are memoized, so measuring the same n twice is cheap.
func (e *Experiment) Measure(ctx context.Context, n int) (Result, error) {
	key := resultKey{n: n, trials: e.cfg.Trials, seed: e.cfg.Seed}
	if r, ok := e.cache.Get(key); ok {
		e.debugf("n=%d: cached result", n)
		return r, nil
	}

	e.infof("n=%d: running %d trials on %d workers", n, e.cfg.Trials, e.cfg.Workers)

	counts := make([]float64, e.cfg.Trials)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Workers)
	for i, seed := range trialSeeds(e.cfg.Seed, n, e.cfg.Trials) {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c, err := NewClient(seed).Count(n)
			if err != nil {
				return errors.Wrapf(err, "trial %d for n=%d", i, n)
			}
			counts[i] = float64(c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, errors.Wrapf(err, "measuring n=%d", n)
	}

	r := Result{N: n, Trials: e.cfg.Trials}
	if len(counts) == 1 {
		r.Mean = counts[0]
	} else {
		r.Mean, r.StdDev = stat.MeanStdDev(counts, nil)
	}
	if expected := ExpectedPairs(n); expected > 0 {
		r.Ratio = r.Mean / expected
	}

	e.cache.Add(key, r)
	e.infof("n=%d: mean=%.1f stddev=%.1f ratio=%.3f", n, r.Mean, r.StdDev, r.Ratio)
	return r, nil
}

// trialSeeds derives one seed per trial from the experiment seed and n, so a
// trial's outcome does not depend on scheduling order.
func trialSeeds(seed uint64, n, trials int) []uint64 {
	r := rand.New(rand.NewPCG(seed, uint64(n)))
	seeds := make([]uint64, trials)
	for i := range seeds {
		seeds[i] = r.Uint64()
	}
	return seeds
}

func (e *Experiment) infof(format string, args ...any) {
	if e.cfg.Logger != nil {
		e.cfg.Logger.Infof(format, args...)
	}
}

func (e *Experiment) debugf(format string, args ...any) {
	if e.cfg.Logger != nil {
		e.cfg.Logger.Debugf(format, args...)
	}
}
