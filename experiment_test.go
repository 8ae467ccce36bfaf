package disjointset

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
)

func TestExperiment(t *testing.T) {
	t.Parallel()

	Convey("NewExperiment", t, func() {
		Convey("validates its configuration", func() {
			bad := []ExperimentConfig{
				{From: 0, To: 10, Trials: 1},
				{From: 10, To: 5, Trials: 1},
				{From: 1, To: 10, Trials: 0},
				{From: 1, To: 10, Trials: 1, Workers: -1},
				{From: 1, To: 10, Trials: 1, CacheSize: -1},
			}
			for _, cfg := range bad {
				_, err := NewExperiment(cfg)
				So(errors.Is(err, ErrInvalidArgument), ShouldBeTrue)
			}
		})

		Convey("fills in defaults", func() {
			e, err := NewExperiment(ExperimentConfig{From: 1, To: 2, Trials: 1})
			So(err, ShouldBeNil)
			So(e.cfg.Workers, ShouldBeGreaterThan, 0)
			So(e.cfg.CacheSize, ShouldEqual, DefaultResultCacheSize)
		})
	})

	Convey("Experiment.Run", t, func() {
		ctx := context.Background()
		cfg := ExperimentConfig{From: 100, To: 1000, Trials: 10, Workers: 4, Seed: 2024}

		e, err := NewExperiment(cfg)
		So(err, ShouldBeNil)

		results, err := e.Run(ctx)
		So(err, ShouldBeNil)

		Convey("measures each doubling of n", func() {
			var ns []int
			for _, r := range results {
				ns = append(ns, r.N)
				So(r.Trials, ShouldEqual, 10)
				So(r.Mean, ShouldBeGreaterThanOrEqualTo, float64(r.N-1))
				So(r.StdDev, ShouldBeGreaterThanOrEqualTo, 0)
				So(r.Ratio, ShouldBeBetween, 0.6, 2.0)
			}
			So(ns, ShouldResemble, []int{100, 200, 400, 800})
		})

		Convey("is reproducible regardless of worker count", func() {
			cfg.Workers = 1
			other, err := NewExperiment(cfg)
			So(err, ShouldBeNil)
			again, err := other.Run(ctx)
			So(err, ShouldBeNil)
			So(cmp.Diff(results, again), ShouldEqual, "")
		})

		Convey("memoizes results", func() {
			So(e.cache.Len(), ShouldEqual, 4)
			r, err := e.Measure(ctx, 200)
			So(err, ShouldBeNil)
			So(r, ShouldResemble, results[1])
			So(e.cache.Len(), ShouldEqual, 4)
		})
	})

	Convey("A single trial has no spread", t, func() {
		e, err := NewExperiment(ExperimentConfig{From: 50, To: 51, Trials: 1})
		So(err, ShouldBeNil)
		r, err := e.Measure(context.Background(), 50)
		So(err, ShouldBeNil)
		So(r.StdDev, ShouldEqual, 0)
		So(r.Mean, ShouldBeGreaterThan, 0)
	})

	Convey("A cancelled context stops the experiment", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		e, err := NewExperiment(ExperimentConfig{From: 100, To: 1000, Trials: 5})
		So(err, ShouldBeNil)
		results, err := e.Run(ctx)
		So(errors.Is(err, context.Canceled), ShouldBeTrue)
		So(results, ShouldBeEmpty)
		So(e.cache.Len(), ShouldEqual, 0)
	})
}
