package cli

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/benbjohnson/clock"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/carplan/motionplan"
	"go.viam.com/carplan/render"
	"go.viam.com/carplan/spatialmath"
)

const (
	textHistogramBins  = 10
	textHistogramWidth = 40
)

// benchClock times benchmark runs. Tests swap in a mock.
var benchClock = clock.New()

// benchReport summarizes a batch of plans.
type benchReport struct {
	Queries  int
	Failures int
	Cusps    int
	Elapsed  time.Duration
	Lengths  stats.Float64Data

	MeanLength   float64
	MedianLength float64
	P95Length    float64
	MinLength    float64
	MaxLength    float64
	StdDevLength float64
}

// QueriesPerSecond returns the planning throughput, or 0 when no time was measured.
func (r *benchReport) QueriesPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Queries) / r.Elapsed.Seconds()
}

// randomQueries draws start and goal poses uniformly from the square [-extent, extent]² with any heading.
func randomQueries(rng *rand.Rand, n int, extent float64) []motionplan.Query {
	randomPose := func() spatialmath.Pose {
		return spatialmath.NewPose(
			(2*rng.Float64()-1)*extent,
			(2*rng.Float64()-1)*extent,
			(2*rng.Float64()-1)*math.Pi,
		)
	}
	queries := make([]motionplan.Query, n)
	for i := range queries {
		queries[i] = motionplan.Query{Start: randomPose(), Goal: randomPose()}
	}
	return queries
}

func runBench(ctx context.Context, mp *motionplan.Planner, queries []motionplan.Query, clk clock.Clock) (*benchReport, error) {
	begin := clk.Now()
	results, err := mp.PlanBatch(ctx, queries)
	if err != nil {
		return nil, err
	}
	report := &benchReport{
		Queries: len(queries),
		Elapsed: clk.Since(begin),
		Lengths: make(stats.Float64Data, 0, len(results)),
	}
	for _, res := range results {
		if res.Err != nil {
			report.Failures++
			continue
		}
		report.Lengths = append(report.Lengths, res.Plan.Length())
		report.Cusps += res.Plan.Cusps()
	}
	if len(report.Lengths) == 0 {
		return report, nil
	}

	// stats only errors on empty input, which is ruled out above.
	report.MeanLength, _ = stats.Mean(report.Lengths)
	report.MedianLength, _ = stats.Median(report.Lengths)
	report.P95Length, _ = stats.Percentile(report.Lengths, 95)
	report.MinLength, _ = stats.Min(report.Lengths)
	report.MaxLength, _ = stats.Max(report.Lengths)
	report.StdDevLength, _ = stats.StandardDeviation(report.Lengths)
	return report, nil
}

// BenchAction plans a batch of random queries and prints length and throughput statistics.
func BenchAction(c *cli.Context) error {
	count := c.Int(flagCount)
	if count <= 0 {
		return errors.Errorf("--%s must be positive", flagCount)
	}
	extent := c.Float64(flagExtent)
	if !(extent > 0) || math.IsInf(extent, 0) {
		return errors.Errorf("--%s must be positive", flagExtent)
	}
	s, err := newSession(c)
	if err != nil {
		return err
	}

	//nolint:gosec
	rng := rand.New(rand.NewSource(c.Int64(flagSeed)))
	queries := randomQueries(rng, count, extent)
	s.logger.Debugw("starting benchmark", "queries", count, "model", s.cfg.Vehicle.Model)
	report, err := runBench(c.Context, s.planner, queries, benchClock)
	if err != nil {
		return err
	}

	t := newTable(c)
	t.AppendHeader(table.Row{"statistic", "value"})
	t.AppendRows([]table.Row{
		{"model", s.cfg.Vehicle.Model},
		{"queries", report.Queries},
		{"failures", report.Failures},
		{"cusps", report.Cusps},
		{"mean length", formatFloat(report.MeanLength)},
		{"median length", formatFloat(report.MedianLength)},
		{"p95 length", formatFloat(report.P95Length)},
		{"min length", formatFloat(report.MinLength)},
		{"max length", formatFloat(report.MaxLength)},
		{"length std dev", formatFloat(report.StdDevLength)},
		{"elapsed", report.Elapsed.String()},
		{"queries/s", fmt.Sprintf("%.1f", report.QueriesPerSecond())},
	})
	t.Render()
	if report.Failures > 0 {
		fmt.Fprintln(c.App.Writer, color.New(color.FgRed).Sprintf("%d of %d queries failed", report.Failures, report.Queries))
	}
	// bucketing needs a non-empty range
	if report.MaxLength > report.MinLength {
		fmt.Fprintln(c.App.Writer, "path lengths:")
		hist := histogram.Hist(textHistogramBins, report.Lengths)
		if err := histogram.Fprint(c.App.Writer, hist, histogram.Linear(textHistogramWidth)); err != nil {
			return err
		}
	}

	if path := c.Path(flagHistogram); path != "" {
		if len(report.Lengths) == 0 {
			return errors.New("no successful plans to draw a histogram of")
		}
		h := render.Histogram{
			Title:  fmt.Sprintf("%s path lengths, %d queries", s.cfg.Vehicle.Model, report.Queries),
			XLabel: "length",
			Values: report.Lengths,
		}
		if err := h.Save(path); err != nil {
			return err
		}
		s.logger.Infow("wrote histogram", "path", path)
	}
	return nil
}
