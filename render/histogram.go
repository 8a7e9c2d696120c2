package render

import (
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Histogram is a titled distribution of values, e.g. path lengths or planning times of a benchmark run.
type Histogram struct {
	Title  string
	XLabel string
	Values []float64
	Bins   int
}

// Save writes the histogram to path. The image format follows the file extension (png, svg, pdf).
func (h Histogram) Save(path string) error {
	if len(h.Values) == 0 {
		return errors.New("histogram has no values")
	}
	bins := h.Bins
	if bins <= 0 {
		bins = 20
	}

	p := plot.New()
	p.Title.Text = h.Title
	p.X.Label.Text = h.XLabel
	p.Y.Label.Text = "count"

	hist, err := plotter.NewHist(plotter.Values(h.Values), bins)
	if err != nil {
		return errors.Wrap(err, "failed to bin values")
	}
	p.Add(hist)
	return errors.Wrapf(p.Save(6*vg.Inch, 4*vg.Inch, path), "failed to save %s", path)
}
