package report

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SaveHistogram writes a PNG histogram of ns/iter samples to path, creating
// its directory if needed.
func SaveHistogram(samples []float64, path string) error {
	if len(samples) == 0 {
		return fmt.Errorf("SaveHistogram() expected samples; got none")
	}

	p, err := plot.New()
	if err != nil {
		return fmt.Errorf("could not create plot: err = %w", err)
	}
	p.Title.Text = "ns/iter"
	p.X.Label.Text = "ns/iter"
	p.Y.Label.Text = "samples"

	hist, err := plotter.NewHist(plotter.Values(samples), 20)
	if err != nil {
		return fmt.Errorf("could not create histogram: err = %w", err)
	}
	p.Add(hist)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create plot directory: err = %w", err)
	}
	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("could not save plot to %s: err = %w", path, err)
	}
	return nil
}
