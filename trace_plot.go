package linesearch

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// BracketPlotter is a float64-only Tracer that records the (Alpha, Value)
// pair of every TraceEvent it receives during a line-search call and can render
// them to an SVG scatter plot. It exists for offline debugging of a
// stalled line search.
type BracketPlotter struct {
	points plotter.XYs
	notes  []string
}

// NewBracketPlotter returns an empty BracketPlotter.
func NewBracketPlotter() *BracketPlotter {
	return &BracketPlotter{}
}

// Trace implements Tracer[float64].
func (p *BracketPlotter) Trace(e TraceEvent[float64]) {
	p.points = append(p.points, plotter.XY{X: e.Alpha, Y: e.Value})
	p.notes = append(p.notes, e.Level.String()+": "+e.Note)
}

// Reset discards accumulated points, for reuse across calls.
func (p *BracketPlotter) Reset() {
	p.points = p.points[:0]
	p.notes = p.notes[:0]
}

// SaveSVG renders phi(alpha) against every probed alpha to path, connecting
// probes in the order they were evaluated.
func (p *BracketPlotter) SaveSVG(path string) error {
	pl := plot.New()
	pl.Title.Text = "HagerZhang bracket history"
	pl.X.Label.Text = "alpha"
	pl.Y.Label.Text = "phi(alpha)"

	line, points, err := plotter.NewLinePoints(p.points)
	if err != nil {
		return err
	}
	pl.Add(line, points)

	return pl.Save(6*vg.Inch, 4*vg.Inch, path)
}
