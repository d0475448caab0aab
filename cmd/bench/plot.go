package main

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

type degreePoint struct {
	degree   int
	insertNs int64
	lookupNs int64
}

// writeLatencyChart plots insert and lookup latency of the local tree
// against the minimum-degree sweep.
func writeLatencyChart(points []degreePoint, path string) error {
	p := plot.New()
	p.Title.Text = "B-tree latency by minimum degree"
	p.X.Label.Text = "minimum degree"
	p.Y.Label.Text = "ns/op"

	inserts := make(plotter.XYs, len(points))
	lookups := make(plotter.XYs, len(points))
	for i, pt := range points {
		inserts[i] = plotter.XY{X: float64(pt.degree), Y: float64(pt.insertNs)}
		lookups[i] = plotter.XY{X: float64(pt.degree), Y: float64(pt.lookupNs)}
	}
	if err := plotutil.AddLinePoints(p, "insert", inserts, "lookup", lookups); err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}
