package render

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/popviz/internal/dataset"
)

// TrendChart plots a compact line chart for the stats panel. With several
// years loaded it shows total population by year; with a single year it
// shows the combined count per age band from youngest to oldest, which
// traces the shape of the pyramid.
func TrendChart(all []dataset.Series, width, height int) string {
	if len(all) == 0 {
		return ""
	}
	if width < 10 {
		width = 10
	}
	if height < 2 {
		height = 2
	}

	if len(all) > 1 {
		totals := make([]float64, len(all))
		for i, s := range all {
			totals[i] = s.Total()
		}
		return asciigraph.Plot(totals,
			asciigraph.Height(height),
			asciigraph.Width(width),
			asciigraph.Caption("total population by year"),
		)
	}

	s := all[0]
	n := len(s.AgeGroups)
	if n == 0 {
		return ""
	}
	// Bound series are stored oldest-first; plot youngest to oldest.
	counts := make([]float64, n)
	for i := 0; i < n; i++ {
		j := n - 1 - i
		if s.Male[j] < 0 {
			counts[i] = -s.Male[j] + s.Female[j]
		} else {
			counts[i] = s.Male[j] + s.Female[j]
		}
	}
	return asciigraph.Plot(counts,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("population by age band"),
	)
}
