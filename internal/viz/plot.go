// Package viz renders concentration traces in the terminal: static
// asciigraph charts for recorded runs and a bubbletea live view.
package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/kmsahu/genesim/internal/grn"
)

const (
	plotHeight = 10
	plotWidth  = 80
)

// PlotSeries renders one captioned trace.
func PlotSeries(s grn.Series, caption string) string {
	if len(s) < 2 {
		return fmt.Sprintf("%s: not enough samples", caption)
	}
	return asciigraph.Plot(s,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}

// PlotAll renders every named trace in order, blank-line separated.
func PlotAll(names []string, columns []grn.Series) string {
	var b strings.Builder
	for i, name := range names {
		if i >= len(columns) {
			break
		}
		caption := name
		switch name {
		case "x":
			caption = "x (input signal)"
		case "y":
			caption = "y (intermediate regulator)"
		case "z":
			caption = "z (output gene)"
		}
		b.WriteString(PlotSeries(columns[i], caption))
		b.WriteString("\n\n")
	}
	return b.String()
}
