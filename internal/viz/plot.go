// Package viz renders exported time-space grids in the terminal. It
// consumes only the solver's Export buffers and the step sizes; nothing
// here touches the update loop.
package viz

import (
	"errors"
	"fmt"

	"github.com/guptarohit/asciigraph"
)

// ErrIndexOutOfRange indicates a row or probe index outside the grid.
var ErrIndexOutOfRange = errors.New("viz: index out of range")

// PlotRow renders one time row of a grid as an ASCII line plot.
func PlotRow(grid [][]float64, n, width, height int) (string, error) {
	if n < 0 || n >= len(grid) {
		return "", fmt.Errorf("%w: row %d of %d", ErrIndexOutOfRange, n, len(grid))
	}
	return asciigraph.Plot(grid[n],
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("time row %d", n)),
	), nil
}

// PlotProbe renders the time series of a single spatial cell.
func PlotProbe(grid [][]float64, i, width, height int) (string, error) {
	if len(grid) == 0 || i < 0 || i >= len(grid[0]) {
		return "", fmt.Errorf("%w: probe %d", ErrIndexOutOfRange, i)
	}
	series := make([]float64, len(grid))
	for n := range grid {
		series[n] = grid[n][i]
	}
	return asciigraph.Plot(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("cell %d over time", i)),
	), nil
}
