// Package export writes exported grids to formats external visualization
// tools consume.
package export

import (
	"fmt"
	"math"
	"os"
	"strings"
)

// GridToSVG renders a time-space grid as an SVG heatmap. Time runs top to
// bottom, space left to right. Values are colored on a blue-black-red ramp
// centered at zero.
func GridToSVG(grid [][]float64, cellSize float64) string {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return ""
	}

	numN, numI := len(grid), len(grid[0])
	width := float64(numI) * cellSize
	height := float64(numN) * cellSize

	maxAbs := 0.0
	for _, row := range grid {
		for _, v := range row {
			if a := math.Abs(v); a > maxAbs {
				maxAbs = a
			}
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for n, row := range grid {
		for i, v := range row {
			if v == 0 {
				continue
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, float64(i)*cellSize, float64(n)*cellSize, cellSize, cellSize, heatColor(v, maxAbs)))
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// heatColor maps a value to a hex color: red for positive, blue for
// negative, scaled by magnitude.
func heatColor(v, maxAbs float64) string {
	if maxAbs == 0 {
		return "#0a0a0a"
	}
	t := math.Abs(v) / maxAbs
	c := uint8(40 + t*215)
	if v > 0 {
		return fmt.Sprintf("#%02x0a0a", c)
	}
	return fmt.Sprintf("#0a0a%02x", c)
}

// WriteSVG renders the grid and writes it to path.
func WriteSVG(path string, grid [][]float64, cellSize float64) error {
	return os.WriteFile(path, []byte(GridToSVG(grid, cellSize)), 0644)
}
