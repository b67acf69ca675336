package viz

import (
	"math"
	"strings"
)

var heatRunes = []rune(" ░░▒▒▓█")

// Heatmap renders the full time-space grid as a colored block image,
// downsampled to at most width columns and height rows. Time runs top to
// bottom, space left to right; brightness follows field magnitude.
func Heatmap(grid [][]float64, width, height int) string {
	if len(grid) == 0 || len(grid[0]) == 0 || width < 1 || height < 1 {
		return ""
	}

	numN, numI := len(grid), len(grid[0])
	if height > numN {
		height = numN
	}
	if width > numI {
		width = numI
	}

	maxAbs := 0.0
	for _, row := range grid {
		for _, v := range row {
			if a := math.Abs(v); a > maxAbs {
				maxAbs = a
			}
		}
	}

	var sb strings.Builder
	for r := 0; r < height; r++ {
		n := r * numN / height
		for c := 0; c < width; c++ {
			i := c * numI / width
			sb.WriteString(cell(grid[n][i], maxAbs))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func cell(v, maxAbs float64) string {
	if maxAbs == 0 {
		return " "
	}
	t := math.Abs(v) / maxAbs
	bucket := int(t * float64(len(heatRamp)-1))
	if bucket >= len(heatRamp) {
		bucket = len(heatRamp) - 1
	}
	return heatRamp[bucket].Render(string(heatRunes[bucket]))
}
