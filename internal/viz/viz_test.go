package viz

import (
	"errors"
	"strings"
	"testing"
)

func testGrid() [][]float64 {
	return [][]float64{
		{0, 1, 0},
		{1, 0, 1},
		{0, -1, 0},
		{-1, 0, -1},
	}
}

func TestPlotRow(t *testing.T) {
	out, err := PlotRow(testGrid(), 1, 30, 5)
	if err != nil {
		t.Fatalf("PlotRow: unexpected error %v", err)
	}
	if !strings.Contains(out, "time row 1") {
		t.Errorf("caption missing from plot:\n%s", out)
	}

	if _, err := PlotRow(testGrid(), 4, 30, 5); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("row 4 of 4: got %v, expected ErrIndexOutOfRange", err)
	}
	if _, err := PlotRow(testGrid(), -1, 30, 5); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("row -1: got %v, expected ErrIndexOutOfRange", err)
	}
}

func TestPlotProbe(t *testing.T) {
	out, err := PlotProbe(testGrid(), 0, 30, 5)
	if err != nil {
		t.Fatalf("PlotProbe: unexpected error %v", err)
	}
	if !strings.Contains(out, "cell 0") {
		t.Errorf("caption missing from plot:\n%s", out)
	}

	if _, err := PlotProbe(testGrid(), 3, 30, 5); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("probe 3 of 3: got %v, expected ErrIndexOutOfRange", err)
	}
}

func TestHeatmap(t *testing.T) {
	out := Heatmap(testGrid(), 3, 4)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Errorf("heatmap rows: got %d, expected 4", len(lines))
	}

	if Heatmap(nil, 10, 10) != "" {
		t.Error("expected empty output for nil grid")
	}
}

func TestHeatmapAllZero(t *testing.T) {
	grid := [][]float64{{0, 0}, {0, 0}}
	out := Heatmap(grid, 2, 2)
	if strings.TrimSpace(strings.ReplaceAll(out, "\n", "")) != "" {
		t.Errorf("zero grid should render blank, got %q", out)
	}
}

func TestPlaybackScrub(t *testing.T) {
	m := NewPlayback(testGrid(), 0.1, 1.0, "test")
	m.scrub(1)
	if m.row != 1 || m.playing {
		t.Errorf("after scrub: row %d playing %v, expected row 1 paused", m.row, m.playing)
	}
	m.scrub(-5)
	if m.row != 0 {
		t.Errorf("scrub below zero: got row %d, expected 0", m.row)
	}
	m.scrub(100)
	if m.row != 3 {
		t.Errorf("scrub past end: got row %d, expected 3", m.row)
	}
}
