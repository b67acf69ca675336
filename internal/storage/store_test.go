package storage

import (
	"errors"
	"testing"

	"github.com/jroth137/rcfdtdpy/internal/config"
	"github.com/jroth137/rcfdtdpy/internal/fdtd"
	"github.com/jroth137/rcfdtdpy/internal/source"
)

func testRun(t *testing.T) (*config.Config, *fdtd.Sim) {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.NumN = 6
	cfg.NumI = 11
	cfg.Source = source.Spec{Kind: "impulse", Index: 5, Amplitude: 0.5}

	current, err := source.Build(cfg.Source, cfg.NumN, cfg.NumI)
	if err != nil {
		t.Fatalf("Build: unexpected error %v", err)
	}
	sim, err := fdtd.New(cfg.Params(), current)
	if err != nil {
		t.Fatalf("New: unexpected error %v", err)
	}
	if err := sim.Simulate(); err != nil {
		t.Fatalf("Simulate: unexpected error %v", err)
	}
	return cfg, sim
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("Init: unexpected error %v", err)
	}

	cfg, sim := testRun(t)
	runID, err := st.Save(cfg, sim)
	if err != nil {
		t.Fatalf("Save: unexpected error %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("Load: unexpected error %v", err)
	}
	if meta.NumN != 6 || meta.NumI != 11 {
		t.Errorf("metadata dimensions: got %dx%d, expected 6x11", meta.NumN, meta.NumI)
	}
	if meta.SourceKind != "impulse" {
		t.Errorf("source kind: got %s, expected impulse", meta.SourceKind)
	}

	want := sim.EField().Export()
	got, err := st.LoadGrid(runID, "efield")
	if err != nil {
		t.Fatalf("LoadGrid: unexpected error %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("grid rows: got %d, expected %d", len(got), len(want))
	}
	for n := range want {
		for i := range want[n] {
			if got[n][i] != want[n][i] {
				t.Errorf("efield[%d][%d]: got %g, expected %g", n, i, got[n][i], want[n][i])
			}
		}
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("Init: unexpected error %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("List on empty store: unexpected error %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("empty store: got %d runs", len(runs))
	}

	cfg, sim := testRun(t)
	runID, err := st.Save(cfg, sim)
	if err != nil {
		t.Fatalf("Save: unexpected error %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("List: unexpected error %v", err)
	}
	if len(runs) != 1 || runs[0].ID != runID {
		t.Errorf("List: got %+v, expected one run %s", runs, runID)
	}
}

func TestListMissingBaseDir(t *testing.T) {
	st := New(t.TempDir() + "/never-created")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("List: unexpected error %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("got %d runs from a missing directory", len(runs))
	}
}

func TestLoadGridUnknownName(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.LoadGrid("whatever", "density"); !errors.Is(err, ErrUnknownGrid) {
		t.Errorf("got %v, expected ErrUnknownGrid", err)
	}
}
