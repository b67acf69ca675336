// Package storage persists completed runs: metadata plus the exported
// time-space grids of all three fields, one directory per run.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jroth137/rcfdtdpy/internal/config"
	"github.com/jroth137/rcfdtdpy/internal/fdtd"
)

// ErrUnknownGrid indicates a grid name Save never writes.
var ErrUnknownGrid = errors.New("storage: unknown grid name")

// GridNames are the per-run CSV files, in the order they are written.
var GridNames = []string{"efield", "hfield", "cfield"}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID                    string    `json:"id"`
	Timestamp             time.Time `json:"timestamp"`
	NumN                  int       `json:"num_n"`
	NumI                  int       `json:"num_i"`
	DeltaT                float64   `json:"delta_t"`
	DeltaZ                float64   `json:"delta_z"`
	VacuumPermittivity    float64   `json:"vacuum_permittivity"`
	InfinityPermittivity  float64   `json:"infinity_permittivity"`
	VacuumPermeability    float64   `json:"vacuum_permeability"`
	InitialSusceptibility float64   `json:"initial_susceptibility"`
	SourceKind            string    `json:"source_kind"`
	Workers               int       `json:"workers"`
}

// Save writes a completed run and returns its id.
func (s *Store) Save(cfg *config.Config, sim *fdtd.Sim) (string, error) {
	runID := fmt.Sprintf("%s_%d", cfg.Source.Kind, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:                    runID,
		Timestamp:             time.Now(),
		NumN:                  sim.TimeLen(),
		NumI:                  sim.SpaceLen(),
		DeltaT:                sim.DeltaT(),
		DeltaZ:                sim.DeltaZ(),
		VacuumPermittivity:    sim.VacuumPermittivity(),
		InfinityPermittivity:  sim.InfinityPermittivity(),
		VacuumPermeability:    sim.VacuumPermeability(),
		InitialSusceptibility: sim.InitialSusceptibility(),
		SourceKind:            cfg.Source.Kind,
		Workers:               cfg.Workers,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	grids := map[string][][]float64{
		"efield": sim.EField().Export(),
		"hfield": sim.HField().Export(),
		"cfield": sim.CField().Export(),
	}
	for _, name := range GridNames {
		if err := writeGrid(filepath.Join(runDir, name+".csv"), grids[name]); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func writeGrid(path string, grid [][]float64) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	record := make([]string, 0)
	for _, row := range grid {
		record = record[:0]
		for _, v := range row {
			record = append(record, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadGrid reads back one of the per-run grids by name.
func (s *Store) LoadGrid(runID, name string) ([][]float64, error) {
	known := false
	for _, n := range GridNames {
		if n == name {
			known = true
			break
		}
	}
	if !known {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGrid, name)
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, name+".csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	grid := make([][]float64, 0, len(records))
	for _, record := range records {
		row := make([]float64, 0, len(record))
		for _, cell := range record {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, err
			}
			row = append(row, v)
		}
		grid = append(grid, row)
	}
	return grid, nil
}
