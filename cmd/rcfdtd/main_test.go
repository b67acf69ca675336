package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jroth137/rcfdtdpy/internal/storage"
)

func TestWriteMetadata(t *testing.T) {
	meta := &storage.RunMetadata{
		ID:         "impulse_1700000000",
		Timestamp:  time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		NumN:       500,
		NumI:       250,
		DeltaT:     3e-4,
		DeltaZ:     3e4,
		SourceKind: "impulse",
		Workers:    1,
	}

	var buf bytes.Buffer
	if err := writeMetadata(&buf, meta); err != nil {
		t.Fatalf("writeMetadata returned error: %v", err)
	}

	var decoded storage.RunMetadata
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.ID != meta.ID {
		t.Errorf("got id %q, expected %q", decoded.ID, meta.ID)
	}
	if decoded.NumN != meta.NumN || decoded.NumI != meta.NumI {
		t.Errorf("got grid %dx%d, expected %dx%d", decoded.NumN, decoded.NumI, meta.NumN, meta.NumI)
	}
	if !bytes.Contains(buf.Bytes(), []byte("\n  ")) {
		t.Error("expected indented output")
	}
}

func TestExportRunJSONMetadata(t *testing.T) {
	dir := t.TempDir()
	runID := "impulse_1700000000"
	runDir := filepath.Join(dir, runID)

	st := storage.New(dir)
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	meta := storage.RunMetadata{ID: runID, NumN: 6, NumI: 11, SourceKind: "impulse"}
	data, err := json.Marshal(meta)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if err := os.MkdirAll(runDir, 0755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(runDir, "metadata.json"), data, 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	loaded, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	var buf bytes.Buffer
	if err := writeMetadata(&buf, loaded); err != nil {
		t.Fatalf("writeMetadata returned error: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(runID)) {
		t.Errorf("output missing run id %q", runID)
	}
}

func TestExportRunUnknownFormat(t *testing.T) {
	format = "density"
	defer func() { format = "svg" }()

	if err := exportRun(nil, []string{"impulse_1700000000"}); err == nil {
		t.Error("expected error for unknown format, got nil")
	}
}
