package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// File names written by WriteFiles.
const (
	JSONFile        = "lingua_export.json"
	EntriesCSV      = "entries.csv"
	AudioItemsCSV   = "audio_items.csv"
	StorageFilesCSV = "storage_files.csv"
)

// WriteFiles writes ds into dir as one JSON document and one CSV per
// table, creating dir if needed. It returns the written paths.
func WriteFiles(ds *Dataset, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}

	p := payload{
		Project:    project,
		ExportedAt: ds.ExportedAt,
		Bucket:     ds.Bucket,
		Prefix:     ds.Prefix,
		Tables: tables{
			AudioItems: make([]audioRecord, len(ds.AudioItems)),
			Entries:    make([]entryRecord, len(ds.Entries)),
		},
		Storage: make([]storageRecord, len(ds.Files)),
	}
	for i, a := range ds.AudioItems {
		p.Tables.AudioItems[i] = newAudioRecord(a)
	}
	for i, e := range ds.Entries {
		p.Tables.Entries[i] = newEntryRecord(e)
	}
	for i, f := range ds.Files {
		p.Storage[i] = newStorageRecord(f)
	}

	written := make([]string, 0, 4)

	jsonPath := filepath.Join(dir, JSONFile)
	if err := writeJSON(jsonPath, p); err != nil {
		return nil, err
	}
	written = append(written, jsonPath)

	csvs := []struct {
		name   string
		header []string
		rows   [][]string
	}{
		{AudioItemsCSV, audioColumns, rowsOf(p.Tables.AudioItems, audioRecord.csv)},
		{EntriesCSV, entryColumns, rowsOf(p.Tables.Entries, entryRecord.csv)},
		{StorageFilesCSV, storageColumns, rowsOf(p.Storage, storageRecord.csv)},
	}
	for _, c := range csvs {
		path := filepath.Join(dir, c.name)
		if err := writeCSV(path, c.header, c.rows); err != nil {
			return nil, err
		}
		written = append(written, path)
	}

	return written, nil
}

func rowsOf[T any](records []T, row func(T) []string) [][]string {
	out := make([][]string, len(records))
	for i, r := range records {
		out[i] = row(r)
	}
	return out
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := w.WriteAll(rows); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
