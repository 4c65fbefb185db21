// Package manifest writes a per-snapshot manifest.json (run id, files,
// row counts, SHA-256 checksums) and validates it against the files on
// disk. This is a SPEC_FULL.md addition (§11.1); it never alters the
// mandated CSV output itself.
package manifest

import (
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// File is one manifest entry: a CSV's row count (excluding header) and
// checksum.
type File struct {
	Name     string `json:"name"`
	Rows     int    `json:"rows"`
	Checksum string `json:"sha256"`
}

// Manifest describes one snapshot directory's generated output.
type Manifest struct {
	RunID     string `json:"run_id"`
	Snapshot  string `json:"snapshot"`
	Timestamp string `json:"timestamp"`
	Files     []File `json:"files"`
}

// runID is drawn once per process, so every manifest written by one run
// carries the same id.
var runID = uuid.New().String()

// Write builds and writes manifest.json for the given snapshot directory,
// covering every named file.
func Write(dir, snapshot, timestamp string, filenames []string) (*Manifest, error) {
	m := &Manifest{
		RunID:     runID,
		Snapshot:  snapshot,
		Timestamp: timestamp,
	}

	for _, name := range filenames {
		f, err := describeFile(filepath.Join(dir, name), name)
		if err != nil {
			return nil, err
		}
		m.Files = append(m.Files, f)
	}

	if err := writeJSON(filepath.Join(dir, "manifest.json"), m); err != nil {
		return nil, err
	}
	return m, nil
}

func describeFile(path, name string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("manifest: read %s: %w", path, err)
	}

	rows, err := countDataRows(path)
	if err != nil {
		return File{}, err
	}

	sum := sha256.Sum256(data)
	return File{Name: name, Rows: rows, Checksum: hex.EncodeToString(sum[:])}, nil
}

func countDataRows(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("manifest: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	count := -1 // subtract the header row
	for {
		_, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("manifest: count rows in %s: %w", path, err)
		}
		count++
	}
	if count < 0 {
		count = 0
	}
	return count, nil
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("manifest: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("manifest: write %s: %w", path, err)
	}
	return nil
}

// Validate re-hashes every file a manifest names and reports a mismatch.
func Validate(dir string) error {
	data, err := os.ReadFile(filepath.Join(dir, "manifest.json"))
	if err != nil {
		return fmt.Errorf("manifest: read manifest.json: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("manifest: parse manifest.json: %w", err)
	}

	for _, entry := range m.Files {
		got, err := describeFile(filepath.Join(dir, entry.Name), entry.Name)
		if err != nil {
			return err
		}
		if got.Checksum != entry.Checksum {
			return fmt.Errorf("manifest: checksum mismatch for %s", entry.Name)
		}
		if got.Rows != entry.Rows {
			return fmt.Errorf("manifest: row count mismatch for %s: manifest says %d, found %d", entry.Name, entry.Rows, got.Rows)
		}
	}
	return nil
}
