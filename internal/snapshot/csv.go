package snapshot

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// openWriter opens a CSV file for writing: truncate-and-header when
// append is false, append-no-header when true (spec §4.7). The caller
// must Close the returned closer once done.
func openWriter(dir, filename string, header []string, append bool) (*csv.Writer, *os.File, error) {
	flags := os.O_CREATE | os.O_WRONLY
	if append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	f, err := os.OpenFile(filepath.Join(dir, filename), flags, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("snapshot: open %s: %w", filename, err)
	}

	w := csv.NewWriter(f)
	w.UseCRLF = false

	if !append {
		if err := w.Write(header); err != nil {
			f.Close()
			return nil, nil, fmt.Errorf("snapshot: write header for %s: %w", filename, err)
		}
	}
	return w, f, nil
}

func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("snapshot: create directory %s: %w", dir, err)
	}
	return nil
}
