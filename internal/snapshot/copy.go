package snapshot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var factFilenames = []string{"Ride.csv", "Ride_Section.csv", "Event_On_Route.csv", "weather.csv"}

// CopyForward copies each T1 fact CSV byte-for-byte into the T2
// directory before T2 facts are appended, establishing the T1-prefix-of-
// T2 invariant (spec §4.7). T1 files must already be flushed and closed.
func CopyForward(t1Dir, t2Dir string) error {
	if err := ensureDir(t2Dir); err != nil {
		return err
	}
	for _, name := range factFilenames {
		if err := copyFile(filepath.Join(t1Dir, name), filepath.Join(t2Dir, name)); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("snapshot: open %s for copy-forward: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("snapshot: open %s for copy-forward: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("snapshot: copy %s to %s: %w", src, dst, err)
	}
	return out.Close()
}
