package snapshot

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/VV01T3K/railgen/internal/dimensions"
	"github.com/VV01T3K/railgen/internal/model"
	"github.com/VV01T3K/railgen/internal/rng"
)

// runGenerator drives the same phased control flow as cmd/railgen/main.go,
// at ride counts small enough for a test to inspect directly (spec §8's
// scenario walkthroughs).
func runGenerator(t *testing.T, seed int64, t1Rides, t2Rides int) (t1Dir, t2Dir string) {
	t.Helper()
	root := t.TempDir()
	t1Dir = filepath.Join(root, "T1")
	t2Dir = filepath.Join(root, "T2")

	r := rng.New(seed)
	counters := NewCounters()

	u, err := dimensions.Build(r)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err := WriteDimensionCSVs(t1Dir, u); err != nil {
		t.Fatalf("WriteDimensionCSVs(T1): %v", err)
	}

	t1cfg := model.SnapshotConfig{Name: "T1", Start: model.T1Start, End: model.T1End, RideCount: t1Rides, BaseEventRate: model.T1BaseEventRate}
	if err := GenerateFacts(r, u, t1cfg, t1Dir, false, counters); err != nil {
		t.Fatalf("GenerateFacts(T1): %v", err)
	}

	dimensions.Evolve(u, r)
	if err := WriteDimensionCSVs(t2Dir, u); err != nil {
		t.Fatalf("WriteDimensionCSVs(T2): %v", err)
	}
	if err := CopyForward(t1Dir, t2Dir); err != nil {
		t.Fatalf("CopyForward: %v", err)
	}

	t2cfg := model.SnapshotConfig{Name: "T2", Start: model.T2Start, End: model.T2End, RideCount: t2Rides, BaseEventRate: model.T2BaseEventRate}
	if err := GenerateFacts(r, u, t2cfg, t2Dir, true, counters); err != nil {
		t.Fatalf("GenerateFacts(T2): %v", err)
	}

	return t1Dir, t2Dir
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("parse %s: %v", path, err)
	}
	return rows
}

// TestZeroT2RidesYieldsByteIdenticalFacts covers spec §8 scenario 1: with
// no T2 rides generated, every T2 fact file must equal its T1 counterpart
// byte-for-byte.
func TestZeroT2RidesYieldsByteIdenticalFacts(t *testing.T) {
	t1Dir, t2Dir := runGenerator(t, 42, 1, 0)

	for _, name := range []string{"Ride.csv", "Ride_Section.csv", "Event_On_Route.csv", "weather.csv"} {
		a, err := os.ReadFile(filepath.Join(t1Dir, name))
		if err != nil {
			t.Fatalf("read T1 %s: %v", name, err)
		}
		b, err := os.ReadFile(filepath.Join(t2Dir, name))
		if err != nil {
			t.Fatalf("read T2 %s: %v", name, err)
		}
		if !bytes.Equal(a, b) {
			t.Fatalf("%s differs between T1 and T2 with zero new T2 rides", name)
		}
	}

	rideRows := readCSV(t, filepath.Join(t1Dir, "Ride.csv"))
	if len(rideRows) != 2 { // header + 1 ride
		t.Fatalf("expected exactly 1 ride row, got %d data rows", len(rideRows)-1)
	}
}

// TestT1IsStrictPrefixOfT2 covers spec §3's "T2 fact files are a strict
// prefix-superset of T1 fact files" invariant when T2 adds new rides.
func TestT1IsStrictPrefixOfT2(t *testing.T) {
	t1Dir, t2Dir := runGenerator(t, 7, 20, 15)

	for _, name := range []string{"Ride.csv", "Ride_Section.csv", "Event_On_Route.csv", "weather.csv"} {
		t1Bytes, err := os.ReadFile(filepath.Join(t1Dir, name))
		if err != nil {
			t.Fatalf("read T1 %s: %v", name, err)
		}
		t2Bytes, err := os.ReadFile(filepath.Join(t2Dir, name))
		if err != nil {
			t.Fatalf("read T2 %s: %v", name, err)
		}
		if len(t2Bytes) < len(t1Bytes) {
			t.Fatalf("%s: T2 file shorter than T1 file", name)
		}
		if !bytes.Equal(t2Bytes[:len(t1Bytes)], t1Bytes) {
			t.Fatalf("%s: T2 does not begin with T1's bytes", name)
		}
	}

	t1Rides := readCSV(t, filepath.Join(t1Dir, "Ride.csv"))
	t2Rides := readCSV(t, filepath.Join(t2Dir, "Ride.csv"))
	if len(t2Rides) != len(t1Rides)+15 {
		t.Fatalf("expected %d T2 ride rows, got %d", len(t1Rides)+15, len(t2Rides))
	}
}

// TestDimensionsGrowAcrossEvolution covers spec §8 scenario 2: T2
// dimensions gain upgraded crossings, switched trains, and new drivers.
func TestDimensionsGrowAcrossEvolution(t *testing.T) {
	t1Dir, t2Dir := runGenerator(t, 1, 100, 100)

	t1Crossings := readCSV(t, filepath.Join(t1Dir, "Crossing.csv"))
	t2Crossings := readCSV(t, filepath.Join(t2Dir, "Crossing.csv"))
	delta := len(t2Crossings) - len(t1Crossings)
	if delta < 320 || delta > 520 {
		t.Fatalf("crossing delta %d out of [320,520]", delta)
	}

	t1Trains := readCSV(t, filepath.Join(t1Dir, "Train.csv"))
	t2Trains := readCSV(t, filepath.Join(t2Dir, "Train.csv"))
	trainDelta := len(t2Trains) - len(t1Trains)
	if trainDelta < 32 || trainDelta > 58 {
		t.Fatalf("train delta %d out of [32,58]", trainDelta)
	}

	t1Drivers := readCSV(t, filepath.Join(t1Dir, "Driver.csv"))
	t2Drivers := readCSV(t, filepath.Join(t2Dir, "Driver.csv"))
	driverDelta := len(t2Drivers) - len(t1Drivers)
	if driverDelta < 250 || driverDelta > 400 {
		t.Fatalf("driver delta %d out of [250,400]", driverDelta)
	}
}

// TestRideSectionNumbersConsecutive covers spec §8's section-numbering
// invariant: per ride, section_number starts at 1 and is consecutive.
func TestRideSectionNumbersConsecutive(t *testing.T) {
	t1Dir, _ := runGenerator(t, 3, 30, 0)

	sections := readCSV(t, filepath.Join(t1Dir, "Ride_Section.csv"))[1:] // drop header
	bySection := make(map[int][]int)
	for _, row := range sections {
		rideID, err := strconv.Atoi(row[1])
		if err != nil {
			t.Fatalf("parse ride_id: %v", err)
		}
		sectionNumber, err := strconv.Atoi(row[2])
		if err != nil {
			t.Fatalf("parse section_number: %v", err)
		}
		bySection[rideID] = append(bySection[rideID], sectionNumber)
	}
	for rideID, numbers := range bySection {
		for i, n := range numbers {
			if n != i+1 {
				t.Fatalf("ride %d: section numbers %v not consecutive from 1", rideID, numbers)
			}
		}
	}
}

// TestDeterministicAcrossRuns covers spec §8's determinism property: two
// runs with the same seed and ride counts produce byte-identical T1
// Station, Crossing, Train, Driver, Ride and Ride_Section CSVs.
func TestDeterministicAcrossRuns(t *testing.T) {
	t1A, _ := runGenerator(t, 99, 10, 5)
	t1B, _ := runGenerator(t, 99, 10, 5)

	for _, name := range []string{"Station.csv", "Crossing.csv", "Train.csv", "Driver.csv", "Ride.csv", "Ride_Section.csv"} {
		a, err := os.ReadFile(filepath.Join(t1A, name))
		if err != nil {
			t.Fatalf("read run A %s: %v", name, err)
		}
		b, err := os.ReadFile(filepath.Join(t1B, name))
		if err != nil {
			t.Fatalf("read run B %s: %v", name, err)
		}
		if !bytes.Equal(a, b) {
			t.Fatalf("%s differs between two runs with the same seed", name)
		}
	}
}
