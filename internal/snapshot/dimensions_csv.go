package snapshot

import (
	"fmt"
	"strconv"

	"github.com/VV01T3K/railgen/internal/dimensions"
)

// WriteDimensionCSVs writes Station.csv, Crossing.csv, Train.csv,
// Driver.csv, and Event.csv into dir, reflecting the universe's current
// state. Both snapshots call this with their full dimension set (spec
// §4.7: T2's dimension files are a fresh write of the evolved universe,
// unlike the append-mode fact files).
func WriteDimensionCSVs(dir string, u *dimensions.Universe) error {
	if err := ensureDir(dir); err != nil {
		return err
	}
	if err := writeStationCSV(dir, u); err != nil {
		return err
	}
	if err := writeCrossingCSV(dir, u); err != nil {
		return err
	}
	if err := writeTrainCSV(dir, u); err != nil {
		return err
	}
	if err := writeDriverCSV(dir, u); err != nil {
		return err
	}
	return writeEventCSV(dir, u)
}

func writeStationCSV(dir string, u *dimensions.Universe) error {
	w, f, err := openWriter(dir, "Station.csv", []string{"id", "name", "city"}, false)
	if err != nil {
		return err
	}
	defer f.Close()
	for _, s := range u.Stations {
		if err := w.Write([]string{strconv.Itoa(s.ID), s.Name, s.City}); err != nil {
			return fmt.Errorf("snapshot: write Station.csv row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

func writeCrossingCSV(dir string, u *dimensions.Universe) error {
	w, f, err := openWriter(dir, "Crossing.csv", []string{"id", "has_barriers", "has_light_signals", "is_lit", "speed_limit"}, false)
	if err != nil {
		return err
	}
	defer f.Close()
	for _, id := range u.CrossingIDs() {
		c := u.CrossingByID(id)
		if err := w.Write([]string{
			strconv.Itoa(c.ID),
			boolStr(c.HasBarriers),
			boolStr(c.HasLightSignals),
			boolStr(c.IsLit),
			strconv.Itoa(c.SpeedLimit),
		}); err != nil {
			return fmt.Errorf("snapshot: write Crossing.csv row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

func writeTrainCSV(dir string, u *dimensions.Universe) error {
	w, f, err := openWriter(dir, "Train.csv", []string{"id", "name", "train_type", "operator_name"}, false)
	if err != nil {
		return err
	}
	defer f.Close()
	for _, id := range u.TrainIDs() {
		t := u.TrainByID(id)
		if err := w.Write([]string{strconv.Itoa(t.ID), t.Name, t.TrainType, t.OperatorName}); err != nil {
			return fmt.Errorf("snapshot: write Train.csv row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

func writeDriverCSV(dir string, u *dimensions.Universe) error {
	w, f, err := openWriter(dir, "Driver.csv", []string{"id", "first_name", "last_name", "gender", "age", "employment_year"}, false)
	if err != nil {
		return err
	}
	defer f.Close()
	for _, id := range u.DriverIDs() {
		d := u.DriverByID(id)
		if err := w.Write([]string{
			strconv.Itoa(d.ID), d.FirstName, d.LastName, d.Gender,
			strconv.Itoa(d.Age), strconv.Itoa(d.EmploymentYear),
		}); err != nil {
			return fmt.Errorf("snapshot: write Driver.csv row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

func writeEventCSV(dir string, u *dimensions.Universe) error {
	w, f, err := openWriter(dir, "Event.csv", []string{"id", "event_type", "category", "danger_scale"}, false)
	if err != nil {
		return err
	}
	defer f.Close()
	for _, e := range u.Events {
		if err := w.Write([]string{
			strconv.Itoa(e.ID), e.EventType, e.Category, strconv.Itoa(e.DangerScale),
		}); err != nil {
			return fmt.Errorf("snapshot: write Event.csv row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

func boolStr(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
