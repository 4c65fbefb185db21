package dimensions

import (
	"testing"

	"github.com/VV01T3K/railgen/internal/rng"
)

func buildTestUniverse(t *testing.T, seed int64) *Universe {
	t.Helper()
	u, err := Build(rng.New(seed))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return u
}

func TestBuildCounts(t *testing.T) {
	u := buildTestUniverse(t, 42)

	if n := len(u.Stations); n < 420 || n > 560 {
		t.Fatalf("station count %d out of [420,560]", n)
	}
	if n := len(u.Crossings); n < 9000 || n > 11500 {
		t.Fatalf("crossing count %d out of [9000,11500]", n)
	}
	if n := len(u.Trains); n < 1300 || n > 1650 {
		t.Fatalf("train count %d out of [1300,1650]", n)
	}
	if n := len(u.Drivers); n < 4500 || n > 5800 {
		t.Fatalf("driver count %d out of [4500,5800]", n)
	}
	if n := len(u.Routes); n < 240 || n > 340 {
		t.Fatalf("route count %d out of [240,340]", n)
	}
	if n := len(u.Events); n != 13 {
		t.Fatalf("expected 13 event types, got %d", n)
	}
	if n := len(u.HotspotSet); n < 12 || n > 18 {
		t.Fatalf("hotspot count %d out of [12,18]", n)
	}
}

func TestStationIDsDenseMonotone(t *testing.T) {
	u := buildTestUniverse(t, 1)
	for i, s := range u.Stations {
		if s.ID != i+1 {
			t.Fatalf("station at index %d has id %d, expected %d", i, s.ID, i+1)
		}
	}
}

func TestEvolveIncreasesDimensions(t *testing.T) {
	u := buildTestUniverse(t, 5)
	crossingsBefore := len(u.Crossings)
	trainsBefore := len(u.Trains)
	driversBefore := len(u.Drivers)

	Evolve(u, rng.New(6))

	crossingDelta := len(u.Crossings) - crossingsBefore
	if crossingDelta < 1 {
		t.Fatalf("expected at least one upgraded crossing, got delta %d", crossingDelta)
	}

	trainDelta := len(u.Trains) - trainsBefore
	if trainDelta < 32 || trainDelta > 58 {
		t.Fatalf("train switch delta %d out of [32,58]", trainDelta)
	}

	driverDelta := len(u.Drivers) - driversBefore
	if driverDelta < 250 || driverDelta > 400 {
		t.Fatalf("driver hire delta %d out of [250,400]", driverDelta)
	}

	for id, old := range u.Crossings {
		if old.IsOld && old.UpgradeTarget != nil {
			successor := u.Crossings[*old.UpgradeTarget]
			if successor == nil {
				t.Fatalf("crossing %d points at missing successor %d", id, *old.UpgradeTarget)
			}
			if !successor.HasBarriers || !successor.HasLightSignals || !successor.IsLit {
				t.Fatalf("successor crossing %d is not fully equipped", successor.ID)
			}
			if successor.SpeedLimit < old.SpeedLimit {
				t.Fatalf("successor speed limit %d lower than original %d", successor.SpeedLimit, old.SpeedLimit)
			}
		}
	}

	for oldID, newID := range u.switchOldToNew {
		newTrain := u.Trains[newID]
		oldTrain := u.Trains[oldID]
		if newTrain.OperatorName != "DB Cargo Polska" {
			t.Fatalf("switched train %d has operator %q, want DB Cargo Polska", newID, newTrain.OperatorName)
		}
		if newTrain.Name != oldTrain.Name+"-DB" {
			t.Fatalf("switched train name %q, want %q", newTrain.Name, oldTrain.Name+"-DB")
		}
	}

	for id, d := range u.Drivers {
		if _, existedBefore := hiredBefore(id, driversBefore); existedBefore {
			continue
		}
		if d.EmploymentYear < 2023 {
			t.Fatalf("new hire driver %d has employment_year %d < 2023", id, d.EmploymentYear)
		}
	}
}

func hiredBefore(id, before int) (int, bool) {
	if id <= before {
		return id, true
	}
	return 0, false
}
