package dimensions

import (
	"sort"

	"github.com/VV01T3K/railgen/internal/model"
	"github.com/VV01T3K/railgen/internal/rng"
)

// Evolve mutates the universe in place for T2: upgrades pending crossings,
// switches a subset of PKP Cargo trains to DB Cargo Polska, and hires new
// drivers (spec §4.3). It must run after T1 facts are fully generated.
func Evolve(u *Universe, r *rng.Source) {
	u.upgradeCrossings(r)
	u.switchTrains(r)
	u.hireDrivers(r)
	u.reindexCrossingsByRegion()
}

// upgradeCrossings allocates a new successor crossing for every pending-
// upgrade id, fully equipped and with a slightly raised speed limit, and
// points the original row's upgrade_target at it (spec §4.3).
func (u *Universe) upgradeCrossings(r *rng.Source) {
	ids := make([]int, 0, len(u.pendingUpgrade))
	for id := range u.pendingUpgrade {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, oldID := range ids {
		old := u.Crossings[oldID]
		newID := u.nextCrossingID
		u.nextCrossingID++

		speedLimit := old.SpeedLimit + r.UniformInt(0, 5)
		if speedLimit > 100 {
			speedLimit = 100
		}

		u.Crossings[newID] = &model.Crossing{
			ID:              newID,
			HasBarriers:     true,
			HasLightSignals: true,
			IsLit:           true,
			SpeedLimit:      speedLimit,
			Region:          old.Region,
			IsOld:           false,
		}
		old.UpgradeTarget = &newID
	}
	u.pendingUpgrade = make(map[int]bool)
}

// switchTrains samples a subset of PKP Cargo trains and inserts a
// DB Cargo Polska successor for each (spec §4.3).
func (u *Universe) switchTrains(r *rng.Source) {
	cargoIDs := make([]int, 0)
	for id, t := range u.Trains {
		if t.OperatorName == model.PKPCargoOperator {
			cargoIDs = append(cargoIDs, id)
		}
	}
	sort.Ints(cargoIDs)

	switchCount := r.UniformInt(32, 58)
	if switchCount > len(cargoIDs) {
		switchCount = len(cargoIDs)
	}
	chosen := r.Sample(cargoIDs, switchCount)
	sort.Ints(chosen)

	for _, oldID := range chosen {
		old := u.Trains[oldID]
		newID := u.nextTrainID
		u.nextTrainID++

		u.Trains[newID] = &model.Train{
			ID:           newID,
			Name:         old.Name + "-DB",
			TrainType:    old.TrainType,
			OperatorName: model.DBCargoOperator,
		}
		u.switchOldToNew[oldID] = newID
		u.switchNewToOld[newID] = oldID
	}
}

// hireDrivers inserts 250-400 new driver rows with employment_year >= 2023
// (spec §4.3).
func (u *Universe) hireDrivers(r *rng.Source) {
	hires := r.UniformInt(250, 400)
	newDrivers, nextID := buildDrivers(r, hires, u.nextDriverID, 2023)
	for id, d := range newDrivers {
		u.Drivers[id] = d
	}
	u.nextDriverID = nextID
}
