// Package dimensions builds and evolves the T1/T2 dimensional universe:
// stations, crossings, trains, drivers, event types, and route templates
// (spec §4.2-§4.3).
package dimensions

import (
	"sort"

	"github.com/VV01T3K/railgen/internal/model"
	"github.com/VV01T3K/railgen/internal/rng"
)

// Universe holds every dimension row plus the bookkeeping state the
// Evolver and fact generators need: the hotspot set, a crossing-upgrade
// pending set (spec §9's explicit two-phase design), and the train
// switch pair maps.
type Universe struct {
	Stations   []model.Station
	HotspotSet map[int]bool
	Crossings  map[int]*model.Crossing
	Trains     map[int]*model.Train
	Drivers    map[int]*model.Driver
	Events     []model.EventType
	Routes     []model.RouteTemplate

	pendingUpgrade map[int]bool
	switchOldToNew map[int]int
	switchNewToOld map[int]int

	nextCrossingID int
	nextTrainID    int
	nextDriverID   int

	crossingsByRegion map[string][]int
}

// Build constructs the T1 dimensions (spec §4.2).
func Build(r *rng.Source) (*Universe, error) {
	stationCount := r.UniformInt(420, 560)
	stations, hotspots, err := buildStations(r, stationCount)
	if err != nil {
		return nil, err
	}

	crossingCount := r.UniformInt(9000, 11500)
	crossings, nextCrossingID, pending := buildCrossings(r, crossingCount, stations)

	trainCount := r.UniformInt(1300, 1650)
	trains, nextTrainID := buildTrains(r, trainCount)

	driverCount := r.UniformInt(4500, 5800)
	drivers, nextDriverID := buildDrivers(r, driverCount, 1, 1990)

	routeCount := r.UniformInt(240, 340)
	routes := buildRoutes(r, routeCount, stationIDs(stations))

	u := &Universe{
		Stations:       stations,
		HotspotSet:     hotspots,
		Crossings:      crossings,
		Trains:         trains,
		Drivers:        drivers,
		Events:         buildEvents(),
		Routes:         routes,
		pendingUpgrade: pending,
		switchOldToNew: make(map[int]int),
		switchNewToOld: make(map[int]int),
		nextCrossingID: nextCrossingID,
		nextTrainID:    nextTrainID,
		nextDriverID:   nextDriverID,
	}
	u.reindexCrossingsByRegion()
	return u, nil
}

func (u *Universe) reindexCrossingsByRegion() {
	index := make(map[string][]int)
	ids := make([]int, 0, len(u.Crossings))
	for id := range u.Crossings {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		c := u.Crossings[id]
		index[c.Region] = append(index[c.Region], id)
	}
	u.crossingsByRegion = index
}

// StationByID returns the station with the given id.
func (u *Universe) StationByID(id int) model.Station {
	return u.Stations[id-1]
}

// CrossingByID returns the crossing with the given id, or nil.
func (u *Universe) CrossingByID(id int) *model.Crossing {
	return u.Crossings[id]
}

// TrainByID returns the train with the given id, or nil.
func (u *Universe) TrainByID(id int) *model.Train {
	return u.Trains[id]
}

// DriverByID returns the driver with the given id, or nil.
func (u *Universe) DriverByID(id int) *model.Driver {
	return u.Drivers[id]
}

// CrossingsInRegion returns the ids of crossings anchored on the given
// region, or nil if none are registered (spec §4.8).
func (u *Universe) CrossingsInRegion(region string) []int {
	return u.crossingsByRegion[region]
}

// TrainIDs returns every train id currently in the universe, sorted for
// deterministic downstream iteration.
func (u *Universe) TrainIDs() []int {
	ids := make([]int, 0, len(u.Trains))
	for id := range u.Trains {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// DriverIDs returns every driver id currently in the universe, sorted for
// deterministic downstream iteration.
func (u *Universe) DriverIDs() []int {
	ids := make([]int, 0, len(u.Drivers))
	for id := range u.Drivers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// CrossingIDs returns every crossing id currently in the universe, sorted.
func (u *Universe) CrossingIDs() []int {
	ids := make([]int, 0, len(u.Crossings))
	for id := range u.Crossings {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// SwitchSuccessor returns the DB Cargo successor id for a pre-switch PKP
// Cargo train, and whether one exists.
func (u *Universe) SwitchSuccessor(oldID int) (int, bool) {
	id, ok := u.switchOldToNew[oldID]
	return id, ok
}

// IsSwitchSuccessor reports whether id is a post-switch DB Cargo train.
func (u *Universe) IsSwitchSuccessor(id int) bool {
	_, ok := u.switchNewToOld[id]
	return ok
}

// SwitchPredecessor returns the pre-switch PKP Cargo counterpart of a
// post-switch DB Cargo train id, and whether one exists.
func (u *Universe) SwitchPredecessor(newID int) (int, bool) {
	id, ok := u.switchNewToOld[newID]
	return id, ok
}
