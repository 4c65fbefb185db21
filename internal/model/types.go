// Package model holds the entity types of the railway dataset (spec §3)
// and the fixed reference tables the spec pins down in §6.
package model

import "time"

// Station is a dimension row; never mutated after T1 build (spec §3).
type Station struct {
	ID           int
	Name         string
	City         string
	Voivodeship  string
	Region       string
}

// Crossing is a level crossing. UpgradeTarget is nil until the T2
// Dimension Evolver upgrades it (spec §4.3).
type Crossing struct {
	ID               int
	HasBarriers      bool
	HasLightSignals  bool
	IsLit            bool
	SpeedLimit       int
	Region           string
	IsOld            bool
	UpgradeTarget    *int
}

// Train is a rolling-stock row. A switched PKP Cargo train keeps its
// original row; the successor is a new id (spec §4.3).
type Train struct {
	ID           int
	Name         string
	TrainType    string // "cargo" | "passenger"
	OperatorName string
}

// Driver is append-only across the snapshot boundary (spec §3).
type Driver struct {
	ID             int
	FirstName      string
	LastName       string
	Gender         string // "man" | "woman"
	Age            int
	EmploymentYear int
}

// EventType is one of the 13 static rows from EventDefinitions (spec §6).
type EventType struct {
	ID          int
	EventType   string
	Category    string
	DangerScale int
}

// RouteTemplate is a static sequence of stations and inter-station travel
// times, shared by both snapshots (spec §3).
type RouteTemplate struct {
	Name           string
	StationIDs     []int
	SectionMinutes []int
}

// Ride is one scheduled trip along a route (spec §3).
type Ride struct {
	ID                 int
	RouteName          string
	TimeDifference     int
	ScheduledDeparture time.Time
	ScheduledArrival   time.Time
	TrainID            int
	DriverID           int
}

// RideSection is one leg of a Ride, between two consecutive route stops
// (spec §3).
type RideSection struct {
	ID                  int
	RideID              int
	SectionNumber       int
	DepartureStationID  int
	ArrivalStationID    int
	TimeDifference      int
	ScheduledArrival    time.Time
	ScheduledDeparture  time.Time
}

// EventOnRoute is an in-section incident (spec §3). CrossingID is nil when
// no crossing serves the section's region.
type EventOnRoute struct {
	ID                    int
	RideSectionID         int
	CrossingID            *int
	EventID               int
	CausedDelay           float64
	InjuredCount          int
	DeathCount            int
	RepairCost            float64
	EmergencyIntervention bool
	EventDate             time.Time
	TrainSpeed            int
}

// Weather is a 1:1 per-section synthetic observation (spec §3). Field
// names follow the CSV header spec §6 mandates verbatim.
type Weather struct {
	IDOdcinka    int
	DataPomiaru  time.Time
	Temperatura  float64
	IloscOpadow  float64
	TypOpadow    string
}

// SnapshotConfig bounds one generation pass (spec §6 calendar constants).
type SnapshotConfig struct {
	Name          string
	Start         time.Time
	End           time.Time
	RideCount     int
	BaseEventRate float64
}
