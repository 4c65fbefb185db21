package model

import "time"

// Voivodeships lists the 16 fixed Polish administrative regions a station
// may belong to (spec §6).
var Voivodeships = []string{
	"Dolnośląskie", "Kujawsko-Pomorskie", "Lubelskie", "Lubuskie",
	"Łódzkie", "Małopolskie", "Mazowieckie", "Opolskie",
	"Podkarpackie", "Podlaskie", "Pomorskie", "Śląskie",
	"Świętokrzyskie", "Warmińsko-Mazurskie", "Wielkopolskie",
	"Zachodniopomorskie",
}

// Coastal and Mountain classify a voivodeship into a climatic region; any
// voivodeship in neither set is "central" (spec §4.2).
var (
	Coastal = map[string]bool{
		"Pomorskie":          true,
		"Zachodniopomorskie": true,
	}
	Mountain = map[string]bool{
		"Małopolskie":  true,
		"Podkarpackie": true,
		"Śląskie":      true,
	}
)

// RegionOf derives a station's climatic region from its voivodeship.
func RegionOf(voivodeship string) string {
	switch {
	case Coastal[voivodeship]:
		return "coastal"
	case Mountain[voivodeship]:
		return "mountain"
	default:
		return "central"
	}
}

// EventDef is one fixed (event_type, category, danger_scale) row; ids are
// assigned sequentially over EventDefinitions in order (spec §4.2).
type EventDef struct {
	EventType   string
	Category    string
	DangerScale int
}

// EventDefinitions is the fixed 13-row Event Type table (spec §6), in the
// exact order ids are assigned.
var EventDefinitions = []EventDef{
	{"wypadek", "potrącenie pieszego", 9},
	{"wypadek", "zderzenie z samochodem", 8},
	{"wypadek", "wykolejenie", 10},
	{"wypadek", "zderzenie z innym pociągiem", 10},
	{"incydent", "opóźnienie organizacyjne", 4},
	{"incydent", "przekroczenie limitu prędkości", 5},
	{"incydent", "problem z pasażerem", 3},
	{"awaria", "usterka hamulców", 7},
	{"awaria", "usterka sygnalizacji", 6},
	{"awaria", "awaria lokomotywy", 7},
	{"zdarzenie techniczne", "planowy postój", 2},
	{"zdarzenie techniczne", "test systemu", 2},
	{"zdarzenie techniczne", "brak maszynisty", 3},
}

// OperatorWeight is one (operator name, selection weight) pair for the
// train-operator weighted categorical draw (spec §4.2). Order is the
// weighted-choice iteration order and must not be reshuffled.
type OperatorWeight struct {
	Operator string
	Weight   float64
}

// OperatorWeights is the fixed operator distribution trains are drawn from
// at T1 build time.
var OperatorWeights = []OperatorWeight{
	{"Intercity", 0.22},
	{"POLREGIO", 0.24},
	{"PKP Cargo", 0.18},
	{"DB Cargo Polska", 0.10},
	{"Koleje Mazowieckie", 0.10},
	{"Koleje Śląskie", 0.08},
	{"Koleje Dolnośląskie", 0.08},
}

const (
	// DateTimeLayout is the exact CSV timestamp format mandated by spec §6.
	DateTimeLayout = "2006-01-02 15:04:05"

	// DBCargoOperator is the successor operator name trains switch to at
	// SwitchDate (spec §4.3).
	DBCargoOperator = "DB Cargo Polska"
	// PKPCargoOperator is the operator a T2 train switch samples from.
	PKPCargoOperator = "PKP Cargo"
)

// Calendar constants (spec §6). Times are naive UTC instants: the dataset
// has no timezone concept of its own, only wall-clock strings.
var (
	T1Start     = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	T1End       = time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC)
	T2Start     = time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	T2End       = time.Date(2025, 10, 31, 23, 59, 59, 0, time.UTC)
	UpgradeDate = time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	SwitchDate  = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
)

const (
	T1BaseEventRate = 0.035
	T2BaseEventRate = 0.033
)
