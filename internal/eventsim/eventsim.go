// Package eventsim probabilistically emits an in-section event,
// conditioned on crossing, weather, driver experience, and operator
// (spec §4.6).
package eventsim

import (
	"time"

	"github.com/VV01T3K/railgen/internal/model"
	"github.com/VV01T3K/railgen/internal/rng"
	"github.com/VV01T3K/railgen/internal/weather"
)

// Inputs bundles the joint factors one section's event draw conditions on.
type Inputs struct {
	BaseEventRate      float64
	Crossing           *model.Crossing // nil if no crossing selected for this section
	Train              *model.Train
	Driver             *model.Driver
	Weather            weather.Sample
	ScheduledDeparture time.Time
	SnapshotEnd        time.Time
	Events             []model.EventType
}

// Outcome is a sampled event, not yet assigned a ride-section or
// event-on-route id.
type Outcome struct {
	EventID               int
	CausedDelay           float64
	InjuredCount          int
	DeathCount            int
	RepairCost            float64
	EmergencyIntervention bool
	EventDate             time.Time
	TrainSpeed            int
}

var year2025 = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// Maybe draws whether an event occurs on this section and, if so, its
// full outcome (spec §4.6). Returns nil when no event occurs.
func Maybe(r *rng.Source, in Inputs) *Outcome {
	p := in.BaseEventRate

	if in.Crossing != nil && in.Crossing.IsOld {
		p *= 1.45
	}
	if in.Crossing != nil && in.Crossing.UpgradeTarget != nil && !in.ScheduledDeparture.Before(model.UpgradeDate) {
		p *= 0.8
	}

	if in.Weather.PrecipitationType == "deszcz" || in.Weather.PrecipitationType == "snieg" {
		p *= 1.2
	}
	if in.Weather.PrecipitationAmount >= 8.0 {
		p *= 1.3
	}

	experience := in.ScheduledDeparture.Year() - in.Driver.EmploymentYear
	switch {
	case experience < 3:
		p *= 1.2
	case experience > 5:
		p *= 0.92
	}

	if !in.ScheduledDeparture.Before(year2025) && !in.ScheduledDeparture.After(in.SnapshotEnd) {
		p *= 0.95
	}

	switch in.Train.OperatorName {
	case "POLREGIO":
		p *= 1.1
	case model.DBCargoOperator, model.PKPCargoOperator:
		p *= 0.95
	}

	if p > 0.35 {
		p = 0.35
	}
	if r.Float64() >= p {
		return nil
	}

	eventID, eventType := pickEventType(r, in)

	out := &Outcome{
		EventID:     eventID,
		CausedDelay: eventDelayMinutes(r, eventType),
		RepairCost:  eventRepairCost(r, eventType),
		EventDate:   in.ScheduledDeparture.Add(time.Duration(r.UniformFloat(2, 10) * float64(time.Minute))),
		TrainSpeed:  eventSpeed(r, in.Train, in.Crossing),
	}
	out.InjuredCount, out.DeathCount = eventCasualties(r, eventType)
	out.EmergencyIntervention = eventType == "wypadek" || eventType == "awaria"
	return out
}

func pickEventType(r *rng.Source, in Inputs) (int, string) {
	weights := map[string]float64{
		"wypadek":              0.06,
		"incydent":             0.5,
		"awaria":               0.22,
		"zdarzenie techniczne": 0.22,
	}
	if in.Crossing != nil && in.Crossing.IsOld {
		weights["wypadek"] += 0.04
		weights["awaria"] += 0.03
	}
	if in.Weather.PrecipitationType == "snieg" {
		weights["incydent"] += 0.05
		weights["awaria"] += 0.04
	}
	if in.Train.OperatorName == model.PKPCargoOperator || in.Train.OperatorName == model.DBCargoOperator {
		weights["awaria"] += 0.04
		weights["incydent"] -= 0.02
	}

	// Order follows the base-weight insertion order (spec §4.1): iteration
	// order of the weighted-categorical draw is fixed, not alphabetical.
	order := []string{"wypadek", "incydent", "awaria", "zdarzenie techniczne"}
	pairs := make([]rng.WeightedPair, len(order))
	for i, label := range order {
		pairs[i] = rng.WeightedPair{Label: label, Weight: weights[label]}
	}
	eventType := r.WeightedChoice(pairs)

	candidates := make([]int, 0)
	for _, e := range in.Events {
		if e.EventType == eventType {
			candidates = append(candidates, e.ID)
		}
	}
	return r.Choice(candidates), eventType
}

func eventDelayMinutes(r *rng.Source, eventType string) float64 {
	switch eventType {
	case "wypadek":
		return r.UniformFloat(25, 90)
	case "awaria":
		return r.UniformFloat(10, 45)
	case "incydent":
		return r.UniformFloat(5, 25)
	default:
		return r.UniformFloat(2, 12)
	}
}

var casualtyChoices = []int{0, 1, 2, 3, 4, 5}

func eventCasualties(r *rng.Source, eventType string) (injured, deaths int) {
	switch eventType {
	case "wypadek":
		injured = r.Choice(casualtyChoices)
		if r.Bernoulli(0.05) {
			deaths = 1
		}
		return injured, deaths
	case "awaria":
		if r.Bernoulli(0.05) {
			injured = 1
		}
		return injured, 0
	default:
		return 0, 0
	}
}

func eventRepairCost(r *rng.Source, eventType string) float64 {
	switch eventType {
	case "wypadek":
		return r.UniformFloat(40000, 180000)
	case "awaria":
		return r.UniformFloat(10000, 40000)
	case "incydent":
		return r.UniformFloat(1000, 6000)
	default:
		return r.UniformFloat(500, 3000)
	}
}

func eventSpeed(r *rng.Source, train *model.Train, crossing *model.Crossing) int {
	baseSpeed := 110
	if train.TrainType != "passenger" {
		baseSpeed = 90
	}
	if crossing != nil {
		capped := crossing.SpeedLimit + r.UniformInt(-10, 5)
		if capped < baseSpeed {
			baseSpeed = capped
		}
	}
	switch {
	case baseSpeed < 30:
		return 30
	case baseSpeed > 160:
		return 160
	default:
		return baseSpeed
	}
}
