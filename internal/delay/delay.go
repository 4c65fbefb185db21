// Package delay computes section-level scheduled-versus-actual delay in
// minutes from joint factors (spec §4.5).
package delay

import (
	"time"

	"github.com/VV01T3K/railgen/internal/model"
	"github.com/VV01T3K/railgen/internal/rng"
	"github.com/VV01T3K/railgen/internal/weather"
)

// Inputs bundles the joint factors one section's delay draw conditions on.
type Inputs struct {
	DepartureStationID int
	ArrivalStationID   int
	ScheduledDeparture time.Time
	HotspotSet         map[int]bool
	Driver             *model.Driver
	OperatorName       string
	Weather            weather.Sample
}

// Minutes draws the pre-clip section delay in minutes (spec §4.5). The
// caller is responsible for adding any event's caused_delay and clipping
// the result to [-5, +240].
func Minutes(r *rng.Source, in Inputs) float64 {
	d := r.Gauss(0, 1.5)

	if in.HotspotSet[in.DepartureStationID] || in.HotspotSet[in.ArrivalStationID] {
		d += r.UniformFloat(2, 4)
	}

	hour := in.ScheduledDeparture.Hour()
	if (hour >= 7 && hour <= 9) || (hour >= 16 && hour <= 18) {
		d += r.UniformFloat(0.5, 2.5)
	}

	// time.Monday == 1; spec's weekday 4 (0=Mon) is Friday.
	if in.ScheduledDeparture.Weekday() == time.Friday {
		d += r.UniformFloat(0.3, 1.8)
	}

	experience := in.ScheduledDeparture.Year() - in.Driver.EmploymentYear
	switch {
	case experience < 3:
		d *= r.UniformFloat(1.12, 1.28)
	case experience > 5:
		d *= r.UniformFloat(0.82, 0.92)
	}

	switch in.OperatorName {
	case "POLREGIO":
		d += r.UniformFloat(0.5, 2.0)
	case model.PKPCargoOperator, model.DBCargoOperator:
		d += r.UniformFloat(-0.5, 1.0)
	}

	switch in.Weather.PrecipitationType {
	case "snieg":
		d += r.UniformFloat(1.5, 4.0)
	case "deszcz":
		if in.Weather.PrecipitationAmount >= 8.0 {
			d += r.UniformFloat(1.0, 3.0)
		}
	case "grad":
		d += r.UniformFloat(0.5, 2.0)
	}

	return d
}

// ClipSection clips a section delay to [-5, +240] (spec §3).
func ClipSection(d float64) float64 {
	return clamp(d, -5, 240)
}

// ClipRide clips a ride's total delay to [-20, +360] (spec §3).
func ClipRide(d float64) float64 {
	return clamp(d, -20, 360)
}

func clamp(v, low, high float64) float64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
