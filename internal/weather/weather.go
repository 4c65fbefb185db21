// Package weather samples per-section synthetic weather conditioned on
// month and region (spec §4.4).
package weather

import (
	"math"
	"time"

	"github.com/VV01T3K/railgen/internal/rng"
)

// Sample is one synthetic weather observation.
type Sample struct {
	Temperature         float64
	PrecipitationAmount float64
	PrecipitationType   string
	Region              string
}

var monthlyMeanTemp = map[time.Month]float64{
	time.January: -2, time.February: 0, time.March: 4, time.April: 10,
	time.May: 16, time.June: 19, time.July: 21, time.August: 20,
	time.September: 15, time.October: 9, time.November: 3, time.December: -1,
}

var regionOffset = map[string]float64{
	"coastal": 1.5, "mountain": -3.0, "central": 0.0,
}

func isSummer(m time.Month) bool {
	return m == time.June || m == time.July || m == time.August
}

func isWinter(m time.Month) bool {
	return m == time.December || m == time.January || m == time.February
}

func isLateAutumnToWinter(m time.Month) bool {
	switch m {
	case time.October, time.November, time.December, time.January, time.February:
		return true
	default:
		return false
	}
}

func isShoulderSeason(m time.Month) bool {
	switch m {
	case time.March, time.April, time.October, time.November:
		return true
	default:
		return false
	}
}

// Draw draws a weather observation for the given timestamp and region
// (spec §4.4).
func Draw(r *rng.Source, ts time.Time, region string) Sample {
	month := ts.Month()

	temp := r.Gauss(monthlyMeanTemp[month]+regionOffset[region], 4.0)
	temp = clamp(temp, -30, 40)

	amount := r.Gamma(2, 2)
	if isSummer(month) {
		amount *= 1.2
	} else if isWinter(month) {
		amount *= 0.8
	}
	if region == "mountain" {
		amount *= 1.2
	} else if region == "coastal" && isLateAutumnToWinter(month) {
		amount *= 1.15
	}
	if amount > 25.0 {
		amount = 25.0
	}
	amount = round1(amount)

	return Sample{
		Temperature:         temp,
		PrecipitationAmount: amount,
		PrecipitationType:   precipitationType(r, month, amount),
		Region:              region,
	}
}

func precipitationType(r *rng.Source, month time.Month, amount float64) string {
	switch {
	case isWinter(month):
		switch {
		case amount < 1.0:
			return "brak"
		case amount < 6.0:
			return "snieg"
		case r.Bernoulli(0.2):
			return "snieg"
		default:
			return "deszcz"
		}
	case amount >= 10.0 && r.Bernoulli(0.05):
		return "grad"
	case amount < 1.0:
		return "brak"
	case isShoulderSeason(month) && r.Bernoulli(0.2):
		return "snieg"
	default:
		return "deszcz"
	}
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

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
