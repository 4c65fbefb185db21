package delay

import (
	"testing"
	"time"

	"github.com/VV01T3K/railgen/internal/model"
	"github.com/VV01T3K/railgen/internal/rng"
	"github.com/VV01T3K/railgen/internal/weather"
)

func TestMinutesDeterministicGivenSameDraws(t *testing.T) {
	driver := &model.Driver{EmploymentYear: 2015}
	in := Inputs{
		DepartureStationID: 1,
		ArrivalStationID:   2,
		ScheduledDeparture: time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC),
		HotspotSet:         map[int]bool{1: true},
		Driver:             driver,
		OperatorName:       "POLREGIO",
		Weather:            weather.Sample{PrecipitationType: "deszcz", PrecipitationAmount: 9.0},
	}

	a := Minutes(rng.New(42), in)
	b := Minutes(rng.New(42), in)
	if a != b {
		t.Fatalf("same seed produced different delays: %v vs %v", a, b)
	}
}

func TestClipBounds(t *testing.T) {
	if got := ClipSection(1000); got != 240 {
		t.Fatalf("ClipSection(1000) = %v, want 240", got)
	}
	if got := ClipSection(-1000); got != -5 {
		t.Fatalf("ClipSection(-1000) = %v, want -5", got)
	}
	if got := ClipRide(1000); got != 360 {
		t.Fatalf("ClipRide(1000) = %v, want 360", got)
	}
	if got := ClipRide(-1000); got != -20 {
		t.Fatalf("ClipRide(-1000) = %v, want -20", got)
	}
}
