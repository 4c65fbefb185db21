package dimensions

import (
	"fmt"

	"github.com/VV01T3K/railgen/internal/model"
	"github.com/VV01T3K/railgen/internal/rng"
)

const uniqueNameAttemptCap = 10_000

// buildStations draws count stations, each with a unique (city, voivodeship)
// pair, then samples the hotspot set (spec §4.2).
func buildStations(r *rng.Source, count int) ([]model.Station, map[int]bool, error) {
	stations := make([]model.Station, 0, count)
	seenPair := make(map[string]bool, count)
	seenName := make(map[string]bool, count)

	for id := 1; id <= count; id++ {
		var city, voivodeship string
		ok := false
		for attempt := 0; attempt < uniqueNameAttemptCap; attempt++ {
			city = r.City()
			voivodeship = r.ChoiceString(model.Voivodeships)
			key := city + "\x00" + voivodeship
			if !seenPair[key] {
				seenPair[key] = true
				ok = true
				break
			}
		}
		if !ok {
			return nil, nil, fmt.Errorf("dimensions: exhausted %d attempts finding a unique (city, voivodeship) pair for station %d", uniqueNameAttemptCap, id)
		}

		name := "Stacja " + city
		if seenName[name] {
			name = fmt.Sprintf("%s %d", name, r.UniformInt(1, 9))
		}
		seenName[name] = true

		stations = append(stations, model.Station{
			ID:          id,
			Name:        name,
			City:        city,
			Voivodeship: voivodeship,
			Region:      model.RegionOf(voivodeship),
		})
	}

	hotspotCount := r.UniformInt(12, 18)
	hotspotIDs := r.Sample(stationIDs(stations), hotspotCount)
	hotspots := make(map[int]bool, len(hotspotIDs))
	for _, id := range hotspotIDs {
		hotspots[id] = true
	}

	return stations, hotspots, nil
}

func stationIDs(stations []model.Station) []int {
	ids := make([]int, len(stations))
	for i, s := range stations {
		ids[i] = s.ID
	}
	return ids
}
