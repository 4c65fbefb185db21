package dimensions

import (
	"fmt"
	"math"

	"github.com/VV01T3K/railgen/internal/model"
	"github.com/VV01T3K/railgen/internal/rng"
)

// buildRoutes draws count route templates, each a uniform-without-
// replacement sample of stations with a triangularly-distributed stop
// count (spec §4.2).
func buildRoutes(r *rng.Source, count int, stationIDs []int) []model.RouteTemplate {
	routes := make([]model.RouteTemplate, 0, count)
	usedPairs := make(map[string]bool, count)

	for i := 0; i < count; i++ {
		stops := int(math.Round(r.Triangular(3, 20, 10)))
		if stops < 3 {
			stops = 3
		}
		stopCount := stops + 1

		sequence := r.Sample(stationIDs, stopCount)
		first, last := sequence[0], sequence[len(sequence)-1]
		key := fmt.Sprintf("%d-%d", first, last)

		name := fmt.Sprintf("Linia %d-%d", first, last)
		if usedPairs[key] {
			name = fmt.Sprintf("%s %d", name, r.UniformInt(1, 99))
		} else {
			usedPairs[key] = true
		}

		sectionMinutes := make([]int, stops)
		for j := range sectionMinutes {
			sectionMinutes[j] = r.UniformInt(12, 45)
		}

		routes = append(routes, model.RouteTemplate{
			Name:           name,
			StationIDs:     sequence,
			SectionMinutes: sectionMinutes,
		})
	}
	return routes
}
