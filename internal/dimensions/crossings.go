package dimensions

import (
	"github.com/VV01T3K/railgen/internal/model"
	"github.com/VV01T3K/railgen/internal/rng"
)

// buildCrossings draws count crossings anchored on a uniformly-chosen
// station's region, and marks 320-520 old crossings as pending upgrade
// (spec §4.2). Returns the crossing table, the next free id, and the
// pending-upgrade set consumed by the Evolver in T2 (spec §9's explicit
// pending-set design, replacing the source's overwritten sentinel).
func buildCrossings(r *rng.Source, count int, stations []model.Station) (map[int]*model.Crossing, int, map[int]bool) {
	crossings := make(map[int]*model.Crossing, count)
	oldIDs := make([]int, 0, count)

	nextID := 1
	for i := 0; i < count; i++ {
		id := nextID
		nextID++

		isOld := r.Bernoulli(0.55)
		c := &model.Crossing{
			ID:         id,
			SpeedLimit: r.UniformInt(30, 100),
			Region:     stations[r.UniformInt(0, len(stations)-1)].Region,
			IsOld:      isOld,
		}
		if isOld {
			oldIDs = append(oldIDs, id)
		} else {
			c.HasBarriers = r.Bernoulli(0.75)
			c.HasLightSignals = r.Bernoulli(0.85)
			c.IsLit = r.Bernoulli(0.9)
		}
		crossings[id] = c
	}

	pendingCount := r.UniformInt(320, 520)
	pendingIDs := r.Sample(oldIDs, pendingCount)
	pending := make(map[int]bool, len(pendingIDs))
	for _, id := range pendingIDs {
		pending[id] = true
	}

	return crossings, nextID, pending
}
