package dimensions

import "github.com/VV01T3K/railgen/internal/model"

// buildEvents inserts the fixed EventDefinitions rows in order (spec §4.2).
func buildEvents() []model.EventType {
	events := make([]model.EventType, len(model.EventDefinitions))
	for i, def := range model.EventDefinitions {
		events[i] = model.EventType{
			ID:          i + 1,
			EventType:   def.EventType,
			Category:    def.Category,
			DangerScale: def.DangerScale,
		}
	}
	return events
}
