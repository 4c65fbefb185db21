package dimensions

import (
	"fmt"
	"strings"

	"github.com/VV01T3K/railgen/internal/model"
	"github.com/VV01T3K/railgen/internal/rng"
)

// buildTrains draws count trains from the fixed operator distribution
// (spec §4.2).
func buildTrains(r *rng.Source, count int) (map[int]*model.Train, int) {
	trains := make(map[int]*model.Train, count)

	pairs := make([]rng.WeightedPair, len(model.OperatorWeights))
	for i, ow := range model.OperatorWeights {
		pairs[i] = rng.WeightedPair{Label: ow.Operator, Weight: ow.Weight}
	}

	nextID := 1
	for i := 0; i < count; i++ {
		id := nextID
		nextID++

		operator := r.WeightedChoice(pairs)
		trainType := "passenger"
		if strings.Contains(operator, "Cargo") {
			trainType = "cargo"
		}
		trains[id] = &model.Train{
			ID:           id,
			Name:         buildTrainName(r, operator),
			TrainType:    trainType,
			OperatorName: operator,
		}
	}
	return trains, nextID
}

// buildTrainName formats an operator-specific numeric tag (spec §4.2).
func buildTrainName(r *rng.Source, operator string) string {
	switch operator {
	case "Intercity":
		return fmt.Sprintf("IC %d", r.UniformInt(1000, 9999))
	case "POLREGIO":
		return fmt.Sprintf("PR %d", r.UniformInt(10000, 99999))
	case model.PKPCargoOperator:
		return fmt.Sprintf("ET %d", r.UniformInt(500, 9999))
	case model.DBCargoOperator:
		return fmt.Sprintf("DB %d", r.UniformInt(7000, 9999))
	case "Koleje Mazowieckie":
		return fmt.Sprintf("KM %d", r.UniformInt(100, 9999))
	case "Koleje Śląskie":
		return fmt.Sprintf("KS %d", r.UniformInt(100, 9999))
	case "Koleje Dolnośląskie":
		return fmt.Sprintf("KD %d", r.UniformInt(100, 9999))
	default:
		return fmt.Sprintf("TR %d", r.UniformInt(1000, 99999))
	}
}
