package dimensions

import (
	"github.com/VV01T3K/railgen/internal/model"
	"github.com/VV01T3K/railgen/internal/rng"
)

const driverCurrentYear = 2025

// buildDrivers draws count drivers with employment_year >= minEmploymentYear
// (spec §4.2, reused for T2 hires with minEmploymentYear=2023 per §4.3).
func buildDrivers(r *rng.Source, count int, startID, minEmploymentYear int) (map[int]*model.Driver, int) {
	drivers := make(map[int]*model.Driver, count)
	nextID := startID
	for i := 0; i < count; i++ {
		id := nextID
		nextID++
		drivers[id] = makeDriver(r, id, minEmploymentYear)
	}
	return drivers, nextID
}

func makeDriver(r *rng.Source, id, minEmploymentYear int) *model.Driver {
	gender := "woman"
	var firstName string
	if r.Float64() < 0.82 {
		gender = "man"
		firstName = r.FirstNameMale()
	} else {
		firstName = r.FirstNameFemale()
	}

	age := r.UniformInt(23, 62)
	maxYear := driverCurrentYear - (age - 21)
	if maxYear > driverCurrentYear {
		maxYear = driverCurrentYear
	}
	if maxYear < minEmploymentYear {
		maxYear = minEmploymentYear
	}
	employmentYear := r.UniformInt(minEmploymentYear, maxYear)

	return &model.Driver{
		ID:             id,
		FirstName:      firstName,
		LastName:       r.LastName(),
		Gender:         gender,
		Age:            age,
		EmploymentYear: employmentYear,
	}
}
