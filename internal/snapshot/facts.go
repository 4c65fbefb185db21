package snapshot

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/VV01T3K/railgen/internal/delay"
	"github.com/VV01T3K/railgen/internal/dimensions"
	"github.com/VV01T3K/railgen/internal/eventsim"
	"github.com/VV01T3K/railgen/internal/model"
	"github.com/VV01T3K/railgen/internal/rng"
	"github.com/VV01T3K/railgen/internal/weather"
)

// GenerateFacts writes ride_count rides' worth of Ride, Ride_Section,
// Event_On_Route, and weather rows into dir, advancing counters as it
// goes (spec §4.7). append selects header-then-write (T1) versus
// no-header append (T2).
func GenerateFacts(r *rng.Source, u *dimensions.Universe, cfg model.SnapshotConfig, dir string, append bool, counters *Counters) error {
	if err := ensureDir(dir); err != nil {
		return err
	}

	rideW, rideF, err := openWriter(dir, "Ride.csv",
		[]string{"id", "route_name", "time_difference", "scheduled_departure", "scheduled_arrival", "train_id", "driver_id"}, append)
	if err != nil {
		return err
	}
	defer rideF.Close()

	sectionW, sectionF, err := openWriter(dir, "Ride_Section.csv",
		[]string{"id", "ride_id", "section_number", "departure_station_id", "arrival_station_id", "time_difference", "scheduled_arrival", "scheduled_departure"}, append)
	if err != nil {
		return err
	}
	defer sectionF.Close()

	eventW, eventF, err := openWriter(dir, "Event_On_Route.csv",
		[]string{"id", "ride_section_id", "crossing_id", "event_id", "caused_delay", "injured_count", "death_count", "repair_cost", "emergency_intervention", "event_date", "train_speed"}, append)
	if err != nil {
		return err
	}
	defer eventF.Close()

	weatherW, weatherF, err := openWriter(dir, "weather.csv",
		[]string{"id_odcinka", "data_pomiaru", "temperatura", "ilosc_opadow", "typ_opadow"}, append)
	if err != nil {
		return err
	}
	defer weatherF.Close()

	trainsPool := u.TrainIDs()
	driversPool := u.DriverIDs()

	for i := 0; i < cfg.RideCount; i++ {
		route := u.Routes[r.UniformInt(0, len(u.Routes)-1)]
		scheduleStart := RandomDatetime(r, cfg.Start, cfg.End)
		trainID := SelectTrain(r, u, cfg.Name, scheduleStart, trainsPool)
		driverID := SelectDriver(r, u, scheduleStart, driversPool)

		rideID := counters.NextRideID
		counters.NextRideID++

		scheduledArrival, totalDelay, err := writeRideSections(
			r, u, route, rideID, trainID, driverID, scheduleStart, cfg.BaseEventRate, cfg.End,
			sectionW, eventW, weatherW, counters,
		)
		if err != nil {
			return err
		}

		if err := rideW.Write([]string{
			strconv.Itoa(rideID),
			route.Name,
			strconv.Itoa(int(math.Round(delay.ClipRide(totalDelay)))),
			scheduleStart.Format(model.DateTimeLayout),
			scheduledArrival.Format(model.DateTimeLayout),
			strconv.Itoa(trainID),
			strconv.Itoa(driverID),
		}); err != nil {
			return fmt.Errorf("snapshot: write Ride.csv row: %w", err)
		}
	}

	rideW.Flush()
	sectionW.Flush()
	eventW.Flush()
	weatherW.Flush()
	for _, w := range []interface{ Error() error }{rideW, sectionW, eventW, weatherW} {
		if err := w.Error(); err != nil {
			return fmt.Errorf("snapshot: flush fact csv: %w", err)
		}
	}
	return nil
}

// writeRideSections walks one ride's sections, writing Ride_Section,
// Event_On_Route, and weather rows, and returns the ride's final
// scheduled_arrival and its pre-clip total delay (spec §4.7).
func writeRideSections(
	r *rng.Source,
	u *dimensions.Universe,
	route model.RouteTemplate,
	rideID, trainID, driverID int,
	scheduleStart time.Time,
	baseEventRate float64,
	snapshotEnd time.Time,
	sectionW, eventW, weatherW csvWriter,
	counters *Counters,
) (time.Time, float64, error) {
	driver := u.DriverByID(driverID)
	train := u.TrainByID(trainID)

	cursor := scheduleStart
	totalDelay := 0.0
	var lastArrival time.Time

	for idx := 0; idx < len(route.StationIDs)-1; idx++ {
		dep := route.StationIDs[idx]
		arr := route.StationIDs[idx+1]
		minutes := route.SectionMinutes[idx]

		scheduledDeparture := cursor
		scheduledArrival := cursor.Add(time.Duration(minutes) * time.Minute)

		// Weather is anchored on the section's arrival station, not its
		// departure station.
		arrStation := u.StationByID(arr)
		w := weather.Draw(r, scheduledDeparture, arrStation.Region)

		sectionDelay := delay.Minutes(r, delay.Inputs{
			DepartureStationID: dep,
			ArrivalStationID:   arr,
			ScheduledDeparture: scheduledDeparture,
			HotspotSet:         u.HotspotSet,
			Driver:             driver,
			OperatorName:       train.OperatorName,
			Weather:            w,
		})

		crossingID := SelectCrossing(r, u, w.Region, scheduledDeparture)
		var crossing *model.Crossing
		if crossingID != nil {
			crossing = u.CrossingByID(*crossingID)
		}

		outcome := eventsim.Maybe(r, eventsim.Inputs{
			BaseEventRate:      baseEventRate,
			Crossing:           crossing,
			Train:              train,
			Driver:             driver,
			Weather:            w,
			ScheduledDeparture: scheduledDeparture,
			SnapshotEnd:        snapshotEnd,
			Events:             u.Events,
		})

		sectionID := counters.NextSectionID
		counters.NextSectionID++

		if outcome != nil {
			sectionDelay = delay.ClipSection(sectionDelay + outcome.CausedDelay)

			eventOnRouteID := counters.NextEventOnRouteID
			counters.NextEventOnRouteID++

			crossingField := ""
			if crossingID != nil {
				crossingField = strconv.Itoa(*crossingID)
			}
			if err := eventW.Write([]string{
				strconv.Itoa(eventOnRouteID),
				strconv.Itoa(sectionID),
				crossingField,
				strconv.Itoa(outcome.EventID),
				formatFloat(outcome.CausedDelay),
				strconv.Itoa(outcome.InjuredCount),
				strconv.Itoa(outcome.DeathCount),
				fmt.Sprintf("%.2f", outcome.RepairCost),
				boolStr(outcome.EmergencyIntervention),
				outcome.EventDate.Format(model.DateTimeLayout),
				strconv.Itoa(outcome.TrainSpeed),
			}); err != nil {
				return time.Time{}, 0, fmt.Errorf("snapshot: write Event_On_Route.csv row: %w", err)
			}
		}

		if err := sectionW.Write([]string{
			strconv.Itoa(sectionID),
			strconv.Itoa(rideID),
			strconv.Itoa(idx + 1),
			strconv.Itoa(dep),
			strconv.Itoa(arr),
			strconv.Itoa(int(math.Round(sectionDelay))),
			scheduledArrival.Format(model.DateTimeLayout),
			scheduledDeparture.Format(model.DateTimeLayout),
		}); err != nil {
			return time.Time{}, 0, fmt.Errorf("snapshot: write Ride_Section.csv row: %w", err)
		}

		if err := weatherW.Write([]string{
			strconv.Itoa(sectionID),
			scheduledDeparture.Format(model.DateTimeLayout),
			fmt.Sprintf("%.1f", w.Temperature),
			fmt.Sprintf("%.1f", w.PrecipitationAmount),
			w.PrecipitationType,
		}); err != nil {
			return time.Time{}, 0, fmt.Errorf("snapshot: write weather.csv row: %w", err)
		}

		totalDelay += sectionDelay
		cursor = scheduledArrival
		lastArrival = scheduledArrival
	}

	return lastArrival, totalDelay, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type csvWriter interface {
	Write(record []string) error
}
