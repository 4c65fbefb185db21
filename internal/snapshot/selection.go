// Package snapshot orchestrates dimension CSV emission and the per-ride
// fact generation loop for one snapshot, and enforces the T2-contains-T1
// invariant across fact files (spec §4.7-§4.8).
package snapshot

import (
	"time"

	"github.com/VV01T3K/railgen/internal/dimensions"
	"github.com/VV01T3K/railgen/internal/model"
	"github.com/VV01T3K/railgen/internal/rng"
)

// SelectTrain draws a train id for a ride honoring the T2 switch rule
// (spec §4.7). The dead branch noted for T2-post-switch-date pre-switch
// candidates in the reference generator is intentionally not replicated
// (see SPEC_FULL.md open question decisions).
func SelectTrain(r *rng.Source, u *dimensions.Universe, snapshotName string, scheduleStart time.Time, pool []int) int {
	candidate := r.Choice(pool)
	if snapshotName != "T2" {
		return candidate
	}

	if scheduleStart.Before(model.SwitchDate) {
		if oldID, ok := u.SwitchPredecessor(candidate); ok {
			return oldID
		}
		return candidate
	}

	if newID, ok := u.SwitchSuccessor(candidate); ok {
		return newID
	}
	return candidate
}

// SelectDriver rejection-samples a driver whose employment_year is no
// later than the ride's schedule year (spec §4.7).
func SelectDriver(r *rng.Source, u *dimensions.Universe, scheduleStart time.Time, pool []int) int {
	for {
		candidate := r.Choice(pool)
		if u.DriverByID(candidate).EmploymentYear <= scheduleStart.Year() {
			return candidate
		}
	}
}

// SelectCrossing picks a crossing for a section anchored on the weather's
// region, substituting the upgraded successor once it exists and the
// section falls at or after UpgradeDate (spec §4.8).
func SelectCrossing(r *rng.Source, u *dimensions.Universe, region string, scheduledDeparture time.Time) *int {
	ids := u.CrossingsInRegion(region)
	if len(ids) == 0 {
		return nil
	}
	id := r.Choice(ids)
	c := u.CrossingByID(id)
	if c.IsOld && c.UpgradeTarget != nil && !scheduledDeparture.Before(model.UpgradeDate) {
		return c.UpgradeTarget
	}
	return &id
}

// RandomDatetime draws a uniform second-precision timestamp in [start, end].
func RandomDatetime(r *rng.Source, start, end time.Time) time.Time {
	deltaSeconds := int(end.Sub(start).Seconds())
	offset := r.UniformInt(0, deltaSeconds)
	return start.Add(time.Duration(offset) * time.Second)
}
