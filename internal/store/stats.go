package store

import (
	"time"

	"fuelogistics/internal/models"
)

// TripStats are the dashboard counters derived from the currently filtered
// trip list. Field names match the JSON the dashboard consumes.
type TripStats struct {
	ActiveTrips       int `json:"activeTrips"`
	CompletedToday    int `json:"completedToday"`
	LitersTransported int `json:"litersTransported"`
	TrucksInRoute     int `json:"trucksInRoute"`
}

// ComputeStats derives TripStats from trips, evaluated at now.
//
//   - activeTrips: trips currently in transit.
//   - completedToday: completed trips whose updated_at (or created_at when
//     updated_at is unset) falls on now's calendar day, in now's location.
//   - litersTransported: total liters over completed trips.
//   - trucksInRoute: distinct truck identifiers among in-transit trips, so
//     two in-transit trips on one truck count once.
func ComputeStats(trips []models.Trip, now time.Time) TripStats {
	var stats TripStats
	trucks := make(map[string]struct{})

	for _, t := range trips {
		switch t.Status {
		case models.StatusInTransit:
			stats.ActiveTrips++
			trucks[t.Truck] = struct{}{}
		case models.StatusCompleted:
			stats.LitersTransported += t.QuantityLiters
			ts := t.UpdatedAt
			if ts.IsZero() {
				ts = t.CreatedAt
			}
			if sameCalendarDay(ts, now) {
				stats.CompletedToday++
			}
		}
	}

	stats.TrucksInRoute = len(trucks)
	return stats
}

// sameCalendarDay compares the calendar dates of a and b in b's location.
func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.In(b.Location()).Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
