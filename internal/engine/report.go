package engine

import (
	ratemodel "pousada/internal/domains/rate/model"
	resmodel "pousada/internal/domains/reservation/model"
	roommodel "pousada/internal/domains/room/model"
	"pousada/shared/constant"
	"pousada/shared/dateutil"
)

// Occupancy levels as reported on the dashboard.
const (
	OccupancyLow    = "low"
	OccupancyMedium = "medium"
	OccupancyHigh   = "high"
)

// OccupiedNightsByMonth buckets every night of every reservation into the
// month it falls in. A stay spanning two months contributes to both buckets.
// Callers pass the active subset; this function does not filter by status.
func OccupiedNightsByMonth(reservations []resmodel.Reservation) [constant.MonthsPerYear]int {
	var nights [constant.MonthsPerYear]int

	for i := range reservations {
		in, okIn := dateutil.ParseLocalDate(reservations[i].CheckIn)
		out, okOut := dateutil.ParseLocalDate(reservations[i].CheckOut)

		if !okIn || !okOut {
			continue
		}

		for night := in; night.Before(out); night = night.AddDate(0, 0, 1) {
			nights[int(night.Month())-1]++
		}
	}

	return nights
}

// RevenueByMonth rebuilds revenue night by night from the CURRENT room and
// rate state, bucketed by the month each night falls in. This deliberately
// differs from summing stored reservation totals, which are frozen quotes;
// the dashboard is meant to reflect prices as configured today.
// Reservations whose room no longer exists contribute nothing.
// Each bucket is rounded to cents at the end.
func RevenueByMonth(reservations []resmodel.Reservation, rooms []roommodel.Room, rates []ratemodel.SeasonalRate) [constant.MonthsPerYear]float64 {
	var revenue [constant.MonthsPerYear]float64

	for i := range reservations {
		room := findRoom(rooms, reservations[i].RoomID)
		if room == nil {
			continue
		}

		in, okIn := dateutil.ParseLocalDate(reservations[i].CheckIn)
		out, okOut := dateutil.ParseLocalDate(reservations[i].CheckOut)

		if !okIn || !okOut {
			continue
		}

		for night := in; night.Before(out); night = night.AddDate(0, 0, 1) {
			month := int(night.Month())
			revenue[month-1] += room.BasePrice * MultiplierForMonth(rates, month)
		}
	}

	for i := range revenue {
		revenue[i] = RoundCents(revenue[i])
	}

	return revenue
}

// YearlyTotal sums the twelve monthly buckets, rounded to cents.
func YearlyTotal(revenue [constant.MonthsPerYear]float64) float64 {
	total := 0.0
	for _, value := range revenue {
		total += value
	}

	return RoundCents(total)
}

// ClassifyOccupancy maps an occupancy percentage to a reporting level.
func ClassifyOccupancy(percentage int) string {
	switch {
	case percentage < 40:
		return OccupancyLow
	case percentage < 70:
		return OccupancyMedium
	default:
		return OccupancyHigh
	}
}

func findRoom(rooms []roommodel.Room, id int64) *roommodel.Room {
	for i := range rooms {
		if rooms[i].ID == id {
			return &rooms[i]
		}
	}

	return nil
}
