// Package engine implements the pricing and availability core: nightly
// price accumulation under seasonal multipliers, reservation conflict
// detection and the monthly occupancy/revenue aggregation behind the
// dashboard.
//
// Every function is pure: collections go in, values come out, and malformed
// input degrades to a safe default (0, false, 1.0 or an empty aggregate)
// instead of an error. Callers validate; the engine only has to never blow up.
package engine

import (
	"math"

	ratemodel "pousada/internal/domains/rate/model"
	roommodel "pousada/internal/domains/room/model"
	"pousada/shared/dateutil"
)

// MultiplierForMonth resolves the price multiplier for a month (1-12).
// The default is 1.0; when several rates cover the month the highest
// multiplier wins, so the result does not depend on rate ordering.
func MultiplierForMonth(rates []ratemodel.SeasonalRate, month int) float64 {
	multiplier := 1.0

	for i := range rates {
		if !rates[i].AppliesTo(month) {
			continue
		}

		if rates[i].Multiplier > multiplier {
			multiplier = rates[i].Multiplier
		}
	}

	return multiplier
}

// ResolveMultiplier resolves the multiplier applicable to an ISO date.
// An unparseable date yields month 0, matches no rate and returns 1.0.
func ResolveMultiplier(rates []ratemodel.SeasonalRate, isoDate string) float64 {
	return MultiplierForMonth(rates, dateutil.MonthOf(isoDate))
}

// PriceForStay walks every night in [checkIn, checkOut) and accumulates
// basePrice x that night's multiplier. A stay crossing a seasonal boundary
// prices each night under its own month, which is why this is not simply
// nights x basePrice x multiplier.
//
// Returns 0 when the room is absent, a date fails to parse or the stay is
// not at least one night. The sum is rounded to cents once at the end, not
// per night, to avoid cumulative rounding drift.
func PriceForStay(room *roommodel.Room, rates []ratemodel.SeasonalRate, checkIn, checkOut string) float64 {
	if room == nil {
		return 0
	}

	in, okIn := dateutil.ParseLocalDate(checkIn)
	out, okOut := dateutil.ParseLocalDate(checkOut)

	if !okIn || !okOut || !in.Before(out) {
		return 0
	}

	total := 0.0

	for night := in; night.Before(out); night = night.AddDate(0, 0, 1) {
		total += room.BasePrice * MultiplierForMonth(rates, int(night.Month()))
	}

	return RoundCents(total)
}

// RoundCents rounds to two decimal places, half away from zero.
func RoundCents(value float64) float64 {
	return math.Round(value*100) / 100
}
