package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	ratemodel "pousada/internal/domains/rate/model"
	resmodel "pousada/internal/domains/reservation/model"
	roommodel "pousada/internal/domains/room/model"
	"pousada/internal/engine"
	"pousada/shared/constant"
)

func TestOccupiedNightsByMonth(t *testing.T) {
	reservations := []resmodel.Reservation{
		{ID: 1, RoomID: 1, CheckIn: "2025-03-10", CheckOut: "2025-03-13", Status: constant.ReservationStatusActive},
		// Two July nights and one August night.
		{ID: 2, RoomID: 2, CheckIn: "2025-07-30", CheckOut: "2025-08-02", Status: constant.ReservationStatusActive},
		{ID: 3, RoomID: 1, CheckIn: "broken", CheckOut: "2025-03-13", Status: constant.ReservationStatusActive},
	}

	nights := engine.OccupiedNightsByMonth(reservations)

	assert.Equal(t, 3, nights[2])
	assert.Equal(t, 2, nights[6])
	assert.Equal(t, 1, nights[7])

	total := 0
	for _, n := range nights {
		total += n
	}

	assert.Equal(t, 6, total)
}

func TestRevenueByMonth(t *testing.T) {
	rooms := []roommodel.Room{
		{ID: 1, BasePrice: 100},
	}
	rates := []ratemodel.SeasonalRate{
		{ID: 1, Months: []int{7}, Multiplier: 1.5},
	}
	reservations := []resmodel.Reservation{
		{ID: 1, RoomID: 1, CheckIn: "2025-07-30", CheckOut: "2025-08-02", Status: constant.ReservationStatusActive},
		// The stored total is ignored; revenue comes from current prices.
		{ID: 2, RoomID: 1, CheckIn: "2025-03-01", CheckOut: "2025-03-03", TotalPrice: 9999, Status: constant.ReservationStatusActive},
		// No matching room, contributes nothing.
		{ID: 3, RoomID: 42, CheckIn: "2025-07-01", CheckOut: "2025-07-05", Status: constant.ReservationStatusActive},
	}

	revenue := engine.RevenueByMonth(reservations, rooms, rates)

	assert.InDelta(t, 200.0, revenue[2], 1e-9)
	assert.InDelta(t, 300.0, revenue[6], 1e-9)
	assert.InDelta(t, 100.0, revenue[7], 1e-9)
	assert.InDelta(t, 600.0, engine.YearlyTotal(revenue), 1e-9)
}

func TestClassifyOccupancy(t *testing.T) {
	tests := []struct {
		pct  int
		want string
	}{
		{0, engine.OccupancyLow},
		{39, engine.OccupancyLow},
		{40, engine.OccupancyMedium},
		{69, engine.OccupancyMedium},
		{70, engine.OccupancyHigh},
		{100, engine.OccupancyHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, engine.ClassifyOccupancy(tt.pct), "pct %d", tt.pct)
	}
}
