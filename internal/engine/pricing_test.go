package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	ratemodel "pousada/internal/domains/rate/model"
	roommodel "pousada/internal/domains/room/model"
	"pousada/internal/engine"
)

func TestMultiplierForMonth(t *testing.T) {
	rates := []ratemodel.SeasonalRate{
		{ID: 1, Months: []int{1, 2}, Multiplier: 0.9},
		{ID: 2, Months: []int{6, 7, 8}, Multiplier: 1.25},
		{ID: 3, Months: []int{12}, Multiplier: 1.1},
		{ID: 4, Months: []int{12}, Multiplier: 1.3},
	}

	tests := []struct {
		name  string
		month int
		want  float64
	}{
		{name: "uncovered month defaults to 1", month: 4, want: 1.0},
		{name: "single matching rate", month: 7, want: 1.25},
		{name: "discount below one", month: 2, want: 0.9},
		{name: "highest wins on overlap", month: 12, want: 1.3},
		{name: "month zero matches nothing", month: 0, want: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, engine.MultiplierForMonth(rates, tt.month), 1e-9)
		})
	}
}

func TestResolveMultiplier(t *testing.T) {
	rates := []ratemodel.SeasonalRate{
		{ID: 1, Months: []int{7}, Multiplier: 1.5},
	}

	assert.InDelta(t, 1.5, engine.ResolveMultiplier(rates, "2025-07-10"), 1e-9)
	assert.InDelta(t, 1.0, engine.ResolveMultiplier(rates, "2025-03-10"), 1e-9)
	assert.InDelta(t, 1.0, engine.ResolveMultiplier(rates, "invalid"), 1e-9)
	assert.InDelta(t, 1.0, engine.ResolveMultiplier(nil, "2025-07-10"), 1e-9)
}

func TestPriceForStay(t *testing.T) {
	room := roommodel.Room{ID: 1, BasePrice: 100}
	julyRate := []ratemodel.SeasonalRate{
		{ID: 1, Months: []int{7}, Multiplier: 1.5},
	}

	tests := []struct {
		name     string
		room     *roommodel.Room
		rates    []ratemodel.SeasonalRate
		checkIn  string
		checkOut string
		want     float64
	}{
		{
			name:     "nil room",
			room:     nil,
			checkIn:  "2025-07-01",
			checkOut: "2025-07-03",
			want:     0,
		},
		{
			name:     "bad dates",
			room:     &room,
			checkIn:  "bogus",
			checkOut: "2025-07-03",
			want:     0,
		},
		{
			name:     "inverted interval",
			room:     &room,
			checkIn:  "2025-07-05",
			checkOut: "2025-07-01",
			want:     0,
		},
		{
			name:     "zero nights",
			room:     &room,
			checkIn:  "2025-07-01",
			checkOut: "2025-07-01",
			want:     0,
		},
		{
			name:     "flat month",
			room:     &room,
			rates:    julyRate,
			checkIn:  "2025-03-01",
			checkOut: "2025-03-04",
			want:     300,
		},
		{
			// Two July nights at 150 plus one August night at 100.
			name:     "stay spanning a rate boundary",
			room:     &room,
			rates:    julyRate,
			checkIn:  "2025-07-30",
			checkOut: "2025-08-02",
			want:     400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, engine.PriceForStay(tt.room, tt.rates, tt.checkIn, tt.checkOut), 1e-9)
		})
	}
}

func TestPriceForStayRoundsOnceAtTheEnd(t *testing.T) {
	room := roommodel.Room{ID: 1, BasePrice: 33.335}
	rates := []ratemodel.SeasonalRate{
		{ID: 1, Months: []int{7}, Multiplier: 1.1},
	}

	// Each night is 36.6685; summing three nights before rounding gives
	// 110.0055 -> 110.01. Rounding per night first would give 110.01 too,
	// but with 33.333 the paths diverge: 3 x 36.6663 = 109.9989 -> 110.00
	// versus 3 x 36.67 = 110.01 when rounding early.
	got := engine.PriceForStay(&room, rates, "2025-07-01", "2025-07-04")
	assert.InDelta(t, 110.01, got, 1e-9)

	room.BasePrice = 33.333
	got = engine.PriceForStay(&room, rates, "2025-07-01", "2025-07-04")
	assert.InDelta(t, 110.00, got, 1e-9)
}

func TestRoundCents(t *testing.T) {
	assert.InDelta(t, 1.23, engine.RoundCents(1.234), 1e-9)
	assert.InDelta(t, 2.35, engine.RoundCents(2.345), 1e-9)
	assert.InDelta(t, 0, engine.RoundCents(0), 1e-9)
	assert.InDelta(t, -1.23, engine.RoundCents(-1.234), 1e-9)
}
