package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	resmodel "pousada/internal/domains/reservation/model"
	"pousada/internal/engine"
	"pousada/shared/constant"
)

func TestHasConflict(t *testing.T) {
	reservations := []resmodel.Reservation{
		{ID: 1, RoomID: 1, CheckIn: "2025-07-01", CheckOut: "2025-07-05", Status: constant.ReservationStatusActive},
		{ID: 2, RoomID: 2, CheckIn: "2025-07-01", CheckOut: "2025-07-05", Status: constant.ReservationStatusActive},
		{ID: 3, RoomID: 3, CheckIn: "2025-07-01", CheckOut: "2025-07-05", Status: constant.ReservationStatusCancelled},
	}

	tests := []struct {
		name      string
		roomID    int64
		checkIn   string
		checkOut  string
		excludeID int64
		want      bool
	}{
		{
			name:     "overlap on same room",
			roomID:   1,
			checkIn:  "2025-07-03",
			checkOut: "2025-07-08",
			want:     true,
		},
		{
			name:     "other room overlaps are fine",
			roomID:   4,
			checkIn:  "2025-07-01",
			checkOut: "2025-07-05",
			want:     false,
		},
		{
			name:     "back to back stays do not clash",
			roomID:   1,
			checkIn:  "2025-07-05",
			checkOut: "2025-07-08",
			want:     false,
		},
		{
			name:     "cancelled reservations never block",
			roomID:   3,
			checkIn:  "2025-07-01",
			checkOut: "2025-07-05",
			want:     false,
		},
		{
			name:      "excluded id is skipped",
			roomID:    1,
			checkIn:   "2025-07-01",
			checkOut:  "2025-07-05",
			excludeID: 1,
			want:      false,
		},
		{
			name:     "unparseable dates never conflict",
			roomID:   1,
			checkIn:  "garbage",
			checkOut: "2025-07-05",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.HasConflict(reservations, tt.roomID, tt.checkIn, tt.checkOut, tt.excludeID)
			assert.Equal(t, tt.want, got)
		})
	}
}
