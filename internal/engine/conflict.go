package engine

import (
	resmodel "pousada/internal/domains/reservation/model"
	"pousada/shared/dateutil"
)

// HasConflict reports whether any active reservation on the given room
// overlaps [checkIn, checkOut). Interval bounds are half-open, so a stay
// checking in on another stay's check-out date is not a conflict.
//
// excludeID skips one reservation, for edit-in-place flows; pass 0 to
// consider them all. The scan is linear, which is fine at this inventory
// size; index by room id before reusing this at scale.
func HasConflict(reservations []resmodel.Reservation, roomID int64, checkIn, checkOut string, excludeID int64) bool {
	for i := range reservations {
		r := &reservations[i]

		if r.ID == excludeID || r.RoomID != roomID || !r.IsActive() {
			continue
		}

		if dateutil.IntervalsOverlap(r.CheckIn, r.CheckOut, checkIn, checkOut) {
			return true
		}
	}

	return false
}
