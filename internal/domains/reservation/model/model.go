package model

import (
	"pousada/shared/constant"
	"pousada/shared/model"
)

const (
	EntityName = "reservation"

	FieldID     = "id"
	FieldRoomID = "room_id"
	FieldStatus = "status"
)

// Reservation holds a frozen quote: Nights and TotalPrice are computed once
// at creation from the room and rate state of that moment and are never
// recomputed, even when rates change later.
//
// RoomID is a weak reference; the room may be deactivated afterwards without
// cascading into existing reservations.
type Reservation struct {
	ID         int64   `json:"id"`
	GuestName  string  `json:"guest_name"`
	Contact    string  `json:"contact"`
	RoomID     int64   `json:"room_id"`
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	PartySize  int     `json:"party_size"`
	Nights     int     `json:"nights"`
	TotalPrice float64 `json:"total_price"`
	Status     string  `json:"status"`
	CreatedOn  string  `json:"created_on"`
	model.Metadata
}

// IsActive reports whether the reservation still counts toward conflicts
// and revenue.
func (r *Reservation) IsActive() bool {
	return r.Status == constant.ReservationStatusActive
}
