package dto

import (
	"fmt"

	"pousada/internal/domains/reservation/model"
	"pousada/shared/constant"
	"pousada/shared/dateutil"
	gDto "pousada/shared/dto"
	gModel "pousada/shared/model"
	"pousada/shared/timezone"
)

type CreateReservationRequest struct {
	GuestName string `json:"guest_name" validate:"required,max=100"`
	Contact   string `json:"contact"    validate:"omitempty,max=50"`
	RoomID    int64  `json:"room_id"    validate:"required,gt=0"`
	CheckIn   string `json:"check_in"   validate:"required"`
	CheckOut  string `json:"check_out"  validate:"required"`
	PartySize int    `json:"party_size" validate:"required,gte=1"`
}

// ToModel builds the stored reservation minus the computed fields; the
// service freezes Nights and TotalPrice from the room and rate state at
// creation time. The id is assigned on insert.
func (c *CreateReservationRequest) ToModel() model.Reservation {
	now := timezone.Now()

	return model.Reservation{
		GuestName: c.GuestName,
		Contact:   c.Contact,
		RoomID:    c.RoomID,
		CheckIn:   c.CheckIn,
		CheckOut:  c.CheckOut,
		PartySize: c.PartySize,
		Status:    constant.ReservationStatusActive,
		CreatedOn: dateutil.TodayISO(),
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}
}

// QuoteReservationRequest previews nights and price without persisting
// anything. Guest details are not needed for a quote.
type QuoteReservationRequest struct {
	RoomID    int64  `json:"room_id"    validate:"required,gt=0"`
	CheckIn   string `json:"check_in"   validate:"required"`
	CheckOut  string `json:"check_out"  validate:"required"`
	PartySize int    `json:"party_size" validate:"required,gte=1"`
}

type QuoteReservationResponse struct {
	RoomID     int64   `json:"room_id"`
	Nights     int     `json:"nights"`
	TotalPrice float64 `json:"total_price"`
	Currency   string  `json:"currency"`
}

type ReservationResponse struct {
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
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.GuestName = model.GuestName
	r.Contact = model.Contact
	r.RoomID = model.RoomID
	r.CheckIn = model.CheckIn
	r.CheckOut = model.CheckOut
	r.PartySize = model.PartySize
	r.Nights = model.Nights
	r.TotalPrice = model.TotalPrice
	r.Status = model.Status
	r.CreatedOn = model.CreatedOn
	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation) {
	r.Total = len(models)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}

// ListFilter narrows the reservation listing; zero values mean "all".
type ListFilter struct {
	Month  int
	RoomID int64
	Status string
}

// Matches applies the filter the way the listing view does: a reservation
// matches the month filter when its stay touches that month of the year.
func (f *ListFilter) Matches(r *model.Reservation) bool {
	if f.RoomID != 0 && r.RoomID != f.RoomID {
		return false
	}

	if f.Status != "" && r.Status != f.Status {
		return false
	}

	if f.Month != 0 && !stayTouchesMonth(r, f.Month) {
		return false
	}

	return true
}

func (f *ListFilter) CacheKey() string {
	status := f.Status
	if status == "" {
		status = "all"
	}

	return fmt.Sprintf("%d:%d:%s", f.Month, f.RoomID, status)
}

func stayTouchesMonth(r *model.Reservation, month int) bool {
	in, okIn := dateutil.ParseLocalDate(r.CheckIn)
	out, okOut := dateutil.ParseLocalDate(r.CheckOut)

	if !okIn || !okOut {
		return false
	}

	for night := in; night.Before(out); night = night.AddDate(0, 0, 1) {
		if int(night.Month()) == month {
			return true
		}
	}

	return false
}
