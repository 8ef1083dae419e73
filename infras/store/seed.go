package store

import (
	"pousada/internal/domains/rate/model"
	resmodel "pousada/internal/domains/reservation/model"
	roommodel "pousada/internal/domains/room/model"
	"pousada/internal/engine"
	"pousada/shared/constant"
	"pousada/shared/dateutil"
	gModel "pousada/shared/model"
	"pousada/shared/timezone"
)

// SeedSnapshot builds the first-start state: the fixed nine-room inventory,
// the five seasonal rates and three demo reservations. Demo reservation
// totals are computed through the pricing engine at build time so the seed
// can never carry a price inconsistent with the seeded rates.
func SeedSnapshot() Snapshot {
	rooms := seedRooms()
	rates := seedRates()

	return Snapshot{
		Rooms:        rooms,
		Rates:        rates,
		Reservations: seedReservations(rooms, rates),
	}
}

func seedRooms() []roommodel.Room {
	meta := seedMetadata()

	return []roommodel.Room{
		{ID: 1, Name: "Room 01", Category: "Standard", Capacity: 2, BasePrice: 95, Amenities: []string{"Wi-Fi", "Air conditioning", "40\" TV", "Safe"}, Active: true, Metadata: meta},
		{ID: 2, Name: "Room 02", Category: "Standard", Capacity: 2, BasePrice: 90, Amenities: []string{"Wi-Fi", "32\" TV", "Desk", "Balcony"}, Active: true, Metadata: meta},
		{ID: 3, Name: "Room 03", Category: "Superior", Capacity: 2, BasePrice: 110, Amenities: []string{"Wi-Fi", "Air conditioning", "43\" TV", "Rain shower"}, Active: true, Metadata: meta},
		{ID: 4, Name: "Room 04", Category: "Deluxe", Capacity: 3, BasePrice: 140, Amenities: []string{"Wi-Fi", "Air conditioning", "Minibar", "City view"}, Active: true, Metadata: meta},
		{ID: 5, Name: "Room 05", Category: "Deluxe", Capacity: 3, BasePrice: 155, Amenities: []string{"Wi-Fi", "Balcony", "Minibar", "Kettle"}, Active: true, Metadata: meta},
		{ID: 6, Name: "Room 06", Category: "Suite", Capacity: 4, BasePrice: 210, Amenities: []string{"Wi-Fi", "Jacuzzi", "Living room", "Sea view"}, Active: true, Metadata: meta},
		{ID: 7, Name: "Room 07", Category: "Suite", Capacity: 4, BasePrice: 225, Amenities: []string{"Wi-Fi", "Living room", "Wide balcony", "Safe"}, Active: true, Metadata: meta},
		{ID: 8, Name: "Room 08", Category: "Family", Capacity: 5, BasePrice: 180, Amenities: []string{"Wi-Fi", "Kitchenette", "Two bedrooms", "Crib"}, Active: true, Metadata: meta},
		{ID: 9, Name: "Room 09", Category: "Single", Capacity: 1, BasePrice: 70, Amenities: []string{"Wi-Fi", "Desk", "Safe"}, Active: false, Metadata: meta},
	}
}

func seedRates() []model.SeasonalRate {
	meta := seedMetadata()

	return []model.SeasonalRate{
		{ID: 1, Name: "Quiet Winter", Months: []int{1, 2}, Multiplier: 0.9, Description: "Early-year promotion for short stays.", Metadata: meta},
		{ID: 2, Name: "Spring Season", Months: []int{3, 4, 5}, Multiplier: 1.1, Description: "Cultural events and city tourism period.", Metadata: meta},
		{ID: 3, Name: "High Summer", Months: []int{6, 7, 8}, Multiplier: 1.25, Description: "Peak season with high demand and extra services.", Metadata: meta},
		{ID: 4, Name: "Autumn Conferences", Months: []int{9, 10}, Multiplier: 1.05, Description: "Congress months and corporate events.", Metadata: meta},
		{ID: 5, Name: "Festive Year-End", Months: []int{11, 12}, Multiplier: 1.2, Description: "Festive season with special experiences.", Metadata: meta},
	}
}

func seedReservations(rooms []roommodel.Room, rates []model.SeasonalRate) []resmodel.Reservation {
	meta := seedMetadata()

	demo := []resmodel.Reservation{
		{ID: 1, GuestName: "João Pereira", Contact: "912345678", RoomID: 1, CheckIn: "2025-03-05", CheckOut: "2025-03-08", PartySize: 2, Status: constant.ReservationStatusActive, CreatedOn: "2025-02-20", Metadata: meta},
		{ID: 2, GuestName: "Mariana Lopes", Contact: "918234567", RoomID: 3, CheckIn: "2025-07-12", CheckOut: "2025-07-15", PartySize: 2, Status: constant.ReservationStatusActive, CreatedOn: "2025-06-25", Metadata: meta},
		{ID: 3, GuestName: "Rui Fernandes", Contact: "", RoomID: 2, CheckIn: "2025-10-02", CheckOut: "2025-10-04", PartySize: 2, Status: constant.ReservationStatusCancelled, CreatedOn: "2025-09-10", Metadata: meta},
	}

	for i := range demo {
		room := findSeedRoom(rooms, demo[i].RoomID)
		demo[i].Nights = dateutil.Nights(demo[i].CheckIn, demo[i].CheckOut)
		demo[i].TotalPrice = engine.PriceForStay(room, rates, demo[i].CheckIn, demo[i].CheckOut)
	}

	return demo
}

func findSeedRoom(rooms []roommodel.Room, id int64) *roommodel.Room {
	for i := range rooms {
		if rooms[i].ID == id {
			return &rooms[i]
		}
	}

	return nil
}

func seedMetadata() gModel.Metadata {
	now := timezone.Now()

	return gModel.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
	}
}
