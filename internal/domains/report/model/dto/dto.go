package dto

// MonthlyReport is one dashboard row covering a calendar month.
type MonthlyReport struct {
	Month          int     `json:"month"`
	MonthName      string  `json:"month_name"`
	OccupiedNights int     `json:"occupied_nights"`
	Revenue        float64 `json:"revenue"`
	OccupancyPct   int     `json:"occupancy_pct"`
	OccupancyLevel string  `json:"occupancy_level"`
}

type DashboardResponse struct {
	Year                  int             `json:"year"`
	Currency              string          `json:"currency"`
	TotalRooms            int             `json:"total_rooms"`
	ActiveRooms           int             `json:"active_rooms"`
	ActiveReservations    int             `json:"active_reservations"`
	CancelledReservations int             `json:"cancelled_reservations"`
	TotalOccupiedNights   int             `json:"total_occupied_nights"`
	YearlyRevenue         float64         `json:"yearly_revenue"`
	Months                []MonthlyReport `json:"months"`
}
