package dto

import (
	"strconv"
	"strings"

	"pousada/internal/domains/room/model"
	gDto "pousada/shared/dto"
)

// ListFilter narrows the room listing. Zero-value fields match everything.
type ListFilter struct {
	Category string
	Active   *bool
}

func (f *ListFilter) Matches(room *model.Room) bool {
	if f.Category != "" && !strings.EqualFold(f.Category, room.Category) {
		return false
	}

	if f.Active != nil && *f.Active != room.Active {
		return false
	}

	return true
}

func (f *ListFilter) CacheKey() string {
	active := "all"
	if f.Active != nil {
		active = strconv.FormatBool(*f.Active)
	}

	category := f.Category
	if category == "" {
		category = "all"
	}

	return category + ":" + active
}

type RoomResponse struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Category  string   `json:"category"`
	Capacity  int      `json:"capacity"`
	BasePrice float64  `json:"base_price"`
	Amenities []string `json:"amenities"`
	Active    bool     `json:"active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Category = model.Category
	r.Capacity = model.Capacity
	r.BasePrice = model.BasePrice
	r.Amenities = model.Amenities
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
	Total int            `json:"total"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room) {
	r.Total = len(models)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
