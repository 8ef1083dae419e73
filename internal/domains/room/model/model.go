package model

import (
	"pousada/shared/model"
)

const (
	EntityName = "room"

	FieldID       = "id"
	FieldName     = "name"
	FieldCategory = "category"
	FieldActive   = "active"
)

// Room is part of the fixed inventory: seeded at first start, never
// deleted, only toggled between active and inactive.
type Room struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Category  string   `json:"category"`
	Capacity  int      `json:"capacity"`
	BasePrice float64  `json:"base_price"`
	Amenities []string `json:"amenities"`
	Active    bool     `json:"active"`
	model.Metadata
}
