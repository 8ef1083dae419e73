package model

import (
	"pousada/shared/model"
)

const (
	EntityName = "rate"

	FieldID = "id"
)

// SeasonalRate scales the base nightly price for every month in Months.
// Month sets of different rates may overlap; the resolver always picks
// the highest applicable multiplier.
type SeasonalRate struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Months      []int   `json:"months"`
	Multiplier  float64 `json:"multiplier"`
	Description string  `json:"description"`
	model.Metadata
}

// AppliesTo reports whether the rate covers the given month (1-12).
func (r *SeasonalRate) AppliesTo(month int) bool {
	for _, m := range r.Months {
		if m == month {
			return true
		}
	}

	return false
}
