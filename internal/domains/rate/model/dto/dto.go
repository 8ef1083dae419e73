package dto

import (
	"pousada/internal/domains/rate/model"
	gDto "pousada/shared/dto"
	"pousada/shared/timezone"
)

// UpdateRateRequest edits a seasonal rate. Only the multiplier, the month
// set and the descriptive fields can change; rates are never created or
// deleted after seeding.
type UpdateRateRequest struct {
	Name        *string  `json:"name"        validate:"omitempty,max=100"`
	Multiplier  *float64 `json:"multiplier"  validate:"omitempty,gt=0"`
	Months      []int    `json:"months"      validate:"omitempty,min=1,max=12,dive,gte=1,lte=12"`
	Description *string  `json:"description" validate:"omitempty,max=200"`
}

// Apply copies the set fields onto the stored rate.
func (r *UpdateRateRequest) Apply(rate model.SeasonalRate) model.SeasonalRate {
	if r.Name != nil {
		rate.Name = *r.Name
	}

	if r.Multiplier != nil {
		rate.Multiplier = *r.Multiplier
	}

	if r.Months != nil {
		rate.Months = r.Months
	}

	if r.Description != nil {
		rate.Description = *r.Description
	}

	rate.ModifiedAt = timezone.Now()

	return rate
}

type RateResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Months      []int   `json:"months"`
	Multiplier  float64 `json:"multiplier"`
	Description string  `json:"description"`
	gDto.Metadata
}

func (r *RateResponse) FromModel(model model.SeasonalRate) {
	r.ID = model.ID
	r.Name = model.Name
	r.Months = model.Months
	r.Multiplier = model.Multiplier
	r.Description = model.Description
	r.Metadata.FromModel(model.Metadata)
}

type GetRatesResponse struct {
	Rates []RateResponse `json:"rates"`
	Total int            `json:"total"`
}

func (r *GetRatesResponse) FromModels(models []model.SeasonalRate) {
	r.Total = len(models)

	r.Rates = make([]RateResponse, len(models))
	for i, mod := range models {
		r.Rates[i].FromModel(mod)
	}
}
