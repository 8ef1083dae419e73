package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"pousada/infras/otel"
	"pousada/infras/store"
	"pousada/internal/domains/rate/model"
	"pousada/shared/constant"
)

type Rate interface {
	GetAll(ctx context.Context) ([]model.SeasonalRate, error)
	Get(ctx context.Context, id int64) (model.SeasonalRate, error)
	Update(ctx context.Context, rate model.SeasonalRate) error
}

type repositoryImpl struct {
	store *store.Store
	otel  otel.Otel
}

func New(store *store.Store, otel otel.Otel) Rate {
	return &repositoryImpl{
		store: store,
		otel:  otel,
	}
}

func (repo *repositoryImpl) GetAll(ctx context.Context) ([]model.SeasonalRate, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	var rates []model.SeasonalRate

	repo.store.View(func(snap *store.Snapshot) {
		rates = append([]model.SeasonalRate(nil), snap.Rates...)
	})

	return rates, nil
}

func (repo *repositoryImpl) Get(ctx context.Context, id int64) (model.SeasonalRate, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	scope.SetAttribute(model.FieldID, id)

	var rate model.SeasonalRate

	repo.store.View(func(snap *store.Snapshot) {
		for i := range snap.Rates {
			if snap.Rates[i].ID == id {
				rate = snap.Rates[i]

				return
			}
		}
	})

	return rate, nil
}

func (repo *repositoryImpl) Update(ctx context.Context, rate model.SeasonalRate) error {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Update", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	err := repo.store.Update(func(snap *store.Snapshot) error {
		for i := range snap.Rates {
			if snap.Rates[i].ID == rate.ID {
				snap.Rates[i] = rate

				return nil
			}
		}

		return nil
	})
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to update data (%s): %w", model.EntityName, err)
	}

	return nil
}
