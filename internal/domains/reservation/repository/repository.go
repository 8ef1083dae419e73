package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"pousada/infras/otel"
	"pousada/infras/store"
	"pousada/internal/domains/reservation/model"
	"pousada/shared/constant"
)

var ErrNotFound = errors.New("reservation not found")

type Reservation interface {
	// Insert assigns the next monotonic id and returns it.
	Insert(ctx context.Context, reservation model.Reservation) (int64, error)
	GetAll(ctx context.Context) ([]model.Reservation, error)
	Get(ctx context.Context, id int64) (model.Reservation, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, reservation model.Reservation) error
	Delete(ctx context.Context, id int64) error
}

type repositoryImpl struct {
	store *store.Store
	otel  otel.Otel
}

func New(store *store.Store, otel otel.Otel) Reservation {
	return &repositoryImpl{
		store: store,
		otel:  otel,
	}
}

func (repo *repositoryImpl) Insert(ctx context.Context, reservation model.Reservation) (int64, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	err := repo.store.Update(func(snap *store.Snapshot) error {
		reservation.ID = nextID(snap.Reservations)
		snap.Reservations = append(snap.Reservations, reservation)

		return nil
	})
	if err != nil {
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to insert data (%s): %w", model.EntityName, err)
	}

	scope.SetAttribute(model.FieldID, reservation.ID)

	return reservation.ID, nil
}

func (repo *repositoryImpl) GetAll(ctx context.Context) ([]model.Reservation, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	var reservations []model.Reservation

	repo.store.View(func(snap *store.Snapshot) {
		reservations = append([]model.Reservation(nil), snap.Reservations...)
	})

	return reservations, nil
}

func (repo *repositoryImpl) Get(ctx context.Context, id int64) (model.Reservation, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	scope.SetAttribute(model.FieldID, id)

	var reservation model.Reservation

	repo.store.View(func(snap *store.Snapshot) {
		for i := range snap.Reservations {
			if snap.Reservations[i].ID == id {
				reservation = snap.Reservations[i]

				return
			}
		}
	})

	return reservation, nil
}

func (repo *repositoryImpl) Count(ctx context.Context) (int, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Count", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	count := 0

	repo.store.View(func(snap *store.Snapshot) {
		count = len(snap.Reservations)
	})

	return count, nil
}

func (repo *repositoryImpl) Update(ctx context.Context, reservation model.Reservation) error {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Update", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	err := repo.store.Update(func(snap *store.Snapshot) error {
		for i := range snap.Reservations {
			if snap.Reservations[i].ID == reservation.ID {
				snap.Reservations[i] = reservation

				return nil
			}
		}

		return ErrNotFound
	})
	if err != nil {
		scope.TraceError(err)

		if errors.Is(err, ErrNotFound) {
			return err
		}

		return fmt.Errorf("failed to update data (%s): %w", model.EntityName, err)
	}

	return nil
}

func (repo *repositoryImpl) Delete(ctx context.Context, id int64) error {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Delete", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	err := repo.store.Update(func(snap *store.Snapshot) error {
		for i := range snap.Reservations {
			if snap.Reservations[i].ID == id {
				snap.Reservations = append(snap.Reservations[:i], snap.Reservations[i+1:]...)

				return nil
			}
		}

		return ErrNotFound
	})
	if err != nil {
		scope.TraceError(err)

		if errors.Is(err, ErrNotFound) {
			return err
		}

		return fmt.Errorf("failed to delete data (%s): %w", model.EntityName, err)
	}

	return nil
}

// nextID is one above the highest id currently present.
func nextID(reservations []model.Reservation) int64 {
	var max int64

	for i := range reservations {
		if reservations[i].ID > max {
			max = reservations[i].ID
		}
	}

	return max + 1
}
