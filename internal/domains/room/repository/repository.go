package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"pousada/infras/otel"
	"pousada/infras/store"
	"pousada/internal/domains/room/model"
	"pousada/shared/constant"
)

type Room interface {
	GetAll(ctx context.Context) ([]model.Room, error)
	Get(ctx context.Context, id int64) (model.Room, error)
	Update(ctx context.Context, room model.Room) error
}

type repositoryImpl struct {
	store *store.Store
	otel  otel.Otel
}

func New(store *store.Store, otel otel.Otel) Room {
	return &repositoryImpl{
		store: store,
		otel:  otel,
	}
}

func (repo *repositoryImpl) GetAll(ctx context.Context) ([]model.Room, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	var rooms []model.Room

	repo.store.View(func(snap *store.Snapshot) {
		rooms = append([]model.Room(nil), snap.Rooms...)
	})

	return rooms, nil
}

func (repo *repositoryImpl) Get(ctx context.Context, id int64) (model.Room, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	scope.SetAttribute(model.FieldID, id)

	var room model.Room

	repo.store.View(func(snap *store.Snapshot) {
		for i := range snap.Rooms {
			if snap.Rooms[i].ID == id {
				room = snap.Rooms[i]

				return
			}
		}
	})

	return room, nil
}

func (repo *repositoryImpl) Update(ctx context.Context, room model.Room) error {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Update", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	err := repo.store.Update(func(snap *store.Snapshot) error {
		for i := range snap.Rooms {
			if snap.Rooms[i].ID == room.ID {
				snap.Rooms[i] = room

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
