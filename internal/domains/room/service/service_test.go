package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"pousada/config"
	"pousada/infras/otel/mocks"
	roomMocks "pousada/internal/domains/room/mocks"
	"pousada/internal/domains/room/model"
	"pousada/internal/domains/room/model/dto"
	"pousada/internal/domains/room/service"
	cacheMocks "pousada/shared/cache/mocks"
	"pousada/shared/failure"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return cfg
}

func boolPtr(v bool) *bool {
	return &v
}

var testRooms = []model.Room{
	{ID: 1, Name: "Room 01", Category: "Standard", Capacity: 2, BasePrice: 95, Active: true},
	{ID: 2, Name: "Room 02", Category: "Standard", Capacity: 2, BasePrice: 90, Active: true},
	{ID: 3, Name: "Room 03", Category: "Suite", Capacity: 4, BasePrice: 210, Active: false},
}

func TestRoomService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, testConfig(), mockCache, mockOtel)

	tests := []struct {
		name    string
		filter  dto.ListFilter
		wantIDs []int64
	}{
		{name: "no filter", filter: dto.ListFilter{}, wantIDs: []int64{1, 2, 3}},
		{name: "by category", filter: dto.ListFilter{Category: "Standard"}, wantIDs: []int64{1, 2}},
		{name: "category is case insensitive", filter: dto.ListFilter{Category: "suite"}, wantIDs: []int64{3}},
		{name: "active only", filter: dto.ListFilter{Active: boolPtr(true)}, wantIDs: []int64{1, 2}},
		{name: "inactive only", filter: dto.ListFilter{Active: boolPtr(false)}, wantIDs: []int64{3}},
		{name: "combined", filter: dto.ListFilter{Category: "Standard", Active: boolPtr(false)}, wantIDs: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCache.EXPECT().
				Get(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(errors.New("cache miss"))

			mockRepo.EXPECT().
				GetAll(gomock.Any()).
				Return(testRooms, nil)

			mockCache.EXPECT().
				Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil).
				AnyTimes()

			res, err := svc.GetAll(context.Background(), tt.filter)
			assert.NoError(t, err)

			gotIDs := make([]int64, 0, len(res.Rooms))
			for _, room := range res.Rooms {
				gotIDs = append(gotIDs, room.ID)
			}

			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestRoomService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, testConfig(), mockCache, mockOtel)

	tests := []struct {
		name      string
		id        int64
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "cache hit",
			id:   1,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, found in store",
			id:   1,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), int64(1)).
					Return(testRooms[0], nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "not found",
			id:   42,
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), int64(42)).
					Return(model.Room{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestRoomService_ToggleActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, testConfig(), mockCache, mockOtel)

	mockRepo.EXPECT().
		Get(gomock.Any(), int64(1)).
		Return(testRooms[0], nil)

	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, room model.Room) error {
			assert.False(t, room.Active)

			return nil
		})

	mockCache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.ToggleActive(context.Background(), 1)
	assert.NoError(t, err)
	assert.False(t, res.Active)
}
