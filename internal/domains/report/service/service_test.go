package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"pousada/config"
	"pousada/infras/otel/mocks"
	rateMocks "pousada/internal/domains/rate/mocks"
	rateModel "pousada/internal/domains/rate/model"
	"pousada/internal/domains/report/service"
	reservationMocks "pousada/internal/domains/reservation/mocks"
	reservationModel "pousada/internal/domains/reservation/model"
	roomMocks "pousada/internal/domains/room/mocks"
	roomModel "pousada/internal/domains/room/model"
	"pousada/internal/engine"
	cacheMocks "pousada/shared/cache/mocks"
	"pousada/shared/constant"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Hotel.Year = 2025
	cfg.Hotel.Currency = "EUR"

	return cfg
}

func TestReportService_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockRateRepo := rateMocks.NewMockRate(ctrl)
	mockReservationRepo := reservationMocks.NewMockReservation(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRoomRepo, mockRateRepo, mockReservationRepo, testConfig(), mockCache, mockOtel)

	rooms := []roomModel.Room{
		{ID: 1, BasePrice: 100, Active: true},
		{ID: 2, BasePrice: 200, Active: false},
	}
	rates := []rateModel.SeasonalRate{
		{ID: 1, Months: []int{7}, Multiplier: 1.5},
	}
	reservations := []reservationModel.Reservation{
		// Four July nights at the current price of 150 each.
		{ID: 1, RoomID: 1, CheckIn: "2025-07-01", CheckOut: "2025-07-05", TotalPrice: 9999, Status: constant.ReservationStatusActive},
		// Cancelled stays never count.
		{ID: 2, RoomID: 1, CheckIn: "2025-03-01", CheckOut: "2025-03-10", Status: constant.ReservationStatusCancelled},
	}

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	mockRoomRepo.EXPECT().
		GetAll(gomock.Any()).
		Return(rooms, nil)

	mockRateRepo.EXPECT().
		GetAll(gomock.Any()).
		Return(rates, nil)

	mockReservationRepo.EXPECT().
		GetAll(gomock.Any()).
		Return(reservations, nil)

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.Dashboard(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, 2025, res.Year)
	assert.Equal(t, "EUR", res.Currency)
	assert.Equal(t, 2, res.TotalRooms)
	assert.Equal(t, 1, res.ActiveRooms)
	assert.Equal(t, 1, res.ActiveReservations)
	assert.Equal(t, 1, res.CancelledReservations)
	assert.Equal(t, 4, res.TotalOccupiedNights)

	// Revenue is priced live, not from the stored 9999 total.
	assert.InDelta(t, 600.0, res.YearlyRevenue, 1e-9)

	assert.Len(t, res.Months, 12)

	july := res.Months[6]
	assert.Equal(t, 7, july.Month)
	assert.Equal(t, "July", july.MonthName)
	assert.Equal(t, 4, july.OccupiedNights)
	assert.InDelta(t, 600.0, july.Revenue, 1e-9)

	// 4 nights over 31 days with one active room.
	assert.Equal(t, 13, july.OccupancyPct)
	assert.Equal(t, engine.OccupancyLow, july.OccupancyLevel)

	march := res.Months[2]
	assert.Equal(t, 0, march.OccupiedNights)
	assert.InDelta(t, 0.0, march.Revenue, 1e-9)
	assert.Equal(t, engine.OccupancyLow, march.OccupancyLevel)
}

func TestReportService_DashboardCacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockRateRepo := rateMocks.NewMockRate(ctrl)
	mockReservationRepo := reservationMocks.NewMockReservation(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRoomRepo, mockRateRepo, mockReservationRepo, testConfig(), mockCache, mockOtel)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	_, err := svc.Dashboard(context.Background())
	assert.NoError(t, err)
}

func TestReportService_DashboardZeroActiveRooms(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockRateRepo := rateMocks.NewMockRate(ctrl)
	mockReservationRepo := reservationMocks.NewMockReservation(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRoomRepo, mockRateRepo, mockReservationRepo, testConfig(), mockCache, mockOtel)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	mockRoomRepo.EXPECT().
		GetAll(gomock.Any()).
		Return(nil, nil)

	mockRateRepo.EXPECT().
		GetAll(gomock.Any()).
		Return(nil, nil)

	mockReservationRepo.EXPECT().
		GetAll(gomock.Any()).
		Return(nil, nil)

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.Dashboard(context.Background())
	assert.NoError(t, err)

	// The room pool is clamped to one, so percentages stay defined.
	for _, month := range res.Months {
		assert.Equal(t, 0, month.OccupancyPct)
	}
}
