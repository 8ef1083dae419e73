package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"pousada/config"
	"pousada/infras/otel"
	rateRepo "pousada/internal/domains/rate/repository"
	"pousada/internal/domains/report/model/dto"
	resModel "pousada/internal/domains/reservation/model"
	reservationRepo "pousada/internal/domains/reservation/repository"
	roomRepo "pousada/internal/domains/room/repository"
	"pousada/internal/engine"
	"pousada/shared/cache"
	"pousada/shared/constant"
	"pousada/shared/dateutil"
)

const cacheDashboard = "report:dashboard"

type Report interface {
	Dashboard(ctx context.Context) (dto.DashboardResponse, error)
}

type serviceImpl struct {
	roomRepo        roomRepo.Room
	rateRepo        rateRepo.Rate
	reservationRepo reservationRepo.Reservation
	cfg             *config.Config
	cache           cache.RedisCache
	otel            otel.Otel
}

func New(
	roomRepo roomRepo.Room,
	rateRepo rateRepo.Rate,
	reservationRepo reservationRepo.Reservation,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Report {
	return &serviceImpl{
		roomRepo:        roomRepo,
		rateRepo:        rateRepo,
		reservationRepo: reservationRepo,
		cfg:             cfg,
		cache:           cache,
		otel:            otel,
	}
}

// Dashboard aggregates the year across all active reservations. Revenue is
// priced from the current room and rate state rather than the frozen totals,
// so rate edits show up immediately in the report.
func (s *serviceImpl) Dashboard(ctx context.Context) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheDashboard, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheDashboard).Msg("cache hit for dashboard")

		return res, nil
	}

	rooms, err := s.roomRepo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	rates, err := s.rateRepo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rates")

		return res, fmt.Errorf("failed to get rates: %w", err)
	}

	reservations, err := s.reservationRepo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	activeRooms := 0
	for i := range rooms {
		if rooms[i].Active {
			activeRooms++
		}
	}

	active := make([]resModel.Reservation, 0, len(reservations))
	for i := range reservations {
		if reservations[i].IsActive() {
			active = append(active, reservations[i])
		}
	}

	nights := engine.OccupiedNightsByMonth(active)
	revenue := engine.RevenueByMonth(active, rooms, rates)

	res = dto.DashboardResponse{
		Year:                  s.cfg.Hotel.Year,
		Currency:              s.cfg.Hotel.Currency,
		TotalRooms:            len(rooms),
		ActiveRooms:           activeRooms,
		ActiveReservations:    len(active),
		CancelledReservations: len(reservations) - len(active),
		YearlyRevenue:         engine.YearlyTotal(revenue),
		Months:                make([]dto.MonthlyReport, constant.MonthsPerYear),
	}

	// Occupancy is measured against the active room pool; a pool of zero is
	// clamped to one so the percentage stays defined.
	roomPool := activeRooms
	if roomPool < 1 {
		roomPool = 1
	}

	for m := 0; m < constant.MonthsPerYear; m++ {
		capacity := dateutil.DaysInMonth(s.cfg.Hotel.Year, m+1) * roomPool
		pct := int(math.Round(float64(nights[m]) / float64(capacity) * 100))

		res.TotalOccupiedNights += nights[m]
		res.Months[m] = dto.MonthlyReport{
			Month:          m + 1,
			MonthName:      time.Month(m + 1).String(),
			OccupiedNights: nights[m],
			Revenue:        revenue[m],
			OccupancyPct:   pct,
			OccupancyLevel: engine.ClassifyOccupancy(pct),
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheDashboard, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dashboard to cache")
		}
	}()

	return res, nil
}
