package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"

	"pousada/config"
	"pousada/infras/otel"
	"pousada/internal/domains/rate/repository"
	"pousada/internal/domains/reservation/model"
	"pousada/internal/domains/reservation/model/dto"
	reservationRepo "pousada/internal/domains/reservation/repository"
	roomModel "pousada/internal/domains/room/model"
	roomRepo "pousada/internal/domains/room/repository"
	"pousada/internal/engine"
	"pousada/shared"
	"pousada/shared/cache"
	"pousada/shared/constant"
	"pousada/shared/dateutil"
	"pousada/shared/failure"
	"pousada/shared/timezone"
)

const (
	cacheGetReservation     = "reservation:get"
	cacheGetAllReservations = "reservation:gets"
	cacheReservationPrefix  = "reservation"
	cacheReportPrefix       = "report"
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	Quote(ctx context.Context, req dto.QuoteReservationRequest) (dto.QuoteReservationResponse, error)
	GetAll(ctx context.Context, filter dto.ListFilter) (dto.GetReservationsResponse, error)
	Get(ctx context.Context, id int64) (dto.ReservationResponse, error)
	Cancel(ctx context.Context, id int64) (dto.ReservationResponse, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo     reservationRepo.Reservation
	roomRepo roomRepo.Room
	rateRepo repository.Rate
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(
	repo reservationRepo.Reservation,
	roomRepo roomRepo.Room,
	rateRepo repository.Rate,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		rateRepo: rateRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// Create validates the request, checks the room for overlapping active
// stays, freezes the quote and persists the reservation. The stored nights
// and total never change afterwards, even if rates or rooms do.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateReservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	count, err := s.repo.Count(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	if count >= s.cfg.Hotel.MaxReservations {
		return res, failure.Conflict(fmt.Sprintf("reservation limit of %d reached", s.cfg.Hotel.MaxReservations)) // nolint:wrapcheck
	}

	room, fieldErrs, err := s.validateStay(ctx, req.RoomID, req.CheckIn, req.CheckOut, req.PartySize)
	if err != nil {
		return res, err
	}

	if len(fieldErrs) > 0 {
		return res, failure.BadRequestFromFields(fieldErrs) // nolint:wrapcheck
	}

	reservations, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	if engine.HasConflict(reservations, req.RoomID, req.CheckIn, req.CheckOut, 0) {
		return res, failure.Conflict("room already reserved for these dates") // nolint:wrapcheck
	}

	rates, err := s.rateRepo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rates")

		return res, fmt.Errorf("failed to get rates: %w", err)
	}

	reservation := req.ToModel()
	reservation.Nights = dateutil.Nights(req.CheckIn, req.CheckOut)
	reservation.TotalPrice = engine.PriceForStay(&room, rates, req.CheckIn, req.CheckOut)

	id, err := s.repo.Insert(ctx, reservation)
	if err != nil {
		log.Error().Err(err).Msg("failed to insert reservation")

		return res, fmt.Errorf("failed to insert reservation: %w", err)
	}

	reservation.ID = id
	res.FromModel(reservation)

	s.invalidate(ctx, id)

	return res, nil
}

// Quote prices a prospective stay without persisting anything.
func (s *serviceImpl) Quote(ctx context.Context, req dto.QuoteReservationRequest) (res dto.QuoteReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".QuoteReservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, fieldErrs, err := s.validateStay(ctx, req.RoomID, req.CheckIn, req.CheckOut, req.PartySize)
	if err != nil {
		return res, err
	}

	if len(fieldErrs) > 0 {
		return res, failure.BadRequestFromFields(fieldErrs) // nolint:wrapcheck
	}

	rates, err := s.rateRepo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rates")

		return res, fmt.Errorf("failed to get rates: %w", err)
	}

	res = dto.QuoteReservationResponse{
		RoomID:     room.ID,
		Nights:     dateutil.Nights(req.CheckIn, req.CheckOut),
		TotalPrice: engine.PriceForStay(&room, rates, req.CheckIn, req.CheckOut),
		Currency:   s.cfg.Hotel.Currency,
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, filter dto.ListFilter) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllReservations")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAllReservations, filter.CacheKey())

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	reservations, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	filtered := make([]model.Reservation, 0, len(reservations))
	for i := range reservations {
		if filter.Matches(&reservations[i]) {
			filtered = append(filtered, reservations[i])
		}
	}

	res.FromModels(filtered)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetReservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetReservation, strconv.FormatInt(id, 10))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		return res, nil
	}

	reservation, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == 0 {
		return res, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	res.FromModel(reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

// Cancel marks an active reservation as cancelled. The record stays around
// with its frozen totals so past stays remain auditable.
func (s *serviceImpl) Cancel(ctx context.Context, id int64) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelReservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == 0 {
		return res, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	if !reservation.IsActive() {
		return res, failure.Conflict("reservation is already cancelled") // nolint:wrapcheck
	}

	reservation.Status = constant.ReservationStatusCancelled
	reservation.ModifiedAt = timezone.Now()

	if err = s.repo.Update(ctx, reservation); err != nil {
		log.Error().Err(err).Msg("failed to update reservation")

		return res, fmt.Errorf("failed to update reservation: %w", err)
	}

	res.FromModel(reservation)

	s.invalidate(ctx, id)

	return res, nil
}

// Delete removes a reservation permanently. Only cancelled reservations may
// be deleted; active ones must be cancelled first.
func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteReservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == 0 {
		return failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	if reservation.IsActive() {
		return failure.Conflict("active reservation must be cancelled before deletion") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to delete reservation")

		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// validateStay collects the date and room problems of a prospective stay as
// field errors. An internal error short-circuits; a fully valid request
// returns the room so callers can price the stay.
func (s *serviceImpl) validateStay(ctx context.Context, roomID int64, checkIn, checkOut string, partySize int) (roomModel.Room, []failure.FieldError, error) {
	var fieldErrs []failure.FieldError

	in, okIn := dateutil.ParseLocalDate(checkIn)
	out, okOut := dateutil.ParseLocalDate(checkOut)

	if !okIn {
		fieldErrs = append(fieldErrs, failure.FieldError{Field: "check_in", Message: "check-in date is invalid"})
	}

	if !okOut {
		fieldErrs = append(fieldErrs, failure.FieldError{Field: "check_out", Message: "check-out date is invalid"})
	}

	if okIn && okOut {
		if !in.Before(out) {
			fieldErrs = append(fieldErrs, failure.FieldError{Field: "check_out", Message: "check-out must be after check-in"})
		} else if !dateutil.WithinYear(checkIn, checkOut, s.cfg.Hotel.Year) {
			fieldErrs = append(fieldErrs, failure.FieldError{
				Field:   "check_in",
				Message: fmt.Sprintf("stay must fall within %d", s.cfg.Hotel.Year),
			})
		}
	}

	room, err := s.roomRepo.Get(ctx, roomID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return room, nil, fmt.Errorf("failed to get room: %w", err)
	}

	switch {
	case room.ID == 0:
		fieldErrs = append(fieldErrs, failure.FieldError{Field: "room_id", Message: "room not found"})
	case !room.Active:
		fieldErrs = append(fieldErrs, failure.FieldError{Field: "room_id", Message: "room is not available for booking"})
	case partySize > room.Capacity:
		fieldErrs = append(fieldErrs, failure.FieldError{
			Field:   "party_size",
			Message: fmt.Sprintf("party size exceeds the room capacity of %d", room.Capacity),
		})
	}

	return room, fieldErrs, nil
}

// invalidate drops the caches a reservation mutation makes stale, including
// the dashboard aggregates.
func (s *serviceImpl) invalidate(ctx context.Context, id int64) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, strconv.FormatInt(id, 10))); err != nil {
			log.Error().Err(err).Msg("failed to delete reservation from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheReservationPrefix, cacheReportPrefix)
	}()
}
