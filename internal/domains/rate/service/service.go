package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"

	"pousada/config"
	"pousada/infras/otel"
	"pousada/internal/domains/rate/model/dto"
	"pousada/internal/domains/rate/repository"
	"pousada/shared"
	"pousada/shared/cache"
	"pousada/shared/constant"
	"pousada/shared/failure"
)

const (
	cacheGetRate     = "rate:get"
	cacheGetAllRates = "rate:gets"

	// Pricing-dependent caches that must go stale when a rate changes.
	cacheReportPrefix = "report"
)

type Rate interface {
	GetAll(ctx context.Context) (dto.GetRatesResponse, error)
	Get(ctx context.Context, id int64) (dto.RateResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateRateRequest) (dto.RateResponse, error)
}

type serviceImpl struct {
	repo  repository.Rate
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Rate, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Rate {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetRatesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllRates")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetAllRates, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetAllRates).Msg("cache hit for rates")

		return res, nil
	}

	rates, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rates")

		return res, fmt.Errorf("failed to get rates: %w", err)
	}

	res.FromModels(rates)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetAllRates, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rates to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.RateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRate")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRate, strconv.FormatInt(id, 10))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rate")

		return res, nil
	}

	rate, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rate")

		return res, fmt.Errorf("failed to get rate: %w", err)
	}

	if rate.ID == 0 {
		return res, failure.NotFound("rate not found") // nolint:wrapcheck
	}

	res.FromModel(rate)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rate to cache")
		}
	}()

	return res, nil
}

// Update patches a seasonal rate. Existing reservations keep their frozen
// totals; only new quotes and the dashboard see the changed multiplier.
func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.UpdateRateRequest) (res dto.RateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateRate")
	defer scope.End()
	defer scope.TraceIfError(err)

	rate, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rate")

		return res, fmt.Errorf("failed to get rate: %w", err)
	}

	if rate.ID == 0 {
		return res, failure.NotFound("rate not found") // nolint:wrapcheck
	}

	rate = req.Apply(rate)

	if err = s.repo.Update(ctx, rate); err != nil {
		log.Error().Err(err).Msg("failed to update rate")

		return res, fmt.Errorf("failed to update rate: %w", err)
	}

	res.FromModel(rate)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRate, strconv.FormatInt(id, 10)), cacheGetAllRates); err != nil {
			log.Error().Err(err).Msg("failed to delete rate from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheReportPrefix)
	}()

	return res, nil
}
