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
	"pousada/internal/domains/rate/model"
	"pousada/internal/domains/rate/model/dto"
	"pousada/internal/domains/rate/service"
	cacheMocks "pousada/shared/cache/mocks"
	"pousada/shared/failure"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return cfg
}

func floatPtr(v float64) *float64 {
	return &v
}

var summerRate = model.SeasonalRate{
	ID:         3,
	Name:       "High Summer",
	Months:     []int{6, 7, 8},
	Multiplier: 1.25,
}

func TestRateService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := rateMocks.NewMockRate(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, testConfig(), mockCache, mockOtel)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	mockRepo.EXPECT().
		GetAll(gomock.Any()).
		Return([]model.SeasonalRate{summerRate}, nil)

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.GetAll(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, "High Summer", res.Rates[0].Name)
}

func TestRateService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := rateMocks.NewMockRate(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, testConfig(), mockCache, mockOtel)

	tests := []struct {
		name      string
		id        int64
		req       dto.UpdateRateRequest
		setupMock func()
		wantErr   bool
		wantCode  int
		check     func(res dto.RateResponse)
	}{
		{
			name: "multiplier and months updated",
			id:   3,
			req: dto.UpdateRateRequest{
				Multiplier: floatPtr(1.4),
				Months:     []int{7, 8},
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), int64(3)).
					Return(summerRate, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, rate model.SeasonalRate) error {
						assert.InDelta(t, 1.4, rate.Multiplier, 1e-9)
						assert.Equal(t, []int{7, 8}, rate.Months)
						assert.Equal(t, "High Summer", rate.Name)

						return nil
					})

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			check: func(res dto.RateResponse) {
				assert.InDelta(t, 1.4, res.Multiplier, 1e-9)
			},
		},
		{
			name: "unknown rate",
			id:   42,
			req:  dto.UpdateRateRequest{Multiplier: floatPtr(1.4)},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), int64(42)).
					Return(model.SeasonalRate{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "repository error",
			id:   3,
			req:  dto.UpdateRateRequest{Multiplier: floatPtr(1.4)},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), int64(3)).
					Return(model.SeasonalRate{}, errors.New("disk error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Update(context.Background(), tt.id, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)

			if tt.check != nil {
				tt.check(res)
			}
		})
	}
}
