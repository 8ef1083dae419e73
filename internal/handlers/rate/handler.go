package rate

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"pousada/infras/otel"
	"pousada/internal/domains/rate/model/dto"
	"pousada/internal/domains/rate/service"
	"pousada/shared"
	"pousada/shared/constant"
	"pousada/shared/failure"
	"pousada/shared/validator"
	"pousada/transport/http/response"
)

type Handler struct {
	service service.Rate
	otel    otel.Otel
}

func New(service service.Rate, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rates", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRates)
		routerGroup.Get("/{id}", handler.GetRateByID)
		routerGroup.Patch("/{id}", handler.UpdateRate)
	})
}

// GetRates lists every seasonal rate.
func (handler *Handler) GetRates(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRates")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rates")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetRateByID returns a single seasonal rate.
func (handler *Handler) GetRateByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRateByID")
	defer scope.End()

	id, err := shared.ConvertStringToInt64(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse rate id")

		response.WithError(writer, failure.BadRequestFromString("invalid rate id"))

		return
	}

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rate")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateRate patches a seasonal rate's multiplier, months or labels.
func (handler *Handler) UpdateRate(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRate")
	defer scope.End()

	id, err := shared.ConvertStringToInt64(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse rate id")

		response.WithError(writer, failure.BadRequestFromString("invalid rate id"))

		return
	}

	req := dto.UpdateRateRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update rate")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("rate updated")

	response.WithJSON(writer, http.StatusOK, res)
}
