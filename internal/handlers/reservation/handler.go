package reservation

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"pousada/infras/otel"
	"pousada/internal/domains/reservation/model/dto"
	"pousada/internal/domains/reservation/service"
	"pousada/shared"
	"pousada/shared/constant"
	"pousada/shared/failure"
	"pousada/shared/validator"
	"pousada/transport/http/response"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReservation)
		routerGroup.Post("/quote", handler.QuoteReservation)
		routerGroup.Get("/", handler.GetReservations)
		routerGroup.Get("/{id}", handler.GetReservationByID)
		routerGroup.Post("/{id}/cancel", handler.CancelReservation)
		routerGroup.Delete("/{id}", handler.DeleteReservation)
	})
}

// CreateReservation books a room for a guest.
func (handler *Handler) CreateReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	req := dto.CreateReservationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservation")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("reservation created")

	response.WithJSON(writer, http.StatusCreated, res)
}

// QuoteReservation prices a stay without booking it.
func (handler *Handler) QuoteReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".QuoteReservation")
	defer scope.End()

	req := dto.QuoteReservationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Quote(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to quote reservation")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetReservations lists reservations, filterable by month, room and status.
func (handler *Handler) GetReservations(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	query := request.URL.Query()

	filter := dto.ListFilter{
		Status: query.Get(constant.RequestParamStatus),
	}

	if value := query.Get(constant.RequestParamMonth); value != "" {
		month, err := shared.ConvertStringToInt(value)
		if err != nil || month < 1 || month > constant.MonthsPerYear {
			response.WithError(writer, failure.BadRequestFromString("month must be between 1 and 12"))

			return
		}

		filter.Month = month
	}

	if value := query.Get(constant.RequestParamRoomID); value != "" {
		roomID, err := shared.ConvertStringToInt64(value)
		if err != nil {
			response.WithError(writer, failure.BadRequestFromString("invalid room id"))

			return
		}

		filter.RoomID = roomID
	}

	res, err := handler.service.GetAll(ctx, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetReservationByID returns a single reservation.
func (handler *Handler) GetReservationByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationByID")
	defer scope.End()

	id, err := shared.ConvertStringToInt64(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse reservation id")

		response.WithError(writer, failure.BadRequestFromString("invalid reservation id"))

		return
	}

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservation")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CancelReservation marks an active reservation as cancelled.
func (handler *Handler) CancelReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelReservation")
	defer scope.End()

	id, err := shared.ConvertStringToInt64(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse reservation id")

		response.WithError(writer, failure.BadRequestFromString("invalid reservation id"))

		return
	}

	res, err := handler.service.Cancel(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel reservation")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("reservation cancelled")

	response.WithJSON(writer, http.StatusOK, res)
}

// DeleteReservation permanently removes a cancelled reservation.
func (handler *Handler) DeleteReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteReservation")
	defer scope.End()

	id, err := shared.ConvertStringToInt64(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse reservation id")

		response.WithError(writer, failure.BadRequestFromString("invalid reservation id"))

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete reservation")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("reservation deleted")

	response.WithMessage(writer, http.StatusOK, "Reservation deleted successfully")
}
