package room

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"pousada/infras/otel"
	"pousada/internal/domains/room/model/dto"
	"pousada/internal/domains/room/service"
	"pousada/shared"
	"pousada/shared/constant"
	"pousada/shared/failure"
	"pousada/transport/http/response"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/{id}", handler.GetRoomByID)
		routerGroup.Patch("/{id}/active", handler.ToggleRoomActive)
	})
}

// GetRooms lists rooms, optionally filtered by category and active flag.
func (handler *Handler) GetRooms(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	filter := dto.ListFilter{
		Category: request.URL.Query().Get(constant.RequestParamCategory),
		Active:   shared.ConvertStringToBool(request.URL.Query().Get(constant.RequestParamActive)),
	}

	res, err := handler.service.GetAll(ctx, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetRoomByID returns a single room.
func (handler *Handler) GetRoomByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id, err := shared.ConvertStringToInt64(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse room id")

		response.WithError(writer, failure.BadRequestFromString("invalid room id"))

		return
	}

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// ToggleRoomActive flips a room between bookable and blocked.
func (handler *Handler) ToggleRoomActive(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleRoomActive")
	defer scope.End()

	id, err := shared.ConvertStringToInt64(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse room id")

		response.WithError(writer, failure.BadRequestFromString("invalid room id"))

		return
	}

	res, err := handler.service.ToggleActive(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to toggle room")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("room availability toggled")

	response.WithJSON(writer, http.StatusOK, res)
}
