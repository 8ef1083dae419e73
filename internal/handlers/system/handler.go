package system

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"pousada/infras/otel"
	"pousada/infras/store"
	"pousada/shared"
	"pousada/shared/cache"
	"pousada/shared/constant"
	"pousada/transport/http/response"
)

type Handler struct {
	store *store.Store
	cache cache.RedisCache
	otel  otel.Otel
}

func New(store *store.Store, cache cache.RedisCache, otel otel.Otel) Handler {
	return Handler{
		store: store,
		cache: cache,
		otel:  otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/system", func(routerGroup chi.Router) {
		routerGroup.Post("/reset", handler.ResetSystem)
	})
}

// HealthCheck reports liveness. Mounted at the root, outside the API group.
func (handler *Handler) HealthCheck(writer http.ResponseWriter, request *http.Request) {
	response.WithMessage(writer, http.StatusOK, "OK")
}

// ResetSystem throws away all rooms, rates and reservations and restores the
// seed snapshot. Meant for demos; there is no undo.
func (handler *Handler) ResetSystem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResetSystem")
	defer scope.End()

	if err := handler.store.Reset(); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reset snapshot")

		response.WithError(writer, err)

		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, handler.cache, constant.Empty)
	}()

	scope.AddEvent("snapshot reset to seed data")

	response.WithMessage(writer, http.StatusOK, "System reset successfully")
}
