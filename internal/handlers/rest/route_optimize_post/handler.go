package route_optimize_post

import (
	"encoding/json"
	"net/http"

	"github.com/AlekSi/pointer"
	"relay/internal/entities"
	"relay/internal/generated/dto"
	"relay/internal/handlers/rest/response"
	"relay/internal/pkg/converters"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var routeRequestDTO dto.RouteRequest
	err := json.NewDecoder(r.Body).Decode(&routeRequestDTO)
	if err != nil {
		response.BadRequest(w, h.log, "invalid JSON body")
		return
	}

	route, err := h.service.CreateOptimizedRoute(r.Context(), entities.RouteRequest{
		Addresses:     routeRequestDTO.Addresses,
		TransportMode: entities.TransportMode(pointer.Get(routeRequestDTO.TransportMode)),
		Package:       converters.ToPackage(routeRequestDTO.Package),
		Urgency:       entities.UrgencyTier(pointer.Get(routeRequestDTO.Urgency)),
	})
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, converters.OptimizedRoute(route))
}
