package courier_position_post

import (
	"encoding/json"
	"net/http"

	"github.com/AlekSi/pointer"
	"github.com/gorilla/mux"
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
	var positionDTO dto.PositionReport
	err := json.NewDecoder(r.Body).Decode(&positionDTO)
	if err != nil {
		response.BadRequest(w, h.log, "invalid JSON body")
		return
	}

	position, err := h.service.ReportPosition(r.Context(), entities.CourierPosition{
		CourierID:    mux.Vars(r)["id"],
		Coordinates:  entities.Coordinates{Lat: positionDTO.Lat, Lon: positionDTO.Lon},
		Availability: entities.CourierAvailability(pointer.Get(positionDTO.Availability)),
		ReportedAt:   pointer.Get(positionDTO.ReportedAt),
	})
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusAccepted, converters.CourierPosition(position))
}
