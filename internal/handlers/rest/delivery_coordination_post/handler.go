package delivery_coordination_post

import (
	"encoding/json"
	"net/http"

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
	var coordinationDTO dto.CoordinationCreate
	err := json.NewDecoder(r.Body).Decode(&coordinationDTO)
	if err != nil {
		response.BadRequest(w, h.log, "invalid JSON body")
		return
	}

	handover, err := h.service.InitiateCoordination(r.Context(), entities.CoordinationRequest{
		DeliveryID:       mux.Vars(r)["id"],
		CurrentSegmentID: coordinationDTO.CurrentSegmentId,
		NextSegmentID:    coordinationDTO.NextSegmentId,
		ActorID:          coordinationDTO.ActorId,
		Location:         converters.ToLocationPtr(coordinationDTO.Location),
	})
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusCreated, converters.HandoverEvent(*handover))
}
