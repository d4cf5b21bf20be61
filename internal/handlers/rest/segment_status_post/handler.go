package segment_status_post

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
	var statusDTO dto.StatusUpdate
	err := json.NewDecoder(r.Body).Decode(&statusDTO)
	if err != nil {
		response.BadRequest(w, h.log, "invalid JSON body")
		return
	}

	segment, err := h.service.UpdateSegmentStatus(r.Context(), entities.StatusChange{
		SegmentID: mux.Vars(r)["id"],
		ActorID:   statusDTO.ActorId,
		Status:    entities.SegmentStatus(statusDTO.Status),
		Location:  converters.ToLocationPtr(statusDTO.Location),
		Reason:    pointer.Get(statusDTO.Reason),
	})
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, converters.Segment(*segment))
}
