package segment_proposal_post

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
	var proposalDTO dto.ProposalCreate
	err := json.NewDecoder(r.Body).Decode(&proposalDTO)
	if err != nil {
		response.BadRequest(w, h.log, "invalid JSON body")
		return
	}

	proposal, err := h.service.Propose(r.Context(), entities.Proposal{
		SegmentID:           mux.Vars(r)["id"],
		CourierID:           proposalDTO.CourierId,
		ProposedCost:        proposalDTO.ProposedCost,
		ProposedDurationMin: proposalDTO.ProposedDurationMin,
	})
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusCreated, converters.Proposal(*proposal))
}
