package segment_accept_post

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
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

// ServeHTTP: проигравший гонку за сегмент получает 409 и должен выбрать другой.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var acceptDTO dto.AcceptRequest
	err := json.NewDecoder(r.Body).Decode(&acceptDTO)
	if err != nil {
		response.BadRequest(w, h.log, "invalid JSON body")
		return
	}

	acceptance, err := h.service.AcceptProposal(r.Context(), mux.Vars(r)["id"], acceptDTO.CourierId)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, converters.Acceptance(acceptance))
}
