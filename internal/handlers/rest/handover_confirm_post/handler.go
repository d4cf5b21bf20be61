package handover_confirm_post

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
	var confirmDTO dto.HandoverConfirm
	err := json.NewDecoder(r.Body).Decode(&confirmDTO)
	if err != nil {
		response.BadRequest(w, h.log, "invalid JSON body")
		return
	}

	result, err := h.service.ConfirmPackageHandover(r.Context(), entities.HandoverConfirmation{
		DeliveryID:       mux.Vars(r)["id"],
		FromSegmentID:    confirmDTO.FromSegmentId,
		ToSegmentID:      confirmDTO.ToSegmentId,
		ConfirmerID:      confirmDTO.ConfirmerId,
		Location:         converters.ToLocationPtr(confirmDTO.Location),
		VerificationCode: confirmDTO.VerificationCode,
	})
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, converters.HandoverResult(result))
}
