package courier_position_get

import (
	"net/http"

	"github.com/gorilla/mux"
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
	courierID := mux.Vars(r)["id"]
	if courierID == "" {
		response.BadRequest(w, h.log, "courier id is required")
		return
	}

	position, err := h.service.GetPosition(r.Context(), courierID)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, converters.CourierPosition(position))
}
