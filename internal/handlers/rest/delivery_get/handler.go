package delivery_get

import (
	"net/http"

	"github.com/gorilla/mux"
	"relay/internal/handlers/rest/response"
	"relay/internal/pkg/converters"
)

// Handler отдаёт актуальное состояние доставки: клиент после переподключения
// восстанавливает по нему пропущенные события.
type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	deliveryID := mux.Vars(r)["id"]

	view, err := h.service.GetDelivery(r.Context(), deliveryID)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, converters.Delivery(view))
}
