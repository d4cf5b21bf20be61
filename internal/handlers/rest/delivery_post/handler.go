package delivery_post

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
	var deliveryCreateDTO dto.DeliveryCreate
	err := json.NewDecoder(r.Body).Decode(&deliveryCreateDTO)
	if err != nil {
		response.BadRequest(w, h.log, "invalid JSON body")
		return
	}

	view, err := h.service.CreateDelivery(r.Context(), entities.DeliveryDraft{
		ClientID:            deliveryCreateDTO.ClientId,
		Legs:                converters.ToRouteSegments(deliveryCreateDTO.Segments),
		Package:             converters.ToPackage(deliveryCreateDTO.Package),
		Urgency:             entities.UrgencyTier(pointer.Get(deliveryCreateDTO.Urgency)),
		SpecialInstructions: pointer.Get(deliveryCreateDTO.SpecialInstructions),
		PreferredTimeSlots:  converters.ToTimeSlots(deliveryCreateDTO.PreferredTimeSlots),
	})
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusCreated, converters.Delivery(view))
}
