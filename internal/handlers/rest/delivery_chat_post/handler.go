package delivery_chat_post

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
	var messageDTO dto.ChatMessageCreate
	err := json.NewDecoder(r.Body).Decode(&messageDTO)
	if err != nil {
		response.BadRequest(w, h.log, "invalid JSON body")
		return
	}

	message, err := h.service.SendMessage(r.Context(), entities.ChatMessage{
		DeliveryID:  mux.Vars(r)["id"],
		SenderID:    messageDTO.SenderId,
		Content:     messageDTO.Content,
		MessageType: entities.MessageType(pointer.Get(messageDTO.MessageType)),
	})
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusCreated, converters.ChatMessage(message))
}
