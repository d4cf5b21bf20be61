package chat

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"relay/internal/entities"
	"relay/pkg/logger"
)

const MaxContentLength = 2000

type Service struct {
	repository Repository
	publisher  Publisher
	history    HistorySink
	log        serviceLogger
}

func New(repository Repository, publisher Publisher, history HistorySink, log serviceLogger) *Service {
	return &Service{
		repository: repository,
		publisher:  publisher,
		history:    history,
		log:        log.With(logger.NewField("component", "chat")),
	}
}

// SendMessage публикует сообщение в канал доставки. Писать могут только
// клиент и курьеры незавершённых сегментов, пока доставка не завершена.
func (s *Service) SendMessage(ctx context.Context, message entities.ChatMessage) (*entities.ChatMessage, error) {
	message.Content = strings.TrimSpace(message.Content)
	if message.MessageType == "" {
		message.MessageType = entities.MessageGeneral
	}

	err := validateMessage(message)
	if err != nil {
		return nil, err
	}

	delivery, err := s.repository.GetDelivery(ctx, message.DeliveryID)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}

	segments, err := s.repository.ListSegments(ctx, delivery.SegmentIDs)
	if err != nil {
		return nil, fmt.Errorf("list delivery segments: %w", err)
	}

	view := entities.DeliveryView{Delivery: *delivery, Segments: segments}
	if !view.IsParticipant(message.SenderID) {
		return nil, fmt.Errorf("user %s in delivery %s: %w", message.SenderID, delivery.ID, entities.ErrNotParticipant)
	}

	message.ID = uuid.NewString()
	message.Timestamp = time.Now().UTC()

	s.publisher.Publish(entities.NewEvent(
		entities.EventGroupChatMessage,
		entities.DeliveryChannel(delivery.ID),
		delivery.ID,
		message,
	))
	MessagesTotal.WithLabelValues(message.MessageType.String()).Inc()

	err = s.history.Append(ctx, message)
	if err != nil {
		s.log.Warn("append chat history",
			logger.NewField("message_id", message.ID),
			logger.NewField("delivery_id", message.DeliveryID),
			logger.NewField("error", err),
		)
	}

	return &message, nil
}

func validateMessage(message entities.ChatMessage) error {
	var v entities.Violations
	if message.DeliveryID == "" {
		v.Add("delivery_id is required")
	}
	if message.SenderID == "" {
		v.Add("sender_id is required")
	}
	if message.Content == "" {
		v.Add("content must not be empty")
	}
	if utf8.RuneCountInString(message.Content) > MaxContentLength {
		v.Add("content must not exceed %d characters", MaxContentLength)
	}
	if !message.MessageType.IsValid() {
		v.Add("unknown message type %q", message.MessageType)
	}
	return v.Err()
}

type nopHistory struct{}

// NopHistorySink отбрасывает историю, когда экспорт в Kafka выключен.
func NopHistorySink() HistorySink {
	return nopHistory{}
}

func (nopHistory) Append(context.Context, entities.ChatMessage) error {
	return nil
}
