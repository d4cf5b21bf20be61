package chat_history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"relay/internal/entities"
)

type chatMessage struct {
	ID          string    `json:"id"`
	DeliveryID  string    `json:"delivery_id"`
	SenderID    string    `json:"sender_id"`
	Content     string    `json:"content"`
	MessageType string    `json:"message_type"`
	Timestamp   time.Time `json:"timestamp"`
}

// Sink дописывает историю чата доставки в топик, ключ - id доставки.
type Sink struct {
	producer producer
	topic    string
}

func New(producer producer, topic string) *Sink {
	return &Sink{
		producer: producer,
		topic:    topic,
	}
}

func (s *Sink) Append(ctx context.Context, message entities.ChatMessage) error {
	data, err := json.Marshal(chatMessage{
		ID:          message.ID,
		DeliveryID:  message.DeliveryID,
		SenderID:    message.SenderID,
		Content:     message.Content,
		MessageType: message.MessageType.String(),
		Timestamp:   message.Timestamp,
	})
	if err != nil {
		return fmt.Errorf("marshal chat message: %w", err)
	}

	err = s.producer.Send(ctx, s.topic, message.DeliveryID, data)
	if err != nil {
		return fmt.Errorf("chat history append: %w", err)
	}
	return nil
}
