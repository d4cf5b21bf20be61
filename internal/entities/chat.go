package entities

import "time"

type MessageType string

const (
	MessageCoordination MessageType = "coordination"
	MessageStatusUpdate MessageType = "status_update"
	MessageGeneral      MessageType = "general"
)

func (t MessageType) String() string {
	return string(t)
}

func (t MessageType) IsValid() bool {
	switch t {
	case MessageCoordination, MessageStatusUpdate, MessageGeneral:
		return true
	default:
		return false
	}
}

type ChatMessage struct {
	ID          string
	DeliveryID  string
	SenderID    string
	Content     string
	MessageType MessageType
	Timestamp   time.Time
}
