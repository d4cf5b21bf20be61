package entities

import "time"

type EventType string

const (
	EventSegmentAvailable     EventType = "segment_available"
	EventSegmentProposal      EventType = "segment_proposal"
	EventSegmentAccepted      EventType = "segment_accepted"
	EventSegmentStatusUpdated EventType = "segment_status_updated"
	EventDeliveryCoordination EventType = "delivery_coordination"
	EventPackageHandover      EventType = "package_handover"
	EventGroupChatMessage     EventType = "group_chat_message"
)

func (t EventType) String() string {
	return string(t)
}

const (
	userChannelPrefix     = "user:"
	deliveryChannelPrefix = "delivery:"
)

func UserChannel(userID string) string {
	return userChannelPrefix + userID
}

func DeliveryChannel(deliveryID string) string {
	return deliveryChannelPrefix + deliveryID
}

// Event - сообщение подписчикам канала. Payload - одна из сущностей
// (Segment, AvailableSegment, Proposal, Acceptance,
// HandoverEvent, HandoverResult, ChatMessage, SegmentStatusUpdate).
type Event struct {
	Type       EventType
	ChannelID  string
	DeliveryID string
	Payload    any
	OccurredAt time.Time
}

func NewEvent(eventType EventType, channelID, deliveryID string, payload any) Event {
	return Event{
		Type:       eventType,
		ChannelID:  channelID,
		DeliveryID: deliveryID,
		Payload:    payload,
		OccurredAt: time.Now().UTC(),
	}
}

// SegmentStatusUpdate - payload события segment_status_updated.
type SegmentStatusUpdate struct {
	Segment        Segment
	PreviousStatus SegmentStatus
	Location       *Location
}
