package eventcodec

import (
	"encoding/json"
	"fmt"
	"time"

	"relay/internal/entities"
	"relay/internal/generated/dto"
	"relay/internal/pkg/converters"
)

// Message - событие канала в виде, в котором его видят клиенты и внешние
// получатели.
type Message struct {
	Type       string    `json:"type"`
	ChannelID  string    `json:"channel_id"`
	DeliveryID string    `json:"delivery_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// coordination - код подтверждения есть только в копии для клиента.
type coordination struct {
	dto.HandoverEvent
	VerificationCode *string `json:"verification_code,omitempty"`
}

type statusUpdate struct {
	Segment        dto.Segment   `json:"segment"`
	PreviousStatus string        `json:"previous_status"`
	Location       *dto.Location `json:"location,omitempty"`
}

func Encode(event entities.Event) Message {
	return Message{
		Type:       event.Type.String(),
		ChannelID:  event.ChannelID,
		DeliveryID: event.DeliveryID,
		OccurredAt: event.OccurredAt,
		Payload:    payload(event.Payload),
	}
}

func Marshal(event entities.Event) ([]byte, error) {
	data, err := json.Marshal(Encode(event))
	if err != nil {
		return nil, fmt.Errorf("marshal %s event: %w", event.Type, err)
	}
	return data, nil
}

func payload(p any) any {
	switch v := p.(type) {
	case entities.Segment:
		return converters.Segment(v)
	case entities.AvailableSegment:
		return dto.AvailableSegment{Segment: converters.Segment(v.Segment), DistanceKm: v.DistanceKm}
	case entities.Proposal:
		return converters.Proposal(v)
	case entities.Acceptance:
		return converters.Acceptance(&v)
	case entities.SegmentStatusUpdate:
		update := statusUpdate{
			Segment:        converters.Segment(v.Segment),
			PreviousStatus: v.PreviousStatus.String(),
		}
		if v.Location != nil {
			loc := converters.Location(*v.Location)
			update.Location = &loc
		}
		return update
	case entities.HandoverEvent:
		return coordination{
			HandoverEvent:    converters.HandoverEvent(v),
			VerificationCode: v.VerificationCode,
		}
	case entities.HandoverResult:
		return converters.HandoverResult(&v)
	case entities.ChatMessage:
		return converters.ChatMessage(&v)
	default:
		return p
	}
}
